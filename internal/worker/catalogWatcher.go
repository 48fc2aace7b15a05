package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"unit_price/internal/domain/entity"
	"unit_price/pkg/logx"
	"unit_price/pkg/lox"
)

var ErrAlreadyRunning = errors.New("watcher is already running")

type unitPriceService interface {
	Calculate(ctx context.Context, title, cost string) (entity.UnitPrice, error)
}

// CatalogWatcher получает страницу каталога порциями (подгрузка при прокрутке)
// и считает цену за единицу только для новых карточек. Карточка без цены
// не запоминается: у неё может появиться цена в следующей порции.
type CatalogWatcher struct {
	svc     unitPriceService
	results chan<- entity.CardPrice

	mu         sync.Mutex
	seen       map[string]struct{}
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewCatalogWatcher(
	svc unitPriceService,
	results chan<- entity.CardPrice,
) *CatalogWatcher {
	return &CatalogWatcher{
		svc:     svc,
		results: results,
		seen:    make(map[string]struct{}),
	}
}

// Start запускает Run в отдельной горутине.
func (w *CatalogWatcher) Start(ctx context.Context, batches <-chan []entity.ProductCard) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return ErrAlreadyRunning
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(watchCtx, batches); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("catalog watcher stopped", logx.Error(err))
		}
	}()

	return nil
}

// Stop останавливает запущенный через Start обработчик и ждёт его завершения.
func (w *CatalogWatcher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *CatalogWatcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.isRunning
}

// Run обрабатывает порции до отмены контекста или закрытия канала.
// Карточки обрабатываются строго по одной.
func (w *CatalogWatcher) Run(ctx context.Context, batches <-chan []entity.ProductCard) error {
	logger(ctx).Info("catalog watcher started")

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("catalog watcher stopped")
			return ctx.Err()
		case batch, ok := <-batches:
			if !ok {
				logger(ctx).Info("catalog watcher finished")
				return nil
			}

			if err := w.process(ctx, batch); err != nil {
				return fmt.Errorf("process: %w", err)
			}
		}
	}
}

// Seen сообщает, обработана ли карточка.
func (w *CatalogWatcher) Seen(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, ok := w.seen[id]

	return ok
}

// Reset забывает обработанные карточки (новая страница каталога).
func (w *CatalogWatcher) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	clear(w.seen)
}

func (w *CatalogWatcher) process(ctx context.Context, batch []entity.ProductCard) error {
	cards := lox.FilterMap(batch, func(card entity.ProductCard) (entity.ProductCard, bool) {
		return card, card.HasCost() && !w.Seen(card.ID)
	})

	var calculated int

	for _, card := range cards {
		// Карточка может повторяться внутри одной порции.
		if w.Seen(card.ID) {
			continue
		}

		w.markSeen(card.ID)

		price, err := w.svc.Calculate(ctx, card.Title, card.Cost)
		if err != nil {
			logger(ctx).Warn("card skipped",
				slog.String(logx.FieldCardID, card.ID),
				logx.Error(err),
			)

			continue
		}

		select {
		case w.results <- entity.CardPrice{CardID: card.ID, UnitPrice: price}:
			calculated++
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if calculated > 0 {
		logger(ctx).Debug("catalog batch processed",
			slog.Int("cards", len(batch)),
			slog.Int("calculated", calculated),
		)
	}

	return nil
}

func (w *CatalogWatcher) markSeen(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.seen[id] = struct{}{}
}
