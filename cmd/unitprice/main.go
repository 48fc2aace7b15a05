// unitprice считает цену за единицу из командной строки.
//
//	go run ./cmd/unitprice 89,90 Молоко пастеризованное 2.5% 1.4л
//	go run ./cmd/unitprice -rounding legacy 99,47 Молоко 1,4 л
//
// С флагом -watch читает со stdin страницы каталога, по одной JSON-строке
// на порцию ([{"id":"1","title":"Хлеб 500 г","cost":"50"}]), и печатает
// цены только для новых карточек.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"unit_price/internal/app"
	"unit_price/internal/config"
	"unit_price/internal/domain/entity"
	"unit_price/internal/domain/service/unitPrice"
	"unit_price/internal/domain/service/unitTable"
	"unit_price/internal/metrics"
	"unit_price/internal/worker"
	"unit_price/pkg/contextx"
	"unit_price/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var errUsage = errors.New("usage: unitprice [-rounding exact|legacy] [-matcher grammar|regexp] [-v] <cost> <title...> | -watch")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// после первого сигнала возвращаем обработку по умолчанию: второй Ctrl-C завершает процесс
	context.AfterFunc(ctx, stop)

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("unitprice", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		pricing config.Pricing
		watch   bool
		verbose bool
	)

	flags.StringVar(&pricing.Rounding, "rounding", "exact", "exact или legacy")
	flags.StringVar(&pricing.Matcher, "matcher", config.MatcherGrammar, "grammar или regexp")
	flags.BoolVar(&watch, "watch", false, "читать порции карточек со stdin")
	flags.BoolVar(&verbose, "v", false, "подробный лог расчёта")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("flags.Parse: %w", err)
	}

	level := slogLevel(verbose)
	log := logx.New(stderr, "local", level)
	ctx = contextx.WithLogger(ctx, log)

	svc, err := app.NewUnitPriceService(pricing, unitTable.Default(), log, metrics.NewUnitPrice(prometheus.NewRegistry()))
	if err != nil {
		return fmt.Errorf("app.NewUnitPriceService: %w", err)
	}

	if watch {
		return runWatch(ctx, svc, stdin, stdout)
	}

	if flags.NArg() < 2 { //nolint:mnd // цена и название
		return errUsage
	}

	price, err := svc.Calculate(ctx, strings.Join(flags.Args()[1:], " "), flags.Arg(0))
	if err != nil {
		return fmt.Errorf("svc.Calculate: %w", err)
	}

	fmt.Fprintln(stdout, price.Text)

	return nil
}

func runWatch(ctx context.Context, svc *unitPrice.Service, stdin io.Reader, stdout io.Writer) error {
	batches := make(chan []entity.ProductCard)
	results := make(chan entity.CardPrice)

	watcher := worker.NewCatalogWatcher(svc, results)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(batches)

		return readBatches(ctx, stdin, batches)
	})

	g.Go(func() error {
		defer close(results)

		return watcher.Run(ctx, batches) //nolint:wrapcheck
	})

	g.Go(func() error {
		encoder := json.NewEncoder(stdout)

		for price := range results {
			if err := encoder.Encode(map[string]string{"id": price.CardID, "price": price.Text}); err != nil {
				return fmt.Errorf("encoder.Encode: %w", err)
			}
		}

		return nil
	})

	// отмена по сигналу штатное завершение
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// readBatches не ждёт stdin после отмены: чтение строк идёт в отдельной
// горутине, которая завершится на EOF или вместе с процессом.
func readBatches(ctx context.Context, r io.Reader, batches chan<- []entity.ProductCard) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go scanLines(ctx, r, lines, scanErr)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}

			var batch []entity.ProductCard

			if err := json.Unmarshal([]byte(line), &batch); err != nil {
				return fmt.Errorf("json.Unmarshal: %w", err)
			}

			select {
			case batches <- batch:
			case <-ctx.Done():
				return ctx.Err() //nolint:wrapcheck
			}
		}
	}
}

func scanLines(ctx context.Context, r io.Reader, lines chan<- string, scanErr chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) //nolint:mnd // страница каталога помещается в 1 МБ

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		select {
		case lines <- line:
		case <-ctx.Done():
			scanErr <- nil
			return
		}
	}

	if err := scanner.Err(); err != nil {
		scanErr <- fmt.Errorf("scanner.Err: %w", err)
		return
	}

	scanErr <- nil
}

func slogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}
