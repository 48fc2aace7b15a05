package bot

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"unit_price/internal/config"
	"unit_price/internal/transport/bot/handler"
	"unit_price/pkg/contextx"
	"unit_price/pkg/httpx"
	"unit_price/pkg/logx"
)

const logFieldMaxLen = 4096

// Bot Telegram-бот для расчёта цены за единицу.
type Bot struct {
	bot            *telego.Bot
	handler        *handler.Handler
	pollingTimeout int
	allowedChats   []int64
}

// New создаёт бота. Запросы к Bot API логируются с маскированием токена.
func New(cfg config.Bot, log *slog.Logger, h *handler.Handler) (*Bot, error) {
	httpClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(logFieldMaxLen),
		),
	}

	bot, err := telego.NewBot(cfg.Token,
		telego.WithHTTPClient(httpClient),
		telego.WithLogger(newLogger(log)),
	)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &Bot{
		bot:            bot,
		handler:        h,
		pollingTimeout: int(cfg.PollingTimeout.Seconds()),
		allowedChats:   cfg.AllowedChatIDs,
	}, nil
}

// Run получает обновления через long polling до отмены контекста.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: b.pollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("bot.UpdatesViaLongPolling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("th.NewBotHandler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.allowedChats)

	go func() {
		if err := botHandler.Start(); err != nil {
			logger(ctx).Error("botHandler.Start", logx.Error(err))
		}
	}()

	logger(ctx).Info("telegram bot started")

	<-ctx.Done()

	if err := botHandler.Stop(); err != nil {
		logger(ctx).Error("botHandler.Stop", logx.Error(err))
	}

	logger(ctx).Info("telegram bot stopped")

	return nil
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// slogLogger передаёт сообщения telego в slog. URL запросов содержат токен,
// поэтому сообщения маскируются.
type slogLogger struct {
	log    *slog.Logger
	masker logx.SensitiveDataMasker
}

func newLogger(log *slog.Logger) slogLogger {
	return slogLogger{
		log:    log.With(slog.String("component", "telego")),
		masker: logx.NewSensitiveDataMasker(),
	}
}

func (l slogLogger) Debugf(format string, args ...any) {
	l.log.Debug(l.mask(format, args...))
}

func (l slogLogger) Errorf(format string, args ...any) {
	l.log.Error(l.mask(format, args...))
}

func (l slogLogger) mask(format string, args ...any) string {
	return string(l.masker.Mask([]byte(fmt.Sprintf(format, args...))))
}
