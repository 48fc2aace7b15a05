package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"unit_price/internal/app"
	"unit_price/internal/config"
	"unit_price/internal/domain/service/unitTable"
	"unit_price/internal/metrics"
	"unit_price/internal/server"
	"unit_price/internal/transport/bot"
	"unit_price/internal/transport/bot/handler"
	"unit_price/pkg/application/modules"
	"unit_price/pkg/contextx"
	"unit_price/pkg/logx"
	"unit_price/pkg/middlewarex"
	"unit_price/pkg/probe"
)

const (
	httpServerReadHeaderTimeout = 5 * time.Second
	metricsNamespace            = "unit_price"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("application failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// 1. Конфигурация и логгер
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	level, err := logx.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("logx.ParseLevel: %w", err)
	}

	log := logx.New(os.Stdout, cfg.App.Env, level).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	// 2. Сервис расчёта
	table := unitTable.Default()

	svc, err := app.NewUnitPriceService(cfg.Pricing, table, log, metrics.NewUnitPrice(prometheus.DefaultRegisterer))
	if err != nil {
		return fmt.Errorf("app.NewUnitPriceService: %w", err)
	}

	// Проверка готовности считает на отдельном реестре, чтобы не искажать метрики.
	checkSvc, err := app.NewUnitPriceService(cfg.Pricing, table, log, metrics.NewUnitPrice(prometheus.NewRegistry()))
	if err != nil {
		return fmt.Errorf("app.NewUnitPriceService: %w", err)
	}

	log.Info("pricing configured",
		slog.String("rounding", cfg.Pricing.Rounding),
		slog.String("matcher", cfg.Pricing.Matcher),
	)

	// 3. HTTP API
	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Metrics(prometheus.DefaultRegisterer, metricsNamespace),
		middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), cfg.HTTP.LogFieldMaxLen),
		middlewarex.Recovery,
	)

	server.NewServer(server.NewUnitPriceServer(svc, table)).RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// 4. Модули
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      prometheus.DefaultGatherer,
	}.Run(ctx, g)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks:        []probe.ReadinessCheck{app.SelfCheck(checkSvc)},
	}.Run(ctx, g)

	// 5. Telegram-бот
	if cfg.Bot.Enabled() {
		telegramBot, err := bot.New(cfg.Bot, log, handler.New(svc))
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		g.Go(func() error {
			if err := telegramBot.Run(ctx); err != nil {
				return fmt.Errorf("telegramBot.Run: %w", err)
			}

			return nil
		})
	} else {
		log.Info("telegram bot disabled: BOT_TOKEN is empty")
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}
