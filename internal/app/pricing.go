// Package app собирает зависимости сервиса из конфигурации.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"unit_price/internal/config"
	"unit_price/internal/domain/entity"
	"unit_price/internal/domain/service/priceNormalizer"
	"unit_price/internal/domain/service/titleParser"
	"unit_price/internal/domain/service/unitPrice"
	"unit_price/internal/domain/service/unitTable"
)

// NewMatcher выбирает движок разбора названий.
func NewMatcher(name string) (titleParser.Matcher, error) {
	grammar := titleParser.DefaultGrammar()

	switch name {
	case config.MatcherGrammar:
		return titleParser.NewGrammarMatcher(grammar), nil
	case config.MatcherRegexp:
		matcher, err := titleParser.NewRegexpMatcher(grammar)
		if err != nil {
			return nil, fmt.Errorf("titleParser.NewRegexpMatcher: %w", err)
		}

		return matcher, nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", name)
	}
}

// NewUnitPriceService собирает сервис расчёта по настройкам Pricing.
func NewUnitPriceService(
	cfg config.Pricing,
	table unitTable.Table,
	log *slog.Logger,
	metrics unitPrice.Metrics,
) (*unitPrice.Service, error) {
	matcher, err := NewMatcher(cfg.Matcher)
	if err != nil {
		return nil, fmt.Errorf("NewMatcher: %w", err)
	}

	rounding, err := priceNormalizer.ParseRounding(cfg.Rounding)
	if err != nil {
		return nil, fmt.Errorf("priceNormalizer.ParseRounding: %w", err)
	}

	return unitPrice.NewService(
		titleParser.NewParser(matcher),
		table,
		priceNormalizer.New(rounding),
	).WithLogger(log).WithMetrics(metrics), nil
}

const (
	selfCheckTitle    = "Молоко пастеризованное 2.5% 1.4л"
	selfCheckCost     = "100"
	selfCheckExpected = "71,43 ₽/л"
)

type calculator interface {
	Calculate(ctx context.Context, title, cost string) (entity.UnitPrice, error)
}

// SelfCheck проверка готовности: эталонный расчёт должен совпасть.
func SelfCheck(svc calculator) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		price, err := svc.Calculate(ctx, selfCheckTitle, selfCheckCost)
		if err != nil {
			return fmt.Errorf("svc.Calculate: %w", err)
		}

		if price.Text != selfCheckExpected {
			return fmt.Errorf("self check: got %q, want %q", price.Text, selfCheckExpected)
		}

		return nil
	}
}
