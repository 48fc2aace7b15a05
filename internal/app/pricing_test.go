package app_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"unit_price/internal/app"
	"unit_price/internal/config"
	"unit_price/internal/domain/entity"
	"unit_price/internal/domain/service/titleParser"
	"unit_price/internal/domain/service/unitTable"
	"unit_price/internal/metrics"
)

func TestNewMatcher(t *testing.T) {
	rq := require.New(t)

	grammar, err := app.NewMatcher(config.MatcherGrammar)
	rq.NoError(err)
	rq.IsType(titleParser.GrammarMatcher{}, grammar)

	re, err := app.NewMatcher(config.MatcherRegexp)
	rq.NoError(err)
	rq.IsType(titleParser.RegexpMatcher{}, re)

	_, err = app.NewMatcher("pcre")
	rq.Error(err)
}

func TestNewUnitPriceService(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.Pricing
		title    string
		cost     string
		expected string
		wantErr  bool
	}{
		{
			name:     "Exact rounding",
			cfg:      config.Pricing{Rounding: "exact", Matcher: config.MatcherGrammar},
			title:    "Молоко 1,4 л",
			cost:     "99,47",
			expected: "71,05 ₽/л",
		},
		{
			name:     "Legacy rounding",
			cfg:      config.Pricing{Rounding: "legacy", Matcher: config.MatcherRegexp},
			title:    "Молоко 1,4 л",
			cost:     "99,47",
			expected: "71,5 ₽/л",
		},
		{
			name:    "Unknown rounding",
			cfg:     config.Pricing{Rounding: "banker", Matcher: config.MatcherGrammar},
			wantErr: true,
		},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			svc, err := app.NewUnitPriceService(tc.cfg, unitTable.Default(), log, metrics.NewUnitPrice(prometheus.NewRegistry()))
			if tc.wantErr {
				rq.Error(err)
				return
			}

			rq.NoError(err)

			price, err := svc.Calculate(context.Background(), tc.title, tc.cost)
			rq.NoError(err)
			rq.Equal(tc.expected, price.Text)
		})
	}
}

type brokenCalculator struct{}

func (brokenCalculator) Calculate(context.Context, string, string) (entity.UnitPrice, error) {
	return entity.UnitPrice{Text: "1 ₽/шт"}, nil
}

func TestSelfCheck(t *testing.T) {
	rq := require.New(t)

	for _, matcher := range []string{config.MatcherGrammar, config.MatcherRegexp} {
		for _, rounding := range []string{"exact", "legacy"} {
			svc, err := app.NewUnitPriceService(
				config.Pricing{Rounding: rounding, Matcher: matcher},
				unitTable.Default(),
				slog.New(slog.NewTextHandler(io.Discard, nil)),
				metrics.NewUnitPrice(prometheus.NewRegistry()),
			)
			rq.NoError(err)
			rq.NoError(app.SelfCheck(svc)(context.Background()), "%s/%s", matcher, rounding)
		}
	}

	rq.Error(app.SelfCheck(brokenCalculator{})(context.Background()))
}
