package unitPrice_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"unit_price/internal/domain"
	"unit_price/internal/domain/entity"
	"unit_price/internal/domain/service/priceNormalizer"
	"unit_price/internal/domain/service/titleParser"
	"unit_price/internal/domain/service/unitPrice"
	"unit_price/internal/domain/service/unitTable"
	"unit_price/internal/domain/value"
)

type metricsRecorder struct {
	normalized    map[value.Unit]int
	titleFallback int
	unknownUnit   int
	failed        map[string]int
}

func newMetricsRecorder() *metricsRecorder {
	return &metricsRecorder{
		normalized: make(map[value.Unit]int),
		failed:     make(map[string]int),
	}
}

func (m *metricsRecorder) Normalized(unit value.Unit, _ string) { m.normalized[unit]++ }
func (m *metricsRecorder) TitleFallback()                       { m.titleFallback++ }
func (m *metricsRecorder) UnknownUnit()                         { m.unknownUnit++ }
func (m *metricsRecorder) Failed(code string)                   { m.failed[code]++ }

func newService(rounding priceNormalizer.Rounding) *unitPrice.Service {
	return unitPrice.NewService(
		titleParser.NewParser(titleParser.NewGrammarMatcher(titleParser.DefaultGrammar())),
		unitTable.Default(),
		priceNormalizer.New(rounding),
	)
}

func TestServiceCalculate(t *testing.T) {
	testCases := []struct {
		name          string
		title         string
		cost          string
		quantity      string
		unit          value.Unit
		multiplier    int
		canonicalUnit value.Unit
		major         int64
		minor         string
		text          string
	}{
		{
			name:          "Milk",
			title:         "Молоко X пастеризованное 2.5% 1.4л",
			cost:          "100",
			quantity:      "1.4",
			unit:          value.UnitLiter,
			multiplier:    1,
			canonicalUnit: value.UnitLiter,
			major:         71,
			minor:         "43",
			text:          "71,43 ₽/л",
		},
		{
			name:          "Baguette with multiplier",
			title:         "Багет X замороженный 2шт*150г",
			cost:          "90",
			quantity:      "150",
			unit:          value.UnitGram,
			multiplier:    2,
			canonicalUnit: value.UnitKilogram,
			major:         300,
			minor:         "0",
			text:          "300 ₽/кг",
		},
		{
			name:          "Gift set without quantity",
			title:         "Подарочный набор",
			cost:          "50",
			quantity:      "1",
			unit:          value.UnitPiece,
			multiplier:    1,
			canonicalUnit: value.UnitPiece,
			major:         50,
			minor:         "0",
			text:          "50 ₽/шт",
		},
		{
			name:          "Rolls genitive plural",
			title:         "Туалетная бумага X 8 рулонов",
			cost:          "200",
			quantity:      "8",
			unit:          "рулонов",
			multiplier:    1,
			canonicalUnit: value.UnitRoll,
			major:         25,
			minor:         "0",
			text:          "25 ₽/рулон",
		},
		{
			name:          "Comma cost and padded kopecks",
			title:         "Вода 500 мл",
			cost:          "35,52",
			quantity:      "500",
			unit:          value.UnitMilliliter,
			multiplier:    1,
			canonicalUnit: value.UnitLiter,
			major:         71,
			minor:         "4",
			text:          "71,04 ₽/л",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			price, err := newService(priceNormalizer.RoundingExact).Calculate(context.Background(), tc.title, tc.cost)
			rq.NoError(err)

			rq.Equal(tc.quantity, price.Parsed.Quantity.String())
			rq.Equal(tc.unit, price.Parsed.Unit)
			rq.Equal(tc.multiplier, price.Parsed.Multiplier)
			rq.Equal(tc.canonicalUnit, price.Rule.CanonicalUnit)
			rq.Equal(tc.major, price.Price.Major)
			rq.Equal(tc.minor, price.Price.Minor.String())
			rq.Equal(tc.text, price.Text)
		})
	}
}

func TestServiceCalculateErrors(t *testing.T) {
	testCases := []struct {
		name  string
		title string
		cost  string
		err   error
		code  string
	}{
		{name: "Missing cost", title: "Хлеб 500 г", cost: " ", err: domain.ErrMissingCost, code: "InvalidCost"},
		{name: "Invalid cost", title: "Хлеб 500 г", cost: "12р", err: domain.ErrInvalidCost, code: "InvalidCost"},
		{name: "Negative cost", title: "Хлеб 500 г", cost: "-1", err: domain.ErrNegativeCost, code: "InvalidCost"},
		{name: "Zero quantity", title: "Хлеб 0 г", cost: "10", err: domain.ErrBadQuantity, code: "InvalidQuantity"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			recorder := newMetricsRecorder()
			svc := newService(priceNormalizer.RoundingExact).WithMetrics(recorder)

			_, err := svc.Calculate(context.Background(), tc.title, tc.cost)
			rq.ErrorIs(err, tc.err)
			rq.Equal(map[string]int{tc.code: 1}, recorder.failed)
			rq.Empty(recorder.normalized)
		})
	}

	t.Run("Zero quantity keeps normalizer error", func(t *testing.T) {
		_, err := newService(priceNormalizer.RoundingExact).Calculate(context.Background(), "Хлеб 0 г", "10")
		require.ErrorIs(t, err, priceNormalizer.ErrInvalidQuantity)
	})
}

func TestServiceMetrics(t *testing.T) {
	rq := require.New(t)

	recorder := newMetricsRecorder()
	table := unitTable.New(map[value.Unit]entity.ConversionRule{
		value.UnitGram: {Scale: decimal.NewFromInt(1000), CanonicalUnit: value.UnitKilogram},
	}, entity.ConversionRule{Scale: decimal.NewFromInt(1), CanonicalUnit: value.UnitPiece})

	svc := unitPrice.NewService(
		titleParser.NewParser(titleParser.NewGrammarMatcher(titleParser.DefaultGrammar())),
		table,
		priceNormalizer.New(priceNormalizer.RoundingExact),
	).WithMetrics(recorder)

	ctx := context.Background()

	_, err := svc.Calculate(ctx, "Хлеб 500 г", "50")
	rq.NoError(err)

	// единицы нет в таблице: правило по умолчанию
	price, err := svc.Calculate(ctx, "Молоко 1 л", "80")
	rq.NoError(err)
	rq.Equal("80 ₽/шт", price.Text)

	_, err = svc.Calculate(ctx, "Арбуз", "150")
	rq.NoError(err)

	rq.Equal(map[value.Unit]int{value.UnitKilogram: 1, value.UnitPiece: 2}, recorder.normalized)
	rq.Equal(1, recorder.titleFallback)
	rq.Equal(2, recorder.unknownUnit)
}

func TestServiceDebugLogging(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := newService(priceNormalizer.RoundingExact).WithLogger(log)

	_, err := svc.Calculate(context.Background(), "Молоко 1,4 л", "100")
	rq.NoError(err)

	rq.Contains(buf.String(), `"msg":"title parsed"`)
	rq.Contains(buf.String(), `"rendered":"71,43 ₽/л"`)

	buf.Reset()

	quiet := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	_, err = newService(priceNormalizer.RoundingExact).WithLogger(quiet).Calculate(context.Background(), "Молоко 1,4 л", "100")
	rq.NoError(err)
	rq.Empty(buf.String())
}

func TestServiceCalculateCards(t *testing.T) {
	rq := require.New(t)

	prices, skipped := newService(priceNormalizer.RoundingExact).CalculateCards(context.Background(), []entity.ProductCard{
		{ID: "a", Title: "Хлеб 500 г", Cost: "50"},
		{ID: "b", Title: "Сыр 200 г"},
		{ID: "c", Title: "Носки 5 пар", Cost: "500"},
		{ID: "d", Title: "Сахар 1 кг", Cost: "нет"},
	})

	rq.Len(prices, 2)
	rq.Equal("a", prices[0].CardID)
	rq.Equal("100 ₽/кг", prices[0].Text)
	rq.Equal("c", prices[1].CardID)
	rq.Equal("100 ₽/пара", prices[1].Text)
	rq.Equal([]string{"b", "d"}, skipped)
}
