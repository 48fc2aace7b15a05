// Package unitPrice считает цену за единицу товара по названию и цене партии.
package unitPrice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"unit_price/internal/domain"
	"unit_price/internal/domain/entity"
	"unit_price/internal/domain/service/priceNormalizer"
	"unit_price/internal/domain/value"
	"unit_price/pkg/logx"
)

type TitleParser interface {
	Parse(title string) entity.ParsedQuantity
}

type ConversionTable interface {
	Lookup(unit value.Unit) (entity.ConversionRule, bool)
}

type Normalizer interface {
	Normalize(cost, quantity decimal.Decimal, multiplier int, scale decimal.Decimal) (entity.NormalizedPrice, error)
	Rounding() priceNormalizer.Rounding
}

type Metrics interface {
	Normalized(unit value.Unit, rounding string)
	TitleFallback()
	UnknownUnit()
	Failed(code string)
}

type Service struct {
	parser     TitleParser
	table      ConversionTable
	normalizer Normalizer
	metrics    Metrics
	log        *slog.Logger
}

func NewService(
	parser TitleParser,
	table ConversionTable,
	normalizer Normalizer,
) *Service {
	return &Service{
		parser:     parser,
		table:      table,
		normalizer: normalizer,
		metrics:    nopMetrics{},
		log:        slog.Default(),
	}
}

// WithLogger задаёт логгер; подробности расчёта пишутся на уровне Debug.
func (s *Service) WithLogger(log *slog.Logger) *Service {
	s.log = log
	return s
}

func (s *Service) WithMetrics(metrics Metrics) *Service {
	s.metrics = metrics
	return s
}

// Calculate разбирает название, подбирает правило пересчёта и считает цену
// за каноническую единицу. Ошибки возвращаются только для цены и для
// нулевого количества в названии.
func (s *Service) Calculate(ctx context.Context, title, cost string) (entity.UnitPrice, error) {
	costValue, err := ParseCost(cost)
	if err != nil {
		s.fail(err)
		return entity.UnitPrice{}, fmt.Errorf("ParseCost: %w", err)
	}

	title = strings.TrimSpace(title)

	parsed := s.parser.Parse(title)
	if !parsed.Matched {
		s.metrics.TitleFallback()
	}

	rule, known := s.table.Lookup(parsed.Unit)
	if !known {
		s.metrics.UnknownUnit()
	}

	s.log.DebugContext(ctx, "title parsed",
		slog.String(logx.FieldTitle, title),
		slog.String(logx.FieldQuantity, parsed.Quantity.String()),
		logx.Stringer(logx.FieldUnit, parsed.Unit),
		slog.Int(logx.FieldMultiplier, parsed.Multiplier),
		slog.String(logx.FieldScale, rule.Scale.String()),
		logx.Stringer(logx.FieldCanonicalUnit, rule.CanonicalUnit),
	)

	price, err := s.normalizer.Normalize(costValue, parsed.Quantity, parsed.Multiplier, rule.Scale)
	if err != nil {
		if errors.Is(err, priceNormalizer.ErrInvalidQuantity) {
			err = domain.ErrBadQuantity.Wrap(err)
		}

		s.fail(err)

		return entity.UnitPrice{}, fmt.Errorf("normalizer.Normalize: %w", err)
	}

	rounding := s.normalizer.Rounding()
	text := Render(price, rule.CanonicalUnit, rounding)

	s.log.DebugContext(ctx, "price normalized",
		slog.String(logx.FieldCost, costValue.String()),
		slog.Int64(logx.FieldMajor, price.Major),
		slog.String(logx.FieldMinor, price.Minor.String()),
		slog.String(logx.FieldRendered, text),
	)

	s.metrics.Normalized(rule.CanonicalUnit, rounding.String())

	return entity.UnitPrice{
		Title:  title,
		Cost:   costValue,
		Parsed: parsed,
		Rule:   rule,
		Price:  price,
		Text:   text,
	}, nil
}

// CalculateCards считает цены для страницы каталога. Карточки без цены
// (нет в наличии) и карточки, для которых расчёт не удался, попадают в skipped.
func (s *Service) CalculateCards(ctx context.Context, cards []entity.ProductCard) ([]entity.CardPrice, []string) {
	prices := make([]entity.CardPrice, 0, len(cards))
	skipped := make([]string, 0)

	for _, card := range cards {
		if !card.HasCost() {
			skipped = append(skipped, card.ID)
			continue
		}

		price, err := s.Calculate(ctx, card.Title, card.Cost)
		if err != nil {
			s.log.WarnContext(ctx, "card skipped",
				slog.String(logx.FieldCardID, card.ID),
				logx.Error(err),
			)

			skipped = append(skipped, card.ID)

			continue
		}

		prices = append(prices, entity.CardPrice{CardID: card.ID, UnitPrice: price})
	}

	return prices, skipped
}

func (s *Service) fail(err error) {
	if code, ok := domain.GetCode(err); ok {
		s.metrics.Failed(code.String())
	}
}

type nopMetrics struct{}

func (nopMetrics) Normalized(value.Unit, string) {}
func (nopMetrics) TitleFallback()                {}
func (nopMetrics) UnknownUnit()                  {}
func (nopMetrics) Failed(string)                 {}
