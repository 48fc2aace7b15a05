// Package priceNormalizer приводит цену партии к цене за каноническую единицу.
package priceNormalizer

import (
	"errors"

	"github.com/shopspring/decimal"

	"unit_price/internal/domain/entity"
)

var ErrInvalidQuantity = errors.New("quantity and multiplier must be positive")

type Normalizer struct {
	rounding Rounding
}

func New(rounding Rounding) Normalizer {
	return Normalizer{rounding: rounding}
}

func (n Normalizer) Rounding() Rounding {
	return n.rounding
}

// Normalize считает round2(scale * cost / (quantity * multiplier)) и делит
// результат на рубли (усечение к нулю) и копейки.
func (n Normalizer) Normalize(
	cost decimal.Decimal,
	quantity decimal.Decimal,
	multiplier int,
	scale decimal.Decimal,
) (entity.NormalizedPrice, error) {
	divisor := quantity.Mul(decimal.NewFromInt(int64(multiplier)))
	if !divisor.IsPositive() {
		return entity.NormalizedPrice{}, ErrInvalidQuantity
	}

	if n.rounding == RoundingLegacy {
		return normalizeLegacy(cost, quantity, multiplier, scale), nil
	}

	return splitExact(scale.Mul(cost).Div(divisor).Round(2)), nil
}
