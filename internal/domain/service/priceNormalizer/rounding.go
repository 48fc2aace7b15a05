package priceNormalizer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"unit_price/internal/domain/entity"
)

// Rounding способ разделения цены на рубли и копейки.
type Rounding string

const (
	// RoundingExact копейки считаются в десятичной арифметике и всегда
	// целые: [0, 99] для положительной цены.
	RoundingExact Rounding = "exact"
	// RoundingLegacy повторяет двухступенчатое округление во float64:
	// цена считается и округляется до двух знаков во float64, затем
	// дробная часть умножается на 100 и округляется ещё раз.
	RoundingLegacy Rounding = "legacy"
)

func ParseRounding(s string) (Rounding, error) {
	switch r := Rounding(s); r {
	case RoundingExact, RoundingLegacy:
		return r, nil
	default:
		return "", fmt.Errorf("unknown rounding %q", s)
	}
}

func (r Rounding) String() string {
	return string(r)
}

func splitExact(price decimal.Decimal) entity.NormalizedPrice {
	major := price.Truncate(0)

	return entity.NormalizedPrice{
		Major: major.IntPart(),
		Minor: price.Sub(major).Mul(decimal.NewFromInt(100)),
	}
}

func normalizeLegacy(
	cost decimal.Decimal,
	quantity decimal.Decimal,
	multiplier int,
	scale decimal.Decimal,
) entity.NormalizedPrice {
	c, _ := cost.Float64()
	q, _ := quantity.Float64()
	s, _ := scale.Float64()

	price, _ := toFixed2(s * c / (q * float64(multiplier))).Float64()
	major := math.Trunc(price)

	return entity.NormalizedPrice{
		Major: int64(major),
		Minor: toFixed2((price - major) * 100),
	}
}

// toFixed2 округляет точное двоичное значение v до двух знаков, половина
// уходит от нуля.
func toFixed2(v float64) decimal.Decimal {
	// 1074 знака хватает на точную запись любого float64
	exact := decimal.RequireFromString(strconv.FormatFloat(v, 'f', 1074, 64))

	return exact.Round(2)
}
