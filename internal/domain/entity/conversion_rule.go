package entity

import (
	"github.com/shopspring/decimal"

	"unit_price/internal/domain/value"
)

// ConversionRule правило приведения единицы к канонической: г -> кг с множителем 1000 и т.п.
type ConversionRule struct {
	Scale         decimal.Decimal `json:"scale"`
	CanonicalUnit value.Unit      `json:"canonical_unit"`
}
