package entity

import (
	"github.com/shopspring/decimal"

	"unit_price/internal/domain/value"
)

// ParsedQuantity количество, единица и кратность, извлечённые из названия товара.
type ParsedQuantity struct {
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       value.Unit      `json:"unit"`
	Multiplier int             `json:"multiplier"` // всегда >= 1
	Matched    bool            `json:"matched"`    // false, если сработал разбор по умолчанию
}

// DefaultParsedQuantity используется, когда в названии нет количества с единицей.
func DefaultParsedQuantity() ParsedQuantity {
	return ParsedQuantity{
		Quantity:   decimal.NewFromInt(1),
		Unit:       value.UnitPiece,
		Multiplier: 1,
	}
}
