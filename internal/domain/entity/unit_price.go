package entity

import "github.com/shopspring/decimal"

// UnitPrice результат расчёта цены за единицу для одного товара.
type UnitPrice struct {
	Title  string
	Cost   decimal.Decimal
	Parsed ParsedQuantity
	Rule   ConversionRule
	Price  NormalizedPrice
	Text   string // например "71,43 ₽/л"
}

// CardPrice цена за единицу, привязанная к карточке каталога.
type CardPrice struct {
	CardID string
	UnitPrice
}
