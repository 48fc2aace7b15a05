package entity

import "github.com/shopspring/decimal"

// NormalizedPrice цена за каноническую единицу: рубли и копейки.
type NormalizedPrice struct {
	Major int64           `json:"major"`
	Minor decimal.Decimal `json:"minor"`
}

// Amount собирает цену обратно в одно число.
func (p NormalizedPrice) Amount() decimal.Decimal {
	return decimal.NewFromInt(p.Major).Add(p.Minor.Div(decimal.NewFromInt(100)))
}
