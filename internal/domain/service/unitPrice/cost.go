package unitPrice

import (
	"strings"

	"github.com/shopspring/decimal"

	"unit_price/internal/domain"
)

// ParseCost разбирает цену партии из атрибута карточки ("89.90", "89,90").
func ParseCost(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, domain.ErrMissingCost
	}

	cost, err := decimal.NewFromString(strings.Replace(s, ",", ".", 1))
	if err != nil {
		return decimal.Zero, domain.ErrInvalidCost.Wrap(err)
	}

	if cost.IsNegative() {
		return decimal.Zero, domain.ErrNegativeCost
	}

	return cost, nil
}
