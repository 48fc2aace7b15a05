// Package titleParser извлекает количество, единицу и кратность из названия товара.
package titleParser

import (
	"errors"
	"math"
	"strconv"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"unit_price/internal/domain/entity"
)

type Parser struct {
	matcher Matcher
}

func NewParser(matcher Matcher) Parser {
	return Parser{matcher: matcher}
}

// Parse никогда не возвращает ошибку: если в названии нет количества
// с единицей, возвращается 1 шт.
//
// Кратность берётся как max(1, до количества, после количества);
// если указаны обе, они не перемножаются.
func (p Parser) Parse(title string) entity.ParsedQuantity {
	m, ok := p.matcher.Match(title)
	if !ok {
		return entity.DefaultParsedQuantity()
	}

	quantity, err := decimal.NewFromString(normalizeDecimal(m.Quantity))
	if err != nil {
		return entity.DefaultParsedQuantity()
	}

	return entity.ParsedQuantity{
		Quantity:   quantity,
		Unit:       m.Unit,
		Multiplier: lo.Max([]int{1, multiplier(m.LeadingMultiplier), multiplier(m.TrailingMultiplier)}),
		Matched:    true,
	}
}

// multiplier возвращает 0 для пустой кратности; слишком большая
// упирается в math.MaxInt.
func multiplier(s string) int {
	if s == "" {
		return 0
	}

	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}

	if err != nil {
		return 0
	}

	return n
}
