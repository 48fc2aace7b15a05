package unitPrice

import (
	"fmt"
	"strconv"
	"strings"

	"unit_price/internal/domain/entity"
	"unit_price/internal/domain/service/priceNormalizer"
	"unit_price/internal/domain/value"
)

const currencySign = "₽"

// Render форматирует цену как "71,43 ₽/л". Копейки не выводятся, если их нет.
// В режиме RoundingLegacy копейки печатаются без дополнения нулём ("71,5"),
// как это делала страница каталога.
func Render(price entity.NormalizedPrice, unit value.Unit, rounding priceNormalizer.Rounding) string {
	var b strings.Builder

	b.WriteString(strconv.FormatInt(price.Major, 10))

	if !price.Minor.IsZero() {
		b.WriteByte(',')

		if rounding == priceNormalizer.RoundingLegacy {
			b.WriteString(price.Minor.String())
		} else {
			fmt.Fprintf(&b, "%02d", price.Minor.IntPart())
		}
	}

	b.WriteString(" " + currencySign + "/")
	b.WriteString(unit.String())

	return b.String()
}
