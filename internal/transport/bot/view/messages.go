package view

import (
	"fmt"
	"html"
	"strings"

	"unit_price/internal/domain/entity"
)

const StartMessage = `👋 <b>Цена за единицу</b>

Пришлите цену и название товара, а я посчитаю цену за килограмм, литр, штуку, рулон или пару.

Пример:
<code>/price 89,90 Молоко пастеризованное 2.5% 1.4л</code>`

const (
	PriceUsage        = "❌ Использование: /price <code>цена</code> <code>название</code>"
	PriceInvalidCost  = "❌ Цена должна быть неотрицательным числом, например 89,90"
	PriceBadQuantity  = "❌ В названии указано нулевое количество"
	PriceInternalFail = "⚠️ Не удалось посчитать цену, попробуйте позже"
)

// PriceMessage ответ на /price.
func PriceMessage(price entity.UnitPrice) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🏷 <b>%s</b>\n\n", html.EscapeString(price.Text)))
	sb.WriteString(fmt.Sprintf("📦 %s\n", html.EscapeString(price.Title)))

	if price.Parsed.Matched {
		sb.WriteString(fmt.Sprintf("⚖️ %s %s", price.Parsed.Quantity.String(), price.Parsed.Unit))

		if price.Parsed.Multiplier > 1 {
			sb.WriteString(fmt.Sprintf(" × %d", price.Parsed.Multiplier))
		}

		sb.WriteString("\n")
	} else {
		sb.WriteString("⚖️ количество не найдено, считаю за 1 шт\n")
	}

	sb.WriteString(fmt.Sprintf("💰 %s ₽ за упаковку", price.Cost.String()))

	return sb.String()
}
