// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// UnitPriceRequest Название товара и цена партии
type UnitPriceRequest struct {
	// Title Название товара, например "Молоко 3,2% 1,4 л"
	Title string `json:"title" validate:"required"`

	// Cost Цена партии, допускается десятичная запятая
	Cost string `json:"cost" validate:"required"`
}

// UnitPrice Цена за каноническую единицу
type UnitPrice struct {
	Quantity      string `json:"quantity"`
	Unit          string `json:"unit"`
	Multiplier    int    `json:"multiplier"`
	Matched       bool   `json:"matched"`
	CanonicalUnit string `json:"canonicalUnit"`
	Scale         string `json:"scale"`
	Major         int64  `json:"major"`
	Minor         string `json:"minor"`
	Text          string `json:"text"`
}

// ProductCard Карточка товара; пустая цена означает, что товара нет в наличии
type ProductCard struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title"`
	Cost  string `json:"cost"`
}

// BatchRequest Страница каталога
type BatchRequest struct {
	Cards []ProductCard `json:"cards" validate:"required,dive"`
}

// CardPrice Цена за единицу для карточки каталога
type CardPrice struct {
	ID string `json:"id"`
	UnitPrice
}

// BatchResponse Посчитанные карточки и идентификаторы пропущенных
type BatchResponse struct {
	Items   []CardPrice `json:"items"`
	Skipped []string    `json:"skipped"`
}

// Unit Распознаваемая единица и правило её пересчёта
type Unit struct {
	Unit          string `json:"unit"`
	Scale         string `json:"scale"`
	CanonicalUnit string `json:"canonicalUnit"`
}

// UnitsResponse Список распознаваемых единиц
type UnitsResponse struct {
	Units   []Unit `json:"units"`
	Default Unit   `json:"default"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
