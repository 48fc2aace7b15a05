package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Расчёт цены за единицу
	InvalidCost     failure.ErrorCode = "InvalidCost"     // Цена пустая или не число
	InvalidQuantity failure.ErrorCode = "InvalidQuantity" // Количество или кратность <= 0
)
