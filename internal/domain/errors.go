package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"unit_price/pkg/errcodes"
)

var (
	ErrMissingCost  = NewError(errcodes.InvalidCost, "cost is missing")
	ErrInvalidCost  = NewError(errcodes.InvalidCost, "cost is not a number")
	ErrNegativeCost = NewError(errcodes.InvalidCost, "cost is negative")
	ErrBadQuantity  = NewError(errcodes.InvalidQuantity, "quantity must be positive")
)

// AppError доменная ошибка с кодом, который транспорт отдаёт клиенту.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is сравнивает ошибки по коду и сообщению, чтобы обёрнутые копии
// сентинелов находились через errors.Is.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap прикрепляет причину к доменной ошибке, сохраняя её код.
func (e *AppError) Wrap(cause error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		cause:   cause,
	}
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
