package handler

import (
	"context"

	"unit_price/internal/domain/entity"
	"unit_price/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type unitPriceService interface {
	Calculate(ctx context.Context, title, cost string) (entity.UnitPrice, error)
}

type Handler struct {
	svc unitPriceService
}

func New(svc unitPriceService) *Handler {
	return &Handler{
		svc: svc,
	}
}
