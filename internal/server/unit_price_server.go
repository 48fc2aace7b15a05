package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"unit_price/internal/domain"
	"unit_price/internal/domain/entity"
	"unit_price/internal/domain/value"
	"unit_price/pkg/httpx/reply"
	"unit_price/pkg/httpx/req"
	"unit_price/pkg/rest"
)

type unitPriceService interface {
	Calculate(ctx context.Context, title, cost string) (entity.UnitPrice, error)
	CalculateCards(ctx context.Context, cards []entity.ProductCard) ([]entity.CardPrice, []string)
}

type unitCatalog interface {
	Units() []value.Unit
	Resolve(unit value.Unit) entity.ConversionRule
	DefaultRule() entity.ConversionRule
}

type UnitPriceServer struct {
	unitPriceService unitPriceService
	unitCatalog      unitCatalog
}

func NewUnitPriceServer(unitPriceService unitPriceService, unitCatalog unitCatalog) UnitPriceServer {
	return UnitPriceServer{
		unitPriceService: unitPriceService,
		unitCatalog:      unitCatalog,
	}
}

func (s UnitPriceServer) postV1UnitPrice(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.UnitPriceRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	price, err := s.unitPriceService.Calculate(ctx, request.Title, request.Cost)
	if err != nil {
		return toFailure(fmt.Errorf("unitPriceService.Calculate: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTUnitPrice(price))

	return nil
}

func (s UnitPriceServer) postV1UnitPriceBatch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.BatchRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	prices, skipped := s.unitPriceService.CalculateCards(ctx, newDomainProductCards(request.Cards))

	reply.JSON(ctx, w, http.StatusOK, rest.BatchResponse{
		Items:   newRESTCardPrices(prices),
		Skipped: skipped,
	})

	return nil
}

func (s UnitPriceServer) getV1Units(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, newRESTUnits(s.unitCatalog))

	return nil
}

// toFailure переводит доменные ошибки в ошибки неверного аргумента,
// остальные оставляет как есть (ответ 500).
func toFailure(err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(appErr.Code),
		failure.WithDescription(appErr.Message),
	)
}
