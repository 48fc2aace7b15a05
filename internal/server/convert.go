package server

import (
	"unit_price/internal/domain/entity"
	"unit_price/internal/domain/value"
	"unit_price/pkg/lox"
	"unit_price/pkg/rest"
)

func newRESTUnitPrice(price entity.UnitPrice) rest.UnitPrice {
	return rest.UnitPrice{
		Quantity:      price.Parsed.Quantity.String(),
		Unit:          price.Parsed.Unit.String(),
		Multiplier:    price.Parsed.Multiplier,
		Matched:       price.Parsed.Matched,
		CanonicalUnit: price.Rule.CanonicalUnit.String(),
		Scale:         price.Rule.Scale.String(),
		Major:         price.Price.Major,
		Minor:         price.Price.Minor.String(),
		Text:          price.Text,
	}
}

func newRESTCardPrices(prices []entity.CardPrice) []rest.CardPrice {
	return lox.Map(prices, func(price entity.CardPrice) rest.CardPrice {
		return rest.CardPrice{
			ID:        price.CardID,
			UnitPrice: newRESTUnitPrice(price.UnitPrice),
		}
	})
}

func newDomainProductCards(cards []rest.ProductCard) []entity.ProductCard {
	return lox.Map(cards, func(card rest.ProductCard) entity.ProductCard {
		return entity.ProductCard{
			ID:    card.ID,
			Title: card.Title,
			Cost:  card.Cost,
		}
	})
}

func newRESTUnit(unit value.Unit, rule entity.ConversionRule) rest.Unit {
	return rest.Unit{
		Unit:          unit.String(),
		Scale:         rule.Scale.String(),
		CanonicalUnit: rule.CanonicalUnit.String(),
	}
}

func newRESTUnits(catalog unitCatalog) rest.UnitsResponse {
	return rest.UnitsResponse{
		Units: lox.Map(catalog.Units(), func(unit value.Unit) rest.Unit {
			return newRESTUnit(unit, catalog.Resolve(unit))
		}),
		Default: newRESTUnit("", catalog.DefaultRule()),
	}
}
