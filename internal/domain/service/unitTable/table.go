// Package unitTable сопоставляет единицы из названий каноническим единицам цены.
package unitTable

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"

	"unit_price/internal/domain/entity"
	"unit_price/internal/domain/value"
)

// Table неизменяемая таблица пересчёта. Поиск точный, с учётом регистра;
// для неизвестной единицы возвращается правило по умолчанию.
type Table struct {
	rules       map[value.Unit]entity.ConversionRule
	defaultRule entity.ConversionRule
}

func New(rules map[value.Unit]entity.ConversionRule, defaultRule entity.ConversionRule) Table {
	return Table{
		rules:       maps.Clone(rules),
		defaultRule: defaultRule,
	}
}

// Default таблица для русскоязычного каталога.
func Default() Table {
	thousand := decimal.NewFromInt(1000)
	one := decimal.NewFromInt(1)

	rule := func(scale decimal.Decimal, unit value.Unit) entity.ConversionRule {
		return entity.ConversionRule{Scale: scale, CanonicalUnit: unit}
	}

	return New(map[value.Unit]entity.ConversionRule{
		value.UnitMilligram:  rule(thousand, value.UnitGram),
		value.UnitGram:       rule(thousand, value.UnitKilogram),
		value.UnitKilogram:   rule(one, value.UnitKilogram),
		value.UnitPiece:      rule(one, value.UnitPiece),
		value.UnitMilliliter: rule(thousand, value.UnitLiter),
		value.UnitLiter:      rule(one, value.UnitLiter),
		value.UnitRoll:       rule(one, value.UnitRoll),
		"рулона":             rule(one, value.UnitRoll),
		"рулонов":            rule(one, value.UnitRoll),
		"пар":                rule(one, value.UnitPair),
		value.UnitPair:       rule(one, value.UnitPair),
		"пары":               rule(one, value.UnitPair),
	}, rule(one, value.UnitPiece))
}

func (t Table) Resolve(unit value.Unit) entity.ConversionRule {
	if rule, ok := t.rules[unit]; ok {
		return rule
	}

	return t.defaultRule
}

// Lookup как Resolve, но сообщает, нашлась ли единица в таблице.
func (t Table) Lookup(unit value.Unit) (entity.ConversionRule, bool) {
	rule, ok := t.rules[unit]
	if !ok {
		return t.defaultRule, false
	}

	return rule, true
}

// Units возвращает известные единицы в отсортированном виде.
func (t Table) Units() []value.Unit {
	return slices.Sorted(maps.Keys(t.rules))
}

func (t Table) DefaultRule() entity.ConversionRule {
	return t.defaultRule
}
