package unitTable_test

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"unit_price/internal/domain/entity"
	"unit_price/internal/domain/service/unitTable"
	"unit_price/internal/domain/value"
)

func TestTableResolve(t *testing.T) {
	rq := require.New(t)

	table := unitTable.Default()

	testCases := []struct {
		name      string
		unit      value.Unit
		scale     int64
		canonical value.Unit
	}{
		{name: "Milligram", unit: "мг", scale: 1000, canonical: "г"},
		{name: "Gram", unit: "г", scale: 1000, canonical: "кг"},
		{name: "Kilogram", unit: "кг", scale: 1, canonical: "кг"},
		{name: "Piece", unit: "шт", scale: 1, canonical: "шт"},
		{name: "Milliliter", unit: "мл", scale: 1000, canonical: "л"},
		{name: "Liter", unit: "л", scale: 1, canonical: "л"},
		{name: "Roll", unit: "рулон", scale: 1, canonical: "рулон"},
		{name: "Roll genitive singular", unit: "рулона", scale: 1, canonical: "рулон"},
		{name: "Roll genitive plural", unit: "рулонов", scale: 1, canonical: "рулон"},
		{name: "Pair genitive plural", unit: "пар", scale: 1, canonical: "пара"},
		{name: "Pair", unit: "пара", scale: 1, canonical: "пара"},
		{name: "Pairs", unit: "пары", scale: 1, canonical: "пара"},
		{name: "Unknown unit", unit: "упаковка", scale: 1, canonical: "шт"},
		{name: "Case sensitive", unit: "КГ", scale: 1, canonical: "шт"},
		{name: "Empty unit", unit: "", scale: 1, canonical: "шт"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rule := table.Resolve(tc.unit)

			rq.True(decimal.NewFromInt(tc.scale).Equal(rule.Scale), "scale %s", rule.Scale)
			rq.Equal(tc.canonical, rule.CanonicalUnit)
		})
	}
}

func TestTableLookup(t *testing.T) {
	rq := require.New(t)

	table := unitTable.Default()

	_, ok := table.Lookup("кг")
	rq.True(ok)

	rule, ok := table.Lookup("ящик")
	rq.False(ok)
	rq.Equal(table.DefaultRule(), rule)
}

func TestTableUnits(t *testing.T) {
	rq := require.New(t)

	units := unitTable.Default().Units()

	rq.Len(units, 12)
	rq.True(slices.IsSorted(units))
	rq.Contains(units, value.Unit("рулонов"))
}

func TestTableIsolatedFromSource(t *testing.T) {
	rq := require.New(t)

	source := map[value.Unit]entity.ConversionRule{
		"lb": {Scale: decimal.NewFromInt(1), CanonicalUnit: "lb"},
	}
	defaultRule := entity.ConversionRule{Scale: decimal.NewFromInt(1), CanonicalUnit: "pcs"}

	table := unitTable.New(source, defaultRule)
	delete(source, "lb")

	rq.Equal(value.Unit("lb"), table.Resolve("lb").CanonicalUnit)
	rq.Equal(value.Unit("pcs"), table.Resolve("oz").CanonicalUnit)
}
