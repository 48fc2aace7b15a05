package tests

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Decimal случайное число из [from, to), округлённое до places знаков.
func (r Randomizer) Decimal(from, to float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(from + r.Float64()*(to-from)).Round(places)
}
