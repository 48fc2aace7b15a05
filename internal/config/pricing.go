package config

import (
	"fmt"

	"unit_price/internal/domain/service/priceNormalizer"
)

const (
	MatcherGrammar = "grammar"
	MatcherRegexp  = "regexp"
)

type Pricing struct {
	Rounding string `env:"PRICING_ROUNDING" envDefault:"exact"`
	Matcher  string `env:"PRICING_MATCHER" envDefault:"grammar"`
}

func (p Pricing) validate() error {
	if _, err := priceNormalizer.ParseRounding(p.Rounding); err != nil {
		return fmt.Errorf("priceNormalizer.ParseRounding: %w", err)
	}

	switch p.Matcher {
	case MatcherGrammar, MatcherRegexp:
		return nil
	default:
		return fmt.Errorf("unknown matcher %q", p.Matcher)
	}
}
