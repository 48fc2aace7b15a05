package titleParser

import (
	"unit_price/internal/domain/value"
)

// Grammar словарь разбора:
//
//	match    := [leading] quantity spaces unit [trailing] boundary
//	leading  := digits marker "*"
//	trailing := "*" digits marker
//	quantity := digits [("." | ",") digits]
//
// Порядок Units важен: при совпадении нескольких вариантов в одной позиции
// выигрывает первый, после которого разбор доходит до границы.
type Grammar struct {
	Units   []value.Unit
	Markers []string
}

// DefaultGrammar словарь для русскоязычных названий: вес, объём, штуки,
// рулоны и пары во всех встречающихся падежных формах.
func DefaultGrammar() Grammar {
	return Grammar{
		Units: []value.Unit{
			value.UnitPiece,
			value.UnitMilligram,
			value.UnitGram,
			value.UnitKilogram,
			value.UnitMilliliter,
			value.UnitLiter,
			"рулонов",
			"рулона",
			value.UnitRoll,
			"пары",
			value.UnitPair,
			"пар",
		},
		Markers: []string{"пак", "уп", "шт"},
	}
}

// Match сырые токены одного совпадения грамматики.
type Match struct {
	Quantity           string
	Unit               value.Unit
	LeadingMultiplier  string
	TrailingMultiplier string
}

// Matcher находит первое совпадение грамматики в названии.
type Matcher interface {
	Match(title string) (Match, bool)
}

// GrammarMatcher разбирает название пошагово по Grammar.
type GrammarMatcher struct {
	grammar Grammar
}

func NewGrammarMatcher(grammar Grammar) GrammarMatcher {
	return GrammarMatcher{grammar: grammar}
}

// Match пробует начало совпадения в каждой позиции слева направо.
// Левой границы у совпадения нет: "абв2шт" тоже подходит.
func (g GrammarMatcher) Match(title string) (Match, bool) {
	s := newScanner(title)

	for start := 0; start < s.len(); start++ {
		if m, ok := g.matchAt(s, start); ok {
			return m, true
		}
	}

	return Match{}, false
}

func (g GrammarMatcher) matchAt(s scanner, pos int) (Match, bool) {
	if end, mul, ok := g.leading(s, pos); ok {
		if m, ok := g.matchQuantity(s, end); ok {
			m.LeadingMultiplier = mul
			return m, true
		}
	}

	return g.matchQuantity(s, pos)
}

func (g GrammarMatcher) matchQuantity(s scanner, pos int) (Match, bool) {
	qEnd, ok := s.number(pos)
	if !ok {
		return Match{}, false
	}

	unitPos := s.spaces(qEnd)

	for _, unit := range g.grammar.Units {
		uEnd, ok := s.literal(unitPos, string(unit))
		if !ok {
			continue
		}

		m := Match{
			Quantity: s.text(pos, qEnd),
			Unit:     unit,
		}

		if mul, ok := g.trailing(s, uEnd); ok {
			m.TrailingMultiplier = mul
			return m, true
		}

		if s.boundary(uEnd) {
			return m, true
		}
	}

	return Match{}, false
}

// leading разбирает "2шт*" перед количеством.
func (g GrammarMatcher) leading(s scanner, pos int) (int, string, bool) {
	dEnd, ok := s.digits(pos)
	if !ok {
		return pos, "", false
	}

	for _, marker := range g.grammar.Markers {
		mEnd, ok := s.literal(dEnd, marker)
		if !ok {
			continue
		}

		if end, ok := s.literal(mEnd, "*"); ok {
			return end, s.text(pos, dEnd), true
		}
	}

	return pos, "", false
}

// trailing разбирает "*2шт" после единицы, включая границу за маркером.
func (g GrammarMatcher) trailing(s scanner, pos int) (string, bool) {
	starEnd, ok := s.literal(pos, "*")
	if !ok {
		return "", false
	}

	dEnd, ok := s.digits(starEnd)
	if !ok {
		return "", false
	}

	for _, marker := range g.grammar.Markers {
		if mEnd, ok := s.literal(dEnd, marker); ok && s.boundary(mEnd) {
			return s.text(starEnd, dEnd), true
		}
	}

	return "", false
}
