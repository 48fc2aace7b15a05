package titleParser

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/samber/lo"

	"unit_price/internal/domain/value"
)

const (
	groupLeading  = "mul1"
	groupQuantity = "quantity"
	groupUnit     = "unit"
	groupTrailing = "mul2"

	// тот же набор, что isSpace
	spaceClass = `[\t\n\v\f\r \u00a0\u1680\u2000-\u200a\u2028\u2029\u202f\u205f\u3000\ufeff]`
)

// RegexpMatcher разбирает название одним выражением с возвратами.
// Результат совпадает с GrammarMatcher для той же Grammar.
type RegexpMatcher struct {
	re *regexp2.Regexp
}

func NewRegexpMatcher(grammar Grammar) (RegexpMatcher, error) {
	re, err := regexp2.Compile(grammar.Pattern(), regexp2.None)
	if err != nil {
		return RegexpMatcher{}, fmt.Errorf("regexp2.Compile: %w", err)
	}

	return RegexpMatcher{re: re}, nil
}

// Pattern строит выражение, эквивалентное грамматике.
func (g Grammar) Pattern() string {
	markers := strings.Join(lo.Map(g.Markers, func(m string, _ int) string {
		return regexp2.Escape(m)
	}), "|")

	units := strings.Join(lo.Map(g.Units, func(u value.Unit, _ int) string {
		return regexp2.Escape(string(u))
	}), "|")

	return `((?<` + groupLeading + `>[0-9]+)(?:` + markers + `)\*)?` +
		`(?<` + groupQuantity + `>[0-9]+(?:[.,][0-9]+)?)` + spaceClass + `*` +
		`(?<` + groupUnit + `>` + units + `)` +
		`(\*(?<` + groupTrailing + `>[0-9]+)(?:` + markers + `))?` +
		`(?:` + spaceClass + `|$)`
}

func (r RegexpMatcher) Match(title string) (Match, bool) {
	m, err := r.re.FindStringMatch(title)
	if err != nil || m == nil {
		return Match{}, false
	}

	return Match{
		Quantity:           groupText(m, groupQuantity),
		Unit:               value.Unit(groupText(m, groupUnit)),
		LeadingMultiplier:  groupText(m, groupLeading),
		TrailingMultiplier: groupText(m, groupTrailing),
	}, true
}

func groupText(m *regexp2.Match, name string) string {
	g := m.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}

	return g.String()
}
