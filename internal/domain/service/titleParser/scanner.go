package titleParser

import (
	"strings"
	"unicode"
)

// scanner даёт примитивы разбора над рунами названия. Все методы принимают
// позицию и возвращают позицию после разобранного токена, не меняя состояния,
// поэтому грамматика может свободно откатываться назад.
type scanner struct {
	src []rune
}

func newScanner(s string) scanner {
	return scanner{src: []rune(s)}
}

func (s scanner) len() int {
	return len(s.src)
}

// digits разбирает непустую последовательность ASCII-цифр.
func (s scanner) digits(pos int) (int, bool) {
	end := pos
	for end < len(s.src) && isDigit(s.src[end]) {
		end++
	}
	return end, end > pos
}

// number разбирает целое или десятичное число с разделителем '.' или ','.
// Разделитель без цифр после него в число не входит.
func (s scanner) number(pos int) (int, bool) {
	end, ok := s.digits(pos)
	if !ok {
		return pos, false
	}

	if end < len(s.src) && isDecimalSeparator(s.src[end]) {
		if fracEnd, ok := s.digits(end + 1); ok {
			return fracEnd, true
		}
	}

	return end, true
}

// spaces пропускает пробельные символы, в том числе неразрывные.
func (s scanner) spaces(pos int) int {
	for pos < len(s.src) && isSpace(s.src[pos]) {
		pos++
	}
	return pos
}

// literal разбирает точное (с учётом регистра) вхождение tok.
func (s scanner) literal(pos int, tok string) (int, bool) {
	end := pos
	for _, r := range tok {
		if end >= len(s.src) || s.src[end] != r {
			return pos, false
		}
		end++
	}
	return end, true
}

// boundary сообщает, что в pos конец строки или пробельный символ.
func (s scanner) boundary(pos int) bool {
	return pos == len(s.src) || (pos < len(s.src) && isSpace(s.src[pos]))
}

func (s scanner) text(from, to int) string {
	return string(s.src[from:to])
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDecimalSeparator(r rune) bool {
	return r == '.' || r == ','
}

func normalizeDecimal(s string) string {
	return strings.Replace(s, ",", ".", 1)
}

// isSpace тот же набор, что \s в ECMAScript: unicode.IsSpace плюс U+FEFF,
// но без U+0085.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	default:
		return unicode.IsSpace(r)
	}
}
