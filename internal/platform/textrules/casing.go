package textrules

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep per-call state, so a new one is built for every conversion.

func lower(s string) string {
	return cases.Lower(language.Spanish).String(s)
}

func title(s string) string {
	return cases.Title(language.Spanish).String(s)
}

// CanonicalTitle lowercases s and capitalizes the first letter of every word
// using Spanish casing rules.
func CanonicalTitle(s string) string {
	return title(NormalizeSpaces(s))
}

// CanonicalBusinessName title-cases s and then restores known legal-entity
// suffixes (SRL, S.A., LTDA, EIRL, ...) to upper case.
func CanonicalBusinessName(s string) string {
	words := tokens(CanonicalTitle(s))
	for i, w := range words {
		if IsLegalSuffix(w) {
			words[i] = cases.Upper(language.Spanish).String(w)
		}
	}
	return strings.Join(words, " ")
}

// CanonicalSentence lowercases s and capitalizes the first letter of every
// sentence. A period directly followed by a non-space rune gets exactly one
// space inserted after it, unless it sits between two digits.
func CanonicalSentence(s string) string {
	rs := []rune(lower(NormalizeSpaces(s)))
	var b strings.Builder
	b.Grow(len(rs) + 8)

	capitalize := true
	for i, r := range rs {
		switch {
		case IsLetter(r):
			if capitalize {
				r = unicode.ToUpper(r)
				capitalize = false
			}
		case r == '.' || r == '!' || r == '?':
			capitalize = true
		case r != ' ':
			capitalize = false
		}
		b.WriteRune(r)

		if r == '.' && i+1 < len(rs) && rs[i+1] != ' ' {
			decimal := i > 0 && IsDigit(rs[i-1]) && IsDigit(rs[i+1])
			if !decimal {
				b.WriteRune(' ')
			}
		}
	}
	return b.String()
}

// CanonicalProductName lowercases s and capitalizes only the words made of
// four or more letters. Units, numbers, connectors and short words stay
// lower case.
func CanonicalProductName(s string) string {
	words := tokens(lower(NormalizeSpaces(s)))
	for i, w := range words {
		if IsLettersOnly(w) && Len(w) >= 4 {
			words[i] = title(w)
		}
	}
	return strings.Join(words, " ")
}

// CanonicalEmail trims and lowercases an address.
func CanonicalEmail(s string) string {
	return strings.ToLower(NormalizeSpaces(s))
}
