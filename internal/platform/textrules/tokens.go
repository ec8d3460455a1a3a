package textrules

import (
	"strings"
)

// TokenKind is the class a single word falls into during name and
// description scanning.
type TokenKind int

const (
	TokenInvalid TokenKind = iota
	TokenConnector
	TokenUnit
	TokenDigits
	TokenLetters
	TokenAlphaNumeric
	TokenLegalSuffix
)

func (k TokenKind) String() string {
	switch k {
	case TokenConnector:
		return "connector"
	case TokenUnit:
		return "unit"
	case TokenDigits:
		return "digits"
	case TokenLetters:
		return "letters"
	case TokenAlphaNumeric:
		return "alphanumeric"
	case TokenLegalSuffix:
		return "legal_suffix"
	default:
		return "invalid"
	}
}

var connectors = map[string]struct{}{
	"de": {}, "del": {}, "la": {}, "las": {}, "los": {}, "el": {},
	"y": {}, "e": {}, "en": {}, "para": {}, "con": {}, "san": {}, "santa": {},
}

var units = map[string]struct{}{
	"gr": {}, "g": {}, "kg": {}, "ml": {}, "l": {}, "cm": {}, "mm": {}, "m": {},
}

var legalSuffixes = map[string]struct{}{
	"SRL": {}, "SA": {}, "LTDA": {}, "EIRL": {}, "CIA": {}, "CÍA": {},
}

// IsConnector reports whether w is a grammatical particle (de, del, la, y,
// ...) that never counts toward the main-word requirement.
func IsConnector(w string) bool {
	_, ok := connectors[lower(w)]
	return ok
}

// IsUnit reports whether w is a measurement unit abbreviation, optionally
// followed by a single dot.
func IsUnit(w string) bool {
	_, ok := units[lower(strings.TrimSuffix(w, "."))]
	return ok
}

// IsLegalSuffix reports whether w is a legal-entity suffix such as SRL, S.A.
// or LTDA, regardless of case and dots.
func IsLegalSuffix(w string) bool {
	key := strings.ToUpper(strings.ReplaceAll(w, ".", ""))
	if key == "" {
		return false
	}
	_, ok := legalSuffixes[key]
	return ok
}

// isNumber matches digits with at most one decimal point between digits.
func isNumber(w string) bool {
	intPart, frac, found := strings.Cut(w, ".")
	if !found {
		return onlyRunes(w, IsDigit)
	}
	return onlyRunes(intPart, IsDigit) && onlyRunes(frac, IsDigit)
}

// isAlphaNumericMix matches a word holding both letters and digits, with
// dots allowed only between them.
func isAlphaNumericMix(w string) bool {
	if w == "" || strings.HasPrefix(w, ".") || strings.HasSuffix(w, ".") || strings.Contains(w, "..") {
		return false
	}
	var letters, digits bool
	for _, r := range w {
		switch {
		case IsLetter(r):
			letters = true
		case IsDigit(r):
			digits = true
		case r == '.':
		default:
			return false
		}
	}
	return letters && digits
}

// ClassifyProductToken assigns w to a class using a fixed check order:
// connector, unit, digits, letters, alphanumeric mix. Anything else is
// invalid.
func ClassifyProductToken(w string) TokenKind {
	switch {
	case IsConnector(w):
		return TokenConnector
	case IsUnit(w):
		return TokenUnit
	case isNumber(w):
		return TokenDigits
	case IsLettersOnly(w):
		return TokenLetters
	case isAlphaNumericMix(w):
		return TokenAlphaNumeric
	default:
		return TokenInvalid
	}
}
