package textrules

import (
	"fmt"
	"strings"
)

const (
	// MinMainWordLetters is the letter count a word needs to count as the
	// main word of a product name or description.
	MinMainWordLetters = 3
	// MinLooseWordLetters is the letter count used by the loose description
	// rules.
	MinLooseWordLetters = 2
)

// Messages shared by the token scanners.
const (
	MsgRequired         = "Este campo es obligatorio"
	msgShortWord        = "La palabra '%s' debe tener mínimo 3 letras"
	msgBadToken         = "La palabra '%s' solo puede contener letras, números y puntos y no otros caracteres"
	msgBadDescToken     = "La palabra '%s' solo puede contener letras, números, puntos y comas y no otros caracteres"
	msgNoMainWord       = "Debe contener al menos una palabra de %d letras o más"
	msgStrayPunctuation = "Los signos de puntuación deben ir unidos a una palabra"
)

// GetProductNameErrors scans a product name token by token and returns every
// rule it breaks. An empty result means the name is valid.
//
// Connectors, units and numbers are skipped. Words of three or more letters
// and letter/digit mixes such as "A4" count as main words; shorter letter
// words are reported. At least one main word is required.
func GetProductNameErrors(s string) []string {
	n := NormalizeSpaces(s)
	if n == "" {
		return []string{MsgRequired}
	}

	var errs []string
	main := false
	for _, w := range tokens(n) {
		switch ClassifyProductToken(w) {
		case TokenConnector, TokenUnit, TokenDigits:
		case TokenLetters:
			if Len(w) >= MinMainWordLetters {
				main = true
			} else {
				errs = append(errs, fmt.Sprintf(msgShortWord, w))
			}
		case TokenAlphaNumeric:
			main = true
		default:
			errs = append(errs, fmt.Sprintf(msgBadToken, w))
		}
	}

	if !main {
		errs = append(errs, fmt.Sprintf(msgNoMainWord, MinMainWordLetters))
	}
	return errs
}

// GetProductDescriptionErrors scans a description. Blank input is accepted
// because descriptions are optional. Sentence punctuation (dots and commas)
// may trail or lead a word. Short letter words are allowed but only words of
// three or more letters or letter/digit mixes count as main words.
func GetProductDescriptionErrors(s string) []string {
	return descriptionErrors(s, MinMainWordLetters)
}

// GetLooseDescriptionErrors is GetProductDescriptionErrors with words of two
// or more letters already counting as a contribution.
func GetLooseDescriptionErrors(s string) []string {
	return descriptionErrors(s, MinLooseWordLetters)
}

func descriptionErrors(s string, minMain int) []string {
	n := NormalizeSpaces(s)
	if n == "" {
		return nil
	}

	var errs []string
	main := false
	stray := false
	for _, w := range tokens(n) {
		core := strings.Trim(w, ".,")
		if core == "" {
			stray = true
			continue
		}
		if strings.Contains(core, ",") {
			errs = append(errs, fmt.Sprintf(msgBadDescToken, w))
			continue
		}
		switch ClassifyProductToken(core) {
		case TokenConnector, TokenUnit, TokenDigits:
		case TokenLetters:
			if Len(core) >= minMain {
				main = true
			}
		case TokenAlphaNumeric:
			main = true
		default:
			errs = append(errs, fmt.Sprintf(msgBadDescToken, w))
		}
	}

	if stray {
		errs = append(errs, msgStrayPunctuation)
	}
	if !main {
		errs = append(errs, fmt.Sprintf(msgNoMainWord, minMain))
	}
	return errs
}
