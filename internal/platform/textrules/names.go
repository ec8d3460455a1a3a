package textrules

import (
	"fmt"
	"strings"
)

const (
	msgNameChars     = "Solo puede contener letras, espacios y apóstrofes"
	msgNameShortWord = "Cada palabra debe tener al menos %d letras ('%s')"
	msgBusinessChars = "La palabra '%s' solo puede contener letras y números separados por &, - o '"
)

// GetPersonNameErrors validates a person name or surname. Every word must
// have at least minWordLetters letters. With allowParticles, connectors such
// as "de", "del" or "la" are accepted at any length and do not count as the
// main word, so compound surnames like "de la Fuente" pass while "de la"
// alone does not.
func GetPersonNameErrors(s string, minWordLetters int, allowParticles bool) []string {
	n := NormalizeSpaces(s)
	if n == "" {
		return []string{MsgRequired}
	}

	var errs []string
	if !IsLettersSpacesApostrophe(n) {
		errs = append(errs, msgNameChars)
	}

	main := false
	for _, w := range tokens(n) {
		if allowParticles && IsConnector(w) {
			continue
		}
		if countLetters(w) < minWordLetters {
			errs = append(errs, fmt.Sprintf(msgNameShortWord, minWordLetters, w))
			continue
		}
		main = true
	}

	if !main {
		errs = append(errs, fmt.Sprintf(msgNoMainWord, minWordLetters))
	}
	return errs
}

// GetBusinessNameErrors validates a company name. Legal suffixes (SRL, SA,
// LTDA, EIRL, CIA) are checked first and skipped, then connectors. Words
// containing &, - or ' are split into segments and each segment must be
// letters or digits only. The remaining words follow the product-name rules.
func GetBusinessNameErrors(s string) []string {
	n := NormalizeSpaces(s)
	if n == "" {
		return []string{MsgRequired}
	}

	var errs []string
	main := false
	for _, w := range tokens(n) {
		if IsLegalSuffix(w) || IsConnector(w) {
			continue
		}

		if strings.ContainsAny(w, "&-'") {
			segments := strings.FieldsFunc(w, func(r rune) bool {
				return r == '&' || r == '-' || r == '\''
			})
			bad := false
			for _, seg := range segments {
				if !IsAlphanumeric(seg) {
					bad = true
					break
				}
				if countLetters(seg) >= MinMainWordLetters || isAlphaNumericMix(seg) {
					main = true
				}
			}
			if bad {
				errs = append(errs, fmt.Sprintf(msgBusinessChars, w))
			}
			continue
		}

		switch {
		case onlyRunes(w, IsDigit):
		case IsLettersOnly(w):
			if Len(w) >= MinMainWordLetters {
				main = true
			} else {
				errs = append(errs, fmt.Sprintf(msgShortWord, w))
			}
		case isAlphaNumericMix(w):
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
