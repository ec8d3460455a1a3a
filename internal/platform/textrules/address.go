package textrules

import (
	"strings"
)

// addressChars are the punctuation runes an address may contain besides
// letters, digits and spaces.
const addressChars = "./"

var numberDesignators = []string{"nro", "no", "n"}

// IsValidCbbaAddress reports whether s follows the local street-address
// grammar. Each token must be one of, in this order:
//
//   - the literal "S/N" (sin número)
//   - a number designator (N, No, Nro, optionally dotted) fused with digits,
//     e.g. "N1759" or "Nro.25"
//   - a bare designator immediately followed by a token of digits; the pair
//     fills a single house-number role, e.g. "No. 1234"
//   - a word of two or more letters, optionally ending in a dot ("Av.")
//   - digits
//
// Any other token invalidates the whole address.
func IsValidCbbaAddress(s string) bool {
	n := NormalizeSpaces(s)
	if n == "" || !HasOnlyChars(n, addressChars) {
		return false
	}

	words := tokens(n)
	for i := 0; i < len(words); i++ {
		w := words[i]

		if strings.EqualFold(w, "S/N") {
			continue
		}

		if digits, ok := splitDesignator(w); ok {
			if digits != "" {
				continue
			}
			if i+1 < len(words) && onlyRunes(words[i+1], IsDigit) {
				i++
				continue
			}
		}

		if isAbbreviableWord(w) || onlyRunes(w, IsDigit) {
			continue
		}
		return false
	}
	return true
}

// splitDesignator reports whether w starts with a number designator and, if
// so, returns the digits attached to it. A designator followed by anything
// other than an optional dot and digits is not a designator.
func splitDesignator(w string) (string, bool) {
	lw := strings.ToLower(w)
	for _, d := range numberDesignators {
		if !strings.HasPrefix(lw, d) {
			continue
		}
		rest := strings.TrimPrefix(w[len(d):], ".")
		if rest == "" || onlyRunes(rest, IsDigit) {
			return rest, true
		}
	}
	return "", false
}

func isAbbreviableWord(w string) bool {
	core := strings.TrimSuffix(w, ".")
	return IsLettersOnly(core) && Len(core) >= 2
}
