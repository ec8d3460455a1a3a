// Package textrules implements the text classification and normalization
// primitives shared by the entity validators.
//
// Every predicate works on the normalized form of its input (trimmed, with
// runs of whitespace collapsed to one space) and rejects blank input unless
// its documentation says otherwise. Letters are the Spanish alphabet: ASCII
// letters plus accented vowels, ü and ñ.
package textrules

import (
	"strings"
	"unicode/utf8"
)

const spanishLetters = "áéíóúÁÉÍÓÚüÜñÑ"

// NormalizeSpaces trims s and collapses every run of whitespace to a single
// space. It is idempotent.
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return NormalizeSpaces(s) == ""
}

// IsLetter reports whether r belongs to the Spanish alphabet.
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || strings.ContainsRune(spanishLetters, r)
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsLettersAndSpaces reports whether s holds only letters and spaces.
func IsLettersAndSpaces(s string) bool {
	return onlyRunes(NormalizeSpaces(s), func(r rune) bool {
		return IsLetter(r) || r == ' '
	})
}

// IsLettersSpacesApostrophe reports whether s holds only letters, spaces and
// apostrophes.
func IsLettersSpacesApostrophe(s string) bool {
	return onlyRunes(NormalizeSpaces(s), func(r rune) bool {
		return IsLetter(r) || r == ' ' || r == '\''
	})
}

// IsDigitsOnly reports whether s holds only ASCII digits.
func IsDigitsOnly(s string) bool {
	return onlyRunes(NormalizeSpaces(s), IsDigit)
}

// IsLettersOnly reports whether s is a single run of letters.
func IsLettersOnly(s string) bool {
	return onlyRunes(NormalizeSpaces(s), IsLetter)
}

// IsAlphanumeric reports whether s holds only letters and digits.
func IsAlphanumeric(s string) bool {
	return onlyRunes(NormalizeSpaces(s), func(r rune) bool {
		return IsLetter(r) || IsDigit(r)
	})
}

// HasOnlyChars reports whether s holds only letters, digits, spaces and the
// runes listed in extra.
func HasOnlyChars(s, extra string) bool {
	return onlyRunes(NormalizeSpaces(s), func(r rune) bool {
		return IsLetter(r) || IsDigit(r) || r == ' ' || strings.ContainsRune(extra, r)
	})
}

// Len is the rune length of the normalized form of s.
func Len(s string) int {
	return utf8.RuneCountInString(NormalizeSpaces(s))
}

// MinLen reports whether the normalized s has at least n runes.
func MinLen(s string, n int) bool {
	return !IsBlank(s) && Len(s) >= n
}

// MaxLen reports whether the normalized s has at most n runes.
// Blank input is accepted so optional fields can share the check.
func MaxLen(s string, n int) bool {
	return Len(s) <= n
}

// LenEquals reports whether the normalized s has exactly n runes.
func LenEquals(s string, n int) bool {
	return !IsBlank(s) && Len(s) == n
}

// IsValidPhone reports whether s is exactly eight digits.
func IsValidPhone(s string) bool {
	return IsDigitsOnly(s) && LenEquals(s, PhoneLength)
}

// PhoneLength is the number of digits of a local phone number.
const PhoneLength = 8

func onlyRunes(s string, ok func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !ok(r) {
			return false
		}
	}
	return true
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if IsLetter(r) {
			n++
		}
	}
	return n
}

func tokens(s string) []string {
	return strings.Fields(s)
}
