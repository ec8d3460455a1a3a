package textrules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kislikjeka/bookstore/internal/platform/textrules"
)

func TestNormalizeSpaces(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"  Juan   Pérez ", "Juan Pérez"},
		{"a\t\tb\nc", "a b c"},
		{"already clean", "already clean"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := textrules.NormalizeSpaces(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, textrules.NormalizeSpaces(got), "must be idempotent")
		})
	}
}

func TestPredicates_RejectBlank(t *testing.T) {
	for _, s := range []string{"", "   ", "\t"} {
		assert.False(t, textrules.IsLettersAndSpaces(s))
		assert.False(t, textrules.IsDigitsOnly(s))
		assert.False(t, textrules.IsLettersOnly(s))
		assert.False(t, textrules.MinLen(s, 0))
		assert.False(t, textrules.LenEquals(s, 0))
		assert.True(t, textrules.MaxLen(s, 10), "MaxLen accepts blank input")
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, textrules.IsLettersAndSpaces(" Ñandú  Güemes "))
	assert.False(t, textrules.IsLettersAndSpaces("Juan2"))
	assert.True(t, textrules.IsLettersSpacesApostrophe("D'Angelo"))
	assert.False(t, textrules.IsLettersAndSpaces("D'Angelo"))
	assert.True(t, textrules.IsDigitsOnly("0123"))
	assert.False(t, textrules.IsDigitsOnly("12 34"))
	assert.True(t, textrules.IsAlphanumeric("A4"))
	assert.True(t, textrules.MinLen("  ab  ", 2))
	assert.False(t, textrules.MaxLen("abcdef", 5))
	assert.True(t, textrules.LenEquals("ñandú", 5))
	assert.True(t, textrules.HasOnlyChars("Av. 6/8", "./"))
	assert.False(t, textrules.HasOnlyChars("Av. #8", "./"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, textrules.IsValidPhone("12345678"))
	assert.True(t, textrules.IsValidPhone(" 71234567 "))
	assert.False(t, textrules.IsValidPhone("1234567"))
	assert.False(t, textrules.IsValidPhone("123456789"))
	assert.False(t, textrules.IsValidPhone("1234567a"))
	assert.False(t, textrules.IsValidPhone(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, textrules.IsValidEmail("ana@libreria.bo", 100))
	assert.True(t, textrules.IsValidEmail("  ana.perez+promo@correo.com ", 100))
	assert.False(t, textrules.IsValidEmail("ana@", 100))
	assert.False(t, textrules.IsValidEmail("no-at-sign.com", 100))
	assert.False(t, textrules.IsValidEmail("", 100))
	assert.False(t, textrules.IsValidEmail("ana@libreria.bo", 10))
}
