package textrules

import (
	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use.
var validate = validator.New()

// IsValidEmail reports whether s is a parseable mailbox address of at most
// maxLen runes. Surrounding whitespace is ignored.
func IsValidEmail(s string, maxLen int) bool {
	n := NormalizeSpaces(s)
	if n == "" || !MaxLen(n, maxLen) {
		return false
	}
	return validate.Var(n, "required,email") == nil
}
