// Package validation holds the field-level error list produced by entity
// validators and the Result type services return instead of raising.
package validation

import (
	"strings"
)

// FieldError is a single violated rule bound to an entity field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Errors is the ordered list of every rule an entity violated.
// A nil or empty list means the entity is valid.
type Errors []FieldError

// Add appends a violation for field.
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// AddAll appends one violation per message, all bound to field.
func (e *Errors) AddAll(field string, messages []string) {
	for _, m := range messages {
		e.Add(field, m)
	}
}

// HasErrors reports whether at least one rule was violated.
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// For returns the messages recorded for field, in order.
func (e Errors) For(field string) []string {
	var out []string
	for _, fe := range e {
		if fe.Field == field {
			out = append(out, fe.Message)
		}
	}
	return out
}

// Has reports whether field has at least one violation.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// ByField groups messages by field name.
func (e Errors) ByField() map[string][]string {
	out := make(map[string][]string, len(e))
	for _, fe := range e {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// Error implements error so the list can be logged or wrapped when a caller
// chooses to treat it as a failure.
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Clone returns an independent copy of the list.
func (e Errors) Clone() Errors {
	if e == nil {
		return nil
	}
	out := make(Errors, len(e))
	copy(out, e)
	return out
}

// Result carries either a validated value or the non-empty list of
// violations that prevented it from being accepted.
type Result[T any] struct {
	Value  T
	Errors Errors
}

// OK wraps an accepted value.
func OK[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail wraps a rejected input. errs must be non-empty.
func Fail[T any](errs Errors) Result[T] {
	return Result[T]{Errors: errs}
}

// Valid reports whether the result holds an accepted value.
func (r Result[T]) Valid() bool {
	return len(r.Errors) == 0
}
