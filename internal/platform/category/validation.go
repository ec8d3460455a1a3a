package category

import (
	"github.com/kislikjeka/bookstore/internal/platform/textrules"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

// Field names used in validation errors
const (
	FieldName        = "Name"
	FieldDescription = "Description"
)

const (
	maxNameLength        = 50
	maxDescriptionLength = 250
	minNameWordLetters   = 3
)

// Validate returns every rule the category breaks
func Validate(c *Category) validation.Errors {
	var errs validation.Errors
	errs.AddAll(FieldName, nameErrors(c.Name))
	errs.AddAll(FieldDescription, descriptionErrors(c.Description))
	return errs
}

// Normalize rewrites a valid category to canonical form
func Normalize(c *Category) {
	if Validate(c).HasErrors() {
		return
	}
	c.Name = textrules.CanonicalTitle(c.Name)
	c.Description = textrules.CanonicalSentence(c.Description)
}

func nameErrors(s string) []string {
	errs := textrules.GetPersonNameErrors(s, minNameWordLetters, true)
	if !textrules.MaxLen(s, maxNameLength) {
		errs = append(errs, "El nombre no puede superar los 50 caracteres")
	}
	return errs
}

func descriptionErrors(s string) []string {
	errs := textrules.GetLooseDescriptionErrors(s)
	if !textrules.MaxLen(s, maxDescriptionLength) {
		errs = append(errs, "La descripción no puede superar los 250 caracteres")
	}
	return errs
}
