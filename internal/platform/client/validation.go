package client

import (
	"github.com/kislikjeka/bookstore/internal/platform/textrules"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

// Field names used in validation errors
const (
	FieldFirstName = "FirstName"
	FieldLastName  = "LastName"
	FieldEmail     = "Email"
	FieldPhone     = "Phone"
	FieldAddress   = "Address"
)

const (
	maxNameLength    = 50
	maxEmailLength   = 100
	maxAddressLength = 150
	minNameLetters   = 2
)

const (
	msgNameTooLong    = "No puede superar los 50 caracteres"
	msgInvalidEmail   = "Ingrese un correo electrónico válido de máximo 100 caracteres"
	msgInvalidPhone   = "El teléfono debe tener exactamente 8 dígitos"
	msgAddressChars   = "La dirección solo puede contener letras, números, espacios, puntos y /"
	msgAddressFormat  = "Ingrese una dirección válida, por ejemplo 'Av. América N1759' o 'Calle Corrales S/N'"
	msgAddressTooLong = "La dirección no puede superar los 150 caracteres"
)

// Validate returns every rule the client breaks. Fields are checked
// independently so all problems are reported together.
func Validate(c *Client) validation.Errors {
	var errs validation.Errors
	errs.AddAll(FieldFirstName, nameErrors(c.FirstName))
	errs.AddAll(FieldLastName, nameErrors(c.LastName))
	errs.AddAll(FieldEmail, emailErrors(c.Email))
	errs.AddAll(FieldPhone, phoneErrors(c.Phone))
	errs.AddAll(FieldAddress, addressErrors(c.Address))
	return errs
}

// Normalize rewrites a valid client to canonical form. A client that fails
// Validate is left untouched.
func Normalize(c *Client) {
	if Validate(c).HasErrors() {
		return
	}
	c.FirstName = textrules.CanonicalTitle(c.FirstName)
	c.LastName = textrules.CanonicalTitle(c.LastName)
	c.Email = textrules.CanonicalEmail(c.Email)
	c.Phone = textrules.NormalizeSpaces(c.Phone)
	c.Address = textrules.NormalizeSpaces(c.Address)
}

func nameErrors(s string) []string {
	errs := textrules.GetPersonNameErrors(s, minNameLetters, true)
	if !textrules.MaxLen(s, maxNameLength) {
		errs = append(errs, msgNameTooLong)
	}
	return errs
}

func emailErrors(s string) []string {
	if textrules.IsBlank(s) {
		return []string{textrules.MsgRequired}
	}
	if !textrules.IsValidEmail(s, maxEmailLength) {
		return []string{msgInvalidEmail}
	}
	return nil
}

func phoneErrors(s string) []string {
	if textrules.IsBlank(s) {
		return []string{textrules.MsgRequired}
	}
	if !textrules.IsValidPhone(s) {
		return []string{msgInvalidPhone}
	}
	return nil
}

// addressErrors is shared in shape with the distributor address rules
func addressErrors(s string) []string {
	if textrules.IsBlank(s) {
		return []string{textrules.MsgRequired}
	}
	var errs []string
	if !textrules.HasOnlyChars(s, "./") {
		errs = append(errs, msgAddressChars)
	} else if !textrules.IsValidCbbaAddress(s) {
		errs = append(errs, msgAddressFormat)
	}
	if !textrules.MaxLen(s, maxAddressLength) {
		errs = append(errs, msgAddressTooLong)
	}
	return errs
}
