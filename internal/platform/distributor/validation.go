package distributor

import (
	"github.com/kislikjeka/bookstore/internal/platform/textrules"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

// Field names used in validation errors
const (
	FieldName    = "Name"
	FieldEmail   = "Email"
	FieldPhone   = "Phone"
	FieldAddress = "Address"
)

const (
	maxNameLength    = 100
	maxEmailLength   = 100
	maxAddressLength = 150
)

// Validate returns every rule the distributor breaks
func Validate(d *Distributor) validation.Errors {
	var errs validation.Errors
	errs.AddAll(FieldName, nameErrors(d.Name))
	errs.AddAll(FieldEmail, emailErrors(d.Email))
	errs.AddAll(FieldPhone, phoneErrors(d.Phone))
	errs.AddAll(FieldAddress, addressErrors(d.Address))
	return errs
}

// Normalize rewrites a valid distributor to canonical form; legal suffixes
// in the name keep upper case. An invalid distributor is left untouched.
func Normalize(d *Distributor) {
	if Validate(d).HasErrors() {
		return
	}
	d.Name = textrules.CanonicalBusinessName(d.Name)
	d.Email = textrules.CanonicalEmail(d.Email)
	d.Phone = textrules.NormalizeSpaces(d.Phone)
	d.Address = textrules.NormalizeSpaces(d.Address)
}

func nameErrors(s string) []string {
	errs := textrules.GetBusinessNameErrors(s)
	if !textrules.MaxLen(s, maxNameLength) {
		errs = append(errs, "El nombre no puede superar los 100 caracteres")
	}
	return errs
}

func emailErrors(s string) []string {
	switch {
	case textrules.IsBlank(s):
		return []string{textrules.MsgRequired}
	case !textrules.IsValidEmail(s, maxEmailLength):
		return []string{"Ingrese un correo electrónico válido de máximo 100 caracteres"}
	}
	return nil
}

func phoneErrors(s string) []string {
	switch {
	case textrules.IsBlank(s):
		return []string{textrules.MsgRequired}
	case !textrules.IsValidPhone(s):
		return []string{"El teléfono debe tener exactamente 8 dígitos"}
	}
	return nil
}

func addressErrors(s string) []string {
	switch {
	case textrules.IsBlank(s):
		return []string{textrules.MsgRequired}
	case !textrules.MaxLen(s, maxAddressLength):
		return []string{"La dirección no puede superar los 150 caracteres"}
	case !textrules.IsValidCbbaAddress(s):
		return []string{"La dirección solo admite palabras, números, 'S/N' y designadores como 'Nro. 25'"}
	}
	return nil
}
