package user

import (
	"strings"

	"github.com/kislikjeka/bookstore/internal/platform/textrules"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

// Field names used in validation errors
const (
	FieldUsername = "Username"
	FieldEmail    = "Email"
	FieldPassword = "Password"
	FieldRole     = "Role"
)

const (
	minUsernameLength = 4
	maxUsernameLength = 30
	maxEmailLength    = 100
)

// Registration is the input accepted when an admin creates an account
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Validate returns every rule the registration breaks
func (r *Registration) Validate() validation.Errors {
	var errs validation.Errors
	errs.AddAll(FieldUsername, usernameErrors(r.Username))
	errs.AddAll(FieldEmail, emailErrors(r.Email))
	if len(r.Password) < MinPasswordLength {
		errs.Add(FieldPassword, "La contraseña debe tener al menos 8 caracteres")
	}
	if !r.Role.Valid() {
		errs.Add(FieldRole, "El rol debe ser Admin o Employee")
	}
	return errs
}

// Normalize trims the username and lowercases the email of a valid
// registration
func (r *Registration) Normalize() {
	if r.Validate().HasErrors() {
		return
	}
	r.Username = strings.TrimSpace(r.Username)
	r.Email = textrules.CanonicalEmail(r.Email)
}

func usernameErrors(s string) []string {
	n := textrules.NormalizeSpaces(s)
	switch {
	case n == "":
		return []string{textrules.MsgRequired}
	case !textrules.IsAlphanumeric(n):
		return []string{"El usuario solo puede contener letras y números"}
	case textrules.Len(n) < minUsernameLength || textrules.Len(n) > maxUsernameLength:
		return []string{"El usuario debe tener entre 4 y 30 caracteres"}
	}
	return nil
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
