package user

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidID          = errors.New("invalid user ID")
	ErrLastAdmin          = errors.New("cannot remove the last admin")
	ErrUserAlreadyExists  = errors.New("user already exists")
)
