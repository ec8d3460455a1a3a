package client

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrDuplicateEmail = errors.New("client email already exists")
	ErrInvalidID      = errors.New("invalid client ID")
)
