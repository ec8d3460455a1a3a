package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidID       = errors.New("invalid product ID")
	ErrProductSold     = errors.New("product has recorded sales")
)
