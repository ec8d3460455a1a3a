package sale

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrSaleNotFound  = errors.New("sale not found")
	ErrInvalidPeriod = errors.New("period start is after its end")
)

// InsufficientStockError is returned by Repository.Record when a product has
// fewer units on hand than requested. Nothing is written in that case.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: have %d, want %d", e.ProductID, e.Available, e.Requested)
}

// UnknownProductError is returned by Repository.Record when an item
// references a product that does not exist.
type UnknownProductError struct {
	ProductID uuid.UUID
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %s", e.ProductID)
}
