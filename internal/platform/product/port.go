package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/platform/category"
)

// Repository defines the interface for product persistence
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	// List returns products with CategoryName set, ordered by name
	List(ctx context.Context) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryLookup resolves the category a product references. Any error,
// including not found, makes the reference invalid.
type CategoryLookup interface {
	Read(ctx context.Context, id uuid.UUID) (*category.Category, error)
}
