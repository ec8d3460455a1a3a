package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for category persistence
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByName checks for another category with the same name,
	// ignoring the category identified by excludeID.
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)

	// CountProducts returns how many products reference the category
	CountProducts(ctx context.Context, id uuid.UUID) (int, error)
}
