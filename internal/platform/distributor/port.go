package distributor

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for distributor persistence
type Repository interface {
	Create(ctx context.Context, d *Distributor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Distributor, error)
	List(ctx context.Context) ([]*Distributor, error)
	Update(ctx context.Context, d *Distributor) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error)
}
