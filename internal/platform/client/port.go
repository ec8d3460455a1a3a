package client

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for client persistence
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
	// List returns clients ordered by last name, then first name
	List(ctx context.Context) ([]*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
}
