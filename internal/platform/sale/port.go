package sale

import (
	"context"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/platform/client"
)

// Repository defines the interface for sale persistence
type Repository interface {
	// Record stores the sale and decrements stock in one transaction. It
	// fills each item's UnitPrice and the sale Total from current prices.
	Record(ctx context.Context, s *Sale) error

	GetByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// Lines returns every sold item in the period, oldest first
	Lines(ctx context.Context, p Period) ([]Line, error)
}

// ClientReader resolves the client a sale is billed to
type ClientReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
}
