package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kislikjeka/bookstore/internal/platform/distributor"
)

// DistributorRepository implements distributor.Repository using PostgreSQL
type DistributorRepository struct {
	pool *pgxpool.Pool
}

// NewDistributorRepository creates a new PostgreSQL distributor repository
func NewDistributorRepository(pool *pgxpool.Pool) *DistributorRepository {
	return &DistributorRepository{pool: pool}
}

const distributorColumns = `id, name, email, phone, address, created_at, updated_at`

func scanDistributor(row pgx.Row) (*distributor.Distributor, error) {
	var d distributor.Distributor
	if err := row.Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.Address, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DistributorRepository) Create(ctx context.Context, d *distributor.Distributor) error {
	query := `
		INSERT INTO distributors (` + distributorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query, d.ID, d.Name, d.Email, d.Phone, d.Address, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create distributor: %w", err)
	}
	return nil
}

func (r *DistributorRepository) GetByID(ctx context.Context, id uuid.UUID) (*distributor.Distributor, error) {
	query := `SELECT ` + distributorColumns + ` FROM distributors WHERE id = $1`

	d, err := scanDistributor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, distributor.ErrDistributorNotFound
		}
		return nil, fmt.Errorf("failed to get distributor: %w", err)
	}
	return d, nil
}

func (r *DistributorRepository) List(ctx context.Context) ([]*distributor.Distributor, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+distributorColumns+` FROM distributors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributors: %w", err)
	}
	defer rows.Close()

	var out []*distributor.Distributor
	for rows.Next() {
		d, err := scanDistributor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan distributor: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DistributorRepository) Update(ctx context.Context, d *distributor.Distributor) error {
	query := `
		UPDATE distributors
		SET name = $2, email = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, d.ID, d.Name, d.Email, d.Phone, d.Address, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update distributor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return distributor.ErrDistributorNotFound
	}
	return nil
}

func (r *DistributorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM distributors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete distributor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return distributor.ErrDistributorNotFound
	}
	return nil
}

func (r *DistributorRepository) ExistsByName(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM distributors WHERE LOWER(name) = LOWER($1) AND id <> $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check distributor name: %w", err)
	}
	return exists, nil
}
