package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kislikjeka/bookstore/internal/platform/sale"
)

// SaleRepository implements sale.Repository using PostgreSQL
type SaleRepository struct {
	pool *pgxpool.Pool
}

// NewSaleRepository creates a new PostgreSQL sale repository
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepository {
	return &SaleRepository{pool: pool}
}

// Record locks every product row in id order, checks stock, decrements it and
// writes the sale with its items. Any failure rolls the whole sale back.
func (r *SaleRepository) Record(ctx context.Context, s *sale.Sale) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	order := make([]int, len(s.Items))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return slices.Compare(s.Items[a].ProductID[:], s.Items[b].ProductID[:])
	})

	for _, i := range order {
		item := &s.Items[i]
		price, err := lockProduct(ctx, tx, item)
		if err != nil {
			return err
		}
		item.UnitPrice = price

		if _, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock - $2, updated_at = $3 WHERE id = $1`,
			item.ProductID, item.Quantity, s.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to decrement stock: %w", err)
		}
	}
	s.ComputeTotal()

	_, err = tx.Exec(ctx, `
		INSERT INTO sales (id, client_id, user_id, total, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5)
	`, s.ID, s.ClientID, s.UserID, s.Total.String(), s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}

	batch := &pgx.Batch{}
	for _, item := range s.Items {
		batch.Queue(`
			INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4::numeric)
		`, s.ID, item.ProductID, item.Quantity, item.UnitPrice.String())
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert sale items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sale: %w", err)
	}
	return nil
}

func lockProduct(ctx context.Context, tx pgx.Tx, item *sale.Item) (decimal.Decimal, error) {
	var (
		price string
		stock int
	)
	err := tx.QueryRow(ctx,
		`SELECT price::text, stock FROM products WHERE id = $1 FOR UPDATE`,
		item.ProductID,
	).Scan(&price, &stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, &sale.UnknownProductError{ProductID: item.ProductID}
		}
		return decimal.Zero, fmt.Errorf("failed to lock product: %w", err)
	}
	if stock < item.Quantity {
		return decimal.Zero, &sale.InsufficientStockError{
			ProductID: item.ProductID,
			Available: stock,
			Requested: item.Quantity,
		}
	}
	return decimal.NewFromString(price)
}

// GetByID retrieves a sale and its items
func (r *SaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error) {
	var (
		s     sale.Sale
		total string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, client_id, user_id, total::text, created_at FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.ClientID, &s.UserID, &total, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	if s.Total, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("invalid stored total %q: %w", total, err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT product_id, quantity, unit_price::text
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY product_id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item  sale.Item
			price string
		)
		if err := rows.Scan(&item.ProductID, &item.Quantity, &price); err != nil {
			return nil, fmt.Errorf("failed to scan sale item: %w", err)
		}
		if item.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("invalid stored price %q: %w", price, err)
		}
		s.Items = append(s.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Lines returns sold items within p, both bounds inclusive
func (r *SaleRepository) Lines(ctx context.Context, p sale.Period) ([]sale.Line, error) {
	query := `
		SELECT s.id, s.created_at, c.first_name || ' ' || c.last_name,
		       pr.name, cat.name, si.quantity, si.unit_price::text
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN clients c ON c.id = s.client_id
		JOIN products pr ON pr.id = si.product_id
		JOIN categories cat ON cat.id = pr.category_id
		WHERE ($1::timestamptz IS NULL OR s.created_at >= $1)
		  AND ($2::timestamptz IS NULL OR s.created_at <= $2)
		ORDER BY s.created_at, s.id, pr.name
	`

	rows, err := r.pool.Query(ctx, query, optionalTime(p.From), optionalTime(p.To))
	if err != nil {
		return nil, fmt.Errorf("failed to query sale lines: %w", err)
	}
	defer rows.Close()

	var lines []sale.Line
	for rows.Next() {
		var (
			l     sale.Line
			price string
		)
		err := rows.Scan(&l.SaleID, &l.SoldAt, &l.ClientName, &l.ProductName, &l.CategoryName, &l.Quantity, &price)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale line: %w", err)
		}
		if l.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("invalid stored price %q: %w", price, err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
