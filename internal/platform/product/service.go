package product

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

// Service provides business logic for product operations
type Service struct {
	repo       Repository
	categories CategoryLookup
}

// NewService creates a new product service
func NewService(repo Repository, categories CategoryLookup) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
	}
}

// Create validates, normalizes and stores a new product
func (s *Service) Create(ctx context.Context, p *Product) (validation.Result[*Product], error) {
	if errs := Validate(ctx, p, s.categories); errs.HasErrors() {
		return validation.Fail[*Product](errs), nil
	}
	Normalize(p)

	now := time.Now().UTC()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo.Create(ctx, p); err != nil {
		return validation.Result[*Product]{}, fmt.Errorf("failed to create product: %w", err)
	}
	return validation.OK(p), nil
}

// Update validates, normalizes and stores changes to an existing product
func (s *Service) Update(ctx context.Context, p *Product) (validation.Result[*Product], error) {
	if p.ID == uuid.Nil {
		return validation.Result[*Product]{}, ErrInvalidID
	}
	existing, err := s.repo.GetByID(ctx, p.ID)
	if err != nil {
		return validation.Result[*Product]{}, err
	}

	if errs := Validate(ctx, p, s.categories); errs.HasErrors() {
		return validation.Fail[*Product](errs), nil
	}
	Normalize(p)

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return validation.Result[*Product]{}, fmt.Errorf("failed to update product: %w", err)
	}
	return validation.OK(p), nil
}

// GetByID retrieves a product
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all products
func (s *Service) List(ctx context.Context) ([]*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Delete removes a product
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
