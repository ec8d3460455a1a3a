package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

// Service provides business logic for category operations
type Service struct {
	repo Repository
}

// NewService creates a new category service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates, normalizes and stores a new category
func (s *Service) Create(ctx context.Context, c *Category) (validation.Result[*Category], error) {
	if errs := Validate(c); errs.HasErrors() {
		return validation.Fail[*Category](errs), nil
	}
	Normalize(c)

	if errs, err := s.checkUnique(ctx, c.Name, uuid.Nil); err != nil || errs.HasErrors() {
		return validation.Fail[*Category](errs), err
	}

	now := time.Now().UTC()
	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.Create(ctx, c); err != nil {
		return validation.Result[*Category]{}, fmt.Errorf("failed to create category: %w", err)
	}
	return validation.OK(c), nil
}

// Update validates, normalizes and stores changes to an existing category
func (s *Service) Update(ctx context.Context, c *Category) (validation.Result[*Category], error) {
	if c.ID == uuid.Nil {
		return validation.Result[*Category]{}, ErrInvalidID
	}
	existing, err := s.repo.GetByID(ctx, c.ID)
	if err != nil {
		return validation.Result[*Category]{}, err
	}

	if errs := Validate(c); errs.HasErrors() {
		return validation.Fail[*Category](errs), nil
	}
	Normalize(c)

	if errs, err := s.checkUnique(ctx, c.Name, c.ID); err != nil || errs.HasErrors() {
		return validation.Fail[*Category](errs), err
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, c); err != nil {
		return validation.Result[*Category]{}, fmt.Errorf("failed to update category: %w", err)
	}
	return validation.OK(c), nil
}

// GetByID retrieves a category
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

// Read resolves a category reference. A nil ID never resolves.
func (s *Service) Read(ctx context.Context, id uuid.UUID) (*Category, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

// List retrieves all categories ordered by name
func (s *Service) List(ctx context.Context) ([]*Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Delete removes a category that no product references
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count category products: %w", err)
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (s *Service) checkUnique(ctx context.Context, name string, excludeID uuid.UUID) (validation.Errors, error) {
	exists, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	var errs validation.Errors
	if exists {
		errs.Add(FieldName, "Ya existe una categoría con este nombre")
	}
	return errs, nil
}
