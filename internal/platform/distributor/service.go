package distributor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

// Service provides business logic for distributor operations
type Service struct {
	repo Repository
}

// NewService creates a new distributor service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates, normalizes and stores a new distributor
func (s *Service) Create(ctx context.Context, d *Distributor) (validation.Result[*Distributor], error) {
	if errs := Validate(d); errs.HasErrors() {
		return validation.Fail[*Distributor](errs), nil
	}
	Normalize(d)

	exists, err := s.repo.ExistsByName(ctx, d.Name, uuid.Nil)
	if err != nil {
		return validation.Result[*Distributor]{}, fmt.Errorf("failed to check distributor name: %w", err)
	}
	if exists {
		return validation.Fail[*Distributor](duplicateName()), nil
	}

	now := time.Now().UTC()
	d.ID = uuid.New()
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := s.repo.Create(ctx, d); err != nil {
		return validation.Result[*Distributor]{}, fmt.Errorf("failed to create distributor: %w", err)
	}
	return validation.OK(d), nil
}

// Update validates, normalizes and stores changes to an existing distributor
func (s *Service) Update(ctx context.Context, d *Distributor) (validation.Result[*Distributor], error) {
	if d.ID == uuid.Nil {
		return validation.Result[*Distributor]{}, ErrInvalidID
	}
	existing, err := s.repo.GetByID(ctx, d.ID)
	if err != nil {
		return validation.Result[*Distributor]{}, err
	}

	if errs := Validate(d); errs.HasErrors() {
		return validation.Fail[*Distributor](errs), nil
	}
	Normalize(d)

	exists, err := s.repo.ExistsByName(ctx, d.Name, d.ID)
	if err != nil {
		return validation.Result[*Distributor]{}, fmt.Errorf("failed to check distributor name: %w", err)
	}
	if exists {
		return validation.Fail[*Distributor](duplicateName()), nil
	}

	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, d); err != nil {
		return validation.Result[*Distributor]{}, fmt.Errorf("failed to update distributor: %w", err)
	}
	return validation.OK(d), nil
}

// GetByID retrieves a distributor
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Distributor, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all distributors
func (s *Service) List(ctx context.Context) ([]*Distributor, error) {
	distributors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributors: %w", err)
	}
	return distributors, nil
}

// Delete removes a distributor
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func duplicateName() validation.Errors {
	var errs validation.Errors
	errs.Add(FieldName, "Ya existe un distribuidor con este nombre")
	return errs
}
