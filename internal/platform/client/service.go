package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

// Service provides business logic for client operations
type Service struct {
	repo Repository
}

// NewService creates a new client service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates, normalizes and stores a new client
func (s *Service) Create(ctx context.Context, c *Client) (validation.Result[*Client], error) {
	if errs := Validate(c); errs.HasErrors() {
		return validation.Fail[*Client](errs), nil
	}
	Normalize(c)

	if errs, err := s.checkEmail(ctx, c.Email, uuid.Nil); err != nil || errs.HasErrors() {
		return validation.Fail[*Client](errs), err
	}

	now := time.Now().UTC()
	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.Create(ctx, c); err != nil {
		return validation.Result[*Client]{}, fmt.Errorf("failed to create client: %w", err)
	}
	return validation.OK(c), nil
}

// Update validates, normalizes and stores changes to an existing client
func (s *Service) Update(ctx context.Context, c *Client) (validation.Result[*Client], error) {
	if c.ID == uuid.Nil {
		return validation.Result[*Client]{}, ErrInvalidID
	}
	existing, err := s.repo.GetByID(ctx, c.ID)
	if err != nil {
		return validation.Result[*Client]{}, err
	}

	if errs := Validate(c); errs.HasErrors() {
		return validation.Fail[*Client](errs), nil
	}
	Normalize(c)

	if errs, err := s.checkEmail(ctx, c.Email, c.ID); err != nil || errs.HasErrors() {
		return validation.Fail[*Client](errs), err
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, c); err != nil {
		return validation.Result[*Client]{}, fmt.Errorf("failed to update client: %w", err)
	}
	return validation.OK(c), nil
}

// GetByID retrieves a client
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves all clients
func (s *Service) List(ctx context.Context) ([]*Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// Delete removes a client
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkEmail(ctx context.Context, email string, excludeID uuid.UUID) (validation.Errors, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client email: %w", err)
	}
	var errs validation.Errors
	if exists {
		errs.Add(FieldEmail, "Ya existe un cliente con este correo")
	}
	return errs, nil
}
