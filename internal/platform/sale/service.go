package sale

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/shared/validation"
)

// Service records sales and serves sale history
type Service struct {
	repo    Repository
	clients ClientReader
}

// NewService creates a new sale service
func NewService(repo Repository, clients ClientReader) *Service {
	return &Service{
		repo:    repo,
		clients: clients,
	}
}

// Record validates and stores a sale made by userID. Stock shortages and
// unknown products come back as field errors.
func (s *Service) Record(ctx context.Context, userID uuid.UUID, in *Sale) (validation.Result[*Sale], error) {
	errs, err := Validate(ctx, in, s.clients)
	if err != nil {
		return validation.Result[*Sale]{}, err
	}
	if errs.HasErrors() {
		return validation.Fail[*Sale](errs), nil
	}

	in.ID = uuid.New()
	in.UserID = userID
	in.CreatedAt = time.Now().UTC()

	err = s.repo.Record(ctx, in)
	if err == nil {
		return validation.OK(in), nil
	}

	var stockErr *InsufficientStockError
	if errors.As(err, &stockErr) {
		return validation.Fail[*Sale](itemError(in, stockErr.ProductID, "Quantity",
			fmt.Sprintf("Stock insuficiente: disponible %d", stockErr.Available))), nil
	}
	var productErr *UnknownProductError
	if errors.As(err, &productErr) {
		return validation.Fail[*Sale](itemError(in, productErr.ProductID, "ProductID",
			"El producto seleccionado no existe")), nil
	}
	return validation.Result[*Sale]{}, fmt.Errorf("failed to record sale: %w", err)
}

// GetByID retrieves a sale with its items
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Sale, error) {
	return s.repo.GetByID(ctx, id)
}

// Lines returns the sold items in p
func (s *Service) Lines(ctx context.Context, p Period) ([]Line, error) {
	if !p.From.IsZero() && !p.To.IsZero() && p.From.After(p.To) {
		return nil, ErrInvalidPeriod
	}
	lines, err := s.repo.Lines(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list sale lines: %w", err)
	}
	return lines, nil
}

func itemError(in *Sale, productID uuid.UUID, field, msg string) validation.Errors {
	var errs validation.Errors
	for i, it := range in.Items {
		if it.ProductID == productID {
			errs.Add(ItemField(i, field), msg)
			return errs
		}
	}
	errs.Add(FieldItems, msg)
	return errs
}
