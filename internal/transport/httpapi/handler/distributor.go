package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/platform/distributor"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// DistributorServiceInterface defines the distributor operations the handler needs
type DistributorServiceInterface interface {
	Create(ctx context.Context, d *distributor.Distributor) (validation.Result[*distributor.Distributor], error)
	Update(ctx context.Context, d *distributor.Distributor) (validation.Result[*distributor.Distributor], error)
	GetByID(ctx context.Context, id uuid.UUID) (*distributor.Distributor, error)
	List(ctx context.Context) ([]*distributor.Distributor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DistributorHandler handles distributor HTTP requests
type DistributorHandler struct {
	responder
	service DistributorServiceInterface
}

// NewDistributorHandler creates a new distributor handler
func NewDistributorHandler(service DistributorServiceInterface, log *logger.Logger) *DistributorHandler {
	return &DistributorHandler{responder: responder{logger: log}, service: service}
}

// DistributorRequest is the body of create and update requests
type DistributorRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (req DistributorRequest) toDistributor(id uuid.UUID) *distributor.Distributor {
	return &distributor.Distributor{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
}

// CreateDistributor handles POST /distributors
func (h *DistributorHandler) CreateDistributor(w http.ResponseWriter, r *http.Request) {
	var req DistributorRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.service.Create(r.Context(), req.toDistributor(uuid.Nil))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !res.Valid() {
		h.invalid(w, r, res.Errors)
		return
	}
	respondJSON(w, res.Value, http.StatusCreated)
}

// GetDistributors handles GET /distributors
func (h *DistributorHandler) GetDistributors(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if list == nil {
		list = []*distributor.Distributor{}
	}
	respondJSON(w, list, http.StatusOK)
}

// GetDistributor handles GET /distributors/{id}
func (h *DistributorHandler) GetDistributor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	d, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, d, http.StatusOK)
}

// UpdateDistributor handles PUT /distributors/{id}
func (h *DistributorHandler) UpdateDistributor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req DistributorRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.service.Update(r.Context(), req.toDistributor(id))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !res.Valid() {
		h.invalid(w, r, res.Errors)
		return
	}
	respondJSON(w, res.Value, http.StatusOK)
}

// DeleteDistributor handles DELETE /distributors/{id}
func (h *DistributorHandler) DeleteDistributor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
