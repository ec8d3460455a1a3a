package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/platform/client"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// ClientServiceInterface defines the client operations the handler needs
type ClientServiceInterface interface {
	Create(ctx context.Context, c *client.Client) (validation.Result[*client.Client], error)
	Update(ctx context.Context, c *client.Client) (validation.Result[*client.Client], error)
	GetByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	List(ctx context.Context) ([]*client.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientHandler handles client HTTP requests
type ClientHandler struct {
	responder
	service ClientServiceInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(service ClientServiceInterface, log *logger.Logger) *ClientHandler {
	return &ClientHandler{responder: responder{logger: log}, service: service}
}

// ClientRequest is the body of create and update requests
type ClientRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (req ClientRequest) toClient(id uuid.UUID) *client.Client {
	return &client.Client{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.service.Create(r.Context(), req.toClient(uuid.Nil))
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

// GetClients handles GET /clients
func (h *ClientHandler) GetClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if clients == nil {
		clients = []*client.Client{}
	}
	respondJSON(w, clients, http.StatusOK)
}

// GetClient handles GET /clients/{id}
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, c, http.StatusOK)
}

// UpdateClient handles PUT /clients/{id}
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req ClientRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.service.Update(r.Context(), req.toClient(id))
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

// DeleteClient handles DELETE /clients/{id}
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
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
