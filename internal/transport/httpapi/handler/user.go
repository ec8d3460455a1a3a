package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/platform/user"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// UserAdminServiceInterface defines the account management operations
type UserAdminServiceInterface interface {
	Register(ctx context.Context, reg user.Registration) (validation.Result[*user.User], error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
	ChangeRole(ctx context.Context, id uuid.UUID, role user.Role) (*user.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserHandler handles account management; every route is admin-only
type UserHandler struct {
	responder
	service UserAdminServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserAdminServiceInterface, log *logger.Logger) *UserHandler {
	return &UserHandler{responder: responder{logger: log}, service: service}
}

// ChangeRoleRequest is the body of PUT /users/{id}/role
type ChangeRoleRequest struct {
	Role user.Role `json:"role" validate:"required,oneof=Admin Employee"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var reg user.Registration
	if err := decodeJSON(r, &reg); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.service.Register(r.Context(), reg)
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

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if users == nil {
		users = []*user.User{}
	}
	respondJSON(w, users, http.StatusOK)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	u, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, u, http.StatusOK)
}

// ChangeRole handles PUT /users/{id}/role
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req ChangeRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.service.ChangeRole(r.Context(), id, req.Role)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, u, http.StatusOK)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
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
