package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kislikjeka/bookstore/internal/platform/category"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// CategoryServiceInterface defines the category operations the handler needs
type CategoryServiceInterface interface {
	Create(ctx context.Context, c *category.Category) (validation.Result[*category.Category], error)
	Update(ctx context.Context, c *category.Category) (validation.Result[*category.Category], error)
	GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error)
	List(ctx context.Context) ([]*category.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryInvalidator drops cached copies of a changed category
type CategoryInvalidator interface {
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	responder
	service CategoryServiceInterface
	cache   CategoryInvalidator
}

// NewCategoryHandler creates a new category handler. cache may be nil.
func NewCategoryHandler(service CategoryServiceInterface, cache CategoryInvalidator, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		responder: responder{logger: log},
		service:   service,
		cache:     cache,
	}
}

// CategoryRequest is the body of create and update requests
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (req CategoryRequest) toCategory(id uuid.UUID) *category.Category {
	return &category.Category{ID: id, Name: req.Name, Description: req.Description}
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.service.Create(r.Context(), req.toCategory(uuid.Nil))
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

// GetCategories handles GET /categories
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if categories == nil {
		categories = []*category.Category{}
	}
	respondJSON(w, categories, http.StatusOK)
}

// GetCategory handles GET /categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
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

// UpdateCategory handles PUT /categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.service.Update(r.Context(), req.toCategory(id))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !res.Valid() {
		h.invalid(w, r, res.Errors)
		return
	}
	h.invalidate(r, id)
	respondJSON(w, res.Value, http.StatusOK)
}

// DeleteCategory handles DELETE /categories/{id}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.invalidate(r, id)
	w.WriteHeader(http.StatusNoContent)
}

// invalidate is best effort; the cache entry expires on its own
func (h *CategoryHandler) invalidate(r *http.Request, id uuid.UUID) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(r.Context(), id); err != nil {
		h.logger.WithContext(r.Context()).WithError(err).Warn("failed to invalidate category cache", "category_id", id)
	}
}
