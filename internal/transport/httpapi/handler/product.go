package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kislikjeka/bookstore/internal/platform/product"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/pkg/logger"
	"github.com/kislikjeka/bookstore/pkg/money"
)

// ProductServiceInterface defines the product operations the handler needs
type ProductServiceInterface interface {
	Create(ctx context.Context, p *product.Product) (validation.Result[*product.Product], error)
	Update(ctx context.Context, p *product.Product) (validation.Result[*product.Product], error)
	GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	List(ctx context.Context) ([]*product.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	responder
	service ProductServiceInterface
}

// NewProductHandler creates a new product handler
func NewProductHandler(service ProductServiceInterface, log *logger.Logger) *ProductHandler {
	return &ProductHandler{responder: responder{logger: log}, service: service}
}

// ProductRequest is the body of create and update requests. Price is text so
// both "12.50" and "12,50" are accepted.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	CategoryID  string `json:"category_id"`
}

// toProduct converts the request. Unparseable price or category values are
// replaced by zero values and reported through the returned overrides.
func (req ProductRequest) toProduct(id uuid.UUID) (*product.Product, validation.Errors) {
	var overrides validation.Errors

	price := decimal.Zero
	if req.Price != "" {
		p, err := money.Parse(req.Price)
		if err != nil {
			overrides.Add(product.FieldPrice, "El precio debe ser un número válido")
		} else {
			price = p
		}
	}

	categoryID, ok := parseOptionalID(req.CategoryID)
	if !ok {
		overrides.Add(product.FieldCategoryID, "La categoría seleccionada no existe")
	}

	return &product.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		CategoryID:  categoryID,
	}, overrides
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	p, overrides := req.toProduct(uuid.Nil)
	res, err := h.service.Create(r.Context(), p)
	h.respondSaved(w, r, res, overrides, err, http.StatusCreated)
}

// UpdateProduct handles PUT /products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	p, overrides := req.toProduct(id)
	res, err := h.service.Update(r.Context(), p)
	h.respondSaved(w, r, res, overrides, err, http.StatusOK)
}

func (h *ProductHandler) respondSaved(w http.ResponseWriter, r *http.Request, res validation.Result[*product.Product], overrides validation.Errors, err error, status int) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !res.Valid() || overrides.HasErrors() {
		h.invalid(w, r, withOverrides(res.Errors, overrides))
		return
	}
	respondJSON(w, res.Value, status)
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if products == nil {
		products = []*product.Product{}
	}
	respondJSON(w, products, http.StatusOK)
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, p, http.StatusOK)
}

// DeleteProduct handles DELETE /products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
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
