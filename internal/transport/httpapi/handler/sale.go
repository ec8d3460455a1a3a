package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kislikjeka/bookstore/internal/platform/sale"
	apperr "github.com/kislikjeka/bookstore/internal/shared/errors"
	"github.com/kislikjeka/bookstore/internal/shared/validation"
	"github.com/kislikjeka/bookstore/internal/transport/httpapi/middleware"
	"github.com/kislikjeka/bookstore/pkg/logger"
)

// SaleServiceInterface defines the sale operations the handler needs
type SaleServiceInterface interface {
	Record(ctx context.Context, userID uuid.UUID, in *sale.Sale) (validation.Result[*sale.Sale], error)
	GetByID(ctx context.Context, id uuid.UUID) (*sale.Sale, error)
	Lines(ctx context.Context, p sale.Period) ([]sale.Line, error)
}

// SaleHandler handles sale HTTP requests
type SaleHandler struct {
	responder
	service SaleServiceInterface
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(service SaleServiceInterface, log *logger.Logger) *SaleHandler {
	return &SaleHandler{responder: responder{logger: log}, service: service}
}

// SaleItemRequest is one product line of a sale request
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaleRequest is the body of POST /sales
type SaleRequest struct {
	ClientID string            `json:"client_id"`
	Items    []SaleItemRequest `json:"items"`
}

func (req SaleRequest) toSale() (*sale.Sale, validation.Errors) {
	var overrides validation.Errors

	clientID, ok := parseOptionalID(req.ClientID)
	if !ok {
		overrides.Add(sale.FieldClientID, "El cliente seleccionado no existe")
	}

	s := &sale.Sale{ClientID: clientID, Items: make([]sale.Item, 0, len(req.Items))}
	for i, it := range req.Items {
		productID, ok := parseOptionalID(it.ProductID)
		if !ok {
			overrides.Add(sale.ItemField(i, "ProductID"), "El producto seleccionado no existe")
		}
		s.Items = append(s.Items, sale.Item{ProductID: productID, Quantity: it.Quantity})
	}
	return s, overrides
}

// SaleLineResponse is one sold item in a listing
type SaleLineResponse struct {
	SaleID    string          `json:"sale_id"`
	SoldAt    time.Time       `json:"sold_at"`
	Client    string          `json:"client"`
	Product   string          `json:"product"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CreateSale handles POST /sales
func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.fail(w, r, apperr.Unauthorized("unauthorized"))
		return
	}

	var req SaleRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	// Malformed IDs arrive as uuid.Nil, which never passes validation, so
	// nothing is recorded when overrides is non-empty.
	in, overrides := req.toSale()
	res, err := h.service.Record(r.Context(), userID, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !res.Valid() || overrides.HasErrors() {
		h.invalid(w, r, withOverrides(res.Errors, overrides))
		return
	}
	respondJSON(w, res.Value, http.StatusCreated)
}

// GetSale handles GET /sales/{id}
func (h *SaleHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	s, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	respondJSON(w, s, http.StatusOK)
}

// GetSales handles GET /sales?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *SaleHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	lines, err := h.service.Lines(r.Context(), period)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	out := make([]SaleLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, SaleLineResponse{
			SaleID:    l.SaleID.String(),
			SoldAt:    l.SoldAt,
			Client:    l.ClientName,
			Product:   l.ProductName,
			Category:  l.CategoryName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}
	respondJSON(w, out, http.StatusOK)
}

// dateLayout is the query-string date format
const dateLayout = "2006-01-02"

// parsePeriod reads from/to dates. Both bounds are inclusive days in UTC.
func parsePeriod(r *http.Request) (sale.Period, error) {
	var p sale.Period
	q := r.URL.Query()
	if s := q.Get("from"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return p, apperr.BadRequest("from must be a date in YYYY-MM-DD format")
		}
		p.From = t
	}
	if s := q.Get("to"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return p, apperr.BadRequest("to must be a date in YYYY-MM-DD format")
		}
		p.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	return p, nil
}
