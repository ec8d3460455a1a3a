package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a checkout of one or more products to a client
type Sale struct {
	ID        uuid.UUID       `json:"id"`
	ClientID  uuid.UUID       `json:"client_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// Item is one product line of a sale. UnitPrice is copied from the product
// when the sale is recorded.
type Item struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal is quantity times unit price
func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ComputeTotal sums the item subtotals into Total
func (s *Sale) ComputeTotal() {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Subtotal())
	}
	s.Total = total
}

// Line is a denormalized sale item used by listings and reports
type Line struct {
	SaleID       uuid.UUID
	SoldAt       time.Time
	ClientName   string
	ProductName  string
	CategoryName string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// Subtotal is quantity times unit price
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Period bounds a sales query. A zero bound is open.
type Period struct {
	From time.Time
	To   time.Time
}
