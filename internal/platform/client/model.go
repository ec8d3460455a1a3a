package client

import (
	"time"

	"github.com/google/uuid"
)

// Client is a bookstore customer
type Client struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns the name used on receipts and reports
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
