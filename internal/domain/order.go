package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity caps the quantity of a single order or cart line.
const MaxLineQuantity = 1000

// MaxOrderTotal is the largest total orders.total_amount NUMERIC(12, 2) can hold.
var MaxOrderTotal = decimal.RequireFromString("9999999999.99")

type Order struct {
	ID     uuid.UUID
	UserID string
	// User is filled from the users directory when the row exists there.
	User   *OrderUser
	Total  Money
	Status OrderStatus
	Items  []OrderItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderUser struct {
	Name  string
	Email string
}

// OrderItem is a line of an order. Price is the unit price frozen at order time.
type OrderItem struct {
	ItemID int64
	// Name is nil when the menu item no longer exists.
	Name     *string
	Quantity int
	Price    Money
}

func (i OrderItem) Subtotal() Money {
	return i.Price.Times(i.Quantity)
}

func (o Order) IsOwnedBy(userID string) bool {
	return o.UserID == userID
}

// LineRequest is an untrusted (item, quantity) pair submitted by a client.
type LineRequest struct {
	ItemID   int64
	Quantity int
}
