package domain

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/currency"
)

// Cart is a customer's saved selection. Transition methods never modify the receiver;
// they return the next cart.
type Cart struct {
	OwnerID string
	Items   []CartItem
}

type CartItem struct {
	ItemID   int64
	Quantity int

	// display fields, filled from the menu on read
	Name      string
	Price     Money
	Available bool

	CreatedAt time.Time
}

func (c Cart) index(itemID int64) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.ItemID == itemID
	})
}

func (c Cart) clone() Cart {
	return Cart{OwnerID: c.OwnerID, Items: slices.Clone(c.Items)}
}

// Add increases the quantity of itemID, appending a new line when it is not in the cart.
func (c Cart) Add(itemID int64, quantity int) Cart {
	next := c.clone()
	if quantity <= 0 {
		return next
	}

	if idx := next.index(itemID); idx >= 0 {
		next.Items[idx].Quantity += quantity
		return next
	}

	next.Items = append(next.Items, CartItem{ItemID: itemID, Quantity: quantity})
	return next
}

func (c Cart) Remove(itemID int64) Cart {
	next := c.clone()
	next.Items = slices.DeleteFunc(next.Items, func(item CartItem) bool {
		return item.ItemID == itemID
	})
	return next
}

// SetQuantity replaces the quantity of itemID; a quantity of zero or less removes the line.
func (c Cart) SetQuantity(itemID int64, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(itemID)
	}

	next := c.clone()
	if idx := next.index(itemID); idx >= 0 {
		next.Items[idx].Quantity = quantity
		return next
	}

	next.Items = append(next.Items, CartItem{ItemID: itemID, Quantity: quantity})
	return next
}

func (c Cart) Clear() Cart {
	return Cart{OwnerID: c.OwnerID}
}

// Validate rejects lines whose quantity grew past MaxLineQuantity, e.g. through repeated Add.
func (c Cart) Validate() error {
	for _, item := range c.Items {
		if item.Quantity > MaxLineQuantity {
			return &ValidationError{
				Field:   "quantity",
				Message: fmt.Sprintf("Quantity must not exceed %d", MaxLineQuantity),
			}
		}
	}
	return nil
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total is the display total from the menu prices seen on read. Orders are always
// re-priced on checkout.
func (c Cart) Total(unit currency.Unit) Money {
	total := ZeroMoney(unit)
	for _, item := range c.Items {
		if item.Price.Currency != unit {
			continue
		}
		total.Amount = total.Amount.Add(item.Price.Times(item.Quantity).Amount)
	}
	return total
}

func (c Cart) Lines() []LineRequest {
	lines := make([]LineRequest, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, LineRequest{ItemID: item.ItemID, Quantity: item.Quantity})
	}
	return lines
}
