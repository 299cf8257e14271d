package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          int64
	Name        string
	Description *string
	Price       Money
	Category    string
	Image       *string
	Available   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Category) == "" || m.Price.Amount.IsZero() {
		return &ValidationError{Message: "Please provide name, price and category"}
	}

	return validatePrice(m.Price.Amount)
}

// MaxMenuPrice is the largest price menu_items.price_amount NUMERIC(10, 2) can hold.
var MaxMenuPrice = decimal.RequireFromString("99999999.99")

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return &ValidationError{Field: "price", Message: "Price must be a positive number"}
	}

	if !price.Equal(price.Round(2)) {
		return &ValidationError{Field: "price", Message: "Price must have at most two decimal places"}
	}

	if price.GreaterThan(MaxMenuPrice) {
		return &ValidationError{Field: "price", Message: "Price must not exceed " + MaxMenuPrice.StringFixed(2)}
	}

	return nil
}

// MenuFilter has AND semantics across the set fields; a nil field does not filter.
type MenuFilter struct {
	Category  *string
	Available *bool
}

// MenuItemUpdate carries only the fields a caller wants to change.
type MenuItemUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Image       *string
	Available   *bool
}

func (u MenuItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Category == nil && u.Image == nil && u.Available == nil
}

func (u MenuItemUpdate) Validate() error {
	if u.IsEmpty() {
		return &ValidationError{Message: "No fields to update"}
	}

	if u.Price != nil {
		if err := validatePrice(*u.Price); err != nil {
			return err
		}
	}

	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return &ValidationError{Field: "name", Message: "Name must not be empty"}
	}

	if u.Category != nil && strings.TrimSpace(*u.Category) == "" {
		return &ValidationError{Field: "category", Message: "Category must not be empty"}
	}

	return nil
}
