package httpapi

import (
	"time"

	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

type orderItemResponse struct {
	ItemID   int64   `json:"item_id"`
	Name     *string `json:"name"`
	Quantity int     `json:"quantity"`
	Price    string  `json:"price"`
	Subtotal string  `json:"subtotal"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	UserName    *string             `json:"user_name,omitempty"`
	UserEmail   *string             `json:"user_email,omitempty"`
	TotalAmount string              `json:"total_amount"`
	Currency    string              `json:"currency"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Items       []orderItemResponse `json:"items"`
}

// toOrderResponse renders o; withUser adds the user directory fields shown to staff.
func toOrderResponse(o domain.Order, withUser bool) orderResponse {
	resp := orderResponse{
		ID:          o.ID.String(),
		UserID:      o.UserID,
		TotalAmount: o.Total.String(),
		Currency:    o.Total.Currency.String(),
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Items: lo.Map(o.Items, func(item domain.OrderItem, _ int) orderItemResponse {
			return orderItemResponse{
				ItemID:   item.ItemID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price.String(),
				Subtotal: item.Subtotal().String(),
			}
		}),
	}

	if withUser && o.User != nil {
		resp.UserName = lo.ToPtr(o.User.Name)
		resp.UserEmail = lo.ToPtr(o.User.Email)
	}

	return resp
}

func toOrderResponses(orders []domain.Order, withUser bool) []orderResponse {
	return lo.Map(orders, func(o domain.Order, _ int) orderResponse {
		return toOrderResponse(o, withUser)
	})
}

type menuItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category"`
	Image       *string   `json:"image"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toMenuItemResponse(item domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.String(),
		Currency:    item.Price.Currency.String(),
		Category:    item.Category,
		Image:       item.Image,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

type cartItemResponse struct {
	ItemID    int64  `json:"item_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Subtotal  string `json:"subtotal"`
	Available bool   `json:"available"`
}

type cartResponse struct {
	Items       []cartItemResponse `json:"items"`
	TotalAmount string             `json:"total_amount"`
	Currency    string             `json:"currency"`
}

func toCartResponse(c domain.Cart, unit currency.Unit) cartResponse {
	if len(c.Items) > 0 {
		unit = c.Items[0].Price.Currency
	}
	total := c.Total(unit)

	return cartResponse{
		Items: lo.Map(c.Items, func(item domain.CartItem, _ int) cartItemResponse {
			return cartItemResponse{
				ItemID:    item.ItemID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Price:     item.Price.String(),
				Subtotal:  item.Price.Times(item.Quantity).String(),
				Available: item.Available,
			}
		}),
		TotalAmount: total.String(),
		Currency:    total.Currency.String(),
	}
}
