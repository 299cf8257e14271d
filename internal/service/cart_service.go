package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/port"
)

const msgEmptyCart = "Cart is empty"

// OrderPlacer is the part of OrderService checkout needs.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, principal domain.Principal, lines []domain.LineRequest) (domain.Order, error)
}

type CartService struct {
	carts  port.CartRepository
	menu   port.MenuCatalog
	orders OrderPlacer
	lgr    *slog.Logger
}

func NewCartService(carts port.CartRepository, menu port.MenuCatalog, orders OrderPlacer, lgr *slog.Logger) (*CartService, error) {
	if carts == nil {
		return nil, errors.New("carts is nil")
	}
	if menu == nil {
		return nil, errors.New("menu is nil")
	}
	if orders == nil {
		return nil, errors.New("orders is nil")
	}
	if lgr == nil {
		lgr = slog.Default()
	}

	return &CartService{
		carts:  carts,
		menu:   menu,
		orders: orders,
		lgr:    lgr.With("component", "CartService"),
	}, nil
}

func (s *CartService) GetCart(ctx context.Context, principal domain.Principal) (domain.Cart, error) {
	if err := requireUser(principal); err != nil {
		return domain.Cart{}, err
	}

	cart, err := s.carts.GetCart(ctx, principal.ID)
	if err != nil {
		return domain.Cart{}, classify(ctx, s.lgr, "get cart", err)
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, principal domain.Principal, itemID int64, quantity int) (domain.Cart, error) {
	if err := validateCartLine(itemID, quantity); err != nil {
		return domain.Cart{}, err
	}

	if err := s.requireMenuItem(ctx, itemID); err != nil {
		return domain.Cart{}, err
	}

	return s.update(ctx, principal, "add cart item", func(c domain.Cart) domain.Cart {
		return c.Add(itemID, quantity)
	})
}

// SetQuantity replaces the quantity of a line; zero removes it.
func (s *CartService) SetQuantity(ctx context.Context, principal domain.Principal, itemID int64, quantity int) (domain.Cart, error) {
	if quantity < 0 {
		return domain.Cart{}, &domain.ValidationError{Field: "quantity", Message: "Quantity must be greater than 0"}
	}
	if quantity > domain.MaxLineQuantity {
		return domain.Cart{}, quantityTooLarge()
	}

	if quantity > 0 {
		if err := s.requireMenuItem(ctx, itemID); err != nil {
			return domain.Cart{}, err
		}
	}

	return s.update(ctx, principal, "set cart quantity", func(c domain.Cart) domain.Cart {
		return c.SetQuantity(itemID, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, principal domain.Principal, itemID int64) (domain.Cart, error) {
	return s.update(ctx, principal, "remove cart item", func(c domain.Cart) domain.Cart {
		return c.Remove(itemID)
	})
}

func (s *CartService) Clear(ctx context.Context, principal domain.Principal) error {
	_, err := s.update(ctx, principal, "clear cart", domain.Cart.Clear)
	return err
}

// Checkout places an order for the cart contents at current menu prices and empties the
// cart once the order is stored.
func (s *CartService) Checkout(ctx context.Context, principal domain.Principal) (domain.Order, error) {
	cart, err := s.GetCart(ctx, principal)
	if err != nil {
		return domain.Order{}, err
	}

	if cart.IsEmpty() {
		return domain.Order{}, &domain.ValidationError{Field: "cart", Message: msgEmptyCart}
	}

	order, err := s.orders.CreateOrder(ctx, principal, cart.Lines())
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.carts.SaveCart(ctx, cart.Clear()); err != nil {
		// the order is already committed
		s.lgr.WarnContext(ctx, "clear cart after checkout", "order_id", order.ID, "error", err)
	}

	return order, nil
}

func (s *CartService) update(ctx context.Context, principal domain.Principal, op string, apply func(domain.Cart) domain.Cart) (domain.Cart, error) {
	cart, err := s.GetCart(ctx, principal)
	if err != nil {
		return domain.Cart{}, err
	}

	next := apply(cart)
	next.OwnerID = principal.ID

	if err := next.Validate(); err != nil {
		return domain.Cart{}, err
	}

	if err := s.carts.SaveCart(ctx, next); err != nil {
		return domain.Cart{}, classify(ctx, s.lgr, op, err)
	}

	// re-read to pick up names and prices of newly added items
	saved, err := s.carts.GetCart(ctx, principal.ID)
	if err != nil {
		return domain.Cart{}, classify(ctx, s.lgr, "get cart", err)
	}
	return saved, nil
}

// requireMenuItem rejects items missing from the menu. Availability is checked at checkout.
func (s *CartService) requireMenuItem(ctx context.Context, itemID int64) error {
	items, err := s.menu.LookupMany(ctx, []int64{itemID})
	if err != nil {
		return classify(ctx, s.lgr, "lookup menu item", err)
	}
	if len(items) == 0 {
		return &domain.NotFoundError{Message: msgMenuItemNotFound}
	}
	return nil
}

func validateCartLine(itemID int64, quantity int) error {
	if itemID <= 0 || quantity == 0 {
		return &domain.ValidationError{Field: "item_id", Message: "Each item must have item_id and quantity"}
	}
	if quantity < 0 {
		return &domain.ValidationError{Field: "quantity", Message: "Quantity must be greater than 0"}
	}
	if quantity > domain.MaxLineQuantity {
		return quantityTooLarge()
	}
	return nil
}

func quantityTooLarge() error {
	return &domain.ValidationError{
		Field:   "quantity",
		Message: fmt.Sprintf("Quantity must not exceed %d", domain.MaxLineQuantity),
	}
}
