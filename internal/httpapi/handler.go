// Package httpapi exposes the canteen services over JSON/HTTP.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikolayk812/canteen/internal/domain"
	"golang.org/x/text/currency"
)

type OrderService interface {
	CreateOrder(ctx context.Context, principal domain.Principal, lines []domain.LineRequest) (domain.Order, error)
	GetOrder(ctx context.Context, principal domain.Principal, orderID uuid.UUID) (domain.Order, error)
	ListMine(ctx context.Context, principal domain.Principal) ([]domain.Order, error)
	ListAll(ctx context.Context, principal domain.Principal, status string) ([]domain.Order, error)
	SetStatus(ctx context.Context, principal domain.Principal, orderID uuid.UUID, status string) (domain.Order, error)
}

type MenuService interface {
	ListMenu(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error)
	AddMenuItem(ctx context.Context, principal domain.Principal, item domain.MenuItem) (domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, principal domain.Principal, id int64, update domain.MenuItemUpdate) (domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, principal domain.Principal, id int64) error
}

type CartService interface {
	GetCart(ctx context.Context, principal domain.Principal) (domain.Cart, error)
	AddItem(ctx context.Context, principal domain.Principal, itemID int64, quantity int) (domain.Cart, error)
	SetQuantity(ctx context.Context, principal domain.Principal, itemID int64, quantity int) (domain.Cart, error)
	RemoveItem(ctx context.Context, principal domain.Principal, itemID int64) (domain.Cart, error)
	Clear(ctx context.Context, principal domain.Principal) error
	Checkout(ctx context.Context, principal domain.Principal) (domain.Order, error)
}

// HealthChecker is satisfied by *pgxpool.Pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Orders   OrderService
	Menu     MenuService
	Carts    CartService
	Auth     Authenticator
	Health   HealthChecker
	Currency currency.Unit
	Logger   *slog.Logger
}

type Handler struct {
	orders   OrderService
	menu     MenuService
	carts    CartService
	auth     Authenticator
	health   HealthChecker
	currency currency.Unit
	lgr      *slog.Logger
}

func NewHandler(deps Deps) (*Handler, error) {
	switch {
	case deps.Orders == nil:
		return nil, errors.New("orders is nil")
	case deps.Menu == nil:
		return nil, errors.New("menu is nil")
	case deps.Carts == nil:
		return nil, errors.New("carts is nil")
	case deps.Auth == nil:
		return nil, errors.New("auth is nil")
	case deps.Health == nil:
		return nil, errors.New("health is nil")
	}

	lgr := deps.Logger
	if lgr == nil {
		lgr = slog.Default()
	}

	return &Handler{
		orders:   deps.Orders,
		menu:     deps.Menu,
		carts:    deps.Carts,
		auth:     deps.Auth,
		health:   deps.Health,
		currency: deps.Currency,
		lgr:      lgr,
	}, nil
}

// Routes returns the full router wrapped in recovery, request id and access log middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.healthCheck)

	mux.Handle("POST /api/orders", h.requireAuth(h.createOrder))
	mux.Handle("GET /api/orders/mine", h.requireAuth(h.listMyOrders))
	mux.Handle("GET /api/orders/user", h.requireAuth(h.listMyOrders))
	mux.Handle("GET /api/orders/all", h.requireStaff(h.listAllOrders))
	mux.Handle("GET /api/orders/admin", h.requireStaff(h.listAllOrders))
	mux.Handle("GET /api/orders/{id}", h.requireAuth(h.getOrder))
	mux.Handle("PUT /api/orders/{id}/status", h.requireStaff(h.setOrderStatus))

	mux.HandleFunc("GET /api/menu", h.listMenu)
	mux.HandleFunc("GET /api/menu/{id}", h.getMenuItem)
	mux.Handle("POST /api/menu", h.requireStaff(h.addMenuItem))
	mux.Handle("PUT /api/menu/{id}", h.requireStaff(h.updateMenuItem))
	mux.Handle("DELETE /api/menu/{id}", h.requireStaff(h.deleteMenuItem))

	mux.Handle("GET /api/cart", h.requireAuth(h.getCart))
	mux.Handle("DELETE /api/cart", h.requireAuth(h.clearCart))
	mux.Handle("POST /api/cart/items", h.requireAuth(h.addCartItem))
	mux.Handle("PUT /api/cart/items/{item_id}", h.requireAuth(h.setCartItem))
	mux.Handle("DELETE /api/cart/items/{item_id}", h.requireAuth(h.removeCartItem))
	mux.Handle("POST /api/cart/checkout", h.requireAuth(h.checkout))

	return h.recoverPanics(h.withRequestID(h.logRequests(mux)))
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Ping(r.Context()); err != nil {
		h.lgr.WarnContext(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, envelope{Success: false, Message: "Database unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "OK"})
}
