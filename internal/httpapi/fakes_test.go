package httpapi_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/canteen/internal/domain"
)

type fakeOrderService struct {
	createFunc    func(p domain.Principal, lines []domain.LineRequest) (domain.Order, error)
	getFunc       func(p domain.Principal, id uuid.UUID) (domain.Order, error)
	listMineFunc  func(p domain.Principal) ([]domain.Order, error)
	listAllFunc   func(p domain.Principal, status string) ([]domain.Order, error)
	setStatusFunc func(p domain.Principal, id uuid.UUID, status string) (domain.Order, error)
}

func (s *fakeOrderService) CreateOrder(_ context.Context, p domain.Principal, lines []domain.LineRequest) (domain.Order, error) {
	return s.createFunc(p, lines)
}

func (s *fakeOrderService) GetOrder(_ context.Context, p domain.Principal, id uuid.UUID) (domain.Order, error) {
	return s.getFunc(p, id)
}

func (s *fakeOrderService) ListMine(_ context.Context, p domain.Principal) ([]domain.Order, error) {
	return s.listMineFunc(p)
}

func (s *fakeOrderService) ListAll(_ context.Context, p domain.Principal, status string) ([]domain.Order, error) {
	return s.listAllFunc(p, status)
}

func (s *fakeOrderService) SetStatus(_ context.Context, p domain.Principal, id uuid.UUID, status string) (domain.Order, error) {
	return s.setStatusFunc(p, id, status)
}

type fakeMenuService struct {
	listFunc   func(filter domain.MenuFilter) ([]domain.MenuItem, error)
	getFunc    func(id int64) (domain.MenuItem, error)
	addFunc    func(p domain.Principal, item domain.MenuItem) (domain.MenuItem, error)
	updateFunc func(p domain.Principal, id int64, update domain.MenuItemUpdate) (domain.MenuItem, error)
	deleteFunc func(p domain.Principal, id int64) error
}

func (s *fakeMenuService) ListMenu(_ context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	return s.listFunc(filter)
}

func (s *fakeMenuService) GetMenuItem(_ context.Context, id int64) (domain.MenuItem, error) {
	return s.getFunc(id)
}

func (s *fakeMenuService) AddMenuItem(_ context.Context, p domain.Principal, item domain.MenuItem) (domain.MenuItem, error) {
	return s.addFunc(p, item)
}

func (s *fakeMenuService) UpdateMenuItem(_ context.Context, p domain.Principal, id int64, update domain.MenuItemUpdate) (domain.MenuItem, error) {
	return s.updateFunc(p, id, update)
}

func (s *fakeMenuService) DeleteMenuItem(_ context.Context, p domain.Principal, id int64) error {
	return s.deleteFunc(p, id)
}

type fakeCartService struct {
	cart       domain.Cart
	err        error
	lastItemID int64
	lastQty    int
	cleared    bool
	checkout   domain.Order
}

func (s *fakeCartService) GetCart(context.Context, domain.Principal) (domain.Cart, error) {
	return s.cart, s.err
}

func (s *fakeCartService) AddItem(_ context.Context, _ domain.Principal, itemID int64, quantity int) (domain.Cart, error) {
	s.lastItemID, s.lastQty = itemID, quantity
	return s.cart, s.err
}

func (s *fakeCartService) SetQuantity(_ context.Context, _ domain.Principal, itemID int64, quantity int) (domain.Cart, error) {
	s.lastItemID, s.lastQty = itemID, quantity
	return s.cart, s.err
}

func (s *fakeCartService) RemoveItem(_ context.Context, _ domain.Principal, itemID int64) (domain.Cart, error) {
	s.lastItemID = itemID
	return s.cart, s.err
}

func (s *fakeCartService) Clear(context.Context, domain.Principal) error {
	s.cleared = true
	return s.err
}

func (s *fakeCartService) Checkout(context.Context, domain.Principal) (domain.Order, error) {
	return s.checkout, s.err
}

type fakeHealth struct {
	err error
}

func (h fakeHealth) Ping(context.Context) error {
	return h.err
}
