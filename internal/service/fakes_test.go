package service_test

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/port"
	"github.com/nikolayk812/canteen/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var inr = currency.MustParseISO("INR")

var (
	customer = domain.Principal{ID: "user-1", Role: domain.RoleCustomer}
	other    = domain.Principal{ID: "user-2", Role: domain.RoleCustomer}
	staff    = domain.Principal{ID: "admin-1", Role: domain.RoleAdmin}
)

func money(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), inr)
}

type fakeMenu struct {
	items     map[int64]domain.MenuItem
	nextID    int64
	lookupErr error
}

func newFakeMenu() *fakeMenu {
	return &fakeMenu{
		nextID: 100,
		items: map[int64]domain.MenuItem{
			1: {ID: 1, Name: "Veg Thali", Price: money("50.00"), Category: "lunch", Available: true},
			2: {ID: 2, Name: "Paneer Biryani", Price: money("120.00"), Category: "lunch", Available: true},
			3: {ID: 3, Name: "Cold Coffee", Price: money("40.00"), Category: "beverages", Available: false},
		},
	}
}

func (m *fakeMenu) LookupMany(_ context.Context, ids []int64) ([]domain.MenuItem, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}

	var result []domain.MenuItem
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *fakeMenu) GetMenuItem(_ context.Context, id int64) (domain.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return domain.MenuItem{}, fmt.Errorf("q.GetMenuItem: %w", repository.ErrMenuItemNotFound)
	}
	return item, nil
}

func (m *fakeMenu) ListMenuItems(_ context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	var result []domain.MenuItem
	for _, id := range slices.Sorted(maps.Keys(m.items)) {
		item := m.items[id]
		if filter.Category != nil && item.Category != *filter.Category {
			continue
		}
		if filter.Available != nil && item.Available != *filter.Available {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func (m *fakeMenu) InsertMenuItem(_ context.Context, item domain.MenuItem) (int64, error) {
	m.nextID++
	item.ID = m.nextID
	m.items[item.ID] = item
	return item.ID, nil
}

func (m *fakeMenu) UpdateMenuItem(_ context.Context, id int64, update domain.MenuItemUpdate) error {
	item, ok := m.items[id]
	if !ok {
		return fmt.Errorf("q.UpdateMenuItem: %w", repository.ErrMenuItemNotFound)
	}
	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Price != nil {
		item.Price.Amount = *update.Price
	}
	if update.Available != nil {
		item.Available = *update.Available
	}
	m.items[id] = item
	return nil
}

func (m *fakeMenu) DeleteMenuItem(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("q.DeleteMenuItem: %w", repository.ErrMenuItemNotFound)
	}
	delete(m.items, id)
	return nil
}

// fakeOrders keeps orders in insertion order; newest is last.
type fakeOrders struct {
	mu        sync.Mutex
	orders    []domain.Order
	insertErr error
	updateErr error
	getErr    error
}

func (r *fakeOrders) GetOrder(_ context.Context, orderID uuid.UUID) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getErr != nil {
		return domain.Order{}, r.getErr
	}

	for _, o := range r.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, fmt.Errorf("withReadTx: q.GetOrder: %w", repository.ErrNotFound)
}

func (r *fakeOrders) SearchOrders(_ context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		o := r.orders[i]
		if len(filter.UserIDs) > 0 && !slices.Contains(filter.UserIDs, o.UserID) {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, o.Status) {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *fakeOrders) InsertOrder(_ context.Context, order domain.Order) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.insertErr != nil {
		return uuid.Nil, r.insertErr
	}

	now := time.Now()
	order.ID = uuid.New()
	order.CreatedAt = now
	order.UpdatedAt = now
	r.orders = append(r.orders, order)
	return order.ID, nil
}

func (r *fakeOrders) UpdateOrderStatus(_ context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return r.updateErr
	}

	for i := range r.orders {
		if r.orders[i].ID == orderID {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("q.UpdateOrderStatus: %w", repository.ErrNotFound)
}

func (r *fakeOrders) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

// fakeTxManager restores the order store when fn fails, like a rollback would.
type fakeTxManager struct {
	menu   *fakeMenu
	orders *fakeOrders
	calls  int
}

func (m *fakeTxManager) InTx(_ context.Context, fn func(repos port.TxRepositories) error) error {
	m.calls++

	m.orders.mu.Lock()
	snapshot := slices.Clone(m.orders.orders)
	m.orders.mu.Unlock()

	if err := fn(port.TxRepositories{Menu: m.menu, Orders: m.orders}); err != nil {
		m.orders.mu.Lock()
		m.orders.orders = snapshot
		m.orders.mu.Unlock()
		return err
	}
	return nil
}

type fakePublisher struct {
	events []domain.OrderEvent
	err    error
}

func (p *fakePublisher) PublishOrderEvent(_ context.Context, event domain.OrderEvent) error {
	p.events = append(p.events, event)
	return p.err
}

type fakeCarts struct {
	carts   map[string][]domain.CartItem
	menu    *fakeMenu
	saveErr error
}

func newFakeCarts(menu *fakeMenu) *fakeCarts {
	return &fakeCarts{carts: map[string][]domain.CartItem{}, menu: menu}
}

func (r *fakeCarts) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	var items []domain.CartItem
	for _, item := range r.carts[ownerID] {
		menuItem := r.menu.items[item.ItemID]
		item.Name = menuItem.Name
		item.Price = menuItem.Price
		item.Available = menuItem.Available
		items = append(items, item)
	}
	return domain.Cart{OwnerID: ownerID, Items: items}, nil
}

func (r *fakeCarts) SaveCart(_ context.Context, cart domain.Cart) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if cart.OwnerID == "" {
		return errors.New("ownerID is empty")
	}
	r.carts[cart.OwnerID] = slices.Clone(cart.Items)
	return nil
}
