package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/port"
	"github.com/nikolayk812/canteen/internal/pricing"
	"github.com/nikolayk812/canteen/internal/repository"
)

const (
	msgOrderNotFound    = "Order not found"
	msgOrderNotViewable = "Not authorized to view this order"
)

type OrderService struct {
	txm    port.TxManager
	orders port.OrderRepository
	events port.OrderEventPublisher
	lgr    *slog.Logger
	now    func() time.Time
}

func NewOrderService(txm port.TxManager, orders port.OrderRepository, events port.OrderEventPublisher, lgr *slog.Logger) (*OrderService, error) {
	if txm == nil {
		return nil, errors.New("txManager is nil")
	}
	if orders == nil {
		return nil, errors.New("orders is nil")
	}
	if events == nil {
		return nil, errors.New("events is nil")
	}
	if lgr == nil {
		lgr = slog.Default()
	}

	return &OrderService{
		txm:    txm,
		orders: orders,
		events: events,
		lgr:    lgr.With("component", "OrderService"),
		now:    time.Now,
	}, nil
}

// CreateOrder prices lines against the catalog and stores the order with its items in one
// transaction. Nothing is persisted when any step fails.
func (s *OrderService) CreateOrder(ctx context.Context, principal domain.Principal, lines []domain.LineRequest) (domain.Order, error) {
	var o domain.Order

	if err := requireUser(principal); err != nil {
		return o, err
	}

	if err := pricing.ValidateLines(lines); err != nil {
		return o, err
	}

	var orderID uuid.UUID
	err := s.txm.InTx(ctx, func(repos port.TxRepositories) error {
		engine, err := pricing.NewEngine(repos.Menu)
		if err != nil {
			return fmt.Errorf("pricing.NewEngine: %w", err)
		}

		quote, err := engine.Quote(ctx, lines)
		if err != nil {
			return err
		}

		orderID, err = repos.Orders.InsertOrder(ctx, quote.NewOrder(principal.ID))
		if err != nil {
			return fmt.Errorf("repos.Orders.InsertOrder: %w", err)
		}

		return nil
	})
	if err != nil {
		return o, classify(ctx, s.lgr, "create order", err)
	}

	o, err = s.orders.GetOrder(ctx, orderID)
	if err != nil {
		// committed already; a client retry would place a second order
		s.lgr.ErrorContext(ctx, "order committed but not read back", "order_id", orderID, "user_id", principal.ID, "error", err)
		return domain.Order{}, classify(ctx, s.lgr, "read order "+orderID.String(), err)
	}

	s.lgr.InfoContext(ctx, "order created", "order_id", o.ID, "user_id", o.UserID, "total", o.Total.String())
	s.publish(ctx, domain.OrderEventCreated, o)

	return o, nil
}

func (s *OrderService) GetOrder(ctx context.Context, principal domain.Principal, orderID uuid.UUID) (domain.Order, error) {
	var o domain.Order

	if err := requireUser(principal); err != nil {
		return o, err
	}

	o, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Order{}, &domain.NotFoundError{Message: msgOrderNotFound}
		}
		return domain.Order{}, classify(ctx, s.lgr, "get order", err)
	}

	if !principal.CanView(o) {
		return domain.Order{}, &domain.AuthorizationError{Message: msgOrderNotViewable}
	}

	return o, nil
}

// ListMine returns the principal's own orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, principal domain.Principal) ([]domain.Order, error) {
	if err := requireUser(principal); err != nil {
		return nil, err
	}

	orders, err := s.orders.SearchOrders(ctx, domain.OrderFilter{UserIDs: []string{principal.ID}})
	if err != nil {
		return nil, classify(ctx, s.lgr, "list orders", err)
	}

	return orders, nil
}

// ListAll returns every order for staff, optionally narrowed to one status. An empty
// status does not filter.
func (s *OrderService) ListAll(ctx context.Context, principal domain.Principal, status string) ([]domain.Order, error) {
	if err := requireStaff(principal); err != nil {
		return nil, err
	}

	var filter domain.OrderFilter
	if status != "" {
		parsed, err := domain.ParseStatusFilter(status)
		if err != nil {
			return nil, err
		}
		filter.Statuses = []domain.OrderStatus{parsed}
	}

	orders, err := s.orders.SearchOrders(ctx, filter)
	if err != nil {
		return nil, classify(ctx, s.lgr, "list orders", err)
	}

	return orders, nil
}

// SetStatus moves an order to any of the lifecycle statuses. Concurrent updates are last
// write wins.
func (s *OrderService) SetStatus(ctx context.Context, principal domain.Principal, orderID uuid.UUID, status string) (domain.Order, error) {
	var o domain.Order

	if err := requireStaff(principal); err != nil {
		return o, err
	}

	target, err := domain.ParseTargetStatus(status)
	if err != nil {
		return o, err
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderID, target); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return o, &domain.NotFoundError{Message: msgOrderNotFound}
		}
		return o, classify(ctx, s.lgr, "update order status", err)
	}

	o, err = s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Order{}, &domain.NotFoundError{Message: msgOrderNotFound}
		}
		return domain.Order{}, classify(ctx, s.lgr, "read order", err)
	}

	s.lgr.InfoContext(ctx, "order status updated", "order_id", o.ID, "status", o.Status, "by", principal.ID)
	s.publish(ctx, domain.OrderEventStatusChanged, o)

	return o, nil
}

// publish runs after commit; a failure is logged and never undoes the order.
func (s *OrderService) publish(ctx context.Context, eventType domain.OrderEventType, o domain.Order) {
	event := domain.NewOrderEvent(eventType, o, s.now().UTC())

	if err := s.events.PublishOrderEvent(ctx, event); err != nil {
		s.lgr.WarnContext(ctx, "publish order event", "order_id", o.ID, "type", eventType, "error", err)
	}
}
