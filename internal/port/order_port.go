package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/canteen/internal/domain"
)

type OrderRepository interface {
	// GetOrder returns the order with its items and item names read from one snapshot.
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)

	// SearchOrders returns matching orders newest first, each with its items.
	SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)

	InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error)

	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error
}
