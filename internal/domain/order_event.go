package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "created"
	OrderEventStatusChanged OrderEventType = "status_changed"
)

// OrderEvent describes a committed change to an order for downstream consumers.
type OrderEvent struct {
	Type       OrderEventType
	OrderID    uuid.UUID
	UserID     string
	Status     OrderStatus
	Total      Money
	ItemCount  int
	OccurredAt time.Time
}

func NewOrderEvent(eventType OrderEventType, o Order, at time.Time) OrderEvent {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}

	return OrderEvent{
		Type:       eventType,
		OrderID:    o.ID,
		UserID:     o.UserID,
		Status:     o.Status,
		Total:      o.Total,
		ItemCount:  count,
		OccurredAt: at,
	}
}
