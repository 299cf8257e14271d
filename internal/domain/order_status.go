package domain

import (
	"errors"
	"strings"
)

type OrderStatus string

// remember to add new statuses to the knownOrderStatuses map
const (
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// statuses staff can move an order into, in lifecycle order
var targetOrderStatuses = []OrderStatus{
	OrderStatusReceived,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusCompleted,
}

var knownOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusReceived:  {},
	OrderStatusPreparing: {},
	OrderStatusReady:     {},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ToOrderStatus accepts every status an order can be stored with, cancelled included.
func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := knownOrderStatuses[status]; ok {
		return status, nil
	}

	return "", ErrInvalidOrderStatus
}

// ParseTargetStatus validates a status requested by staff. Any of the four lifecycle
// statuses is accepted regardless of the current one.
func ParseTargetStatus(s string) (OrderStatus, error) {
	for _, status := range targetOrderStatuses {
		if string(status) == s {
			return status, nil
		}
	}

	return "", &ValidationError{
		Field:   "status",
		Message: "Invalid status. Must be one of: " + strings.Join(TargetOrderStatusNames(), ", "),
	}
}

func TargetOrderStatusNames() []string {
	names := make([]string, 0, len(targetOrderStatuses))
	for _, status := range targetOrderStatuses {
		names = append(names, string(status))
	}
	return names
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// ParseStatusFilter validates a status used to filter orders. Cancelled is accepted here
// because stored orders may carry it.
func ParseStatusFilter(s string) (OrderStatus, error) {
	status, err := ToOrderStatus(s)
	if err == nil {
		return status, nil
	}

	names := append(TargetOrderStatusNames(), string(OrderStatusCancelled))
	return "", &ValidationError{
		Field:   "status",
		Message: "Invalid status. Must be one of: " + strings.Join(names, ", "),
	}
}
