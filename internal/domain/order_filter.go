package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// OrderFilter has AND semantics across fields, OR semantics within each field slice.
// An empty filter matches every order.
type OrderFilter struct {
	IDs      []uuid.UUID
	UserIDs  []string
	Statuses []OrderStatus
}

func (f OrderFilter) Validate() error {
	for _, status := range f.Statuses {
		if _, err := ToOrderStatus(string(status)); err != nil {
			return fmt.Errorf("statuses[%s]: %w", status, err)
		}
	}

	for _, id := range f.IDs {
		if id == uuid.Nil {
			return fmt.Errorf("ids: nil uuid")
		}
	}

	return nil
}
