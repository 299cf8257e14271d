package port

import (
	"context"

	"github.com/nikolayk812/canteen/internal/domain"
)

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}
