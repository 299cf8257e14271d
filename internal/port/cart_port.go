package port

import (
	"context"

	"github.com/nikolayk812/canteen/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)

	// SaveCart replaces the stored items of cart.OwnerID with cart.Items.
	SaveCart(ctx context.Context, cart domain.Cart) error
}
