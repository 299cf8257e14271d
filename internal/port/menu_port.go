package port

import (
	"context"

	"github.com/nikolayk812/canteen/internal/domain"
)

// MenuCatalog is the read side of the menu needed to price an order.
type MenuCatalog interface {
	// LookupMany returns the existing items among ids in one round trip. Missing ids are
	// silently absent from the result.
	LookupMany(ctx context.Context, ids []int64) ([]domain.MenuItem, error)
}

type MenuRepository interface {
	MenuCatalog

	GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error)
	ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)

	InsertMenuItem(ctx context.Context, item domain.MenuItem) (int64, error)
	UpdateMenuItem(ctx context.Context, id int64, update domain.MenuItemUpdate) error
	DeleteMenuItem(ctx context.Context, id int64) error
}
