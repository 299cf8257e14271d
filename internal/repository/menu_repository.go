package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/canteen/internal/db"
	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/port"
	"github.com/samber/lo"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
)

type menuRepository struct {
	q *db.Queries
}

func NewMenu(pool *pgxpool.Pool) port.MenuRepository {
	return &menuRepository{
		q: db.New(pool),
	}
}

func NewMenuWithTx(tx pgx.Tx) port.MenuRepository {
	return &menuRepository{
		q: db.New(tx),
	}
}

func (r *menuRepository) LookupMany(ctx context.Context, ids []int64) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	dbItems, err := r.q.GetMenuItemsByIDs(ctx, lo.Uniq(ids))
	if err != nil {
		return nil, fmt.Errorf("q.GetMenuItemsByIDs: %w", err)
	}

	items, err := mapMenuItemsToDomain(dbItems)
	if err != nil {
		return nil, fmt.Errorf("mapMenuItemsToDomain: %w", err)
	}

	return items, nil
}

func (r *menuRepository) GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error) {
	dbItem, err := r.q.GetMenuItem(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MenuItem{}, fmt.Errorf("q.GetMenuItem: %w", ErrMenuItemNotFound)
		}
		return domain.MenuItem{}, fmt.Errorf("q.GetMenuItem: %w", err)
	}

	item, err := mapMenuItemToDomain(dbItem)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("mapMenuItemToDomain: %w", err)
	}

	return item, nil
}

func (r *menuRepository) ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	dbItems, err := r.q.ListMenuItems(ctx, db.ListMenuItemsParams{
		Category:  filter.Category,
		Available: filter.Available,
	})
	if err != nil {
		return nil, fmt.Errorf("q.ListMenuItems: %w", err)
	}

	items, err := mapMenuItemsToDomain(dbItems)
	if err != nil {
		return nil, fmt.Errorf("mapMenuItemsToDomain: %w", err)
	}

	return items, nil
}

func (r *menuRepository) InsertMenuItem(ctx context.Context, item domain.MenuItem) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("item.Validate: %w", err)
	}

	id, err := r.q.InsertMenuItem(ctx, db.InsertMenuItemParams{
		Name:          item.Name,
		Description:   item.Description,
		PriceAmount:   item.Price.Amount,
		PriceCurrency: item.Price.Currency.String(),
		Category:      item.Category,
		Image:         item.Image,
		Available:     item.Available,
	})
	if err != nil {
		return 0, fmt.Errorf("q.InsertMenuItem: %w", err)
	}

	return id, nil
}

// UpdateMenuItem writes only the fields set in update; the others keep their stored value.
func (r *menuRepository) UpdateMenuItem(ctx context.Context, id int64, update domain.MenuItemUpdate) error {
	if err := update.Validate(); err != nil {
		return fmt.Errorf("update.Validate: %w", err)
	}

	rowsAffected, err := r.q.UpdateMenuItem(ctx, db.UpdateMenuItemParams{
		Name:        update.Name,
		Description: update.Description,
		PriceAmount: update.Price,
		Category:    update.Category,
		Image:       update.Image,
		Available:   update.Available,
		ID:          id,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateMenuItem: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.UpdateMenuItem: %w", ErrMenuItemNotFound)
	}

	return nil
}

func (r *menuRepository) DeleteMenuItem(ctx context.Context, id int64) error {
	rowsAffected, err := r.q.DeleteMenuItem(ctx, id)
	if err != nil {
		return fmt.Errorf("q.DeleteMenuItem: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.DeleteMenuItem: %w", ErrMenuItemNotFound)
	}

	return nil
}

func mapMenuItemToDomain(row db.MenuItem) (domain.MenuItem, error) {
	price, err := toMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("toMoney: %w", err)
	}

	return domain.MenuItem{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       price,
		Category:    row.Category,
		Image:       row.Image,
		Available:   row.Available,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func mapMenuItemsToDomain(rows []db.MenuItem) ([]domain.MenuItem, error) {
	var items []domain.MenuItem

	for _, row := range rows {
		item, err := mapMenuItemToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapMenuItemToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
