package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/canteen/internal/db"
	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/port"
	"github.com/samber/lo"
)

type cartRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		dbtx: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		dbtx: tx, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	var c domain.Cart

	if ownerID == "" {
		return c, fmt.Errorf("ownerID is empty")
	}

	dbCartItems, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return c, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(dbCartItems)
	if err != nil {
		return c, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withTx(ctx, r.dbtx, func(q *db.Queries) (struct{}, error) {
		itemIDs := lo.Map(cart.Items, func(item domain.CartItem, _ int) int64 {
			return item.ItemID
		})

		if _, err := q.DeleteCartItemsNotIn(ctx, db.DeleteCartItemsNotInParams{
			OwnerID: cart.OwnerID,
			ItemIds: itemIDs,
		}); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCartItemsNotIn: %w", err)
		}

		for _, item := range cart.Items {
			qty, err := toInt32(item.Quantity)
			if err != nil {
				return struct{}{}, fmt.Errorf("item[%d]: %w", item.ItemID, err)
			}

			if err := q.UpsertCartItem(ctx, db.UpsertCartItemParams{
				OwnerID:  cart.OwnerID,
				ItemID:   item.ItemID,
				Quantity: qty,
			}); err != nil {
				return struct{}{}, fmt.Errorf("q.UpsertCartItem[%d]: %w", item.ItemID, err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartItem, error) {
	price, err := toMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("toMoney: %w", err)
	}

	return domain.CartItem{
		ItemID:    row.ItemID,
		Quantity:  int(row.Quantity),
		Name:      row.Name,
		Price:     price,
		Available: row.Available,
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
