package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/canteen/internal/db"
	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/port"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	ErrNotFound = errors.New("order not found")
)

type orderRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		dbtx: pool,
	}
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		dbtx: tx, // use provided transaction instead
	}
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	var o domain.Order

	if orderID == uuid.Nil {
		return o, fmt.Errorf("orderID is empty")
	}

	order, err := withReadTx(ctx, r.dbtx, func(q *db.Queries) (domain.Order, error) {
		dbOrder, err := q.GetOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return o, fmt.Errorf("q.GetOrder: %w", ErrNotFound)
			}
			return o, fmt.Errorf("q.GetOrder: %w", err)
		}

		dbOrderItems, err := q.GetOrderItemsByOrderIDs(ctx, []uuid.UUID{orderID})
		if err != nil {
			return o, fmt.Errorf("q.GetOrderItemsByOrderIDs: %w", err)
		}

		domainOrder, err := mapGetOrderRowToDomain(dbOrder)
		if err != nil {
			return o, fmt.Errorf("mapGetOrderRowToDomain: %w", err)
		}

		domainOrder.Items, err = mapOrderItemRowsToDomain(dbOrderItems)
		if err != nil {
			return o, fmt.Errorf("mapOrderItemRowsToDomain: %w", err)
		}

		return domainOrder, nil
	})
	if err != nil {
		return o, fmt.Errorf("withReadTx: %w", err)
	}

	return order, nil
}

// SearchOrders reads the order rows first and then batch-fetches their items, so an
// order without item rows is still returned.
func (r *orderRepository) SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	orders, err := withReadTx(ctx, r.dbtx, func(q *db.Queries) ([]domain.Order, error) {
		dbOrders, err := q.SearchOrders(ctx, mapDomainOrderFilterToDBFilter(filter))
		if err != nil {
			return nil, fmt.Errorf("q.SearchOrders: %w", err)
		}

		if len(dbOrders) == 0 {
			return nil, nil
		}

		orderIDs := lo.Map(dbOrders, func(row db.SearchOrdersRow, _ int) uuid.UUID {
			return row.ID
		})

		dbOrderItems, err := q.GetOrderItemsByOrderIDs(ctx, orderIDs)
		if err != nil {
			return nil, fmt.Errorf("q.GetOrderItemsByOrderIDs: %w", err)
		}

		itemsByOrder := lo.GroupBy(dbOrderItems, func(row db.GetOrderItemsByOrderIDsRow) uuid.UUID {
			return row.OrderID
		})

		result := make([]domain.Order, 0, len(dbOrders))
		for _, row := range dbOrders {
			order, err := mapSearchOrdersRowToDomain(row)
			if err != nil {
				return nil, fmt.Errorf("mapSearchOrdersRowToDomain: %w", err)
			}

			order.Items, err = mapOrderItemRowsToDomain(itemsByOrder[row.ID])
			if err != nil {
				return nil, fmt.Errorf("mapOrderItemRowsToDomain: %w", err)
			}

			result = append(result, order)
		}

		return result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("withReadTx: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error) {
	if len(order.Items) == 0 {
		return uuid.Nil, errors.New("no items in order")
	}

	if order.UserID == "" {
		return uuid.Nil, errors.New("userID is empty")
	}

	status := order.Status
	if status == "" {
		status = domain.OrderStatusReceived
	}

	quantities := make([]int32, len(order.Items))
	for idx, item := range order.Items {
		qty, err := toInt32(item.Quantity)
		if err != nil {
			return uuid.Nil, fmt.Errorf("items[%d]: %w", idx, err)
		}
		quantities[idx] = qty
	}

	orderID, err := withTx(ctx, r.dbtx, func(q *db.Queries) (uuid.UUID, error) {
		// Insert the order and get the generated order ID
		orderID, err := q.InsertOrder(ctx, db.InsertOrderParams{
			UserID:        order.UserID,
			TotalAmount:   order.Total.Amount,
			TotalCurrency: order.Total.Currency.String(),
			Status:        string(status),
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for idx, item := range order.Items {
			arg := db.InsertOrderItemParams{
				OrderID:       orderID,
				LineNo:        int32(idx + 1),
				ItemID:        item.ItemID,
				Quantity:      quantities[idx],
				PriceAmount:   item.Price.Amount,
				PriceCurrency: item.Price.Currency.String(),
			}
			if err := q.InsertOrderItem(ctx, arg); err != nil {
				return uuid.Nil, fmt.Errorf("q.InsertOrderItem[%d]: %w", idx, err)
			}
		}

		return orderID, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("withTx: %w", err)
	}

	return orderID, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	if orderID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}

	if status == "" {
		return fmt.Errorf("status is empty")
	}

	rowsAffected, err := r.q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		Status: string(status),
		ID:     orderID,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateOrderStatus: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("q.UpdateOrderStatus: %w", ErrNotFound)
	}

	return nil
}

func mapDomainOrderFilterToDBFilter(filter domain.OrderFilter) db.SearchOrdersParams {
	statuses := lo.Map(filter.Statuses, func(status domain.OrderStatus, _ int) string {
		return string(status)
	})

	return db.SearchOrdersParams{
		Ids:      nilSliceIfEmpty(filter.IDs),
		UserIds:  nilSliceIfEmpty(filter.UserIDs),
		Statuses: nilSliceIfEmpty(statuses),
	}
}

type orderRow struct {
	id            uuid.UUID
	userID        string
	totalAmount   decimal.Decimal
	totalCurrency string
	status        string
	userName      *string
	userEmail     *string
	createdAt     time.Time
	updatedAt     time.Time
}

func mapOrderRowToDomain(row orderRow) (domain.Order, error) {
	var o domain.Order

	total, err := toMoney(row.totalAmount, row.totalCurrency)
	if err != nil {
		return o, fmt.Errorf("toMoney: %w", err)
	}

	status, err := domain.ToOrderStatus(row.status)
	if err != nil {
		return o, fmt.Errorf("domain.ToOrderStatus[%s]: %w", row.status, err)
	}

	var user *domain.OrderUser
	if row.userName != nil || row.userEmail != nil {
		user = &domain.OrderUser{
			Name:  lo.FromPtr(row.userName),
			Email: lo.FromPtr(row.userEmail),
		}
	}

	return domain.Order{
		ID:        row.id,
		UserID:    row.userID,
		User:      user,
		Total:     total,
		Status:    status,
		CreatedAt: row.createdAt,
		UpdatedAt: row.updatedAt,
	}, nil
}

func mapGetOrderRowToDomain(row db.GetOrderRow) (domain.Order, error) {
	return mapOrderRowToDomain(orderRow{
		id:            row.ID,
		userID:        row.UserID,
		totalAmount:   row.TotalAmount,
		totalCurrency: row.TotalCurrency,
		status:        row.Status,
		userName:      row.UserName,
		userEmail:     row.UserEmail,
		createdAt:     row.CreatedAt,
		updatedAt:     row.UpdatedAt,
	})
}

func mapSearchOrdersRowToDomain(row db.SearchOrdersRow) (domain.Order, error) {
	return mapOrderRowToDomain(orderRow{
		id:            row.ID,
		userID:        row.UserID,
		totalAmount:   row.TotalAmount,
		totalCurrency: row.TotalCurrency,
		status:        row.Status,
		userName:      row.UserName,
		userEmail:     row.UserEmail,
		createdAt:     row.CreatedAt,
		updatedAt:     row.UpdatedAt,
	})
}

func mapOrderItemRowToDomain(row db.GetOrderItemsByOrderIDsRow) (domain.OrderItem, error) {
	price, err := toMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("toMoney: %w", err)
	}

	return domain.OrderItem{
		ItemID:   row.ItemID,
		Name:     row.ItemName,
		Quantity: int(row.Quantity),
		Price:    price,
	}, nil
}

func mapOrderItemRowsToDomain(rows []db.GetOrderItemsByOrderIDsRow) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(rows))

	for _, row := range rows {
		item, err := mapOrderItemRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapOrderItemRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

func toMoney(amount decimal.Decimal, code string) (domain.Money, error) {
	parsedCurrency, err := currency.ParseISO(code)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return domain.NewMoney(amount, parsedCurrency), nil
}

func toInt32(n int) (int32, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("quantity[%d] is out of int32 range", n)
	}
	return int32(n), nil
}

func nilSliceIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
