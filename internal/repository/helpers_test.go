package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

var inr = currency.MustParseISO("INR")

func randomMenuItem() domain.MenuItem {
	return domain.MenuItem{
		Name:        gofakeit.Dinner(),
		Description: lo.ToPtr(gofakeit.Sentence(6)),
		Price:       domain.NewMoney(decimal.NewFromFloat(gofakeit.Price(10, 300)).Round(2), inr),
		Category:    gofakeit.RandomString([]string{"breakfast", "lunch", "snacks", "beverages"}),
		Image:       lo.ToPtr(gofakeit.URL()),
		Available:   true,
	}
}

// randomOrder builds an order over the given menu items with a consistent total.
func randomOrder(userID string, items ...domain.MenuItem) domain.Order {
	total := domain.ZeroMoney(inr)

	var orderItems []domain.OrderItem
	for _, item := range items {
		quantity := gofakeit.Number(1, 4)
		orderItems = append(orderItems, domain.OrderItem{
			ItemID:   item.ID,
			Name:     lo.ToPtr(item.Name),
			Quantity: quantity,
			Price:    item.Price,
		})
		total.Amount = total.Amount.Add(item.Price.Times(quantity).Amount)
	}

	return domain.Order{
		UserID: userID,
		Total:  total,
		Status: domain.OrderStatusReceived,
		Items:  orderItems,
	}
}

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.Order{}, "ID", "CreatedAt", "UpdatedAt"),
		cmpopts.EquateEmpty(),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.NotEqual(t, uuid.Nil, actual.ID)
	assert.False(t, actual.CreatedAt.IsZero())
	assert.False(t, actual.UpdatedAt.IsZero())
}

func assertMenuItem(t *testing.T, expected, actual domain.MenuItem) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.MenuItem{}, "CreatedAt", "UpdatedAt"),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
