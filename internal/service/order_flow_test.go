package service_test

import (
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/events"
	"github.com/nikolayk812/canteen/internal/repository"
	"github.com/nikolayk812/canteen/internal/service"
	"github.com/nikolayk812/canteen/internal/testdb"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

// orderFlowSuite runs the services against a real database.
type orderFlowSuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	container testcontainers.Container

	orders *service.OrderService
	menu   *service.MenuService
	carts  *service.CartService

	thali, biryani domain.MenuItem
}

func TestOrderFlowSuite(t *testing.T) {
	suite.Run(t, new(orderFlowSuite))
}

func (suite *orderFlowSuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error
	suite.container, suite.pool, err = testdb.Start(ctx)
	suite.Require().NoError(err)

	menuRepo := repository.NewMenu(suite.pool)

	suite.orders, err = service.NewOrderService(repository.NewTxManager(suite.pool), repository.NewOrder(suite.pool), events.Noop{}, discardLogger())
	suite.Require().NoError(err)

	suite.menu, err = service.NewMenuService(menuRepo, inr, discardLogger())
	suite.Require().NoError(err)

	suite.carts, err = service.NewCartService(repository.NewCart(suite.pool), menuRepo, suite.orders, discardLogger())
	suite.Require().NoError(err)
}

func (suite *orderFlowSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(suite.T().Context()))
	}
}

func (suite *orderFlowSuite) SetupTest() {
	ctx := suite.T().Context()
	suite.Require().NoError(testdb.Truncate(ctx, suite.pool))

	var err error
	suite.thali, err = suite.menu.AddMenuItem(ctx, staff, domain.MenuItem{
		Name: "Veg Thali", Category: "lunch", Price: money("50.00"), Available: true,
	})
	suite.Require().NoError(err)

	suite.biryani, err = suite.menu.AddMenuItem(ctx, staff, domain.MenuItem{
		Name: "Paneer Biryani", Category: "lunch", Price: money("120.00"), Available: true,
	})
	suite.Require().NoError(err)
}

func (suite *orderFlowSuite) TestCreateOrderSnapshotsPrices() {
	t := suite.T()
	ctx := t.Context()

	order, err := suite.orders.CreateOrder(ctx, customer, []domain.LineRequest{
		{ItemID: suite.thali.ID, Quantity: 2},
		{ItemID: suite.biryani.ID, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "220.00", order.Total.String())
	assert.Equal(t, domain.OrderStatusReceived, order.Status)

	_, err = suite.menu.UpdateMenuItem(ctx, staff, suite.thali.ID, domain.MenuItemUpdate{
		Price: lo.ToPtr(decimal.RequireFromString("65.00")),
	})
	require.NoError(t, err)

	stored, err := suite.orders.GetOrder(ctx, customer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "220.00", stored.Total.String())
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "50.00", stored.Items[0].Price.String())
	assert.Equal(t, "120.00", stored.Items[1].Price.String())

	require.NoError(t, suite.menu.DeleteMenuItem(ctx, staff, suite.biryani.ID))

	stored, err = suite.orders.GetOrder(ctx, staff, order.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assert.Nil(t, stored.Items[1].Name)
	assert.Equal(t, "120.00", stored.Items[1].Subtotal().String())
}

func (suite *orderFlowSuite) TestFailedCreatePersistsNothing() {
	unavailable, err := suite.menu.AddMenuItem(suite.T().Context(), staff, domain.MenuItem{
		Name: "Cold Coffee", Category: "beverages", Price: money("40.00"), Available: false,
	})
	suite.Require().NoError(err)

	tests := []struct {
		name      string
		lines     []domain.LineRequest
		wantError string
	}{
		{
			name:      "empty list",
			wantError: "Please provide items array with at least one item",
		},
		{
			name:      "non-positive quantity",
			lines:     []domain.LineRequest{{ItemID: suite.thali.ID, Quantity: -1}},
			wantError: "Quantity must be greater than 0",
		},
		{
			name:      "one unknown item",
			lines:     []domain.LineRequest{{ItemID: suite.thali.ID, Quantity: 1}, {ItemID: 999999, Quantity: 1}},
			wantError: "One or more menu items not found",
		},
		{
			name:      "one unavailable item",
			lines:     []domain.LineRequest{{ItemID: suite.thali.ID, Quantity: 1}, {ItemID: unavailable.ID, Quantity: 1}},
			wantError: "Item(s) not available: Cold Coffee",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			_, err := suite.orders.CreateOrder(ctx, customer, tt.lines)
			require.EqualError(t, err, tt.wantError)

			suite.assertRowCount("orders", 0)
			suite.assertRowCount("order_items", 0)
		})
	}
}

func (suite *orderFlowSuite) TestConcurrentCreates() {
	t := suite.T()
	ctx := t.Context()

	const n = 8

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		totals []string
		errs   []error
	)

	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()

			order, err := suite.orders.CreateOrder(ctx, customer, []domain.LineRequest{
				{ItemID: suite.thali.ID, Quantity: i + 1},
			})

			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, err)
			totals = append(totals, order.Total.String())
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.ElementsMatch(t, []string{"50.00", "100.00", "150.00", "200.00", "250.00", "300.00", "350.00", "400.00"}, totals)

	mine, err := suite.orders.ListMine(ctx, customer)
	require.NoError(t, err)
	assert.Len(t, mine, n)
}

func (suite *orderFlowSuite) TestStatusSequenceChangesOnlyStatus() {
	t := suite.T()
	ctx := t.Context()

	order, err := suite.orders.CreateOrder(ctx, customer, []domain.LineRequest{
		{ItemID: suite.thali.ID, Quantity: 2},
		{ItemID: suite.biryani.ID, Quantity: 1},
	})
	require.NoError(t, err)

	previous := order
	for _, status := range []string{"preparing", "ready", "completed"} {
		updated, err := suite.orders.SetStatus(ctx, staff, order.ID, status)
		require.NoError(t, err)

		assert.Equal(t, domain.OrderStatus(status), updated.Status)
		assert.True(t, updated.Total.Amount.Equal(order.Total.Amount))
		assert.Equal(t, len(order.Items), len(updated.Items))
		assert.Equal(t, order.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(previous.UpdatedAt))

		previous = updated
	}

	_, err = suite.orders.SetStatus(ctx, staff, order.ID, "cancelled")
	require.EqualError(t, err, "Invalid status. Must be one of: received, preparing, ready, completed")

	_, err = suite.orders.GetOrder(ctx, other, order.ID)
	require.EqualError(t, err, "Not authorized to view this order")

	all, err := suite.orders.ListAll(ctx, staff, "completed")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, order.ID, all[0].ID)
}

func (suite *orderFlowSuite) TestCartCheckout() {
	t := suite.T()
	ctx := t.Context()

	_, err := suite.carts.AddItem(ctx, customer, suite.thali.ID, 2)
	require.NoError(t, err)
	cart, err := suite.carts.AddItem(ctx, customer, suite.biryani.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "220.00", cart.Total(inr).String())

	order, err := suite.carts.Checkout(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, "220.00", order.Total.String())

	cart, err = suite.carts.GetCart(ctx, customer)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func (suite *orderFlowSuite) assertRowCount(table string, want int) {
	var got int
	err := suite.pool.QueryRow(suite.T().Context(), "SELECT count(*) FROM "+table).Scan(&got)
	suite.Require().NoError(err)
	suite.Equal(want, got, table)
}
