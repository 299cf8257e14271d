package repository_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/nikolayk812/canteen/internal/port"
	"github.com/nikolayk812/canteen/internal/repository"
	"github.com/nikolayk812/canteen/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

type cartRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	repo      port.CartRepository
	menu      port.MenuRepository
	container testcontainers.Container

	items []domain.MenuItem
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before all tests in the suite
func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error
	suite.container, suite.pool, err = testdb.Start(ctx)
	suite.Require().NoError(err)

	suite.repo = repository.NewCart(suite.pool)
	suite.menu = repository.NewMenu(suite.pool)

	for range 3 {
		item := randomMenuItem()
		item.ID, err = suite.menu.InsertMenuItem(ctx, item)
		suite.Require().NoError(err)
		suite.items = append(suite.items, item)
	}
}

// after all tests in the suite
func (suite *cartRepositorySuite) TearDownSuite() {
	ctx := suite.T().Context()

	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(ctx))
	}
}

func (suite *cartRepositorySuite) TestSaveCart() {
	tests := []struct {
		name      string
		cartFunc  func(ownerID string) domain.Cart
		wantError string
	}{
		{
			name: "single item: ok",
			cartFunc: func(ownerID string) domain.Cart {
				return domain.Cart{OwnerID: ownerID}.Add(suite.items[0].ID, 2)
			},
		},
		{
			name: "several items: ok",
			cartFunc: func(ownerID string) domain.Cart {
				return domain.Cart{OwnerID: ownerID}.
					Add(suite.items[0].ID, 1).
					Add(suite.items[1].ID, 3).
					Add(suite.items[2].ID, 1)
			},
		},
		{
			name: "empty cart: ok",
			cartFunc: func(ownerID string) domain.Cart {
				return domain.Cart{OwnerID: ownerID}
			},
		},
		{
			name: "empty owner: fail",
			cartFunc: func(string) domain.Cart {
				return domain.Cart{}.Add(suite.items[0].ID, 1)
			},
			wantError: "ownerID is empty",
		},
		{
			name: "quantity beyond int32: fail",
			cartFunc: func(ownerID string) domain.Cart {
				return domain.Cart{OwnerID: ownerID}.Add(suite.items[0].ID, math.MaxInt32+1)
			},
			wantError: fmt.Sprintf("withTx: item[%d]: quantity[2147483648] is out of int32 range", suite.items[0].ID),
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ownerID := gofakeit.UUID()
			cart := tt.cartFunc(ownerID)

			err := suite.repo.SaveCart(ctx, cart)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			actual, err := suite.repo.GetCart(ctx, ownerID)
			require.NoError(t, err)

			assertCart(t, suite.withDisplayFields(cart), actual)
		})
	}
}

func (suite *cartRepositorySuite) TestSaveCartReplaces() {
	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()

	first := domain.Cart{OwnerID: ownerID}.
		Add(suite.items[0].ID, 1).
		Add(suite.items[1].ID, 1)
	require.NoError(t, suite.repo.SaveCart(ctx, first))

	second := first.Remove(suite.items[0].ID).SetQuantity(suite.items[1].ID, 5)
	require.NoError(t, suite.repo.SaveCart(ctx, second))

	actual, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assertCart(t, suite.withDisplayFields(second), actual)

	require.NoError(t, suite.repo.SaveCart(ctx, second.Clear()))

	actual, err = suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, actual.IsEmpty())
}

func (suite *cartRepositorySuite) TestCartsAreIsolated() {
	t := suite.T()
	ctx := t.Context()

	alice, bob := gofakeit.UUID(), gofakeit.UUID()

	require.NoError(t, suite.repo.SaveCart(ctx, domain.Cart{OwnerID: alice}.Add(suite.items[0].ID, 1)))
	require.NoError(t, suite.repo.SaveCart(ctx, domain.Cart{OwnerID: bob}.Add(suite.items[1].ID, 2)))
	require.NoError(t, suite.repo.SaveCart(ctx, domain.Cart{OwnerID: alice}))

	actual, err := suite.repo.GetCart(ctx, bob)
	require.NoError(t, err)
	require.Len(t, actual.Items, 1)
	assert.Equal(t, suite.items[1].ID, actual.Items[0].ItemID)
}

func (suite *cartRepositorySuite) TestGetCartEmptyOwner() {
	_, err := suite.repo.GetCart(suite.T().Context(), "")
	suite.EqualError(err, "ownerID is empty")
}

// withDisplayFields fills the menu fields GetCart joins in.
func (suite *cartRepositorySuite) withDisplayFields(cart domain.Cart) domain.Cart {
	for i, cartItem := range cart.Items {
		for _, item := range suite.items {
			if item.ID == cartItem.ItemID {
				cart.Items[i].Name = item.Name
				cart.Items[i].Price = item.Price
				cart.Items[i].Available = item.Available
			}
		}
	}
	return cart
}

func assertCart(t *testing.T, expected domain.Cart, actual domain.Cart) {
	t.Helper()

	// Ignore the CreatedAt field in CartItem and
	// Treat empty slices as equal to nil
	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt"),
		cmpopts.EquateEmpty(),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
