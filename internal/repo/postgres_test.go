package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/repo"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/testutil"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(createdAt time.Time) entities.Order {
	return entities.Order{
		ID:             uuid.NewString(),
		FullName:       "Abebe Bikila",
		Email:          "abebe@example.com",
		Phone:          "+251911234567",
		Address:        "Bole Road 12",
		City:           "Addis Ababa",
		PostalCode:     "10001",
		PaymentMethod:  entities.PaymentMethodPending,
		ShippingOption: entities.ShippingStandard,
		CartItems: []entities.CartItem{
			{ID: "doro-wat", Name: "Doro Wat", Price: decimal.RequireFromString("10"), Quantity: 2, Image: "/img/doro.jpg"},
			{ID: "buna", Name: "Buna", Price: decimal.RequireFromString("0"), Quantity: 1},
		},
		Subtotal:     decimal.RequireFromString("20.00"),
		Discount:     decimal.RequireFromString("2.00"),
		Tax:          decimal.RequireFromString("1.80"),
		ShippingCost: decimal.RequireFromString("5.00"),
		Total:        decimal.RequireFromString("24.80"),
		CreatedAt:    createdAt,
	}
}

func saveOrder(t *testing.T, ctx context.Context, tx trm.Manager, r interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.CartItem) error
}, o entities.Order) {
	t.Helper()
	err := tx.Do(ctx, func(ctx context.Context) error {
		if err := r.SaveOrder(ctx, o); err != nil {
			return err
		}
		return r.SaveItems(ctx, o.ID, o.CartItems)
	})
	require.NoError(t, err)
}

func TestPostgresRepo(t *testing.T) {
	db := testutil.NewTestDB(t)
	r := repo.NewPostgresRepo(db)
	tx := trm.NewManager(db)

	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("save and get order with items in order", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, db)

		want := newOrder(createdAt)
		saveOrder(t, ctx, tx, r, want)

		got, err := r.GetOrderByID(ctx, want.ID)
		require.NoError(t, err)

		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Email, got.Email)
		assert.Equal(t, want.ShippingOption, got.ShippingOption)
		assert.True(t, want.Total.Equal(got.Total))
		assert.False(t, got.IsPaid)
		assert.Nil(t, got.PaidAt)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
		require.Len(t, got.CartItems, 2)
		assert.Equal(t, "doro-wat", got.CartItems[0].ID)
		assert.Equal(t, 2, got.CartItems[0].Quantity)
		assert.Equal(t, "", got.CartItems[1].Image)
	})

	t.Run("save is idempotent", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, db)

		o := newOrder(createdAt)
		saveOrder(t, ctx, tx, r, o)
		saveOrder(t, ctx, tx, r, o)

		got, err := r.GetOrderByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Len(t, got.CartItems, 2)
	})

	t.Run("get unknown order", func(t *testing.T) {
		_, err := r.GetOrderByID(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("mark paid once", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, db)

		o := newOrder(createdAt)
		saveOrder(t, ctx, tx, r, o)

		paidAt := createdAt.Add(time.Minute)
		got, err := r.MarkOrderPaid(ctx, o.ID, "chapa", paidAt)
		require.NoError(t, err)
		assert.True(t, got.IsPaid)
		assert.Equal(t, "chapa", got.PaymentMethod)
		require.NotNil(t, got.PaidAt)
		assert.True(t, paidAt.Equal(*got.PaidAt))
		assert.Len(t, got.CartItems, 2)

		_, err = r.MarkOrderPaid(ctx, o.ID, "telebirr", paidAt.Add(time.Minute))
		assert.ErrorIs(t, err, entities.ErrOrderAlreadyPaid)

		stored, err := r.GetOrderByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, "chapa", stored.PaymentMethod)
		assert.True(t, paidAt.Equal(*stored.PaidAt))
	})

	t.Run("mark paid unknown order", func(t *testing.T) {
		_, err := r.MarkOrderPaid(context.Background(), uuid.NewString(), "chapa", time.Now())
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("latest orders", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, db)

		older := newOrder(createdAt.Add(-time.Hour))
		newer := newOrder(createdAt)
		saveOrder(t, ctx, tx, r, older)
		saveOrder(t, ctx, tx, r, newer)

		got, err := r.LatestOrders(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, newer.ID, got[0].ID)
		assert.Len(t, got[0].CartItems, 2)
	})
}
