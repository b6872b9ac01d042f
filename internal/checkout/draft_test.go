package checkout_test

import (
	"testing"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_Price(t *testing.T) {
	clientTotals := func(subtotal, discount, tax, shipping, total float64) *checkout.Totals {
		return &checkout.Totals{
			Subtotal:     decimal.NewFromFloat(subtotal),
			Discount:     decimal.NewFromFloat(discount),
			Tax:          decimal.NewFromFloat(tax),
			ShippingCost: decimal.NewFromFloat(shipping),
			Total:        decimal.NewFromFloat(total),
		}
	}

	testCases := []struct {
		name      string
		draft     checkout.Draft
		wantErr   error
		wantTotal string
	}{
		{
			name: "client totals match",
			draft: checkout.Draft{
				ShippingOption: entities.ShippingStandard,
				CartItems:      []entities.CartItem{item("10", 2)},
				ClientTotals:   clientTotals(20, 2, 1.8000000000000003, 5, 24.8),
			},
			wantTotal: "24.80",
		},
		{
			name: "no client totals",
			draft: checkout.Draft{
				ShippingOption: entities.ShippingExpress,
				CartItems:      []entities.CartItem{item("10", 2)},
			},
			wantTotal: "34.80",
		},
		{
			name: "tampered total",
			draft: checkout.Draft{
				ShippingOption: entities.ShippingStandard,
				CartItems:      []entities.CartItem{item("10", 2)},
				ClientTotals:   clientTotals(20, 2, 1.8, 5, 1),
			},
			wantErr: entities.ErrTotalsMismatch,
		},
		{
			name: "empty cart",
			draft: checkout.Draft{
				ShippingOption: entities.ShippingStandard,
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name: "zero quantity",
			draft: checkout.Draft{
				ShippingOption: entities.ShippingStandard,
				CartItems:      []entities.CartItem{item("10", 0)},
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name: "quantity above INT column",
			draft: checkout.Draft{
				ShippingOption: entities.ShippingStandard,
				CartItems:      []entities.CartItem{item("1", 3_000_000_000)},
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name: "price above max amount",
			draft: checkout.Draft{
				ShippingOption: entities.ShippingStandard,
				CartItems:      []entities.CartItem{item("10000000000", 1)},
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name: "subtotal overflows",
			draft: checkout.Draft{
				ShippingOption: entities.ShippingStandard,
				CartItems:      []entities.CartItem{item("9999999999.99", 2)},
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name: "large order within limits",
			draft: checkout.Draft{
				ShippingOption: entities.ShippingExpress,
				CartItems:      []entities.CartItem{item("9000000000", 1)},
			},
			wantTotal: "8910000015.00",
		},
		{
			name: "unknown shipping",
			draft: checkout.Draft{
				ShippingOption: "drone",
				CartItems:      []entities.CartItem{item("10", 2)},
			},
			wantErr: entities.ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.draft.Price()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, got.Total.StringFixed(2))
		})
	}
}
