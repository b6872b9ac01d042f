package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderEvent(t *testing.T) {
	paidAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:            "123",
		Email:         "abebe@example.com",
		Total:         decimal.RequireFromString("24.8"),
		PaymentMethod: "chapa",
		IsPaid:        true,
		PaidAt:        &paidAt,
	}

	event := events.NewOrderEvent(events.OrderPaid, order, paidAt)

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, "order.paid", got["type"])
	assert.Equal(t, "123", got["order_id"])
	assert.Equal(t, "24.80", got["total"])
	assert.Equal(t, true, got["is_paid"])
	assert.Equal(t, "2026-10-19T12:00:00Z", got["paid_at"])
}

func TestNewOrderEvent_Unpaid(t *testing.T) {
	event := events.NewOrderEvent(events.OrderCreated, entities.Order{ID: "1", PaymentMethod: entities.PaymentMethodPending}, time.Now())

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "paid_at")

	assert.NoError(t, events.NopPublisher{}.Publish(context.Background(), event))
}
