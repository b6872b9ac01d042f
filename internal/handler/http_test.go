package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-order-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/payment"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "0b7f3c1e-3f1a-4d6e-9d7c-2a1b4c5d6e7f"

var createdAt = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func testOrder() entities.Order {
	return entities.Order{
		ID:             orderID,
		FullName:       "Abebe Bikila",
		Email:          "abebe@example.com",
		Phone:          "+251911234567",
		Address:        "Bole Road 12",
		City:           "Addis Ababa",
		PostalCode:     "10001",
		PaymentMethod:  entities.PaymentMethodPending,
		ShippingOption: entities.ShippingStandard,
		CartItems: []entities.CartItem{
			{ID: "doro-wat", Name: "Doro Wat", Price: decimal.RequireFromString("10"), Quantity: 2},
		},
		Subtotal:     decimal.RequireFromString("20"),
		Discount:     decimal.RequireFromString("2"),
		Tax:          decimal.RequireFromString("1.8"),
		ShippingCost: decimal.RequireFromString("5"),
		Total:        decimal.RequireFromString("24.8"),
		CreatedAt:    createdAt,
	}
}

func paidOrder(method string) entities.Order {
	o := testOrder()
	paidAt := createdAt.Add(time.Minute)
	o.IsPaid = true
	o.PaymentMethod = method
	o.PaidAt = &paidAt
	return o
}

const validCreateBody = `{
	"fullName": "Abebe Bikila",
	"email": "abebe@example.com",
	"phone": "+251911234567",
	"address": "Bole Road 12",
	"city": "Addis Ababa",
	"postalCode": "10001",
	"shippingOption": "standard",
	"cartItems": [{"id": "doro-wat", "name": "Doro Wat", "price": 10, "quantity": 2}]
}`

func newRouter(t *testing.T, svc *mocks.MockOrderService) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc, "chapa")

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validCreateBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(d checkout.Draft) bool {
						return d.Email == "abebe@example.com" &&
							d.ShippingOption == entities.ShippingStandard &&
							len(d.CartItems) == 1 &&
							d.CartItems[0].Price.Equal(decimal.NewFromInt(10)) &&
							d.ClientTotals == nil
					})).
					Return(testOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"isPaid":false`,
		},
		{
			name: "client totals are passed through",
			body: strings.Replace(validCreateBody, `"shippingOption"`,
				`"subtotal": 20, "discount": 2, "tax": 1.8, "shippingCost": 5, "total": 24.8, "shippingOption"`, 1),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(d checkout.Draft) bool {
						return d.ClientTotals != nil && d.ClientTotals.Total.Equal(decimal.RequireFromString("24.8"))
					})).
					Return(testOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"total":24.8`,
		},
		{
			name:         "partial client totals",
			body:         strings.Replace(validCreateBody, `"shippingOption"`, `"total": 24.8, "shippingOption"`, 1),
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"subtotal":"required_with"`,
		},
		{
			name:         "missing email",
			body:         strings.Replace(validCreateBody, `"email": "abebe@example.com",`, "", 1),
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"email":"required"`,
		},
		{
			name:         "empty cart",
			body:         strings.Replace(validCreateBody, `[{"id": "doro-wat", "name": "Doro Wat", "price": 10, "quantity": 2}]`, "[]", 1),
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"cartItems":"min"`,
		},
		{
			name:         "negative price",
			body:         strings.Replace(validCreateBody, `"price": 10`, `"price": -1`, 1),
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"price":"gte"`,
		},
		{
			name:         "zero quantity",
			body:         strings.Replace(validCreateBody, `"quantity": 2`, `"quantity": 0`, 1),
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"quantity":"gte"`,
		},
		{
			name:         "quantity above storage range",
			body:         strings.Replace(validCreateBody, `"quantity": 2`, `"quantity": 3000000000`, 1),
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"quantity":"lte"`,
		},
		{
			name:         "price above storage range",
			body:         strings.Replace(validCreateBody, `"price": 10`, `"price": 10000000000`, 1),
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"price":"lte"`,
		},
		{
			name: "order total above storage range",
			body: strings.Replace(validCreateBody, `"price": 10, "quantity": 2`, `"price": 9999999999, "quantity": 1000`, 1),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, fmt.Errorf("%w: order total exceeds 9999999999.99", entities.ErrInvalidOrder)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"message":"invalid order: order total exceeds 9999999999.99"`,
		},
		{
			name:         "unknown shipping option",
			body:         strings.Replace(validCreateBody, `"standard"`, `"drone"`, 1),
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"shippingOption":"shipping_option"`,
		},
		{
			name:         "malformed json",
			body:         `{"fullName":`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "totals mismatch",
			body: validCreateBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrTotalsMismatch).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"message":"order totals do not match cart"`,
		},
		{
			name: "internal error",
			body: validCreateBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(newRouter(t, svc), http.MethodPost, "/api/orders/create", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(testOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + orderID + `"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(newRouter(t, svc), http.MethodGet, "/api/orders/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var got handler.Order
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, 24.8, got.Total)
				assert.Equal(t, "standard", got.ShippingOption)
				assert.Nil(t, got.PaidAt)
				assert.True(t, createdAt.Equal(got.CreatedAt))
				require.Len(t, got.CartItems, 1)
				assert.Equal(t, 10.0, got.CartItems[0].Price)
			}
		})
	}
}

func TestHTTPHandler_PayOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"paymentMethod":"chapa"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PayOrder(mock.Anything, orderID, "chapa").Return(paidOrder("chapa"), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"isPaid":true`,
		},
		{
			name:         "missing payment method",
			body:         `{}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"paymentMethod":"notblank"`,
		},
		{
			name:         "pending is not a payment method",
			body:         `{"paymentMethod":"pending"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"paymentMethod":"ne"`,
		},
		{
			name: "already paid",
			body: `{"paymentMethod":"chapa"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PayOrder(mock.Anything, orderID, "chapa").Return(entities.Order{}, entities.ErrOrderAlreadyPaid).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order already paid"`,
		},
		{
			name: "payment not verified",
			body: `{"paymentMethod":"chapa"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PayOrder(mock.Anything, orderID, "chapa").Return(entities.Order{}, entities.ErrPaymentNotVerified).Once()
			},
			wantStatus: http.StatusPaymentRequired,
			wantBody:   `"payment not verified"`,
		},
		{
			name: "not found",
			body: `{"paymentMethod":"chapa"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PayOrder(mock.Anything, orderID, "chapa").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(newRouter(t, svc), http.MethodPatch, "/api/orders/"+orderID+"/pay", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_PaymentCheckout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().PaymentCheckout(mock.Anything, orderID).Return(payment.Checkout{
			Amount:   "24.80",
			Currency: "ETB",
			TxRef:    orderID,
		}, nil).Once()

		rr := serve(newRouter(t, svc), http.MethodGet, "/api/orders/"+orderID+"/checkout", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"amount":"24.80"`)
		assert.Contains(t, rr.Body.String(), `"tx_ref":"`+orderID+`"`)
	})

	t.Run("already paid", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().PaymentCheckout(mock.Anything, orderID).Return(payment.Checkout{}, entities.ErrOrderAlreadyPaid).Once()

		rr := serve(newRouter(t, svc), http.MethodGet, "/api/orders/"+orderID+"/checkout", "")

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHTTPHandler_PaymentCallback(t *testing.T) {
	t.Run("pays with configured provider", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().PayOrder(mock.Anything, orderID, "chapa").Return(paidOrder("chapa"), nil).Once()

		rr := serve(newRouter(t, svc), http.MethodGet, "/api/payments/callback?trx_ref="+orderID+"&status=success", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"paymentMethod":"chapa"`)
	})

	t.Run("missing trx_ref", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)

		rr := serve(newRouter(t, svc), http.MethodGet, "/api/payments/callback?status=success", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	testCases := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "db down", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := mocks.NewMockPinger(t)
			db.EXPECT().Ping(mock.Anything).Return(tc.pingErr).Once()

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			r := chi.NewRouter()
			handler.NewHealthHandler(logger, db).Init(r)

			rr := serve(r, http.MethodGet, "/healthz", "")
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
