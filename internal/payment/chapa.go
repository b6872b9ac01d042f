package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

type chapaVerifyResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    *struct {
		TxRef    string          `json:"tx_ref"`
		Status   string          `json:"status"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
	} `json:"data"`
}

// ChapaClient проверяет транзакции через API провайдера Chapa.
type ChapaClient struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

func NewChapaClient(baseURL, secretKey string, timeout time.Duration) *ChapaClient {
	return &ChapaClient{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{Timeout: timeout},
	}
}

// Verify запрашивает статус транзакции с tx_ref равным id заказа.
// Возвращает entities.ErrPaymentNotVerified, если провайдер не знает транзакцию.
func (c *ChapaClient) Verify(ctx context.Context, order entities.Order) (entities.PaymentConfirmation, error) {
	txRef := order.ID
	endpoint, err := url.JoinPath(c.baseURL, "v1/transaction/verify", txRef)
	if err != nil {
		return entities.PaymentConfirmation{}, fmt.Errorf("failed to build verify url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.PaymentConfirmation{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	res, err := c.client.Do(req)
	if err != nil {
		return entities.PaymentConfirmation{}, fmt.Errorf("failed to call provider: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusInternalServerError {
		return entities.PaymentConfirmation{}, fmt.Errorf("provider responded with status %d", res.StatusCode)
	}

	var body chapaVerifyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entities.PaymentConfirmation{}, fmt.Errorf("failed to decode provider response: %w", err)
	}

	if res.StatusCode != http.StatusOK || body.Data == nil {
		return entities.PaymentConfirmation{}, fmt.Errorf("%w: %s", entities.ErrPaymentNotVerified, body.Message)
	}

	return entities.PaymentConfirmation{
		TxRef:    body.Data.TxRef,
		Status:   body.Data.Status,
		Amount:   body.Data.Amount,
		Currency: body.Data.Currency,
	}, nil
}

// NoopVerifier подтверждает любую транзакцию. Только для локальной разработки.
type NoopVerifier struct {
	logger   *slog.Logger
	currency string
}

func NewNoopVerifier(logger *slog.Logger, currency string) *NoopVerifier {
	return &NoopVerifier{
		logger:   logger.With(slog.String("verifier", "noop")),
		currency: currency,
	}
}

func (v *NoopVerifier) Verify(ctx context.Context, order entities.Order) (entities.PaymentConfirmation, error) {
	v.logger.WarnContext(ctx, "payment accepted without provider verification", slog.String("tx_ref", order.ID))
	return entities.PaymentConfirmation{
		TxRef:    order.ID,
		Status:   entities.PaymentStatusSuccess,
		Amount:   order.Total,
		Currency: v.currency,
	}, nil
}
