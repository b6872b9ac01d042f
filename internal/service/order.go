package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/clock"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/events"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/payment"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"
	"github.com/google/uuid"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.CartItem) error

	// Переводит заказ в оплаченные только если он ещё не оплачен
	MarkOrderPaid(ctx context.Context, orderID, paymentMethod string, paidAt time.Time) (entities.Order, error)
}

// Cache хранит только оплаченные заказы: после оплаты заказ больше не меняется,
// поэтому запись не может устареть. Неоплаченные всегда читаются из базы.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}

type PaymentVerifier interface {
	Verify(ctx context.Context, order entities.Order) (entities.PaymentConfirmation, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.OrderEvent) error
}

var retryConfig = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

type orderService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	repo        OrderRepo
	cache       Cache
	verifier    PaymentVerifier
	publisher   EventPublisher
	clock       clock.Clock
	checkoutCfg payment.CheckoutConfig
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	cache Cache,
	verifier PaymentVerifier,
	publisher EventPublisher,
	clk clock.Clock,
	checkoutCfg payment.CheckoutConfig,
) *orderService {
	return &orderService{
		logger:      logger.With(slog.String("service", "order")),
		txManager:   txManager,
		repo:        repo,
		cache:       cache,
		verifier:    verifier,
		publisher:   publisher,
		clock:       clk,
		checkoutCfg: checkoutCfg,
	}
}

// CreateOrder пересчитывает суммы на сервере и сохраняет заказ как неоплаченный.
func (s *orderService) CreateOrder(ctx context.Context, draft checkout.Draft) (entities.Order, error) {
	totals, err := draft.Price()
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:             uuid.NewString(),
		FullName:       draft.FullName,
		Email:          draft.Email,
		Phone:          draft.Phone,
		Address:        draft.Address,
		City:           draft.City,
		PostalCode:     draft.PostalCode,
		PaymentMethod:  entities.PaymentMethodPending,
		ShippingOption: draft.ShippingOption,
		CartItems:      slices.Clone(draft.CartItems),
		Subtotal:       totals.Subtotal,
		Discount:       totals.Discount,
		Tax:            totals.Tax,
		ShippingCost:   totals.ShippingCost,
		Total:          totals.Total,
		// postgres хранит время с точностью до микросекунд
		CreatedAt: s.clock.Now().Truncate(time.Microsecond),
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveItems(ctx, order.ID, order.CartItems); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}
			return nil
		})
	}
	if err := utils.Retry(ctx, retryConfig, fn); err != nil {
		return entities.Order{}, err
	}

	s.logger.DebugContext(ctx, "order created", slog.String("order_id", order.ID), slog.String("total", order.Total.StringFixed(2)))
	s.publish(ctx, events.OrderCreated, order)
	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if err := validateID(orderID); err != nil {
		return entities.Order{}, err
	}

	if data, ok := s.cache.Get(ctx, orderID); ok {
		var order entities.Order
		err := order.Unmarshal(data)
		if err == nil {
			return order, nil
		}
		s.logger.ErrorContext(ctx, "failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
		s.cache.Delete(ctx, orderID)
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	s.cachePaid(ctx, order)
	return order, nil
}

// PayOrder отмечает заказ оплаченным после подтверждения платежа провайдером.
// Повторная оплата отклоняется с ErrOrderAlreadyPaid, момент оплаты не перезаписывается.
func (s *orderService) PayOrder(ctx context.Context, orderID, paymentMethod string) (entities.Order, error) {
	if err := validateID(orderID); err != nil {
		return entities.Order{}, err
	}
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" || paymentMethod == entities.PaymentMethodPending {
		return entities.Order{}, fmt.Errorf("%w: payment method is required", entities.ErrInvalidOrder)
	}

	// кэш может отставать от базы, поэтому читаем напрямую
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.IsPaid {
		return entities.Order{}, entities.ErrOrderAlreadyPaid
	}

	confirmation, err := s.verifier.Verify(ctx, order)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to verify payment: %w", err)
	}
	if err := s.checkConfirmation(order, confirmation); err != nil {
		s.logger.WarnContext(ctx, "payment rejected", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}

	paidAt := s.clock.Now().Truncate(time.Microsecond)
	if paidAt.Before(order.CreatedAt) {
		paidAt = order.CreatedAt
	}

	paid, err := utils.RetryValue(ctx, retryConfig, func() (entities.Order, error) {
		return s.repo.MarkOrderPaid(ctx, orderID, paymentMethod, paidAt)
	}, entities.ErrOrderNotFound, entities.ErrOrderAlreadyPaid)
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order paid", slog.String("order_id", orderID), slog.String("payment_method", paymentMethod))
	s.cachePaid(ctx, paid)
	s.publish(ctx, events.OrderPaid, paid)
	return paid, nil
}

// PaymentCheckout параметры для открытия окна оплаты провайдера.
func (s *orderService) PaymentCheckout(ctx context.Context, orderID string) (payment.Checkout, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return payment.Checkout{}, err
	}
	if order.IsPaid {
		return payment.Checkout{}, entities.ErrOrderAlreadyPaid
	}
	return payment.NewCheckout(s.checkoutCfg, order), nil
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to get latest orders: %w", err)
	}
	cached := 0
	for _, order := range orders {
		if s.cachePaid(ctx, order) {
			cached++
		}
	}
	s.logger.InfoContext(ctx, "cache warmed up", slog.Int("orders", cached))
	return nil
}

func (s *orderService) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	return utils.RetryValue(ctx, retryConfig, func() (entities.Order, error) {
		return s.repo.GetOrderByID(ctx, orderID)
	}, entities.ErrOrderNotFound)
}

func (s *orderService) checkConfirmation(order entities.Order, c entities.PaymentConfirmation) error {
	switch {
	case !c.Succeeded():
		return fmt.Errorf("%w: status %q", entities.ErrPaymentNotVerified, c.Status)
	case c.TxRef != order.ID:
		return fmt.Errorf("%w: tx_ref %q does not match order", entities.ErrPaymentNotVerified, c.TxRef)
	case !strings.EqualFold(c.Currency, s.checkoutCfg.Currency):
		return fmt.Errorf("%w: currency %q", entities.ErrPaymentNotVerified, c.Currency)
	case c.Amount.LessThan(order.Total):
		return fmt.Errorf("%w: paid %s of %s", entities.ErrPaymentNotVerified, c.Amount.StringFixed(2), order.Total.StringFixed(2))
	}
	return nil
}

func (s *orderService) cachePaid(ctx context.Context, order entities.Order) bool {
	if !order.IsPaid {
		return false
	}
	data, err := order.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return false
	}
	s.cache.Set(ctx, order.ID, data)
	return true
}

// Заказ уже сохранён, поэтому ошибка публикации только логируется
func (s *orderService) publish(ctx context.Context, t events.Type, order entities.Order) {
	if err := s.publisher.Publish(ctx, events.NewOrderEvent(t, order, s.clock.Now())); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event", slog.String("type", string(t)), slog.String("order_id", order.ID), slog.Any("error", err))
	}
}

func validateID(orderID string) error {
	if _, err := uuid.Parse(orderID); err != nil {
		return fmt.Errorf("%w: malformed id", entities.ErrOrderNotFound)
	}
	return nil
}
