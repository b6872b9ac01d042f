package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/payment"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, draft checkout.Draft) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	PayOrder(ctx context.Context, orderID, paymentMethod string) (entities.Order, error)
	PaymentCheckout(ctx context.Context, orderID string) (payment.Checkout, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	// имя провайдера, которое записывается в заказ при оплате через callback
	provider string
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, provider string) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: checkout.NewValidator(),
		svc:      svc,
		provider: provider,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/orders/create", h.CreateOrder)
		r.Get("/orders/{id}", h.GetOrderByID)
		r.Patch("/orders/{id}/pay", h.PayOrder)
		r.Get("/orders/{id}/checkout", h.PaymentCheckout)
		r.Get("/payments/callback", h.PaymentCallback)
	})
}

// CreateOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Пересчитывает суммы на сервере и сохраняет неоплаченный заказ. Если клиент прислал суммы, они должны совпасть с серверными.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Данные формы оформления"
// @Success      201    {object}  Order
// @Failure      400    {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500    {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/create [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderRequestToDraft(req))
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create order")
		return
	}

	ordersCreated.WithLabelValues(string(order.ShippingOption)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Description  Возвращает заказ по его идентификатору
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	order, err := h.svc.GetOrderByID(r.Context(), orderID)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// PayOrder отмечает заказ оплаченным.
// @Summary      Оплатить заказ
// @Description  Проверяет платёж у провайдера и отмечает заказ оплаченным. Повторная оплата отклоняется.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path      string           true  "Идентификатор заказа"
// @Param        payment body      PayOrderRequest  true  "Способ оплаты"
// @Success      200     {object}  Order
// @Failure      400     {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      402     {object}  utils.ErrorResponse "Платёж не подтверждён провайдером"
// @Failure      404     {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409     {object}  utils.ErrorResponse "Заказ уже оплачен"
// @Failure      500     {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id}/pay [patch]
func (h *HTTPHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req PayOrderRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.pay(w, r, orderID, req.PaymentMethod)
}

// PaymentCheckout параметры виджета оплаты.
// @Summary      Параметры оплаты
// @Description  Возвращает параметры для открытия окна оплаты провайдера. В качестве tx_ref используется id заказа.
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Checkout
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже оплачен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id}/checkout [get]
func (h *HTTPHandler) PaymentCheckout(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	c, err := h.svc.PaymentCheckout(r.Context(), orderID)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to build checkout")
		return
	}

	utils.WriteJSON(w, CheckoutToJSON(c), http.StatusOK)
}

// PaymentCallback обрабатывает callback провайдера.
// @Summary      Callback провайдера оплаты
// @Description  Провайдер вызывает после оплаты. Статус из запроса не доверяется, платёж проверяется у провайдера.
// @Tags         payments
// @Produce      json
// @Param        trx_ref  query     string  true   "Идентификатор транзакции (id заказа)"
// @Param        status   query     string  false  "Статус платежа"
// @Success      200      {object}  Order
// @Failure      400      {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      402      {object}  utils.ErrorResponse "Платёж не подтверждён провайдером"
// @Failure      404      {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409      {object}  utils.ErrorResponse "Заказ уже оплачен"
// @Failure      500      {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/payments/callback [get]
func (h *HTTPHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	txRef := r.URL.Query().Get("trx_ref")
	if txRef == "" {
		// chapa присылает оба варианта
		txRef = r.URL.Query().Get("tx_ref")
	}
	if err := h.validate.Var(txRef, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	h.pay(w, r, txRef, h.provider)
}

func (h *HTTPHandler) pay(w http.ResponseWriter, r *http.Request, orderID, paymentMethod string) {
	order, err := h.svc.PayOrder(r.Context(), orderID, paymentMethod)
	if err != nil {
		if errors.Is(err, entities.ErrPaymentNotVerified) {
			paymentsRejected.Inc()
		}
		h.writeServiceError(w, r, err, "failed to pay order")
		return
	}

	ordersPaid.WithLabelValues(order.PaymentMethod).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrInvalidOrder), errors.Is(err, entities.ErrTotalsMismatch):
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderAlreadyPaid):
		utils.WriteError(w, "order already paid", http.StatusConflict)
	case errors.Is(err, entities.ErrPaymentNotVerified):
		utils.WriteError(w, "payment not verified", http.StatusPaymentRequired)
	default:
		h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
