package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/payment"
	"github.com/shopspring/decimal"
)

// Order представляет заказ
type Order struct {
	ID             string     `json:"id"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	PostalCode     string     `json:"postalCode"`
	PaymentMethod  string     `json:"paymentMethod"`
	ShippingOption string     `json:"shippingOption"`
	CartItems      []CartItem `json:"cartItems"`
	Subtotal       float64    `json:"subtotal"`
	Discount       float64    `json:"discount"`
	Tax            float64    `json:"tax"`
	ShippingCost   float64    `json:"shippingCost"`
	Total          float64    `json:"total"`
	IsPaid         bool       `json:"isPaid"`
	PaidAt         *time.Time `json:"paidAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// CartItem позиция корзины на момент оформления
type CartItem struct {
	ID       string  `json:"id" validate:"notblank"`
	Name     string  `json:"name" validate:"notblank"`
	Price    float64 `json:"price" validate:"gte=0,lte=9999999999.99"`
	Quantity int     `json:"quantity" validate:"gte=1,lte=1000000"`
	Image    string  `json:"image,omitempty"`
}

// CreateOrderRequest данные формы оформления заказа
type CreateOrderRequest struct {
	FullName       string     `json:"fullName" validate:"notblank"`
	Email          string     `json:"email" validate:"required,email"`
	Phone          string     `json:"phone" validate:"required,phone"`
	Address        string     `json:"address" validate:"notblank"`
	City           string     `json:"city" validate:"notblank"`
	PostalCode     string     `json:"postalCode" validate:"required,postal_code"`
	ShippingOption string     `json:"shippingOption" validate:"required,shipping_option"`
	CartItems      []CartItem `json:"cartItems" validate:"required,min=1,dive"`

	// Суммы, посчитанные клиентом. Необязательны, но если есть, то все сразу.
	Subtotal     *float64 `json:"subtotal,omitempty" validate:"required_with=Total"`
	Discount     *float64 `json:"discount,omitempty" validate:"required_with=Total"`
	Tax          *float64 `json:"tax,omitempty" validate:"required_with=Total"`
	ShippingCost *float64 `json:"shippingCost,omitempty" validate:"required_with=Total"`
	Total        *float64 `json:"total,omitempty" validate:"required_with=Subtotal Discount Tax ShippingCost"`
}

// PayOrderRequest тело запроса оплаты
type PayOrderRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"notblank,ne=pending"`
}

// Checkout параметры виджета оплаты
type Checkout struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	TxRef       string `json:"tx_ref"`
	CallbackURL string `json:"callback_url"`
	ReturnURL   string `json:"return_url"`
}

func CartItemEntityToJSON(i entities.CartItem) CartItem {
	return CartItem{
		ID:       i.ID,
		Name:     i.Name,
		Price:    i.Price.InexactFloat64(),
		Quantity: i.Quantity,
		Image:    i.Image,
	}
}

func CartItemJSONToEntity(i CartItem) entities.CartItem {
	return entities.CartItem{
		ID:       i.ID,
		Name:     i.Name,
		Price:    decimal.NewFromFloat(i.Price),
		Quantity: i.Quantity,
		Image:    i.Image,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]CartItem, 0, len(o.CartItems))
	for _, it := range o.CartItems {
		items = append(items, CartItemEntityToJSON(it))
	}

	return Order{
		ID:             o.ID,
		FullName:       o.FullName,
		Email:          o.Email,
		Phone:          o.Phone,
		Address:        o.Address,
		City:           o.City,
		PostalCode:     o.PostalCode,
		PaymentMethod:  o.PaymentMethod,
		ShippingOption: string(o.ShippingOption),
		CartItems:      items,
		Subtotal:       o.Subtotal.InexactFloat64(),
		Discount:       o.Discount.InexactFloat64(),
		Tax:            o.Tax.InexactFloat64(),
		ShippingCost:   o.ShippingCost.InexactFloat64(),
		Total:          o.Total.InexactFloat64(),
		IsPaid:         o.IsPaid,
		PaidAt:         o.PaidAt,
		CreatedAt:      o.CreatedAt,
	}
}

func CreateOrderRequestToDraft(r CreateOrderRequest) checkout.Draft {
	items := make([]entities.CartItem, 0, len(r.CartItems))
	for _, it := range r.CartItems {
		items = append(items, CartItemJSONToEntity(it))
	}

	draft := checkout.Draft{
		FullName:       r.FullName,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		City:           r.City,
		PostalCode:     r.PostalCode,
		ShippingOption: entities.ShippingOption(r.ShippingOption),
		CartItems:      items,
	}
	if r.Total != nil {
		draft.ClientTotals = &checkout.Totals{
			Subtotal:     decimalOrZero(r.Subtotal),
			Discount:     decimalOrZero(r.Discount),
			Tax:          decimalOrZero(r.Tax),
			ShippingCost: decimalOrZero(r.ShippingCost),
			Total:        decimal.NewFromFloat(*r.Total),
		}
	}
	return draft
}

func CheckoutToJSON(c payment.Checkout) Checkout {
	return Checkout{
		Amount:      c.Amount,
		Currency:    c.Currency,
		Email:       c.Email,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		TxRef:       c.TxRef,
		CallbackURL: c.CallbackURL,
		ReturnURL:   c.ReturnURL,
	}
}

func decimalOrZero(f *float64) decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*f)
}
