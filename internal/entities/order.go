package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShippingOption string

const (
	ShippingStandard ShippingOption = "standard"
	ShippingExpress  ShippingOption = "express"
)

// CartItem снимок позиции корзины на момент оформления заказа
type CartItem struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int
	Image    string
}

type Order struct {
	ID         string
	FullName   string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string

	PaymentMethod  string
	ShippingOption ShippingOption

	CartItems []CartItem

	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Tax          decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal

	IsPaid    bool
	PaidAt    *time.Time
	CreatedAt time.Time
}
