package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "full_name", "email", "phone", "address", "city", "postal_code",
	"payment_method", "shipping_option",
	"subtotal", "discount", "tax", "shipping_cost", "total",
	"is_paid", "paid_at", "created_at",
}

var itemColumns = []string{
	"order_id", "position", "item_id", "name", "price", "quantity", "image",
}

type Order struct {
	ID             string          `db:"id"`
	FullName       string          `db:"full_name"`
	Email          string          `db:"email"`
	Phone          string          `db:"phone"`
	Address        string          `db:"address"`
	City           string          `db:"city"`
	PostalCode     string          `db:"postal_code"`
	PaymentMethod  string          `db:"payment_method"`
	ShippingOption string          `db:"shipping_option"`
	Subtotal       decimal.Decimal `db:"subtotal"`
	Discount       decimal.Decimal `db:"discount"`
	Tax            decimal.Decimal `db:"tax"`
	ShippingCost   decimal.Decimal `db:"shipping_cost"`
	Total          decimal.Decimal `db:"total"`
	IsPaid         bool            `db:"is_paid"`
	PaidAt         sql.NullTime    `db:"paid_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

type Item struct {
	OrderID  string          `db:"order_id"`
	Position int             `db:"position"`
	ItemID   string          `db:"item_id"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	Quantity int             `db:"quantity"`
	Image    sql.NullString  `db:"image"`
}

func ItemToEntity(i Item) entities.CartItem {
	return entities.CartItem{
		ID:       i.ItemID,
		Name:     i.Name,
		Price:    i.Price,
		Quantity: i.Quantity,
		Image:    nullStringToString(i.Image),
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:             o.ID,
		FullName:       o.FullName,
		Email:          o.Email,
		Phone:          o.Phone,
		Address:        o.Address,
		City:           o.City,
		PostalCode:     o.PostalCode,
		PaymentMethod:  o.PaymentMethod,
		ShippingOption: entities.ShippingOption(o.ShippingOption),
		Subtotal:       o.Subtotal,
		Discount:       o.Discount,
		Tax:            o.Tax,
		ShippingCost:   o.ShippingCost,
		Total:          o.Total,
		IsPaid:         o.IsPaid,
		CreatedAt:      o.CreatedAt.UTC(),
	}

	if o.PaidAt.Valid {
		paidAt := o.PaidAt.Time.UTC()
		order.PaidAt = &paidAt
	}

	if len(items) > 0 {
		order.CartItems = make([]entities.CartItem, 0, len(items))
		for _, it := range items {
			order.CartItems = append(order.CartItems, ItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
