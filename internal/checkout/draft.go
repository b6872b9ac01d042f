package checkout

import (
	"fmt"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Расхождение сумм клиента и сервера, которое ещё считается округлением
var Tolerance = decimal.RequireFromString("0.01")

// Суммы хранятся в NUMERIC(12, 2), количество в INT
var MaxAmount = decimal.RequireFromString("9999999999.99")

const MaxQuantity = 1_000_000

// Draft данные формы оформления заказа
type Draft struct {
	FullName       string
	Email          string
	Phone          string
	Address        string
	City           string
	PostalCode     string
	ShippingOption entities.ShippingOption
	CartItems      []entities.CartItem

	// Суммы, посчитанные клиентом. nil, если клиент их не прислал.
	ClientTotals *Totals
}

// Price считает суммы черновика на сервере и сверяет их с клиентскими.
func (d Draft) Price() (Totals, error) {
	if len(d.CartItems) == 0 {
		return Totals{}, fmt.Errorf("%w: cart is empty", entities.ErrInvalidOrder)
	}
	if _, err := ParseShippingOption(string(d.ShippingOption)); err != nil {
		return Totals{}, err
	}

	for i, it := range d.CartItems {
		if it.Quantity < 1 || it.Quantity > MaxQuantity {
			return Totals{}, fmt.Errorf("%w: item %d quantity %d out of range", entities.ErrInvalidOrder, i, it.Quantity)
		}
		if it.Price.IsNegative() || it.Price.GreaterThan(MaxAmount) {
			return Totals{}, fmt.Errorf("%w: item %d price %s out of range", entities.ErrInvalidOrder, i, it.Price.String())
		}
	}

	totals := Compute(d.CartItems, d.ShippingOption)
	if totals.Subtotal.GreaterThan(MaxAmount) || totals.Total.GreaterThan(MaxAmount) {
		return Totals{}, fmt.Errorf("%w: order total exceeds %s", entities.ErrInvalidOrder, MaxAmount.StringFixed(2))
	}
	if d.ClientTotals != nil && !totals.Matches(*d.ClientTotals, Tolerance) {
		return Totals{}, fmt.Errorf("%w: expected total %s, got %s",
			entities.ErrTotalsMismatch, totals.Total.StringFixed(2), d.ClientTotals.Total.StringFixed(2))
	}
	return totals, nil
}
