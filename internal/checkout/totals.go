package checkout

import (
	"fmt"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Все суммы округляются до копеек (half away from zero) в момент расчёта,
// итог считается из уже округлённых слагаемых.
const centPlaces = 2

type Policy struct {
	DiscountRate     decimal.Decimal
	TaxRate          decimal.Decimal
	StandardShipping decimal.Decimal
	ExpressShipping  decimal.Decimal
}

var DefaultPolicy = Policy{
	DiscountRate:     decimal.RequireFromString("0.10"),
	TaxRate:          decimal.RequireFromString("0.10"),
	StandardShipping: decimal.RequireFromString("5.00"),
	ExpressShipping:  decimal.RequireFromString("15.00"),
}

type Totals struct {
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Tax          decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal
}

// Compute считает суммы заказа по политике по умолчанию.
func Compute(items []entities.CartItem, shipping entities.ShippingOption) Totals {
	return DefaultPolicy.Compute(items, shipping)
}

// Compute не отвергает отрицательные цены и количества, это задача валидации запроса.
func (p Policy) Compute(items []entities.CartItem, shipping entities.ShippingOption) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal = subtotal.Round(centPlaces)

	discount := subtotal.Mul(p.DiscountRate).Round(centPlaces)
	tax := subtotal.Sub(discount).Mul(p.TaxRate).Round(centPlaces)

	shippingCost := p.ExpressShipping
	if shipping == entities.ShippingStandard {
		shippingCost = p.StandardShipping
	}
	shippingCost = shippingCost.Round(centPlaces)

	return Totals{
		Subtotal:     subtotal,
		Discount:     discount,
		Tax:          tax,
		ShippingCost: shippingCost,
		Total:        subtotal.Sub(discount).Add(tax).Add(shippingCost),
	}
}

// Matches сравнивает суммы покомпонентно с допуском.
func (t Totals) Matches(other Totals, tolerance decimal.Decimal) bool {
	pairs := [][2]decimal.Decimal{
		{t.Subtotal, other.Subtotal},
		{t.Discount, other.Discount},
		{t.Tax, other.Tax},
		{t.ShippingCost, other.ShippingCost},
		{t.Total, other.Total},
	}
	for _, p := range pairs {
		if p[0].Sub(p[1]).Abs().GreaterThan(tolerance) {
			return false
		}
	}
	return true
}

func ParseShippingOption(s string) (entities.ShippingOption, error) {
	switch opt := entities.ShippingOption(s); opt {
	case entities.ShippingStandard, entities.ShippingExpress:
		return opt, nil
	default:
		return "", fmt.Errorf("%w: unknown shipping option %q", entities.ErrInvalidOrder, s)
	}
}
