package payment

import (
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
)

// Checkout параметры виджета оплаты провайдера
type Checkout struct {
	Amount      string
	Currency    string
	Email       string
	FirstName   string
	LastName    string
	TxRef       string
	CallbackURL string
	ReturnURL   string
}

type CheckoutConfig struct {
	Currency string
	// Шаблоны, в которых {id} заменяется идентификатором заказа
	CallbackURL string
	ReturnURL   string
}

// NewCheckout собирает параметры оплаты. В качестве tx_ref используется id заказа.
func NewCheckout(cfg CheckoutConfig, order entities.Order) Checkout {
	first, last := splitName(order.FullName)
	return Checkout{
		Amount:      order.Total.StringFixed(2),
		Currency:    cfg.Currency,
		Email:       order.Email,
		FirstName:   first,
		LastName:    last,
		TxRef:       order.ID,
		CallbackURL: expandURL(cfg.CallbackURL, order.ID),
		ReturnURL:   expandURL(cfg.ReturnURL, order.ID),
	}
}

// IDPlaceholder место идентификатора заказа в шаблонах адресов
const IDPlaceholder = "{id}"

// expandURL не трогает остальной шаблон, поэтому %-кодирование в нём сохраняется
func expandURL(tmpl, orderID string) string {
	return strings.ReplaceAll(tmpl, IDPlaceholder, url.PathEscape(orderID))
}

func splitName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
