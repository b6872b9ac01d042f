package entities

import "github.com/shopspring/decimal"

// Заказ создаётся с этим методом оплаты, реальный провайдер проставляется при оплате
const PaymentMethodPending = "pending"

const PaymentStatusSuccess = "success"

// PaymentConfirmation ответ провайдера о статусе транзакции
type PaymentConfirmation struct {
	TxRef    string
	Status   string
	Amount   decimal.Decimal
	Currency string
}

func (c PaymentConfirmation) Succeeded() bool {
	return c.Status == PaymentStatusSuccess
}
