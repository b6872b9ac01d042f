package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrTotalsMismatch     = errors.New("order totals do not match cart")
	ErrOrderAlreadyPaid   = errors.New("order already paid")
	ErrPaymentNotVerified = errors.New("payment not verified")
)

// encodingVersion меняется при несовместимом изменении Order,
// старые записи в кэше после этого не читаются и загружаются из базы заново.
const encodingVersion byte = 2

// Marshal кодирует заказ для кэша: байт версии и gob.
func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(encodingVersion)
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, fmt.Errorf("failed to encode order %s: %w", o.ID, err)
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty payload", ErrInvalidOrder)
	}
	if data[0] != encodingVersion {
		return fmt.Errorf("%w: unsupported encoding version %d", ErrInvalidOrder, data[0])
	}
	if err := gob.NewDecoder(bytes.NewReader(data[1:])).Decode(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(CartItem{})
}
