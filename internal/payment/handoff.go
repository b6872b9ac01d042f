package payment

import (
	"errors"
	"fmt"
)

type State string

const (
	StateCreated      State = "created"
	StateConfirmed    State = "confirmed"
	StatePayNow       State = "pay_now"
	StateProviderOpen State = "provider_checkout_open"
	StateSucceeded    State = "succeeded"
	StateClosed       State = "closed"
)

type Event string

const (
	EventConfirm      Event = "confirm"
	EventCancel       Event = "cancel"
	EventPayNow       Event = "pay_now"
	EventOpenProvider Event = "open_provider"
	EventSuccess      Event = "success"
	EventClose        Event = "close"
	EventRetry        Event = "retry"
)

var ErrInvalidTransition = errors.New("invalid payment transition")

var transitions = map[State]map[Event]State{
	StateCreated: {
		EventConfirm: StateConfirmed,
	},
	StateConfirmed: {
		EventPayNow: StatePayNow,
		// заказ остаётся неоплаченным и никем не удаляется
		EventCancel: StateCreated,
	},
	StatePayNow: {
		EventOpenProvider: StateProviderOpen,
	},
	StateProviderOpen: {
		EventSuccess: StateSucceeded,
		EventClose:   StateClosed,
	},
	StateClosed: {
		EventRetry: StatePayNow,
	},
}

// Handoff отслеживает путь пользователя от созданного заказа до оплаты.
// Succeeded терминальное состояние, повторять попытки из Closed можно бесконечно.
type Handoff struct {
	OrderID  string
	state    State
	attempts int
}

func NewHandoff(orderID string) *Handoff {
	return &Handoff{OrderID: orderID, state: StateCreated}
}

func (h *Handoff) State() State {
	return h.state
}

// Attempts количество открытий виджета провайдера.
func (h *Handoff) Attempts() int {
	return h.attempts
}

func (h *Handoff) Fire(e Event) error {
	next, ok := transitions[h.state][e]
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, h.state)
	}
	if next == StateProviderOpen {
		h.attempts++
	}
	h.state = next
	return nil
}

func (h *Handoff) Done() bool {
	return h.state == StateSucceeded
}
