package models

// Status is the order lifecycle state.
type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusPaid    Status = "paid"
)

// transitions is the only allowed forward progression. Reverting a
// transition is handled separately via Order.PrevStatus.
var transitions = map[Status]Status{
	StatusPending: StatusReady,
	StatusReady:   StatusPaid,
}

// ParseStatus rejects anything outside the three lifecycle states.
func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusPending, StatusReady, StatusPaid:
		return Status(value), true
	}
	return "", false
}

// CanTransitionTo reports whether next is the valid successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	return transitions[s] == next && next != ""
}

// PaymentMethod is how a finalized order was settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

func ParsePaymentMethod(value string) (PaymentMethod, bool) {
	switch PaymentMethod(value) {
	case PaymentCash, PaymentCard:
		return PaymentMethod(value), true
	}
	return "", false
}
