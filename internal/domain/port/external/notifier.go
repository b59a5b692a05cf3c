package external

import "context"

// EventKind identifies an operator-facing event
type EventKind string

// Events that operators are told about
const (
	EventWithdrawalRequested EventKind = "withdrawal_requested"
	EventWithdrawalProcessed EventKind = "withdrawal_processed"
	EventPollSettled         EventKind = "poll_settled"
	EventRefundRequired      EventKind = "refund_required"
)

// Notification is a short message for operators
type Notification struct {
	Kind    EventKind
	Message string
}

// Notifier delivers notifications after the triggering change has committed.
// Delivery is best-effort; callers log failures and carry on.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
