package usecase

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
)

// PurchaseRequest asks to buy votes on one option of a poll
type PurchaseRequest struct {
	UserID    string
	PollID    string
	OptionID  string
	VoteCount int64
}

// WebhookEvent is a gateway callback about a payment order
type WebhookEvent struct {
	OrderID string
	Status  external.OrderStatus
	Reason  string
}

// VoteUseCase defines the paid-vote lifecycle
type VoteUseCase interface {
	// PurchaseAndVote creates a payment order and, when the gateway confirms at once,
	// records the vote. A deferred gateway leaves the receipt pending with a session ID.
	PurchaseAndVote(ctx context.Context, req PurchaseRequest) (*entity.VoteReceipt, error)

	// ConfirmPayment records the vote for a paid order. Replays return the original receipt.
	ConfirmPayment(ctx context.Context, orderID string) (*entity.VoteReceipt, error)

	// FailPayment marks a pending order and its purchase entry failed
	FailPayment(ctx context.Context, orderID, reason string) (*entity.VoteReceipt, error)

	// RetryConfirmation asks the gateway again about a pending order owned by the user
	RetryConfirmation(ctx context.Context, userID, orderID string) (*entity.VoteReceipt, error)

	// HandleWebhook applies a verified gateway callback
	HandleWebhook(ctx context.Context, event WebhookEvent) (*entity.VoteReceipt, error)
}
