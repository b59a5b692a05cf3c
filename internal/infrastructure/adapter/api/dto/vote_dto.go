package dto

import (
	"time"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
)

// Gateway callback types
const (
	WebhookPaymentSuccess = "PAYMENT_SUCCESS_WEBHOOK"
	WebhookPaymentFailed  = "PAYMENT_FAILED_WEBHOOK"
	WebhookUserDropped    = "PAYMENT_USER_DROPPED_WEBHOOK"
)

// PurchaseRequest represents the API request for buying votes
type PurchaseRequest struct {
	OptionID  string `json:"option_id" binding:"required"`
	VoteCount int64  `json:"vote_count"`
}

// VoteResponse represents a recorded vote
type VoteResponse struct {
	ID             string       `json:"id"`
	PollID         string       `json:"poll_id"`
	OptionID       string       `json:"option_id"`
	VoteCount      int64        `json:"vote_count"`
	AmountPaid     entity.Money `json:"amount_paid"`
	PaymentOrderID string       `json:"payment_order_id"`
	CreatedAt      time.Time    `json:"created_at"`
}

// ReceiptResponse is the answer to a purchase or a confirmation
type ReceiptResponse struct {
	Status           entity.IntentStatus  `json:"status"`
	OrderID          string               `json:"order_id"`
	PaymentSessionID string               `json:"payment_session_id,omitempty"`
	Amount           entity.Money         `json:"amount"`
	FailureReason    string               `json:"failure_reason,omitempty"`
	Vote             *VoteResponse        `json:"vote,omitempty"`
	Transaction      *TransactionResponse `json:"transaction,omitempty"`
}

// WebhookRequest is the gateway's payment callback
type WebhookRequest struct {
	Type string `json:"type" binding:"required"`
	Data struct {
		Order struct {
			OrderID string `json:"order_id"`
		} `json:"order"`
		Payment struct {
			Message string `json:"payment_message"`
		} `json:"payment"`
	} `json:"data"`
}

// Status maps the callback type to an order status
func (r WebhookRequest) Status() external.OrderStatus {
	switch r.Type {
	case WebhookPaymentSuccess:
		return external.OrderConfirmed
	case WebhookPaymentFailed, WebhookUserDropped:
		return external.OrderDeclined
	default:
		return external.OrderStatus(r.Type)
	}
}

// NewReceiptResponse maps a vote receipt
func NewReceiptResponse(r *entity.VoteReceipt) ReceiptResponse {
	resp := ReceiptResponse{
		Status:           r.Status,
		OrderID:          r.OrderID,
		PaymentSessionID: r.PaymentSessionID,
		Amount:           r.Amount,
		FailureReason:    r.FailureReason,
		Transaction:      NewTransactionResponse(r.Transaction),
	}
	if v := r.Vote; v != nil {
		resp.Vote = &VoteResponse{
			ID:             v.ID,
			PollID:         v.PollID,
			OptionID:       v.OptionID,
			VoteCount:      v.VoteCount,
			AmountPaid:     v.AmountPaid,
			PaymentOrderID: v.PaymentOrderID,
			CreatedAt:      v.CreatedAt,
		}
	}
	return resp
}
