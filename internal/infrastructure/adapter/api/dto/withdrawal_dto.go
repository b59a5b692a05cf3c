package dto

import (
	"time"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
)

// WithdrawalRequest represents the API request for a payout
type WithdrawalRequest struct {
	Amount entity.Money `json:"amount" binding:"required"`
	UPIID  string       `json:"upi_id"`
}

// WithdrawalResponse represents a payout request
type WithdrawalResponse struct {
	ID          string                  `json:"id"`
	UserID      string                  `json:"user_id"`
	Amount      entity.Money            `json:"amount"`
	Fee         entity.Money            `json:"fee"`
	NetAmount   entity.Money            `json:"net_amount"`
	UPIID       string                  `json:"upi_id"`
	Status      entity.WithdrawalStatus `json:"status"`
	AdminNotes  string                  `json:"admin_notes,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	ProcessedAt *time.Time              `json:"processed_at,omitempty"`
}

// NewWithdrawalResponse maps a withdrawal entity
func NewWithdrawalResponse(w *entity.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:          w.ID,
		UserID:      w.UserID,
		Amount:      w.Amount,
		Fee:         w.Fee,
		NetAmount:   w.NetAmount,
		UPIID:       w.UPIID,
		Status:      w.Status,
		AdminNotes:  w.AdminNotes,
		CreatedAt:   w.CreatedAt,
		ProcessedAt: w.ProcessedAt,
	}
}

// NewWithdrawalResponses maps a withdrawal listing
func NewWithdrawalResponses(ws []*entity.Withdrawal) []WithdrawalResponse {
	out := make([]WithdrawalResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, NewWithdrawalResponse(w))
	}
	return out
}
