package dto

import (
	"time"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
)

// TransactionResponse represents one ledger entry
type TransactionResponse struct {
	ID           string                   `json:"id"`
	UserID       string                   `json:"user_id"`
	Type         entity.TransactionType   `json:"type"`
	Amount       entity.Money             `json:"amount"`
	Status       entity.TransactionStatus `json:"status"`
	Funding      entity.Funding           `json:"funding,omitempty"`
	PollID       string                   `json:"poll_id,omitempty"`
	ReferenceID  string                   `json:"reference_id,omitempty"`
	ErrorMessage string                   `json:"error_message,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	ProcessedAt  *time.Time               `json:"processed_at,omitempty"`
}

// NewTransactionResponse maps a ledger entry
func NewTransactionResponse(t *entity.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		Type:         t.Type,
		Amount:       t.Amount,
		Status:       t.Status,
		Funding:      t.Funding,
		PollID:       t.PollID,
		ReferenceID:  t.ReferenceID,
		ErrorMessage: t.ErrorMessage,
		CreatedAt:    t.CreatedAt,
		ProcessedAt:  t.ProcessedAt,
	}
}

// NewTransactionResponses maps a ledger listing
func NewTransactionResponses(txns []*entity.Transaction) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}
