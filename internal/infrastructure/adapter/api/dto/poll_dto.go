package dto

import (
	"time"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
)

// CreatePollRequest represents an admin's poll definition
type CreatePollRequest struct {
	Title        string       `json:"title" binding:"required"`
	Description  string       `json:"description"`
	PricePerVote entity.Money `json:"price_per_vote" binding:"required"`
	Options      []string     `json:"options" binding:"required"`
}

// UpdatePollRequest carries the poll fields to change
type UpdatePollRequest struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	PricePerVote *entity.Money `json:"price_per_vote"`
	Options      []string      `json:"options"`
}

// DeclareResultRequest names the winning option
type DeclareResultRequest struct {
	WinningOptionID string `json:"winning_option_id" binding:"required"`
}

// OptionResponse represents one poll option
type OptionResponse struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Position  int          `json:"position"`
	VoteCount int64        `json:"vote_count"`
	Amount    entity.Money `json:"amount"`
}

// PollResponse represents a poll with its options
type PollResponse struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description,omitempty"`
	PricePerVote   entity.Money      `json:"price_per_vote"`
	Status         entity.PollStatus `json:"status"`
	ResultOptionID string            `json:"result_option_id,omitempty"`
	TotalVotes     int64             `json:"total_votes"`
	TotalAmount    entity.Money      `json:"total_amount"`
	Options        []OptionResponse  `json:"options"`
	CreatedAt      time.Time         `json:"created_at"`
	ClosedAt       *time.Time        `json:"closed_at,omitempty"`
}

// OptionResultResponse is the aggregate for one option
type OptionResultResponse struct {
	OptionID   string       `json:"option_id"`
	Text       string       `json:"text"`
	VoteCount  int64        `json:"vote_count"`
	Amount     entity.Money `json:"amount"`
	Percentage float64      `json:"percentage"`
}

// PollResultsResponse is the public aggregate view of a poll
type PollResultsResponse struct {
	PollID          string                 `json:"poll_id"`
	Status          entity.PollStatus      `json:"status"`
	WinningOptionID string                 `json:"winning_option_id,omitempty"`
	TotalVotes      int64                  `json:"total_votes"`
	TotalAmount     entity.Money           `json:"total_amount"`
	Options         []OptionResultResponse `json:"options"`
}

// MyResultResponse is one user's outcome on a poll
type MyResultResponse struct {
	PollID        string              `json:"poll_id"`
	Participated  bool                `json:"participated"`
	TotalVotes    int64               `json:"total_votes"`
	TotalSpent    entity.Money        `json:"total_spent"`
	ResultStatus  entity.ResultStatus `json:"result_status"`
	WinningAmount entity.Money        `json:"winning_amount"`
}

// PayoutResponse is one winner's share
type PayoutResponse struct {
	UserID       string       `json:"user_id"`
	WinningVotes int64        `json:"winning_votes"`
	Amount       entity.Money `json:"amount"`
}

// SettlementResponse summarizes a declared result
type SettlementResponse struct {
	PollID          string                 `json:"poll_id"`
	WinningOptionID string                 `json:"winning_option_id"`
	TotalVotes      int64                  `json:"total_votes"`
	TotalAmount     entity.Money           `json:"total_amount"`
	WinningVotes    int64                  `json:"winning_votes"`
	Options         []OptionResultResponse `json:"options"`
	Payouts         []PayoutResponse       `json:"payouts"`
	Distributed     entity.Money           `json:"distributed"`
	HouseRetained   entity.Money           `json:"house_retained"`
	SettledAt       time.Time              `json:"settled_at"`
}

// ToCreatePoll maps the request to its use case input
func (r CreatePollRequest) ToCreatePoll() usecase.CreatePollRequest {
	return usecase.CreatePollRequest{
		Title:        r.Title,
		Description:  r.Description,
		PricePerVote: r.PricePerVote,
		Options:      r.Options,
	}
}

// ToUpdatePoll maps the request to its use case input
func (r UpdatePollRequest) ToUpdatePoll() usecase.UpdatePollRequest {
	return usecase.UpdatePollRequest{
		Title:        r.Title,
		Description:  r.Description,
		PricePerVote: r.PricePerVote,
		Options:      r.Options,
	}
}

// NewPollResponse maps a poll entity
func NewPollResponse(p *entity.Poll) PollResponse {
	options := make([]OptionResponse, 0, len(p.Options))
	for _, opt := range p.Options {
		options = append(options, OptionResponse{
			ID:        opt.ID,
			Text:      opt.Text,
			Position:  opt.Position,
			VoteCount: opt.VoteCount,
			Amount:    opt.Amount,
		})
	}
	return PollResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		PricePerVote:   p.PricePerVote,
		Status:         p.Status,
		ResultOptionID: p.ResultOptionID,
		TotalVotes:     p.TotalVotes,
		TotalAmount:    p.TotalAmount,
		Options:        options,
		CreatedAt:      p.CreatedAt,
		ClosedAt:       p.ClosedAt,
	}
}

// NewPollResponses maps a poll listing
func NewPollResponses(polls []*entity.Poll) []PollResponse {
	out := make([]PollResponse, 0, len(polls))
	for _, p := range polls {
		out = append(out, NewPollResponse(p))
	}
	return out
}

func newOptionResults(results []entity.OptionResult) []OptionResultResponse {
	out := make([]OptionResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, OptionResultResponse{
			OptionID:   r.OptionID,
			Text:       r.Text,
			VoteCount:  r.VoteCount,
			Amount:     r.Amount,
			Percentage: r.Percentage,
		})
	}
	return out
}

// NewPollResultsResponse maps the aggregate view
func NewPollResultsResponse(r *entity.PollResults) PollResultsResponse {
	return PollResultsResponse{
		PollID:          r.PollID,
		Status:          r.Status,
		WinningOptionID: r.WinningOptionID,
		TotalVotes:      r.TotalVotes,
		TotalAmount:     r.TotalAmount,
		Options:         newOptionResults(r.OptionResults),
	}
}

// NewMyResultResponse maps a user's outcome
func NewMyResultResponse(r *entity.MyResult) MyResultResponse {
	return MyResultResponse{
		PollID:        r.PollID,
		Participated:  r.Participated,
		TotalVotes:    r.TotalVotes,
		TotalSpent:    r.TotalSpent,
		ResultStatus:  r.ResultStatus,
		WinningAmount: r.WinningAmount,
	}
}

// NewSettlementResponse maps a settlement report
func NewSettlementResponse(r *entity.SettlementReport) SettlementResponse {
	payouts := make([]PayoutResponse, 0, len(r.Payouts))
	for _, p := range r.Payouts {
		payouts = append(payouts, PayoutResponse{
			UserID:       p.UserID,
			WinningVotes: p.WinningVotes,
			Amount:       p.Amount,
		})
	}
	return SettlementResponse{
		PollID:          r.PollID,
		WinningOptionID: r.WinningOptionID,
		TotalVotes:      r.TotalVotes,
		TotalAmount:     r.TotalAmount,
		WinningVotes:    r.WinningWeight,
		Options:         newOptionResults(r.OptionResults),
		Payouts:         payouts,
		Distributed:     r.Distributed,
		HouseRetained:   r.HouseRetained,
		SettledAt:       r.SettledAt,
	}
}
