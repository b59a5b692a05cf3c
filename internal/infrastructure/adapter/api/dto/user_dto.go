package dto

import (
	"time"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
)

// RegisterRequest represents the API request for creating an account
type RegisterRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
	UPIID string `json:"upi_id"`
}

// UpdateUPIRequest represents the API request for changing the payout identifier
type UpdateUPIRequest struct {
	UPIID string `json:"upi_id" binding:"required"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	UPIID     string    `json:"upi_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// WalletResponse represents a wallet balance
type WalletResponse struct {
	UserID         string       `json:"user_id"`
	Balance        entity.Money `json:"balance"`
	BalanceDisplay string       `json:"balance_display"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ProfileResponse is a user together with their wallet
type ProfileResponse struct {
	User   UserResponse   `json:"user"`
	Wallet WalletResponse `json:"wallet"`
}

// UserSummaryResponse is a row of the admin user listing
type UserSummaryResponse struct {
	UserResponse
	Balance entity.Money `json:"balance"`
}

// NewUserResponse maps a user entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		UPIID:     u.UPIID,
		CreatedAt: u.CreatedAt,
	}
}

// NewWalletResponse maps a wallet entity
func NewWalletResponse(w *entity.Wallet) WalletResponse {
	return WalletResponse{
		UserID:         w.UserID,
		Balance:        w.Balance(),
		BalanceDisplay: w.Balance().Display(),
		UpdatedAt:      w.UpdatedAt,
	}
}

// NewProfileResponse maps a profile
func NewProfileResponse(p *usecase.Profile) ProfileResponse {
	return ProfileResponse{
		User:   NewUserResponse(p.User),
		Wallet: NewWalletResponse(p.Wallet),
	}
}

// NewUserSummaryResponses maps the admin user listing
func NewUserSummaryResponses(rows []usecase.UserSummary) []UserSummaryResponse {
	out := make([]UserSummaryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, UserSummaryResponse{
			UserResponse: NewUserResponse(row.User),
			Balance:      row.Balance,
		})
	}
	return out
}
