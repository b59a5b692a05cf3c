package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// WithdrawalHandler handles payout requests and their review
type WithdrawalHandler struct {
	withdrawalUseCase usecase.WithdrawalUseCase
	logger            coreport.Logger
}

// NewWithdrawalHandler creates a new withdrawal handler instance
func NewWithdrawalHandler(withdrawalUseCase usecase.WithdrawalUseCase, logger coreport.Logger) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalUseCase: withdrawalUseCase,
		logger:            logger,
	}
}

// Request handles POST /api/withdrawal/request
func (h *WithdrawalHandler) Request(c *gin.Context) {
	var req dto.WithdrawalRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	withdrawal, err := h.withdrawalUseCase.RequestWithdrawal(c.Request.Context(), usecase.WithdrawalRequest{
		UserID: middleware.UserID(c),
		Amount: req.Amount,
		UPIID:  req.UPIID,
	})
	if err != nil {
		respondError(c, h.logger, "request_withdrawal", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewWithdrawalResponse(withdrawal))
}

// History handles GET /api/withdrawal/history
func (h *WithdrawalHandler) History(c *gin.Context) {
	withdrawals, err := h.withdrawalUseCase.History(c.Request.Context(), middleware.UserID(c), pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "withdrawal_history", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWithdrawalResponses(withdrawals))
}

// List handles GET /api/admin/withdrawals
func (h *WithdrawalHandler) List(c *gin.Context) {
	filter := persistence.WithdrawalFilter{
		UserID: c.Query("user_id"),
		Status: entity.WithdrawalStatus(c.Query("status")),
	}

	withdrawals, err := h.withdrawalUseCase.List(c.Request.Context(), filter, pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "list_withdrawals", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWithdrawalResponses(withdrawals))
}

// Approve handles PUT /api/admin/withdrawals/:id/approve
func (h *WithdrawalHandler) Approve(c *gin.Context) {
	withdrawal, err := h.withdrawalUseCase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "approve_withdrawal", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWithdrawalResponse(withdrawal))
}

// Reject handles PUT /api/admin/withdrawals/:id/reject
func (h *WithdrawalHandler) Reject(c *gin.Context) {
	withdrawal, err := h.withdrawalUseCase.Reject(c.Request.Context(), c.Param("id"), c.Query("notes"))
	if err != nil {
		respondError(c, h.logger, "reject_withdrawal", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWithdrawalResponse(withdrawal))
}
