package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles account, profile and wallet requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase usecase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	profile, err := h.userUseCase.Register(c.Request.Context(), usecase.RegisterRequest{
		Email: req.Email,
		Name:  req.Name,
		UPIID: req.UPIID,
	})
	if err != nil {
		respondError(c, h.logger, "register", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewProfileResponse(profile))
}

// Me handles GET /api/auth/me
func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.userUseCase.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, "get_profile", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(profile))
}

// UpdateUPI handles PUT /api/profile/upi
func (h *UserHandler) UpdateUPI(c *gin.Context) {
	var req dto.UpdateUPIRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	user, err := h.userUseCase.UpdateUPI(c.Request.Context(), middleware.UserID(c), req.UPIID)
	if err != nil {
		respondError(c, h.logger, "update_upi", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetWallet handles GET /api/wallet
func (h *UserHandler) GetWallet(c *gin.Context) {
	wallet, err := h.userUseCase.GetWallet(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, "get_wallet", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWalletResponse(wallet))
}

// ListTransactions handles GET /api/transactions
func (h *UserHandler) ListTransactions(c *gin.Context) {
	txns, err := h.userUseCase.ListTransactions(c.Request.Context(), middleware.UserID(c), pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "list_transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txns))
}
