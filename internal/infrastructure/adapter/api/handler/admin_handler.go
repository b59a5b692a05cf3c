package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the operator views
type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// Analytics handles GET /api/admin/analytics
func (h *AdminHandler) Analytics(c *gin.Context) {
	dashboard, err := h.adminUseCase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(dashboard))
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUseCase.ListUsers(c.Request.Context(), pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "list_users", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserSummaryResponses(users))
}

// ListTransactions handles GET /api/admin/transactions
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	filter := persistence.TransactionFilter{
		UserID: c.Query("user_id"),
		PollID: c.Query("poll_id"),
		Type:   entity.TransactionType(c.Query("type")),
		Status: entity.TransactionStatus(c.Query("status")),
	}

	txns, err := h.adminUseCase.ListTransactions(c.Request.Context(), filter, pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "admin_list_transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txns))
}

// Reconcile handles GET /api/admin/wallets/:userId/reconcile
func (h *AdminHandler) Reconcile(c *gin.Context) {
	report, err := h.adminUseCase.Reconcile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, "reconcile", err)
		return
	}
	if !report.Consistent {
		h.logger.Warn("Wallet drift detected", map[string]any{
			"user_id": report.UserID,
			"drift":   report.Drift.String(),
		})
	}

	c.JSON(http.StatusOK, dto.NewReconcileResponse(report))
}
