package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// VoteHandler handles vote purchases and payment confirmations
type VoteHandler struct {
	voteUseCase usecase.VoteUseCase
	logger      coreport.Logger
}

// NewVoteHandler creates a new vote handler instance
func NewVoteHandler(voteUseCase usecase.VoteUseCase, logger coreport.Logger) *VoteHandler {
	return &VoteHandler{
		voteUseCase: voteUseCase,
		logger:      logger,
	}
}

// Purchase handles POST /api/polls/:id/purchase. A pending order is a normal
// outcome here: the client completes checkout with the session ID.
func (h *VoteHandler) Purchase(c *gin.Context) {
	h.purchase(c, http.StatusOK)
}

// Vote handles POST /api/polls/:id/vote. It answers 202 while the gateway
// has not confirmed the order yet.
func (h *VoteHandler) Vote(c *gin.Context) {
	h.purchase(c, http.StatusAccepted)
}

func (h *VoteHandler) purchase(c *gin.Context, pendingStatus int) {
	var req dto.PurchaseRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	receipt, err := h.voteUseCase.PurchaseAndVote(c.Request.Context(), usecase.PurchaseRequest{
		UserID:    middleware.UserID(c),
		PollID:    c.Param("id"),
		OptionID:  req.OptionID,
		VoteCount: req.VoteCount,
	})
	if err != nil {
		if errors.Is(err, domainerr.ErrPaymentTimeout) && receipt != nil {
			h.logger.Warn("Payment gateway timed out, order left pending", map[string]any{
				"order_id": receipt.OrderID,
				"user_id":  middleware.UserID(c),
			})
			c.JSON(http.StatusGatewayTimeout, dto.NewReceiptResponse(receipt))
			return
		}
		respondError(c, h.logger, "purchase_votes", err)
		return
	}

	h.writeReceipt(c, receipt, pendingStatus)
}

// ConfirmPayment handles POST /api/payments/:orderId/confirm
func (h *VoteHandler) ConfirmPayment(c *gin.Context) {
	receipt, err := h.voteUseCase.RetryConfirmation(c.Request.Context(), middleware.UserID(c), c.Param("orderId"))
	if err != nil {
		respondError(c, h.logger, "confirm_payment", err)
		return
	}

	h.writeReceipt(c, receipt, http.StatusAccepted)
}

// Webhook handles POST /api/payments/webhook. Replayed callbacks answer with
// the stored receipt.
func (h *VoteHandler) Webhook(c *gin.Context) {
	var req dto.WebhookRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}
	if req.Data.Order.OrderID == "" {
		respondError(c, h.logger, "payment_webhook", domainerr.ErrInvalidRequest)
		return
	}

	h.logger.Info("Webhook received", map[string]any{
		"type":     req.Type,
		"order_id": req.Data.Order.OrderID,
	})

	receipt, err := h.voteUseCase.HandleWebhook(c.Request.Context(), usecase.WebhookEvent{
		OrderID: req.Data.Order.OrderID,
		Status:  req.Status(),
		Reason:  req.Data.Payment.Message,
	})
	if err != nil {
		respondError(c, h.logger, "payment_webhook", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReceiptResponse(receipt))
}

func (h *VoteHandler) writeReceipt(c *gin.Context, receipt *entity.VoteReceipt, pendingStatus int) {
	status := http.StatusOK
	if receipt.Status == entity.IntentPending {
		status = pendingStatus
	}
	c.JSON(status, dto.NewReceiptResponse(receipt))
}
