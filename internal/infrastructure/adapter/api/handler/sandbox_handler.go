package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// OrderResolver completes hosted checkout in a simulated gateway
type OrderResolver interface {
	Resolve(orderID string, status external.OrderStatus, reason string) error
}

// SandboxHandler plays the buyer's side of checkout against the sandbox gateway
type SandboxHandler struct {
	gateway OrderResolver
	logger  coreport.Logger
}

// NewSandboxHandler creates a new sandbox handler instance
func NewSandboxHandler(gateway OrderResolver, logger coreport.Logger) *SandboxHandler {
	return &SandboxHandler{gateway: gateway, logger: logger}
}

// ResolveOrder handles POST /api/admin/sandbox/orders/:orderId/resolve. The order
// itself is settled later by the webhook or by the buyer's confirmation retry.
func (h *SandboxHandler) ResolveOrder(c *gin.Context) {
	var req dto.SandboxResolveRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	orderID := c.Param("orderId")
	if err := h.gateway.Resolve(orderID, external.OrderStatus(req.Status), req.Reason); err != nil {
		respondError(c, h.logger, "sandbox_resolve", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Checkout " + req.Status + " for order " + orderID})
}
