package payment

import (
	"context"
	"fmt"
	"sync"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
)

// SandboxGateway defers confirmation: orders stay pending with a checkout
// session until Resolve records the buyer's outcome, as a hosted checkout
// followed by a webhook would.
type SandboxGateway struct {
	mu     sync.Mutex
	orders map[string]*external.OrderResult
	ids    core.IDGenerator
	logger core.Logger
}

// NewSandboxGateway creates an in-memory deferred gateway
func NewSandboxGateway(ids core.IDGenerator, logger core.Logger) *SandboxGateway {
	return &SandboxGateway{
		orders: make(map[string]*external.OrderResult),
		ids:    ids,
		logger: logger,
	}
}

// CreateOrder registers the order and opens a checkout session
func (g *SandboxGateway) CreateOrder(ctx context.Context, req external.OrderRequest) (*external.OrderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.orders[req.OrderID]; ok {
		res := *existing
		return &res, nil
	}
	order := &external.OrderResult{
		OrderID:   req.OrderID,
		SessionID: g.ids.NewID(core.PrefixSession),
		Status:    external.OrderPending,
	}
	g.orders[req.OrderID] = order

	g.logger.Info("Checkout session opened", map[string]any{
		"order_id":   req.OrderID,
		"session_id": order.SessionID,
		"amount":     req.Amount.String(),
	})
	res := *order
	return &res, nil
}

// FetchOrderStatus returns the recorded state of an order
func (g *SandboxGateway) FetchOrderStatus(ctx context.Context, orderID string) (*external.OrderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	order, ok := g.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrPaymentNotFound, orderID)
	}
	res := *order
	return &res, nil
}

// Resolve completes checkout for a pending order. Later FetchOrderStatus calls
// report the outcome, so a payment confirmation retry can pick it up.
func (g *SandboxGateway) Resolve(orderID string, status external.OrderStatus, reason string) error {
	if status != external.OrderConfirmed && status != external.OrderDeclined {
		return fmt.Errorf("%w: order status %q", errs.ErrInvalidEnumValue, status)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	order, ok := g.orders[orderID]
	if !ok {
		return fmt.Errorf("%w: %s", errs.ErrPaymentNotFound, orderID)
	}
	if order.Status != external.OrderPending {
		return fmt.Errorf("%w: order %s is %s", errs.ErrStateConflict, orderID, order.Status)
	}
	order.Status = status
	order.Reason = reason

	g.logger.Info("Checkout completed", map[string]any{
		"order_id": orderID,
		"status":   status,
	})
	return nil
}

// SandboxOf returns the sandbox behind gw, looking through the timeout decorator
func SandboxOf(gw external.PaymentGateway) (*SandboxGateway, bool) {
	if timed, ok := gw.(*TimeoutGateway); ok {
		gw = timed.next
	}
	sandbox, ok := gw.(*SandboxGateway)
	return sandbox, ok
}
