package external

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
)

// OrderStatus is the gateway's view of a payment order
type OrderStatus string

// Order statuses reported by a gateway
const (
	OrderConfirmed OrderStatus = "confirmed"
	OrderPending   OrderStatus = "pending"
	OrderDeclined  OrderStatus = "declined"
)

// OrderRequest asks the gateway to charge the buyer's external instrument
type OrderRequest struct {
	OrderID     string
	UserID      string
	PollID      string
	Amount      entity.Money
	Description string
}

// OrderResult is the gateway's answer for an order.
// Pending results carry a SessionID the client uses to complete checkout.
type OrderResult struct {
	OrderID   string
	SessionID string
	Status    OrderStatus
	Reason    string
}

// PaymentGateway authorizes vote purchases. Implementations return an error
// wrapping ErrPaymentTimeout when the gateway does not answer in time.
type PaymentGateway interface {
	// CreateOrder registers the order and may confirm it synchronously
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderResult, error)

	// FetchOrderStatus polls the current state of a previously created order
	FetchOrderStatus(ctx context.Context, orderID string) (*OrderResult, error)
}
