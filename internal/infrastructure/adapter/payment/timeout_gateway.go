package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
)

// TimeoutGateway bounds every gateway call. A call that outlives the
// deadline fails with an error wrapping ErrPaymentTimeout.
type TimeoutGateway struct {
	next    external.PaymentGateway
	timeout time.Duration
}

// WithTimeout decorates a gateway with a per-call deadline
func WithTimeout(next external.PaymentGateway, timeout time.Duration) *TimeoutGateway {
	return &TimeoutGateway{next: next, timeout: timeout}
}

type callResult struct {
	res *external.OrderResult
	err error
}

// CreateOrder forwards the order under the deadline
func (g *TimeoutGateway) CreateOrder(ctx context.Context, req external.OrderRequest) (*external.OrderResult, error) {
	return g.call(ctx, req.OrderID, req.Amount.String(), func(callCtx context.Context) (*external.OrderResult, error) {
		return g.next.CreateOrder(callCtx, req)
	})
}

// FetchOrderStatus forwards the status query under the deadline
func (g *TimeoutGateway) FetchOrderStatus(ctx context.Context, orderID string) (*external.OrderResult, error) {
	return g.call(ctx, orderID, "", func(callCtx context.Context) (*external.OrderResult, error) {
		return g.next.FetchOrderStatus(callCtx, orderID)
	})
}

func (g *TimeoutGateway) call(
	ctx context.Context,
	orderID string,
	amount string,
	fn func(context.Context) (*external.OrderResult, error),
) (*external.OrderResult, error) {
	if g.timeout <= 0 {
		return fn(ctx)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	done := make(chan callResult, 1)
	go func() {
		res, err := fn(callCtx)
		done <- callResult{res: res, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && errors.Is(r.err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, g.timeoutError(orderID, amount)
		}
		return r.res, r.err
	case <-callCtx.Done():
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, g.timeoutError(orderID, amount)
	}
}

func (g *TimeoutGateway) timeoutError(orderID, amount string) error {
	return errs.NewPaymentError(orderID, amount, fmt.Sprintf("no answer within %s", g.timeout), errs.ErrPaymentTimeout)
}
