package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/logger"
	mockcore "github.com/amirhossein-jamali/pollwin/mocks/port/core"
	mockexternal "github.com/amirhossein-jamali/pollwin/mocks/port/external"
)

func orderRequest(id string) external.OrderRequest {
	return external.OrderRequest{OrderID: id, UserID: "user_1", PollID: "poll_1", Amount: entity.Rupees(30)}
}

func TestImmediateGateway(t *testing.T) {
	gw := NewImmediateGateway(logger.NewNoopLogger())

	res, err := gw.CreateOrder(context.Background(), orderRequest("order_1"))
	require.NoError(t, err)
	assert.Equal(t, external.OrderConfirmed, res.Status)
	assert.Empty(t, res.SessionID)

	res, err = gw.FetchOrderStatus(context.Background(), "order_1")
	require.NoError(t, err)
	assert.Equal(t, external.OrderConfirmed, res.Status)
}

func TestSandboxGateway(t *testing.T) {
	ctx := context.Background()
	ids := mockcore.NewMockIDGenerator(t)
	ids.EXPECT().NewID("sess").Return("sess_1").Once()
	gw := NewSandboxGateway(ids, logger.NewNoopLogger())

	res, err := gw.CreateOrder(ctx, orderRequest("order_1"))
	require.NoError(t, err)
	assert.Equal(t, external.OrderPending, res.Status)
	assert.Equal(t, "sess_1", res.SessionID)

	// creating the same order again returns the open session
	again, err := gw.CreateOrder(ctx, orderRequest("order_1"))
	require.NoError(t, err)
	assert.Equal(t, "sess_1", again.SessionID)

	require.NoError(t, gw.Resolve("order_1", external.OrderDeclined, "card blocked"))
	res, err = gw.FetchOrderStatus(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, external.OrderDeclined, res.Status)
	assert.Equal(t, "card blocked", res.Reason)

	assert.ErrorIs(t, gw.Resolve("order_1", external.OrderConfirmed, ""), errs.ErrStateConflict)
	_, err = gw.FetchOrderStatus(ctx, "order_missing")
	assert.ErrorIs(t, err, errs.ErrPaymentNotFound)
	assert.ErrorIs(t, gw.Resolve("order_missing", external.OrderConfirmed, ""), errs.ErrPaymentNotFound)
	assert.ErrorIs(t, gw.Resolve("order_1", external.OrderPending, ""), errs.ErrInvalidEnumValue)
}

func TestSandboxOf(t *testing.T) {
	ids := mockcore.NewMockIDGenerator(t)

	deferred, err := NewGateway(ModeDeferred, time.Second, ids, logger.NewNoopLogger())
	require.NoError(t, err)
	sandbox, ok := SandboxOf(deferred)
	assert.True(t, ok)
	assert.NotNil(t, sandbox)

	immediate, err := NewGateway(ModeImmediate, time.Second, ids, logger.NewNoopLogger())
	require.NoError(t, err)
	_, ok = SandboxOf(immediate)
	assert.False(t, ok)
}

func TestTimeoutGateway(t *testing.T) {
	ctx := context.Background()

	t.Run("SlowGatewayTimesOut", func(t *testing.T) {
		inner := mockexternal.NewMockPaymentGateway(t)
		inner.EXPECT().CreateOrder(mock.Anything, mock.Anything).RunAndReturn(
			func(callCtx context.Context, _ external.OrderRequest) (*external.OrderResult, error) {
				<-callCtx.Done()
				return nil, callCtx.Err()
			})

		_, err := WithTimeout(inner, 20*time.Millisecond).CreateOrder(ctx, orderRequest("order_1"))

		assert.ErrorIs(t, err, errs.ErrPaymentTimeout)
		var payErr *errs.PaymentError
		require.ErrorAs(t, err, &payErr)
		assert.Equal(t, "order_1", payErr.OrderID)
	})

	t.Run("FastGatewayPassesThrough", func(t *testing.T) {
		inner := mockexternal.NewMockPaymentGateway(t)
		inner.EXPECT().FetchOrderStatus(mock.Anything, "order_1").
			Return(&external.OrderResult{OrderID: "order_1", Status: external.OrderConfirmed}, nil)

		res, err := WithTimeout(inner, time.Second).FetchOrderStatus(ctx, "order_1")
		require.NoError(t, err)
		assert.Equal(t, external.OrderConfirmed, res.Status)
	})

	t.Run("GatewayErrorsAreKept", func(t *testing.T) {
		boom := errors.New("connection refused")
		inner := mockexternal.NewMockPaymentGateway(t)
		inner.EXPECT().FetchOrderStatus(mock.Anything, "order_1").Return(nil, boom)

		_, err := WithTimeout(inner, time.Second).FetchOrderStatus(ctx, "order_1")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("CallerCancellationIsNotATimeout", func(t *testing.T) {
		inner := mockexternal.NewMockPaymentGateway(t)
		inner.EXPECT().CreateOrder(mock.Anything, mock.Anything).RunAndReturn(
			func(callCtx context.Context, _ external.OrderRequest) (*external.OrderResult, error) {
				<-callCtx.Done()
				return nil, callCtx.Err()
			})

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := WithTimeout(inner, time.Second).CreateOrder(cancelCtx, orderRequest("order_1"))
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, errs.ErrPaymentTimeout)
	})
}

func TestNewGateway(t *testing.T) {
	ids := mockcore.NewMockIDGenerator(t)

	gw, err := NewGateway(ModeDeferred, time.Second, ids, logger.NewNoopLogger())
	require.NoError(t, err)
	assert.IsType(t, &TimeoutGateway{}, gw)

	_, err = NewGateway("carrier-pigeon", time.Second, ids, logger.NewNoopLogger())
	assert.ErrorIs(t, err, errs.ErrInvalidEnumValue)
}
