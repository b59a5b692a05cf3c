package ledger

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
)

func TestManager_SerializesPerKey(t *testing.T) {
	m := NewManager(quietLogger(t), clockWithIdle(t, time.Hour), 10, 0)
	defer m.Shutdown()

	var running, maxRunning int32
	var order []int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := m.Do(context.Background(), PollKey("p1"), func(context.Context) error {
				n := atomic.AddInt32(&running, 1)
				for {
					cur := atomic.LoadInt32(&maxRunning)
					if n <= cur || atomic.CompareAndSwapInt32(&maxRunning, cur, n) {
						break
					}
				}
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				atomic.AddInt32(&running, -1)
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxRunning)
	assert.Len(t, order, 50)
}

func TestManager_DifferentKeysRunConcurrently(t *testing.T) {
	m := NewManager(quietLogger(t), clockWithIdle(t, time.Hour), 10, 0)
	defer m.Shutdown()

	release := make(chan struct{})
	started := make(chan struct{}, 2)

	var wg sync.WaitGroup
	for _, key := range []string{WalletKey("a"), WalletKey("b")} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			_ = m.Do(context.Background(), key, func(context.Context) error {
				started <- struct{}{}
				<-release
				return nil
			})
		}(key)
	}

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatal("operations on different keys did not overlap")
		}
	}
	close(release)
	wg.Wait()
}

func TestManager_ReturnsOperationError(t *testing.T) {
	m := NewManager(quietLogger(t), clockWithIdle(t, time.Hour), 10, 0)
	defer m.Shutdown()

	err := m.Do(context.Background(), OrderKey("o1"), func(context.Context) error {
		return errs.ErrPaymentDeclined
	})
	assert.ErrorIs(t, err, errs.ErrPaymentDeclined)

	err = m.Do(context.Background(), OrderKey("o1"), func(context.Context) error {
		panic("boom")
	})
	assert.ErrorIs(t, err, errs.ErrInternalServer)
}

func TestManager_IdleWorkersRetire(t *testing.T) {
	m := NewManager(quietLogger(t), clockWithIdle(t, 5*time.Millisecond), 10, time.Millisecond)
	defer m.Shutdown()

	require.NoError(t, m.Do(context.Background(), WithdrawalKey("w1"), func(context.Context) error { return nil }))

	assert.Eventually(t, func() bool { return m.ActiveKeys() == 0 }, 2*time.Second, 5*time.Millisecond)

	// a retired key starts a fresh worker
	require.NoError(t, m.Do(context.Background(), WithdrawalKey("w1"), func(context.Context) error { return nil }))
}

func TestManager_CanceledContextSkipsOperation(t *testing.T) {
	m := NewManager(quietLogger(t), clockWithIdle(t, time.Hour), 10, 0)
	defer m.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := m.Do(ctx, PollKey("p1"), func(context.Context) error {
		called = true
		return nil
	})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, called)
}

func TestManager_Shutdown(t *testing.T) {
	m := NewManager(quietLogger(t), clockWithIdle(t, time.Hour), 10, 0)

	require.NoError(t, m.Do(context.Background(), PollKey("p1"), func(context.Context) error { return nil }))
	m.Shutdown()
	m.Shutdown()

	err := m.Do(context.Background(), PollKey("p1"), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, errs.ErrInternalServer)
	assert.Zero(t, m.ActiveKeys())
}
