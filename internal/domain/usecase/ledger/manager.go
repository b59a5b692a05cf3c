package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
)

// Defaults for NewManager when the configuration leaves a value unset
const (
	DefaultQueueSize   = 100
	DefaultIdleTimeout = 30 * time.Second
)

// PollKey orders settlement of one poll
func PollKey(pollID string) string { return "poll:" + pollID }

// OrderKey orders confirmation of one payment order
func OrderKey(orderID string) string { return "order:" + orderID }

// WalletKey orders withdrawal requests of one user
func WalletKey(userID string) string { return "wallet:" + userID }

// WithdrawalKey orders review of one withdrawal
func WithdrawalKey(withdrawalID string) string { return "withdrawal:" + withdrawalID }

// Manager runs operations one at a time per key. Each key gets a worker
// goroutine with a buffered queue; the worker exits after idling.
// Operations on different keys run concurrently.
type Manager struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	queueSize    int
	idleTimeout  time.Duration

	mu       sync.Mutex
	queues   map[string]*keyQueue
	closed   bool
	quit     chan struct{}
	workerWG sync.WaitGroup
}

type keyQueue struct {
	requests chan *request
	pending  int // guarded by Manager.mu; counts requests enqueued but not finished
}

type request struct {
	ctx    context.Context
	fn     func(ctx context.Context) error
	result chan error
}

// NewManager creates a keyed serializer
func NewManager(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	queueSize int,
	idleTimeout time.Duration,
) *Manager {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Manager{
		logger:       logger,
		timeProvider: timeProvider,
		queueSize:    queueSize,
		idleTimeout:  idleTimeout,
		queues:       make(map[string]*keyQueue),
		quit:         make(chan struct{}),
	}
}

// Do runs fn after every earlier operation on key has finished and returns its error.
// If ctx ends before fn starts, fn is skipped.
func (m *Manager) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return fmt.Errorf("%w: ledger manager is shut down", errs.ErrInternalServer)
	}
	q, ok := m.queues[key]
	if !ok {
		q = &keyQueue{requests: make(chan *request, m.queueSize)}
		m.queues[key] = q
		m.workerWG.Add(1)
		go m.work(key, q)
	}
	q.pending++
	m.mu.Unlock()

	req := &request{ctx: ctx, fn: fn, result: make(chan error, 1)}

	select {
	case q.requests <- req:
	case <-ctx.Done():
		m.finish(q)
		m.logger.Warn("Context canceled while enqueueing operation", map[string]any{
			"key":   key,
			"error": ctx.Err().Error(),
		})
		return ctx.Err()
	}

	select {
	case err := <-req.result:
		return err
	case <-ctx.Done():
		m.logger.Warn("Context canceled while waiting for operation", map[string]any{
			"key":   key,
			"error": ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

func (m *Manager) work(key string, q *keyQueue) {
	defer m.workerWG.Done()

	for {
		select {
		case req := <-q.requests:
			m.run(key, req)
			m.finish(q)
		case <-m.timeProvider.After(m.idleTimeout):
			if m.retire(key, q) {
				return
			}
		case <-m.quit:
			if m.retire(key, q) {
				return
			}
			select {
			case req := <-q.requests:
				m.run(key, req)
				m.finish(q)
			case <-m.timeProvider.After(m.idleTimeout):
			}
		}
	}
}

func (m *Manager) run(key string, req *request) {
	if err := req.ctx.Err(); err != nil {
		req.result <- err
		return
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Operation panicked", map[string]any{
				"key":   key,
				"panic": fmt.Sprint(r),
			})
			req.result <- fmt.Errorf("%w: operation panicked", errs.ErrInternalServer)
		}
	}()

	req.result <- req.fn(req.ctx)
}

func (m *Manager) finish(q *keyQueue) {
	m.mu.Lock()
	q.pending--
	m.mu.Unlock()
}

// retire removes the queue when nothing is pending for it
func (m *Manager) retire(key string, q *keyQueue) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if q.pending > 0 {
		return false
	}
	if m.queues[key] == q {
		delete(m.queues, key)
	}
	return true
}

// ActiveKeys returns the number of keys that currently own a worker
func (m *Manager) ActiveKeys() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queues)
}

// Shutdown rejects new operations, lets queued ones finish and waits for the workers
func (m *Manager) Shutdown() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	close(m.quit)
	m.mu.Unlock()

	m.logger.Info("Shutting down ledger manager", nil)
	m.workerWG.Wait()
	m.logger.Info("Ledger manager shut down", nil)
}
