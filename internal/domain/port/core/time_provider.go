package core

import (
	"time"
)

// TimeProvider abstracts the clock so ledger timestamps and retry backoff are testable
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	// After waits for the duration to elapse and then sends the current time
	After(d time.Duration) <-chan time.Time
}
