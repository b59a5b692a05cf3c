package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/testutil"
	mockcore "github.com/amirhossein-jamali/pollwin/mocks/port/core"
)

var fixedNow = testutil.FixedNow

var (
	quietLogger   = testutil.QuietLogger
	sequentialIDs = testutil.SequentialIDs
)

// clockWithIdle reports fixedNow and fires every timer after idle
func clockWithIdle(t *testing.T, idle time.Duration) *mockcore.MockTimeProvider {
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()
	clock.EXPECT().After(mock.Anything).RunAndReturn(func(time.Duration) <-chan time.Time {
		return time.After(idle)
	}).Maybe()
	return clock
}
