// Package testutil holds mock setups shared by the use case tests
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	mockcore "github.com/amirhossein-jamali/pollwin/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/pollwin/mocks/port/persistence"
)

// FixedNow is the instant every test clock reports
var FixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

// QuietLogger accepts any log call
func QuietLogger(t *testing.T) *mockcore.MockLogger {
	l := mockcore.NewMockLogger(t)
	l.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().With(mock.Anything).Return(l).Maybe()
	return l
}

// Clock reports FixedNow and waits on real timers
func Clock(t *testing.T) *mockcore.MockTimeProvider {
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(FixedNow).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(time.Millisecond).Maybe()
	clock.EXPECT().After(mock.Anything).RunAndReturn(time.After).Maybe()
	return clock
}

// SequentialIDs issues <prefix>_1, <prefix>_2, ... per prefix
func SequentialIDs(t *testing.T) *mockcore.MockIDGenerator {
	ids := mockcore.NewMockIDGenerator(t)
	var mu sync.Mutex
	counters := make(map[string]int)
	ids.EXPECT().NewID(mock.Anything).RunAndReturn(func(prefix string) string {
		mu.Lock()
		defer mu.Unlock()
		counters[prefix]++
		return fmt.Sprintf("%s_%d", prefix, counters[prefix])
	}).Maybe()
	return ids
}

// Repositories bundles repository mocks served by one unit of work mock
type Repositories struct {
	UoW         *mockpersistence.MockUnitOfWork
	Users       *mockpersistence.MockUserRepository
	Wallets     *mockpersistence.MockWalletRepository
	Txns        *mockpersistence.MockTransactionRepository
	Polls       *mockpersistence.MockPollRepository
	Votes       *mockpersistence.MockVoteRepository
	Intents     *mockpersistence.MockPaymentIntentRepository
	Withdrawals *mockpersistence.MockWithdrawalRepository
	Settlements *mockpersistence.MockSettlementRepository
}

// NewRepositories wires every getter of a passthrough unit of work to a fresh mock
func NewRepositories(t *testing.T) *Repositories {
	r := &Repositories{
		UoW:         mockpersistence.NewMockUnitOfWork(t),
		Users:       mockpersistence.NewMockUserRepository(t),
		Wallets:     mockpersistence.NewMockWalletRepository(t),
		Txns:        mockpersistence.NewMockTransactionRepository(t),
		Polls:       mockpersistence.NewMockPollRepository(t),
		Votes:       mockpersistence.NewMockVoteRepository(t),
		Intents:     mockpersistence.NewMockPaymentIntentRepository(t),
		Withdrawals: mockpersistence.NewMockWithdrawalRepository(t),
		Settlements: mockpersistence.NewMockSettlementRepository(t),
	}
	r.UoW.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	r.UoW.EXPECT().GetUserRepository(mock.Anything).Return(r.Users).Maybe()
	r.UoW.EXPECT().GetWalletRepository(mock.Anything).Return(r.Wallets).Maybe()
	r.UoW.EXPECT().GetTransactionRepository(mock.Anything).Return(r.Txns).Maybe()
	r.UoW.EXPECT().GetPollRepository(mock.Anything).Return(r.Polls).Maybe()
	r.UoW.EXPECT().GetVoteRepository(mock.Anything).Return(r.Votes).Maybe()
	r.UoW.EXPECT().GetPaymentIntentRepository(mock.Anything).Return(r.Intents).Maybe()
	r.UoW.EXPECT().GetWithdrawalRepository(mock.Anything).Return(r.Withdrawals).Maybe()
	r.UoW.EXPECT().GetSettlementRepository(mock.Anything).Return(r.Settlements).Maybe()
	return r
}
