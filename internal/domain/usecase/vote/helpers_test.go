package vote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/testutil"
	mockexternal "github.com/amirhossein-jamali/pollwin/mocks/port/external"
	mockpersistence "github.com/amirhossein-jamali/pollwin/mocks/port/persistence"
)

var fixedNow = testutil.FixedNow

type fixture struct {
	useCase  *VoteUseCase
	uow      *mockpersistence.MockUnitOfWork
	users    *mockpersistence.MockUserRepository
	wallets  *mockpersistence.MockWalletRepository
	txns     *mockpersistence.MockTransactionRepository
	polls    *mockpersistence.MockPollRepository
	votes    *mockpersistence.MockVoteRepository
	intents  *mockpersistence.MockPaymentIntentRepository
	gateway  *mockexternal.MockPaymentGateway
	notifier *mockexternal.MockNotifier

	// stored rows the repository mocks hand back
	intent *entity.PaymentIntent
	txn    *entity.Transaction
}

func newFixture(t *testing.T, funding entity.Funding) *fixture {
	repos := testutil.NewRepositories(t)
	f := &fixture{
		uow:      repos.UoW,
		users:    repos.Users,
		wallets:  repos.Wallets,
		txns:     repos.Txns,
		polls:    repos.Polls,
		votes:    repos.Votes,
		intents:  repos.Intents,
		gateway:  mockexternal.NewMockPaymentGateway(t),
		notifier: mockexternal.NewMockNotifier(t),
	}

	logger := testutil.QuietLogger(t)
	clock := testutil.Clock(t)
	ids := testutil.SequentialIDs(t)

	manager := ledger.NewManager(logger, clock, 10, time.Minute)
	t.Cleanup(manager.Shutdown)
	poster := ledger.NewPoster(f.uow, ids, clock, logger)

	f.useCase = NewVoteUseCase(f.uow, manager, poster, f.gateway, f.notifier, ids, clock, logger, funding)
	return f
}

// expectOpenOrder stubs the reads and writes of order creation and keeps the stored rows
func (f *fixture) expectOpenOrder(poll *entity.Poll) {
	f.users.EXPECT().GetByID(mock.Anything, "user_1").Return(&entity.User{ID: "user_1"}, nil)
	f.polls.EXPECT().GetByID(mock.Anything, poll.ID).Return(poll, nil)
	f.txns.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, txn *entity.Transaction) error {
			f.txn = txn
			return nil
		})
	f.intents.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, intent *entity.PaymentIntent) error {
			f.intent = intent
			return nil
		})
}

// expectStoredOrder lets confirmation and failure find the stored rows
func (f *fixture) expectStoredOrder() {
	f.intents.EXPECT().GetByOrderIDForUpdate(mock.Anything, "order_1").RunAndReturn(
		func(context.Context, string) (*entity.PaymentIntent, error) {
			return f.intent, nil
		}).Maybe()
	f.intents.EXPECT().GetByOrderID(mock.Anything, "order_1").RunAndReturn(
		func(context.Context, string) (*entity.PaymentIntent, error) {
			return f.intent, nil
		}).Maybe()
	f.txns.EXPECT().GetByID(mock.Anything, mock.Anything).RunAndReturn(
		func(context.Context, string) (*entity.Transaction, error) {
			return f.txn, nil
		}).Maybe()
	f.intents.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.txns.EXPECT().UpdateStatus(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func activePoll() *entity.Poll {
	return &entity.Poll{
		ID:           "poll_1",
		Title:        "Who wins the final?",
		PricePerVote: entity.Rupees(10),
		Status:       entity.PollActive,
		Options: []entity.Option{
			{ID: "opt_a", PollID: "poll_1", Position: 0, Text: "A"},
			{ID: "opt_b", PollID: "poll_1", Position: 1, Text: "B"},
		},
		CreatedAt: fixedNow,
	}
}
