package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/testutil"
)

func newUseCase(t *testing.T) (*UserUseCase, *testutil.Repositories) {
	repos := testutil.NewRepositories(t)
	return NewUserUseCase(repos.UoW, testutil.SequentialIDs(t), testutil.Clock(t), testutil.QuietLogger(t)), repos
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration", func(t *testing.T) {
		uc, repos := newUseCase(t)
		repos.Users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "user_1" && u.Email == "asha@example.com" && u.UPIID == "asha@upi"
		})).Return(nil).Once()
		repos.Wallets.EXPECT().Create(mock.Anything, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.UserID == "user_1" && w.Balance() == 0
		})).Return(nil).Once()

		profile, err := uc.Register(ctx, usecase.RegisterRequest{
			Email: " Asha@Example.com ",
			Name:  "Asha",
			UPIID: "asha@upi",
		})

		require.NoError(t, err)
		assert.Equal(t, "user_1", profile.User.ID)
		assert.Equal(t, "wal_1", profile.Wallet.ID)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		uc, repos := newUseCase(t)
		repos.Users.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser)

		_, err := uc.Register(ctx, usecase.RegisterRequest{Email: "asha@example.com", Name: "Asha"})

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		repos.Wallets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name string
			req  usecase.RegisterRequest
		}{
			{"BadEmail", usecase.RegisterRequest{Email: "not-an-email", Name: "Asha"}},
			{"MissingName", usecase.RegisterRequest{Email: "asha@example.com"}},
			{"BlankUPI", usecase.RegisterRequest{Email: "asha@example.com", Name: "Asha", UPIID: "   "}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				uc, repos := newUseCase(t)
				_, err := uc.Register(ctx, tc.req)
				assert.True(t, errs.IsValidationError(err))
				repos.Users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing user", func(t *testing.T) {
		uc, repos := newUseCase(t)
		wallet, err := entity.RestoreWallet("wal_1", "user_1", entity.Rupees(75), testutil.FixedNow)
		require.NoError(t, err)
		repos.Users.EXPECT().GetByID(mock.Anything, "user_1").Return(&entity.User{ID: "user_1"}, nil)
		repos.Wallets.EXPECT().GetByUserID(mock.Anything, "user_1").Return(wallet, nil)

		profile, err := uc.GetProfile(ctx, "user_1")

		require.NoError(t, err)
		assert.Equal(t, entity.Rupees(75), profile.Wallet.Balance())
	})

	t.Run("Unknown user", func(t *testing.T) {
		uc, repos := newUseCase(t)
		repos.Users.EXPECT().GetByID(mock.Anything, "user_9").Return(nil, errs.ErrUserNotFound)

		_, err := uc.GetProfile(ctx, "user_9")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUpdateUPI(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces the identifier", func(t *testing.T) {
		uc, repos := newUseCase(t)
		user := &entity.User{ID: "user_1", UPIID: "old@upi"}
		repos.Users.EXPECT().GetByID(mock.Anything, "user_1").Return(user, nil)
		repos.Users.EXPECT().Update(mock.Anything, user).Return(nil)

		updated, err := uc.UpdateUPI(ctx, "user_1", " new@upi ")

		require.NoError(t, err)
		assert.Equal(t, "new@upi", updated.UPIID)
	})

	t.Run("Rejects a blank identifier", func(t *testing.T) {
		uc, repos := newUseCase(t)
		repos.Users.EXPECT().GetByID(mock.Anything, "user_1").Return(&entity.User{ID: "user_1"}, nil)

		_, err := uc.UpdateUPI(ctx, "user_1", "")

		assert.ErrorIs(t, err, errs.ErrInvalidUPI)
		repos.Users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestListTransactions(t *testing.T) {
	uc, repos := newUseCase(t)
	page := persistence.Page{Limit: 50}
	repos.Txns.EXPECT().List(mock.Anything, persistence.TransactionFilter{UserID: "user_1"}, page).
		Return([]*entity.Transaction{{ID: "txn_1"}, {ID: "txn_2"}}, nil)

	txns, err := uc.ListTransactions(context.Background(), "user_1", page)

	require.NoError(t, err)
	assert.Len(t, txns, 2)
}
