package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/pollwin/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("user_1", " Asha@Example.com ", "Asha", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "user_1", user.ID)
		assert.Equal(t, "asha@example.com", user.Email)
		assert.Equal(t, "Asha", user.Name)
		assert.Empty(t, user.UPIID)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name  string
			id    string
			email string
			uname string
		}{
			{"missing id", "", "a@b.co", "A"},
			{"bad email", "user_1", "not-an-email", "A"},
			{"blank name", "user_1", "a@b.co", "  "},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				user, err := NewUser(tc.id, tc.email, tc.uname, mockTime)
				assert.Nil(t, user)
				assert.True(t, errs.IsValidationError(err))
			})
		}
	})
}

func TestUser_SetUPI(t *testing.T) {
	user := &User{ID: "user_1"}

	require.NoError(t, user.SetUPI(" asha@upi "))
	assert.Equal(t, "asha@upi", user.UPIID)
	assert.ErrorIs(t, user.SetUPI(""), errs.ErrInvalidUPI)
	assert.Equal(t, "asha@upi", user.UPIID)
}

func TestWallet_CreditAndDebit(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("credit then debit", func(t *testing.T) {
		w := NewWallet("wal_1", "user_1", mockTime)
		assert.Equal(t, Money(0), w.Balance())

		require.NoError(t, w.Credit(Rupees(500), mockTime))
		require.NoError(t, w.Debit(Rupees(200), mockTime))
		assert.Equal(t, Rupees(300), w.Balance())
	})

	t.Run("debit never drives balance negative", func(t *testing.T) {
		w := NewWallet("wal_1", "user_1", mockTime)
		require.NoError(t, w.Credit(Rupees(10), mockTime))

		err := w.Debit(Rupees(10)+1, mockTime)

		assert.True(t, errs.IsInsufficientBalanceError(err))
		assert.Equal(t, Rupees(10), w.Balance())
	})

	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		w := NewWallet("wal_1", "user_1", mockTime)
		assert.ErrorIs(t, w.Credit(0, mockTime), errs.ErrInvalidAmount)
		assert.ErrorIs(t, w.Debit(-5, mockTime), errs.ErrInvalidAmount)
	})

	t.Run("restore refuses negative balances", func(t *testing.T) {
		_, err := RestoreWallet("wal_1", "user_1", -1, fixedTime)
		assert.ErrorIs(t, err, errs.ErrNegativeBalance)
	})
}
