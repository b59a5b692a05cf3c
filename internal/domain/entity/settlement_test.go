package entity

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSettlement_ProportionalSplit(t *testing.T) {
	// u1 backs Yes with 2 votes, u2 with 1, u3 backs No with 1; 10.00 each.
	p := newTestPoll(t)
	yes, no := p.Options[0].ID, p.Options[1].ID
	tallies := []VoteTally{
		{UserID: "u1", OptionID: yes, Votes: 2, Amount: Rupees(20)},
		{UserID: "u2", OptionID: yes, Votes: 1, Amount: Rupees(10)},
		{UserID: "u3", OptionID: no, Votes: 1, Amount: Rupees(10)},
	}
	settledAt := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	report := ComputeSettlement(p, yes, tallies, settledAt)

	assert.Equal(t, Rupees(40), report.TotalAmount)
	assert.Equal(t, int64(4), report.TotalVotes)
	assert.Equal(t, int64(3), report.WinningWeight)
	require.Len(t, report.Payouts, 2)
	assert.Equal(t, Payout{UserID: "u1", WinningVotes: 2, Amount: 2667}, report.Payouts[0])
	assert.Equal(t, Payout{UserID: "u2", WinningVotes: 1, Amount: 1333}, report.Payouts[1])
	assert.Equal(t, Rupees(40), report.Distributed)
	assert.Equal(t, Money(0), report.HouseRetained)
	assert.Equal(t, settledAt, report.SettledAt)
	assert.Equal(t, 75.0, report.OptionResults[0].Percentage)
	assert.Equal(t, 25.0, report.OptionResults[1].Percentage)
}

func TestComputeSettlement_NoWinningVotes(t *testing.T) {
	p := newTestPoll(t)
	yes, no := p.Options[0].ID, p.Options[1].ID
	tallies := []VoteTally{
		{UserID: "u1", OptionID: yes, Votes: 5, Amount: Rupees(50)},
	}

	report := ComputeSettlement(p, no, tallies, time.Time{})

	assert.Empty(t, report.Payouts)
	assert.Equal(t, int64(0), report.WinningWeight)
	assert.Equal(t, Money(0), report.Distributed)
	assert.Equal(t, Rupees(50), report.HouseRetained)
}

func TestComputeSettlement_AggregatesPerUser(t *testing.T) {
	p := newTestPoll(t)
	yes := p.Options[0].ID
	tallies := []VoteTally{
		{UserID: "u2", OptionID: yes, Votes: 1, Amount: Rupees(10)},
		{UserID: "u1", OptionID: yes, Votes: 1, Amount: Rupees(10)},
		{UserID: "u2", OptionID: yes, Votes: 1, Amount: Rupees(10)},
	}

	report := ComputeSettlement(p, yes, tallies, time.Time{})

	require.Len(t, report.Payouts, 2)
	assert.Equal(t, "u1", report.Payouts[0].UserID)
	assert.Equal(t, Rupees(10), report.Payouts[0].Amount)
	assert.Equal(t, int64(2), report.Payouts[1].WinningVotes)
	assert.Equal(t, Rupees(20), report.Payouts[1].Amount)
}

func TestAllocate_TiesGoToSmallerUserID(t *testing.T) {
	weights := []Payout{
		{UserID: "a", WinningVotes: 1},
		{UserID: "b", WinningVotes: 1},
		{UserID: "c", WinningVotes: 1},
	}

	payouts := Allocate(100, weights)

	assert.Equal(t, Money(34), payouts[0].Amount)
	assert.Equal(t, Money(33), payouts[1].Amount)
	assert.Equal(t, Money(33), payouts[2].Amount)
}

func TestAllocate_LargeValuesStayExact(t *testing.T) {
	weights := []Payout{
		{UserID: "a", WinningVotes: 1 << 40},
		{UserID: "b", WinningVotes: (1 << 40) + 1},
	}
	total := Money(1 << 60)

	payouts := Allocate(total, weights)

	assert.Equal(t, total, payouts[0].Amount+payouts[1].Amount)
	assert.LessOrEqual(t, payouts[0].Amount, payouts[1].Amount)
}

func TestAllocate_ConservesTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(12)
		weights := make([]Payout, n)
		var sum int64
		for i := range weights {
			weights[i] = Payout{UserID: fmt.Sprintf("u%02d", i), WinningVotes: 1 + rng.Int63n(50)}
			sum += weights[i].WinningVotes
		}
		total := Money(rng.Int63n(10_000_000))

		payouts := Allocate(total, weights)

		var got Money
		for i, p := range payouts {
			got += p.Amount
			floor := int64(total) * p.WinningVotes / sum
			assert.GreaterOrEqual(t, int64(p.Amount), floor, "round %d share %d", round, i)
			assert.LessOrEqual(t, int64(p.Amount), floor+1, "round %d share %d", round, i)
		}
		require.Equal(t, total, got, "round %d", round)
	}
}

func TestComputeMyResult(t *testing.T) {
	p := newTestPoll(t)
	yes, no := p.Options[0].ID, p.Options[1].ID
	tallies := []VoteTally{
		{UserID: "u1", OptionID: yes, Votes: 2, Amount: Rupees(20)},
		{UserID: "u2", OptionID: yes, Votes: 1, Amount: Rupees(10)},
		{UserID: "u3", OptionID: no, Votes: 1, Amount: Rupees(10)},
	}

	pending := ComputeMyResult(p, tallies, "u1")
	assert.Equal(t, ResultPending, pending.ResultStatus)
	assert.True(t, pending.Participated)
	assert.Equal(t, Rupees(20), pending.TotalSpent)

	require.NoError(t, p.BeginSettlement(yes))
	mockTime := newFixedTime(t)
	require.NoError(t, p.Close(mockTime))

	testCases := []struct {
		userID         string
		expectedStatus ResultStatus
		expectedWin    Money
	}{
		{"u1", ResultWon, 2667},
		{"u2", ResultWon, 1333},
		{"u3", ResultLost, 0},
		{"u4", ResultNotParticipated, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.userID, func(t *testing.T) {
			res := ComputeMyResult(p, tallies, tc.userID)
			assert.Equal(t, tc.expectedStatus, res.ResultStatus)
			assert.Equal(t, tc.expectedWin, res.WinningAmount)
		})
	}
}

func TestNewReconcileReport(t *testing.T) {
	ok := NewReconcileReport("u1", Rupees(10), Rupees(10))
	assert.True(t, ok.Consistent)

	drift := NewReconcileReport("u1", Rupees(10), Rupees(8))
	assert.False(t, drift.Consistent)
	assert.Equal(t, Rupees(2), drift.Drift)
}
