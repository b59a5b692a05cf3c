package entity

import (
	"math/bits"
	"sort"
	"time"
)

// VoteTally is the summed votes of one user on one option of a poll
type VoteTally struct {
	UserID   string
	OptionID string
	Votes    int64
	Amount   Money
}

// OptionResult is the aggregate for one option
type OptionResult struct {
	OptionID   string
	Text       string
	VoteCount  int64
	Amount     Money
	Percentage float64
}

// PollResults is the public aggregate view of a poll
type PollResults struct {
	PollID          string
	Status          PollStatus
	WinningOptionID string
	TotalVotes      int64
	TotalAmount     Money
	OptionResults   []OptionResult
}

// Payout is one winner's share of the pool
type Payout struct {
	UserID       string
	WinningVotes int64
	Amount       Money
}

// SettlementReport summarizes a declared result
type SettlementReport struct {
	PollID          string
	WinningOptionID string
	TotalVotes      int64
	TotalAmount     Money
	WinningWeight   int64
	OptionResults   []OptionResult
	Payouts         []Payout
	Distributed     Money
	HouseRetained   Money
	SettledAt       time.Time
}

// ResultStatus is a user's outcome on a poll
type ResultStatus string

// Result statuses
const (
	ResultPending         ResultStatus = "pending"
	ResultWon             ResultStatus = "won"
	ResultLost            ResultStatus = "lost"
	ResultNotParticipated ResultStatus = "not_participated"
)

// MyResult is one user's view of a poll
type MyResult struct {
	PollID        string
	Participated  bool
	TotalVotes    int64
	TotalSpent    Money
	ResultStatus  ResultStatus
	WinningAmount Money
}

// BuildResults aggregates tallies per option in the poll's option order
func BuildResults(poll *Poll, tallies []VoteTally) PollResults {
	perOption := make(map[string]*OptionResult, len(poll.Options))
	results := make([]OptionResult, len(poll.Options))
	for i, opt := range poll.Options {
		results[i] = OptionResult{OptionID: opt.ID, Text: opt.Text}
		perOption[opt.ID] = &results[i]
	}

	var totalVotes int64
	var totalAmount Money
	for _, t := range tallies {
		totalVotes += t.Votes
		totalAmount += t.Amount
		if r, ok := perOption[t.OptionID]; ok {
			r.VoteCount += t.Votes
			r.Amount += t.Amount
		}
	}
	for i := range results {
		results[i].Percentage = Percentage(results[i].VoteCount, totalVotes)
	}

	return PollResults{
		PollID:          poll.ID,
		Status:          poll.Status,
		WinningOptionID: poll.ResultOptionID,
		TotalVotes:      totalVotes,
		TotalAmount:     totalAmount,
		OptionResults:   results,
	}
}

// ComputeSettlement distributes the whole pool among backers of the winning
// option in proportion to their winning votes. Payouts are sorted by user ID.
func ComputeSettlement(poll *Poll, winningOptionID string, tallies []VoteTally, settledAt time.Time) SettlementReport {
	results := BuildResults(poll, tallies)
	weights := winningWeights(winningOptionID, tallies)

	var winningWeight int64
	for _, w := range weights {
		winningWeight += w.WinningVotes
	}

	report := SettlementReport{
		PollID:          poll.ID,
		WinningOptionID: winningOptionID,
		TotalVotes:      results.TotalVotes,
		TotalAmount:     results.TotalAmount,
		WinningWeight:   winningWeight,
		OptionResults:   results.OptionResults,
		SettledAt:       settledAt,
	}
	if winningWeight == 0 {
		report.HouseRetained = results.TotalAmount
		return report
	}

	report.Payouts = Allocate(results.TotalAmount, weights)
	for _, p := range report.Payouts {
		report.Distributed += p.Amount
	}
	report.HouseRetained = report.TotalAmount - report.Distributed
	return report
}

// ComputeMyResult replays the settlement aggregation for a single user
func ComputeMyResult(poll *Poll, tallies []VoteTally, userID string) MyResult {
	res := MyResult{PollID: poll.ID, ResultStatus: ResultNotParticipated}
	var winning int64
	for _, t := range tallies {
		if t.UserID != userID {
			continue
		}
		res.TotalVotes += t.Votes
		res.TotalSpent += t.Amount
		if t.OptionID == poll.ResultOptionID {
			winning += t.Votes
		}
	}
	res.Participated = res.TotalVotes > 0

	switch {
	case !res.Participated:
		return res
	case poll.Status != PollClosed:
		res.ResultStatus = ResultPending
		return res
	case winning == 0:
		res.ResultStatus = ResultLost
		return res
	}

	res.ResultStatus = ResultWon
	report := ComputeSettlement(poll, poll.ResultOptionID, tallies, time.Time{})
	for _, p := range report.Payouts {
		if p.UserID == userID {
			res.WinningAmount = p.Amount
			break
		}
	}
	return res
}

func winningWeights(winningOptionID string, tallies []VoteTally) []Payout {
	byUser := make(map[string]int64)
	for _, t := range tallies {
		if t.OptionID == winningOptionID && t.Votes > 0 {
			byUser[t.UserID] += t.Votes
		}
	}
	weights := make([]Payout, 0, len(byUser))
	for userID, votes := range byUser {
		weights = append(weights, Payout{UserID: userID, WinningVotes: votes})
	}
	sort.Slice(weights, func(i, j int) bool { return weights[i].UserID < weights[j].UserID })
	return weights
}

// Allocate splits total across weights using the largest remainder method.
// Each share is floor(total*w/W) computed exactly in 128 bits; the leftover
// paise go one each to the largest remainders, ties to the smaller user ID.
// The returned amounts always sum to total.
func Allocate(total Money, weights []Payout) []Payout {
	var sum uint64
	for _, w := range weights {
		sum += uint64(w.WinningVotes)
	}
	out := make([]Payout, len(weights))
	copy(out, weights)
	if sum == 0 || total <= 0 {
		return out
	}

	remainders := make([]uint64, len(out))
	var allocated Money
	for i := range out {
		hi, lo := bits.Mul64(uint64(total), uint64(out[i].WinningVotes))
		q, r := bits.Div64(hi, lo, sum)
		out[i].Amount = Money(q)
		remainders[i] = r
		allocated += Money(q)
	}

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if remainders[ia] != remainders[ib] {
			return remainders[ia] > remainders[ib]
		}
		return out[ia].UserID < out[ib].UserID
	})

	for k := 0; allocated < total; k++ {
		out[order[k]].Amount++
		allocated++
	}
	return out
}
