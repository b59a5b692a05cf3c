package entity

// Dashboard is the admin overview of the platform
type Dashboard struct {
	TotalUsers         int64
	TotalPolls         int64
	ActivePolls        int64
	PendingWithdrawals int64
	TotalRevenue       Money // confirmed purchases
	TotalPaidOut       Money // win credits
	HouseRetained      Money
}

// ReconcileReport compares a wallet's materialized balance with its ledger
type ReconcileReport struct {
	UserID        string
	Balance       Money
	LedgerBalance Money
	Drift         Money
	Consistent    bool
}

// NewReconcileReport derives drift between the two balances
func NewReconcileReport(userID string, balance, ledgerBalance Money) ReconcileReport {
	return ReconcileReport{
		UserID:        userID,
		Balance:       balance,
		LedgerBalance: ledgerBalance,
		Drift:         balance - ledgerBalance,
		Consistent:    balance == ledgerBalance,
	}
}
