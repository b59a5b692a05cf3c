package dto

import "github.com/amirhossein-jamali/pollwin/internal/domain/entity"

// DashboardResponse is the admin overview
type DashboardResponse struct {
	TotalUsers         int64        `json:"total_users"`
	TotalPolls         int64        `json:"total_polls"`
	ActivePolls        int64        `json:"active_polls"`
	PendingWithdrawals int64        `json:"pending_withdrawals"`
	TotalRevenue       entity.Money `json:"total_revenue"`
	TotalPaidOut       entity.Money `json:"total_paid_out"`
	HouseRetained      entity.Money `json:"house_retained"`
}

// ReconcileResponse reports wallet drift
type ReconcileResponse struct {
	UserID        string       `json:"user_id"`
	Balance       entity.Money `json:"balance"`
	LedgerBalance entity.Money `json:"ledger_balance"`
	Drift         entity.Money `json:"drift"`
	Consistent    bool         `json:"consistent"`
}

// NewDashboardResponse maps the dashboard
func NewDashboardResponse(d *entity.Dashboard) DashboardResponse {
	return DashboardResponse{
		TotalUsers:         d.TotalUsers,
		TotalPolls:         d.TotalPolls,
		ActivePolls:        d.ActivePolls,
		PendingWithdrawals: d.PendingWithdrawals,
		TotalRevenue:       d.TotalRevenue,
		TotalPaidOut:       d.TotalPaidOut,
		HouseRetained:      d.HouseRetained,
	}
}

// NewReconcileResponse maps a reconcile report
func NewReconcileResponse(r *entity.ReconcileReport) ReconcileResponse {
	return ReconcileResponse{
		UserID:        r.UserID,
		Balance:       r.Balance,
		LedgerBalance: r.LedgerBalance,
		Drift:         r.Drift,
		Consistent:    r.Consistent,
	}
}
