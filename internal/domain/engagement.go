package domain

import "time"

// Referral and ThanksRecord are written by systems outside this backend.
// The dashboard only counts them against the current month boundary.

type Referral struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type ThanksRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardStats aggregates the three dashboard counts.
type DashboardStats struct {
	TotalMembers   int64 `json:"total_members"`
	TotalReferrals int64 `json:"total_referrals"`
	TotalThanks    int64 `json:"total_thanks"`
}
