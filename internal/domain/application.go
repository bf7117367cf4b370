package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// IsDecision reports whether the status is a valid admin decision.
// PENDING is the initial state only, never a decision target.
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// MemberApplication is a membership request progressing through
// PENDING/APPROVED/REJECTED. Token is set on approval and cleared
// when registration completes; it is never present in any other state.
type MemberApplication struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Company   *string           `json:"company,omitempty"`
	Reason    *string           `json:"reason,omitempty"`
	Status    ApplicationStatus `json:"status"`
	Token     *string           `json:"token,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
