package repository

import (
	"context"
	"time"

	"memberhub-backend/internal/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.MemberApplication) error
	GetByID(ctx context.Context, id string) (*domain.MemberApplication, error)
	GetByToken(ctx context.Context, token string) (*domain.MemberApplication, error)
	List(ctx context.Context) ([]domain.MemberApplication, error)
	// UpdateStatus sets status and token in a single statement. A nil token
	// clears the column.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, token *string) (*domain.MemberApplication, error)
	// ListAwaitingRegistration returns APPROVED applications still holding a
	// token that were created before the cutoff.
	ListAwaitingRegistration(ctx context.Context, createdBefore time.Time) ([]domain.MemberApplication, error)
}

type MemberRepository interface {
	// CreateFromApplication inserts the member and clears the application's
	// token in one transaction. Returns domain.ErrNotFound when the
	// application no longer holds the given token.
	CreateFromApplication(ctx context.Context, member *domain.Member, appID, token string) error
	CountActive(ctx context.Context) (int64, error)
}

type ReferralRepository interface {
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

type ThanksRepository interface {
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
