package postgres

import (
	"context"
	"database/sql"
	"time"

	"memberhub-backend/internal/repository"
)

// Referrals and thanks records are written by other systems; this backend
// only counts them for the dashboard.

type referralRepository struct {
	db *sql.DB
}

func NewReferralRepository(db *sql.DB) repository.ReferralRepository {
	return &referralRepository{db: db}
}

func (r *referralRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM referrals WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

type thanksRepository struct {
	db *sql.DB
}

func NewThanksRepository(db *sql.DB) repository.ThanksRepository {
	return &thanksRepository{db: db}
}

func (r *thanksRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM thanks_records WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
