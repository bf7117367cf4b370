package postgres

import (
	"database/sql"
	"errors"

	"memberhub-backend/internal/domain"
	"memberhub-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ApplicationRepository
	repository.MemberRepository
	repository.ReferralRepository
	repository.ThanksRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ApplicationRepository: NewApplicationRepository(db),
		MemberRepository:      NewMemberRepository(db),
		ReferralRepository:    NewReferralRepository(db),
		ThanksRepository:      NewThanksRepository(db),
	}
}

// translateError maps driver-level failures to the semantic errors the
// service layer matches on. 23505 is the postgres unique_violation code.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateEmail
	}
	return err
}
