package postgres

import (
	"context"
	"database/sql"
	"time"

	"memberhub-backend/internal/domain"
	"memberhub-backend/internal/repository"

	"github.com/google/uuid"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) CreateFromApplication(ctx context.Context, m *domain.Member, appID, token string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translateError(err)
	}
	defer tx.Rollback()

	// Clearing the token is guarded by the token value itself, so a
	// concurrent completion of the same token commits exactly once.
	res, err := tx.ExecContext(ctx,
		`UPDATE member_applications SET token = NULL WHERE id = $1 AND token = $2`,
		appID, token)
	if err != nil {
		return translateError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return translateError(err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	m.ID = uuid.NewString()
	m.Active = true
	err = tx.QueryRowContext(ctx,
		`INSERT INTO members (id, name, email, company, phone, role, address, city, country, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING created_at`,
		m.ID, m.Name, m.Email, m.Company, m.Phone, m.Role, m.Address, m.City, m.Country, m.Active, time.Now()).
		Scan(&m.CreatedAt)
	if err != nil {
		return translateError(err)
	}

	return translateError(tx.Commit())
}

func (r *memberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
