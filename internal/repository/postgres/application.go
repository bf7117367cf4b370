package postgres

import (
	"context"
	"database/sql"
	"time"

	"memberhub-backend/internal/domain"
	"memberhub-backend/internal/logger"
	"memberhub-backend/internal/repository"

	"github.com/google/uuid"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, name, email, company, reason, status, token, created_at`

func scanApplication(row interface{ Scan(...any) error }) (*domain.MemberApplication, error) {
	app := &domain.MemberApplication{}
	err := row.Scan(&app.ID, &app.Name, &app.Email, &app.Company, &app.Reason, &app.Status, &app.Token, &app.CreatedAt)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.MemberApplication) error {
	query := `INSERT INTO member_applications (id, name, email, company, reason, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	app.ID = uuid.NewString()
	app.Status = domain.ApplicationStatusPending
	err := r.db.QueryRowContext(ctx, query, app.ID, app.Name, app.Email, app.Company, app.Reason, app.Status, time.Now()).Scan(&app.CreatedAt)
	return translateError(err)
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.MemberApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM member_applications WHERE id = $1`
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return app, nil
}

func (r *applicationRepository) GetByToken(ctx context.Context, token string) (*domain.MemberApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM member_applications WHERE token = $1`
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, token))
	if err != nil {
		return nil, translateError(err)
	}
	return app, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]domain.MemberApplication, error) {
	logger.DatabaseCall("SELECT", "member_applications")
	query := `SELECT ` + applicationColumns + ` FROM member_applications ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		return nil, translateError(err)
	}
	defer rows.Close()

	var apps []domain.MemberApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, translateError(err)
		}
		apps = append(apps, *app)
	}
	logger.DatabaseResult("SELECT", int64(len(apps)), rows.Err())
	return apps, rows.Err()
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, token *string) (*domain.MemberApplication, error) {
	query := `UPDATE member_applications SET status = $1, token = $2 WHERE id = $3
	          RETURNING ` + applicationColumns
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, status, token, id))
	if err != nil {
		return nil, translateError(err)
	}
	return app, nil
}

func (r *applicationRepository) ListAwaitingRegistration(ctx context.Context, createdBefore time.Time) ([]domain.MemberApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM member_applications
	          WHERE status = $1 AND token IS NOT NULL AND created_at < $2
	          ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, domain.ApplicationStatusApproved, createdBefore)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var apps []domain.MemberApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, translateError(err)
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}
