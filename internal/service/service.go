package service

import (
	"context"

	"memberhub-backend/internal/domain"
)

type MembershipService interface {
	Apply(ctx context.Context, name, email string, company, reason *string) (*domain.MemberApplication, error)
	ListApplications(ctx context.Context) ([]domain.MemberApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.MemberApplication, error)
	CompleteRegistration(ctx context.Context, token string, input domain.RegistrationInput) (*domain.Member, error)
	SendRegistrationReminders(ctx context.Context) (int, error)
}

type DashboardService interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
}

type EmailService interface {
	SendInvitation(ctx context.Context, email, name, registrationLink string) error
	SendStatusNotification(ctx context.Context, email, name string, status domain.ApplicationStatus) error
	SendRegistrationReminder(ctx context.Context, email, name, registrationLink string) error
}
