package service

import (
	"context"
	"fmt"
	"time"

	"memberhub-backend/internal/domain"
	"memberhub-backend/internal/logger"
	"memberhub-backend/internal/repository"
	"memberhub-backend/internal/security"
)

type membershipService struct {
	appRepo           repository.ApplicationRepository
	memberRepo        repository.MemberRepository
	emailSvc          EmailService
	baseURL           string
	reminderAfterDays int
}

func NewMembershipService(
	appRepo repository.ApplicationRepository,
	memberRepo repository.MemberRepository,
	emailSvc EmailService,
	baseURL string,
	reminderAfterDays int,
) MembershipService {
	return &membershipService{
		appRepo:           appRepo,
		memberRepo:        memberRepo,
		emailSvc:          emailSvc,
		baseURL:           baseURL,
		reminderAfterDays: reminderAfterDays,
	}
}

func (s *membershipService) Apply(ctx context.Context, name, email string, company, reason *string) (*domain.MemberApplication, error) {
	app := &domain.MemberApplication{
		Name:    name,
		Email:   email,
		Company: company,
		Reason:  reason,
	}
	// No pre-check on the email: the unique constraint is the duplicate
	// guard, so there is no race between check and insert.
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	logger.Info("Membership application received", "id", app.ID, "email", app.Email)
	return app, nil
}

func (s *membershipService) ListApplications(ctx context.Context) ([]domain.MemberApplication, error) {
	return s.appRepo.List(ctx)
}

func (s *membershipService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.MemberApplication, error) {
	if !status.IsDecision() {
		return nil, domain.ErrInvalidStatus
	}

	var token *string
	if status == domain.ApplicationStatusApproved {
		t, err := security.NewRegistrationToken()
		if err != nil {
			return nil, err
		}
		token = &t
	}

	app, err := s.appRepo.UpdateStatus(ctx, id, status, token)
	if err != nil {
		return nil, err
	}

	switch status {
	case domain.ApplicationStatusApproved:
		// Invitation dispatch is out-of-band: the decision stands even if
		// the email cannot be delivered.
		link := s.registrationLink(*token)
		if err := s.emailSvc.SendInvitation(ctx, app.Email, app.Name, link); err != nil {
			logger.Error("Failed to send invitation email", "id", app.ID, "error", err)
		}
	case domain.ApplicationStatusRejected:
		if err := s.emailSvc.SendStatusNotification(ctx, app.Email, app.Name, status); err != nil {
			logger.Error("Failed to send rejection notification", "id", app.ID, "error", err)
		}
	}

	logger.Info("Application status updated", "id", app.ID, "status", app.Status)
	return app, nil
}

func (s *membershipService) CompleteRegistration(ctx context.Context, token string, input domain.RegistrationInput) (*domain.Member, error) {
	app, err := s.appRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	company := input.Company
	if company == nil {
		company = app.Company
	}

	member := &domain.Member{
		Name:    app.Name,
		Email:   app.Email,
		Company: company,
		Phone:   input.Phone,
		Role:    input.Role,
		Address: input.Address,
		City:    input.City,
		Country: input.Country,
	}

	// Member insert and token clear commit together; a stale token loses
	// the race and surfaces as not found.
	if err := s.memberRepo.CreateFromApplication(ctx, member, app.ID, token); err != nil {
		return nil, err
	}

	logger.Info("Registration completed", "application_id", app.ID, "member_id", member.ID)
	return member, nil
}

// SendRegistrationReminders re-sends invitation links to approved applicants
// who have not completed registration after the configured number of days.
// Returns the number of reminders sent.
func (s *membershipService) SendRegistrationReminders(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.reminderAfterDays)
	apps, err := s.appRepo.ListAwaitingRegistration(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list applications awaiting registration: %w", err)
	}

	sent := 0
	for _, app := range apps {
		if app.Token == nil {
			continue
		}
		link := s.registrationLink(*app.Token)
		if err := s.emailSvc.SendRegistrationReminder(ctx, app.Email, app.Name, link); err != nil {
			logger.Error("Failed to send registration reminder", "id", app.ID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

func (s *membershipService) registrationLink(token string) string {
	return fmt.Sprintf("%s/register/%s", s.baseURL, token)
}
