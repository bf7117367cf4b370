package jobs

import (
	"context"
	"time"

	"memberhub-backend/internal/config"
	"memberhub-backend/internal/logger"
	"memberhub-backend/internal/service"
)

// JobRunner executes scheduled maintenance jobs
type JobRunner struct {
	membershipSvc service.MembershipService
	cfg           *config.Config
}

func NewJobRunner(membershipSvc service.MembershipService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		membershipSvc: membershipSvc,
		cfg:           cfg,
	}
}

// Config returns the loaded configuration
func (j *JobRunner) Config() *config.Config {
	return j.cfg
}

// SendRegistrationReminders nudges approved applicants who have not yet
// completed registration.
func (j *JobRunner) SendRegistrationReminders() {
	start := time.Now()
	logger.Info("Job started", "job", "send_registration_reminders")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sent, err := j.membershipSvc.SendRegistrationReminders(ctx)
	if err != nil {
		logger.Error("Job failed", "job", "send_registration_reminders", "error", err)
		return
	}
	logger.Info("Job finished", "job", "send_registration_reminders", "reminders_sent", sent, "duration", time.Since(start))
}
