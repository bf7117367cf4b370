package service

import (
	"context"
	"fmt"
	"strconv"

	"memberhub-backend/internal/domain"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host, port, username, password, from string) EmailService {
	p, _ := strconv.Atoi(port)
	return &emailService{
		host:     host,
		port:     p,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendInvitation(ctx context.Context, email, name, registrationLink string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour membership application has been approved.\n\nPlease complete your registration using the link below:\n\n%s\n\nThe link can only be used once.\n\nBest regards,\nThe MemberHub Team", name, registrationLink)
	return s.send(email, "Your membership application has been approved", body)
}

func (s *emailService) SendStatusNotification(ctx context.Context, email, name string, status domain.ApplicationStatus) error {
	body := fmt.Sprintf("Hello %s,\n\nYour membership application status has been updated to: %s.\n\nBest regards,\nThe MemberHub Team", name, status)
	return s.send(email, "Membership application update", body)
}

func (s *emailService) SendRegistrationReminder(ctx context.Context, email, name, registrationLink string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour membership registration is still waiting to be completed.\n\nPlease finish it using the link below:\n\n%s\n\nBest regards,\nThe MemberHub Team", name, registrationLink)
	return s.send(email, "Reminder: complete your membership registration", body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}

	return nil
}
