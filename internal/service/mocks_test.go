package service

import (
	"context"
	"time"

	"memberhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.MemberApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.MemberApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberApplication), args.Error(1)
}
func (m *MockApplicationRepo) GetByToken(ctx context.Context, token string) (*domain.MemberApplication, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberApplication), args.Error(1)
}
func (m *MockApplicationRepo) List(ctx context.Context) ([]domain.MemberApplication, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberApplication), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, token *string) (*domain.MemberApplication, error) {
	args := m.Called(ctx, id, status, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberApplication), args.Error(1)
}
func (m *MockApplicationRepo) ListAwaitingRegistration(ctx context.Context, createdBefore time.Time) ([]domain.MemberApplication, error) {
	args := m.Called(ctx, createdBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberApplication), args.Error(1)
}

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) CreateFromApplication(ctx context.Context, member *domain.Member, appID, token string) error {
	args := m.Called(ctx, member, appID, token)
	return args.Error(0)
}
func (m *MockMemberRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockReferralRepo
type MockReferralRepo struct {
	mock.Mock
}

func (m *MockReferralRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// MockThanksRepo
type MockThanksRepo struct {
	mock.Mock
}

func (m *MockThanksRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInvitation(ctx context.Context, email, name, registrationLink string) error {
	args := m.Called(ctx, email, name, registrationLink)
	return args.Error(0)
}
func (m *MockEmailService) SendStatusNotification(ctx context.Context, email, name string, status domain.ApplicationStatus) error {
	args := m.Called(ctx, email, name, status)
	return args.Error(0)
}
func (m *MockEmailService) SendRegistrationReminder(ctx context.Context, email, name, registrationLink string) error {
	args := m.Called(ctx, email, name, registrationLink)
	return args.Error(0)
}
