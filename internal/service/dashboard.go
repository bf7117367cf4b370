package service

import (
	"context"
	"fmt"
	"time"

	"memberhub-backend/internal/domain"
	"memberhub-backend/internal/repository"
)

type dashboardService struct {
	memberRepo   repository.MemberRepository
	referralRepo repository.ReferralRepository
	thanksRepo   repository.ThanksRepository
	now          func() time.Time
}

func NewDashboardService(
	memberRepo repository.MemberRepository,
	referralRepo repository.ReferralRepository,
	thanksRepo repository.ThanksRepository,
) DashboardService {
	return &dashboardService{
		memberRepo:   memberRepo,
		referralRepo: referralRepo,
		thanksRepo:   thanksRepo,
		now:          time.Now,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	members, err := s.memberRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active members: %w", err)
	}
	referrals, err := s.referralRepo.CountCreatedSince(ctx, startOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to count referrals: %w", err)
	}
	thanks, err := s.thanksRepo.CountCreatedSince(ctx, startOfMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to count thanks records: %w", err)
	}

	return &domain.DashboardStats{
		TotalMembers:   members,
		TotalReferrals: referrals,
		TotalThanks:    thanks,
	}, nil
}
