package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rmaldonado/sapo/internal/domain"
	"github.com/rmaldonado/sapo/internal/repository"
	"github.com/rmaldonado/sapo/internal/streak"
)

type statsService struct {
	users  repository.UserRepo
	habits repository.HabitRepo
	logs   repository.LogRepo
	now    func() time.Time
}

// NewStatsService creates the read-side service for the adherence
// aggregates. now may be nil to use the wall clock.
func NewStatsService(
	users repository.UserRepo,
	habits repository.HabitRepo,
	logs repository.LogRepo,
	now func() time.Time,
) StatsService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &statsService{users: users, habits: habits, logs: logs, now: now}
}

func (s *statsService) CurrentStreak(ctx context.Context, userID string) (int, error) {
	days, err := s.logs.ListCompletedDays(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("loading completed days: %w", err)
	}
	return streak.Current(days), nil
}

func (s *statsService) StatsForUser(ctx context.Context, userID string) (*UserStats, error) {
	current, err := s.CurrentStreak(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Trailing 7 days inclusive of today.
	since := domain.Day(s.now().AddDate(0, 0, -6))
	window, err := s.logs.CountWindow(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("counting log window: %w", err)
	}

	delays, err := s.habits.SumDelayCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("summing delays: %w", err)
	}

	frogs, err := s.logs.CountCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("counting completions: %w", err)
	}

	return &UserStats{
		CurrentStreak: current,
		SuccessRate7d: streak.Rate(window.Completed, window.Total),
		TotalDelays:   delays,
		FrogsDefeated: frogs,
	}, nil
}

func (s *statsService) StatsForNumber(ctx context.Context, number string) (*UserStats, error) {
	u, err := s.users.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return s.StatsForUser(ctx, u.ID)
}

func (s *statsService) VerifyNumber(ctx context.Context, number string) (*NumberStatus, error) {
	u, err := s.users.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NumberStatus{}, nil
		}
		return nil, err
	}

	count, err := s.habits.CountActiveByUser(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("counting active habits: %w", err)
	}
	return &NumberStatus{Registered: true, ActiveHabits: count}, nil
}
