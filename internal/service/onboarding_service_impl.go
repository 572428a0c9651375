package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rmaldonado/sapo/internal/domain"
	"github.com/rmaldonado/sapo/internal/repository"
)

type onboardingService struct {
	users  repository.UserRepo
	habits repository.HabitRepo
}

// NewOnboardingService backs the registration form: user upsert by number
// and explicit habit creation.
func NewOnboardingService(users repository.UserRepo, habits repository.HabitRepo) OnboardingService {
	return &onboardingService{users: users, habits: habits}
}

func (s *onboardingService) RegisterUser(ctx context.Context, number, name string) (*domain.User, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("whatsapp number is required")
	}

	u := &domain.User{
		ID:             uuid.New().String(),
		WhatsAppNumber: number,
		Name:           strings.TrimSpace(name),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *onboardingService) CreateHabit(ctx context.Context, h *domain.Habit) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name is required")
	}
	if _, err := s.users.GetByID(ctx, h.UserID); err != nil {
		return fmt.Errorf("resolving owner: %w", err)
	}

	now := time.Now().UTC()
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.ReminderTime == "" {
		h.ReminderTime = DefaultReminderTime
	}
	if h.Priority == 0 {
		h.Priority = 1
	}
	if h.Kind == "" {
		h.Kind = "habit"
	}
	h.IsActive = true
	h.CreatedAt = now
	h.UpdatedAt = now

	return s.habits.Create(ctx, h)
}
