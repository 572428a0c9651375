package service

import (
	"context"
	"errors"

	"github.com/rmaldonado/sapo/internal/domain"
)

// ErrNoActiveHabit is returned when a user has habits but none is active.
// This case is reported, not auto-healed.
var ErrNoActiveHabit = errors.New("no active habit")

// Default values for the habit auto-created on a user's first inbound action.
const (
	DefaultHabitName     = "Mi tarea más importante"
	DefaultReminderTime  = "09:00"
	DefaultHabitPriority = domain.FrogPriority
)

// InboundService processes one inbound chat message end to end: classify,
// resolve the target habit, mutate the log, and produce the reply text.
type InboundService interface {
	// ProcessInbound returns the outbound reply and true, or "" and false
	// when the message is ignored or an internal step failed. Errors never
	// propagate; the transport always acknowledges receipt.
	ProcessInbound(ctx context.Context, from, text string) (string, bool)
}

// UserStats are the adherence aggregates shown on the dashboard.
type UserStats struct {
	CurrentStreak int `json:"currentStreak"`
	SuccessRate7d int `json:"successRate"`
	TotalDelays   int `json:"totalDelays"`
	FrogsDefeated int `json:"frogsDefeated"`
}

// NumberStatus answers the phone-verification query.
type NumberStatus struct {
	Registered   bool `json:"registered"`
	ActiveHabits int  `json:"activeHabits"`
}

// StatsService exposes the read side of the habit-event engine.
type StatsService interface {
	CurrentStreak(ctx context.Context, userID string) (int, error)
	StatsForUser(ctx context.Context, userID string) (*UserStats, error)
	StatsForNumber(ctx context.Context, number string) (*UserStats, error)
	VerifyNumber(ctx context.Context, number string) (*NumberStatus, error)
}

// OnboardingService backs the registration form API.
type OnboardingService interface {
	RegisterUser(ctx context.Context, number, name string) (*domain.User, error)
	CreateHabit(ctx context.Context, h *domain.Habit) error
}
