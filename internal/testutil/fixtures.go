package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rmaldonado/sapo/internal/domain"
)

var testNumberCounter atomic.Int64

// NextNumber returns a unique fake WhatsApp number for tests.
func NextNumber() string {
	return fmt.Sprintf("569%08d", testNumberCounter.Add(1))
}

// User options
type UserOption func(*domain.User)

func WithNumber(number string) UserOption {
	return func(u *domain.User) {
		u.WhatsAppNumber = number
	}
}

func WithUserName(name string) UserOption {
	return func(u *domain.User) {
		u.Name = name
	}
}

func NewTestUser(opts ...UserOption) *domain.User {
	u := &domain.User{
		ID:             uuid.New().String(),
		WhatsAppNumber: NextNumber(),
		Name:           "Carlos",
		CreatedAt:      time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Habit options
type HabitOption func(*domain.Habit)

func WithPriority(p int) HabitOption {
	return func(h *domain.Habit) {
		h.Priority = p
	}
}

func WithReminderTime(hhmm string) HabitOption {
	return func(h *domain.Habit) {
		h.ReminderTime = hhmm
	}
}

func WithInactive() HabitOption {
	return func(h *domain.Habit) {
		h.IsActive = false
	}
}

func WithCreatedAt(t time.Time) HabitOption {
	return func(h *domain.Habit) {
		h.CreatedAt = t
		h.UpdatedAt = t
	}
}

func NewTestHabit(userID, name string, opts ...HabitOption) *domain.Habit {
	now := time.Now().UTC()
	h := &domain.Habit{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         name,
		ReminderTime: "09:00",
		Priority:     1,
		IsActive:     true,
		Kind:         "habit",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// DayOffset returns today's UTC date shifted by the given number of days,
// formatted as a log day key.
func DayOffset(days int) string {
	return domain.Day(time.Now().UTC().AddDate(0, 0, days))
}
