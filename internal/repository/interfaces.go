package repository

import (
	"context"
	"errors"

	"github.com/rmaldonado/sapo/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// DueHabit is a joined view of a habit with its owner's contact details,
// used by the reminder scanner.
type DueHabit struct {
	Habit          domain.Habit
	WhatsAppNumber string
	UserName       string
}

// WindowCounts holds log counts over a trailing date window.
type WindowCounts struct {
	Completed int
	Total     int
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByNumber(ctx context.Context, number string) (*domain.User, error)
	// Upsert inserts the user or, when the number is already registered,
	// refreshes the display name and loads the stored identity into u.
	Upsert(ctx context.Context, u *domain.User) error
}

type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	// ListByUser returns all habits ordered by priority descending, then
	// creation time ascending (the resolver's tie-break order).
	ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error)
	// ListActiveByUser is ListByUser restricted to active habits.
	ListActiveByUser(ctx context.Context, userID string) ([]*domain.Habit, error)
	// ListDueAt returns active habits whose reminder time matches the given
	// "HH:MM" wall-clock minute, joined with owner contact details.
	ListDueAt(ctx context.Context, hhmm string) ([]DueHabit, error)
	IncrementDelayCount(ctx context.Context, habitID string) error
	SumDelayCount(ctx context.Context, userID string) (int, error)
	CountActiveByUser(ctx context.Context, userID string) (int, error)
}

type LogRepo interface {
	// UpsertForDay writes the log row for (habitID, day), overwriting status
	// and note if a row already exists. Last write wins.
	UpsertForDay(ctx context.Context, habitID, day string, status domain.LogStatus, note string) error
	// UpsertNoteForDay writes the note for (habitID, day) without ever
	// downgrading an existing status; a missing row is created as pending.
	UpsertNoteForDay(ctx context.Context, habitID, day, note string) error
	GetForDay(ctx context.Context, habitID, day string) (*domain.HabitLog, error)
	ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitLog, error)
	// ListCompletedDays returns the distinct days with a completed log for
	// any of the user's habits, most recent first.
	ListCompletedDays(ctx context.Context, userID string) ([]string, error)
	// CountWindow counts the user's logs with day >= since.
	CountWindow(ctx context.Context, userID, since string) (WindowCounts, error)
	// CountCompleted counts the user's completed logs across all time.
	CountCompleted(ctx context.Context, userID string) (int, error)
}
