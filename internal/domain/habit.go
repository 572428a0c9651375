package domain

import "time"

// Habit is a daily commitment owned by a user. ReminderTime is a wall-clock
// "HH:MM" string matched minute-exact by the scanner. DelayCount increments
// on every postponement and is never reset.
type Habit struct {
	ID           string
	UserID       string
	Name         string
	ReminderTime string
	Priority     int
	IsActive     bool
	DelayCount   int
	Kind         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsFrog reports whether the habit is the user's top-priority daily task.
func (h *Habit) IsFrog() bool {
	return h.Priority >= FrogPriority
}
