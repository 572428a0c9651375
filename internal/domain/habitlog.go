package domain

import "time"

// DayLayout is the calendar-day format used for log keys.
const DayLayout = "2006-01-02"

// HabitLog is the single record for a habit on one calendar day. LoggedAt is
// a "YYYY-MM-DD" day string; together with HabitID it is unique, so repeated
// replies the same day overwrite rather than append.
type HabitLog struct {
	ID           string
	HabitID      string
	LoggedAt     string
	Status       LogStatus
	FeedbackNote string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Day formats a time as a log day key.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}
