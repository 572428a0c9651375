// Package scanner drives the reminder loop: once a minute it looks up every
// active habit whose reminder time matches the current wall-clock minute and
// sends it a nudge.
package scanner

import (
	"context"
	"log/slog"
	"time"

	"github.com/rmaldonado/sapo/internal/message"
	"github.com/rmaldonado/sapo/internal/repository"
	"github.com/rmaldonado/sapo/internal/service"
	"github.com/rmaldonado/sapo/internal/whatsapp"
)

const DefaultInterval = time.Minute

type Scanner struct {
	habits   repository.HabitRepo
	stats    service.StatsService
	selector *message.Selector
	sender   whatsapp.Sender
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time
}

type Option func(*Scanner)

// WithInterval overrides the tick cadence. Anything other than a minute is
// only useful in tests.
func WithInterval(d time.Duration) Option {
	return func(s *Scanner) { s.interval = d }
}

// WithClock overrides the time source used to match reminder minutes.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) { s.now = now }
}

func New(
	habits repository.HabitRepo,
	stats service.StatsService,
	selector *message.Selector,
	sender whatsapp.Sender,
	logger *slog.Logger,
	opts ...Option,
) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Scanner{
		habits:   habits,
		stats:    stats,
		selector: selector,
		sender:   sender,
		logger:   logger,
		interval: DefaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run ticks until ctx is cancelled. Tick failures are logged and the loop
// keeps going; a missed minute is just a missed reminder.
func (s *Scanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "scanner_started", "interval", s.interval.String())
	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "scanner_stopped")
			return
		case <-ticker.C:
			if err := s.Tick(ctx, s.now()); err != nil {
				s.logger.ErrorContext(ctx, "scanner_tick_failed", "error", err)
			}
		}
	}
}

// Tick sends reminders for every habit due at the given instant. A failure
// on one habit never blocks the rest; only the due-habit query itself is a
// tick-level error.
func (s *Scanner) Tick(ctx context.Context, at time.Time) error {
	hhmm := at.Format("15:04")
	due, err := s.habits.ListDueAt(ctx, hhmm)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	sent := 0
	for _, d := range due {
		if err := s.remind(ctx, d); err != nil {
			s.logger.ErrorContext(ctx, "reminder_failed",
				"habit_id", d.Habit.ID, "to", d.WhatsAppNumber, "error", err)
			continue
		}
		sent++
	}
	s.logger.InfoContext(ctx, "reminders_sent", "minute", hhmm, "due", len(due), "sent", sent)
	return nil
}

func (s *Scanner) remind(ctx context.Context, d repository.DueHabit) error {
	text := s.render(ctx, d)
	return s.sender.Send(ctx, d.WhatsAppNumber, text)
}

// render degrades to the fixed fallback text when the streak lookup fails:
// a generic reminder still beats silence.
func (s *Scanner) render(ctx context.Context, d repository.DueHabit) string {
	strk, err := s.stats.CurrentStreak(ctx, d.Habit.UserID)
	if err != nil {
		s.logger.WarnContext(ctx, "streak_lookup_failed",
			"user_id", d.Habit.UserID, "error", err)
		return message.Render(message.FallbackReminder, message.Context{
			HabitName: d.Habit.Name,
			UserName:  d.UserName,
		})
	}
	return s.selector.Reminder(&d.Habit, message.Context{
		Streak:    strk,
		HabitName: d.Habit.Name,
		UserName:  d.UserName,
	})
}
