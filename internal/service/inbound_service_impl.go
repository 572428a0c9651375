package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rmaldonado/sapo/internal/db"
	"github.com/rmaldonado/sapo/internal/domain"
	"github.com/rmaldonado/sapo/internal/intent"
	"github.com/rmaldonado/sapo/internal/message"
	"github.com/rmaldonado/sapo/internal/repository"
)

type inboundService struct {
	uow      db.UnitOfWork
	stats    StatsService
	selector *message.Selector
	observer UseCaseObserver
	now      func() time.Time
}

// NewInboundService creates the event processor. The whole mutation sequence
// (user upsert, habit resolution, log write) runs in one transaction so
// concurrent deliveries cannot interleave half-applied state. now may be nil
// to use the wall clock.
func NewInboundService(
	uow db.UnitOfWork,
	stats StatsService,
	selector *message.Selector,
	observer UseCaseObserver,
	now func() time.Time,
) InboundService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &inboundService{
		uow:      uow,
		stats:    stats,
		selector: selector,
		observer: useCaseObserverOrNoop(observer),
		now:      now,
	}
}

func (s *inboundService) ProcessInbound(ctx context.Context, from, text string) (string, bool) {
	started := s.now()

	action, note := intent.Classify(text)
	if action == domain.ActionNone {
		// Not an error: unrecognized chatter is ignored, the webhook still acks.
		return "", false
	}

	var user *domain.User
	var habit *domain.Habit

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		users := repository.NewSQLiteUserRepo(tx)
		habits := repository.NewSQLiteHabitRepo(tx)
		logs := repository.NewSQLiteLogRepo(tx)

		u := &domain.User{
			ID:             uuid.New().String(),
			WhatsAppNumber: from,
			CreatedAt:      s.now(),
		}
		if err := users.Upsert(ctx, u); err != nil {
			return fmt.Errorf("resolving user: %w", err)
		}
		user = u

		h, err := s.resolveHabit(ctx, habits, u.ID)
		if err != nil {
			return err
		}
		habit = h

		today := domain.Day(s.now())
		switch action {
		case domain.ActionComplete:
			return logs.UpsertForDay(ctx, h.ID, today, domain.StatusCompleted, note)
		case domain.ActionSkip:
			return logs.UpsertForDay(ctx, h.ID, today, domain.StatusSkipped, note)
		case domain.ActionPostpone:
			if err := habits.IncrementDelayCount(ctx, h.ID); err != nil {
				return err
			}
			// A bare postpone leaves the day's log alone; only a note is
			// worth recording, and it must not clobber a decided status.
			if note != "" {
				return logs.UpsertNoteForDay(ctx, h.ID, today, note)
			}
			return nil
		}
		return fmt.Errorf("unhandled action %q", action)
	})

	event := UseCaseEvent{
		Name:      "process_inbound",
		Duration:  s.now().Sub(started),
		StartedAt: started,
		Fields:    map[string]any{"action": string(action), "from": from},
	}
	if err != nil {
		event.Err = err
		s.observer.ObserveUseCase(ctx, event)
		return "", false
	}
	event.Success = true
	s.observer.ObserveUseCase(ctx, event)

	return s.reply(ctx, action, user, habit), true
}

// resolveHabit picks the single active habit an inbound action applies to:
// highest priority wins, ties break on earliest creation. A user with no
// habits at all gets a default one so every action has a target; habits that
// exist but are all inactive are reported instead.
func (s *inboundService) resolveHabit(ctx context.Context, habits *repository.SQLiteHabitRepo, userID string) (*domain.Habit, error) {
	active, err := habits.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing active habits: %w", err)
	}
	if len(active) > 0 {
		return active[0], nil
	}

	all, err := habits.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	if len(all) > 0 {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNoActiveHabit)
	}

	now := s.now()
	h := &domain.Habit{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         DefaultHabitName,
		ReminderTime: DefaultReminderTime,
		Priority:     DefaultHabitPriority,
		IsActive:     true,
		Kind:         "habit",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := habits.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("creating default habit: %w", err)
	}
	return h, nil
}

// reply renders the outbound text for a processed action. Streak lookup
// failures degrade to the fixed default prompt rather than losing the ack.
func (s *inboundService) reply(ctx context.Context, action domain.Action, user *domain.User, habit *domain.Habit) string {
	kind := domain.KindSuccess
	switch action {
	case domain.ActionPostpone:
		kind = domain.KindDelay
	case domain.ActionSkip:
		kind = domain.KindSkip
	}

	strk, err := s.stats.CurrentStreak(ctx, user.ID)
	if err != nil {
		return message.Default
	}
	return s.selector.Pick(kind, message.Context{
		Streak:    strk,
		HabitName: habit.Name,
		UserName:  user.Name,
	})
}
