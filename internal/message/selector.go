package message

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/rmaldonado/sapo/internal/domain"
)

// Context carries the substitution values for a message template.
type Context struct {
	Streak    int
	HabitName string
	UserName  string
}

// Render substitutes the {streak}, {habit_name} and {user_name} placeholders.
// Empty names fall back to the catalog defaults.
func Render(template string, ctx Context) string {
	habitName := ctx.HabitName
	if habitName == "" {
		habitName = "Tu hábito"
	}
	userName := ctx.UserName
	if userName == "" {
		userName = "Emprendedor"
	}
	r := strings.NewReplacer(
		"{streak}", strconv.Itoa(ctx.Streak),
		"{habit_name}", habitName,
		"{user_name}", userName,
	)
	return r.Replace(template)
}

// Selector picks message variants uniformly at random from the catalog
// pools. Selection has no memory; repeats across calls are acceptable.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a Selector. Pass a fixed-seed rand.Rand in tests for
// deterministic picks; nil seeds from the current time.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Pick returns a rendered message of the given kind. SUCCESS checks the
// milestone pools for an exact streak match before the general pool; NUDGE
// buckets by streak magnitude.
func (s *Selector) Pick(kind domain.MessageKind, ctx Context) string {
	var pool []string

	switch kind {
	case domain.KindSuccess:
		pool = Success
		if milestone, ok := Milestones[ctx.Streak]; ok {
			pool = milestone
		}
	case domain.KindNudge:
		switch {
		case ctx.Streak > 7:
			pool = NudgeHighStreak
		case ctx.Streak >= 3:
			pool = NudgeMidStreak
		default:
			pool = NudgeLowStreak
		}
	case domain.KindDelay:
		pool = Delay
	case domain.KindSkip:
		pool = Skip
	}

	return Render(s.pick(pool), ctx)
}

// Reminder renders the scheduled reminder for a habit. Priority habits get
// the fixed frog variant (branching only on streak > 7); everything else
// gets a NUDGE pick with the reply options appended.
func (s *Selector) Reminder(habit *domain.Habit, ctx Context) string {
	if habit.IsFrog() {
		template := FrogLowStreak
		if ctx.Streak > 7 {
			template = FrogHighStreak
		}
		return Render(template, ctx)
	}
	return s.Pick(domain.KindNudge, ctx) + ReplyOptions
}

func (s *Selector) pick(pool []string) string {
	if len(pool) == 0 {
		return Default
	}
	return pool[s.rng.Intn(len(pool))]
}
