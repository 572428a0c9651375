package message

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/rmaldonado/sapo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newTestSelector() *Selector {
	return NewSelector(rand.New(rand.NewSource(1)))
}

func TestRender(t *testing.T) {
	got := Render("Racha {streak}: '{habit_name}' de {user_name}", Context{
		Streak:    5,
		HabitName: "Correr",
		UserName:  "Carla",
	})
	assert.Equal(t, "Racha 5: 'Correr' de Carla", got)
}

func TestRender_DefaultsForEmptyNames(t *testing.T) {
	got := Render("{habit_name} / {user_name}", Context{})
	assert.Equal(t, "Tu hábito / Emprendedor", got)
}

func TestRender_RepeatedPlaceholders(t *testing.T) {
	got := Render("{streak} y {streak}", Context{Streak: 2})
	assert.Equal(t, "2 y 2", got)
}

func TestPick_SuccessMilestoneExactness(t *testing.T) {
	s := newTestSelector()

	// Streak 7 hits the milestone pool.
	got := s.Pick(domain.KindSuccess, Context{Streak: 7})
	assert.Contains(t, renderedPool(Milestones[7], Context{Streak: 7}), got)

	// Streak 8 gets a general success message, never a milestone one.
	for i := 0; i < 50; i++ {
		got := s.Pick(domain.KindSuccess, Context{Streak: 8})
		assert.Contains(t, renderedPool(Success, Context{Streak: 8}), got)
	}
}

func TestPick_AllMilestones(t *testing.T) {
	s := newTestSelector()
	for _, m := range []int{3, 7, 15, 30, 60, 90} {
		got := s.Pick(domain.KindSuccess, Context{Streak: m})
		assert.Contains(t, renderedPool(Milestones[m], Context{Streak: m}), got, "milestone %d", m)
	}
}

func TestPick_NudgeBuckets(t *testing.T) {
	s := newTestSelector()

	tests := []struct {
		streak int
		pool   []string
	}{
		{0, NudgeLowStreak},
		{2, NudgeLowStreak},
		{3, NudgeMidStreak},
		{7, NudgeMidStreak},
		{8, NudgeHighStreak},
		{30, NudgeHighStreak},
	}
	for _, tt := range tests {
		ctx := Context{Streak: tt.streak, HabitName: "Correr"}
		got := s.Pick(domain.KindNudge, ctx)
		assert.Contains(t, renderedPool(tt.pool, ctx), got, "streak %d", tt.streak)
	}
}

func TestPick_DelayAndSkip(t *testing.T) {
	s := newTestSelector()

	assert.Contains(t, renderedPool(Delay, Context{}), s.Pick(domain.KindDelay, Context{}))
	assert.Contains(t, renderedPool(Skip, Context{}), s.Pick(domain.KindSkip, Context{}))
}

func TestPick_UnknownKindFallsBack(t *testing.T) {
	s := newTestSelector()
	assert.Equal(t, Default, s.Pick(domain.MessageKind("BOGUS"), Context{}))
}

func TestReminder_FrogOverride(t *testing.T) {
	s := newTestSelector()
	frog := &domain.Habit{Name: "Propuesta", Priority: 3}

	high := s.Reminder(frog, Context{Streak: 8, HabitName: frog.Name})
	assert.Contains(t, high, "EAT THE FROG")
	assert.Contains(t, high, "8 días siendo imparable")

	low := s.Reminder(frog, Context{Streak: 7, HabitName: frog.Name})
	assert.Contains(t, low, "EAT THE FROG")
	assert.Contains(t, low, "No procrastines")
	assert.NotContains(t, low, "imparable")
}

func TestReminder_StandardAppendsReplyOptions(t *testing.T) {
	s := newTestSelector()
	habit := &domain.Habit{Name: "Correr", Priority: 1}

	got := s.Reminder(habit, Context{Streak: 1, HabitName: habit.Name})
	assert.NotContains(t, got, "EAT THE FROG")
	assert.True(t, strings.HasSuffix(got, ReplyOptions))
}

// renderedPool renders every template in a pool for membership assertions.
func renderedPool(pool []string, ctx Context) []string {
	out := make([]string, len(pool))
	for i, tmpl := range pool {
		out[i] = Render(tmpl, ctx)
	}
	return out
}
