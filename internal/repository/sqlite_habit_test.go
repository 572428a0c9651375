package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rmaldonado/sapo/internal/domain"
	"github.com/rmaldonado/sapo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// habitTestSetup creates a user and returns habit/user repos for habit tests.
func habitTestSetup(t *testing.T) (*SQLiteHabitRepo, *SQLiteUserRepo, *domain.User) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	userRepo := NewSQLiteUserRepo(db)
	habitRepo := NewSQLiteHabitRepo(db)

	u := testutil.NewTestUser()
	require.NoError(t, userRepo.Create(ctx, u))
	return habitRepo, userRepo, u
}

func TestHabitRepo_CreateAndGet(t *testing.T) {
	repo, _, u := habitTestSetup(t)
	ctx := context.Background()

	h := testutil.NewTestHabit(u.ID, "Terminar propuesta", testutil.WithPriority(3))
	require.NoError(t, repo.Create(ctx, h))

	fetched, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Terminar propuesta", fetched.Name)
	assert.Equal(t, 3, fetched.Priority)
	assert.True(t, fetched.IsActive)
	assert.True(t, fetched.IsFrog())
}

func TestHabitRepo_GetByID_NotFound(t *testing.T) {
	repo, _, _ := habitTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHabitRepo_ListActiveByUser_PriorityOrder(t *testing.T) {
	repo, _, u := habitTestSetup(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	low := testutil.NewTestHabit(u.ID, "Leer", testutil.WithPriority(1), testutil.WithCreatedAt(base))
	frogLate := testutil.NewTestHabit(u.ID, "Propuesta", testutil.WithPriority(3), testutil.WithCreatedAt(base.Add(10*time.Minute)))
	frogEarly := testutil.NewTestHabit(u.ID, "Informe", testutil.WithPriority(3), testutil.WithCreatedAt(base.Add(5*time.Minute)))
	inactive := testutil.NewTestHabit(u.ID, "Dormir", testutil.WithPriority(5), testutil.WithInactive())

	for _, h := range []*domain.Habit{low, frogLate, frogEarly, inactive} {
		require.NoError(t, repo.Create(ctx, h))
	}

	list, err := repo.ListActiveByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Highest priority first; equal priorities break ties on creation time.
	assert.Equal(t, frogEarly.ID, list[0].ID)
	assert.Equal(t, frogLate.ID, list[1].ID)
	assert.Equal(t, low.ID, list[2].ID)
}

func TestHabitRepo_ListDueAt(t *testing.T) {
	repo, userRepo, u := habitTestSetup(t)
	ctx := context.Background()

	other := testutil.NewTestUser(testutil.WithUserName("Diego"))
	require.NoError(t, userRepo.Create(ctx, other))

	due := testutil.NewTestHabit(u.ID, "Correr", testutil.WithReminderTime("07:30"))
	dueOther := testutil.NewTestHabit(other.ID, "Meditar", testutil.WithReminderTime("07:30"))
	notDue := testutil.NewTestHabit(u.ID, "Leer", testutil.WithReminderTime("21:00"))
	inactive := testutil.NewTestHabit(u.ID, "Escribir", testutil.WithReminderTime("07:30"), testutil.WithInactive())

	for _, h := range []*domain.Habit{due, dueOther, notDue, inactive} {
		require.NoError(t, repo.Create(ctx, h))
	}

	matches, err := repo.ListDueAt(ctx, "07:30")
	require.NoError(t, err)
	require.Len(t, matches, 2)

	ids := []string{matches[0].Habit.ID, matches[1].Habit.ID}
	assert.Contains(t, ids, due.ID)
	assert.Contains(t, ids, dueOther.ID)
	for _, m := range matches {
		assert.NotEmpty(t, m.WhatsAppNumber)
	}
}

func TestHabitRepo_ListDueAt_ToleratesSeconds(t *testing.T) {
	repo, _, u := habitTestSetup(t)
	ctx := context.Background()

	h := testutil.NewTestHabit(u.ID, "Correr", testutil.WithReminderTime("07:30:00"))
	require.NoError(t, repo.Create(ctx, h))

	matches, err := repo.ListDueAt(ctx, "07:30")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestHabitRepo_IncrementDelayCount(t *testing.T) {
	repo, _, u := habitTestSetup(t)
	ctx := context.Background()

	h := testutil.NewTestHabit(u.ID, "Propuesta")
	require.NoError(t, repo.Create(ctx, h))

	require.NoError(t, repo.IncrementDelayCount(ctx, h.ID))
	require.NoError(t, repo.IncrementDelayCount(ctx, h.ID))

	fetched, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.DelayCount)

	err = repo.IncrementDelayCount(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHabitRepo_SumDelayCount(t *testing.T) {
	repo, _, u := habitTestSetup(t)
	ctx := context.Background()

	h1 := testutil.NewTestHabit(u.ID, "Uno")
	h2 := testutil.NewTestHabit(u.ID, "Dos")
	require.NoError(t, repo.Create(ctx, h1))
	require.NoError(t, repo.Create(ctx, h2))

	require.NoError(t, repo.IncrementDelayCount(ctx, h1.ID))
	require.NoError(t, repo.IncrementDelayCount(ctx, h2.ID))
	require.NoError(t, repo.IncrementDelayCount(ctx, h2.ID))

	sum, err := repo.SumDelayCount(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, sum)
}

func TestHabitRepo_CountActiveByUser(t *testing.T) {
	repo, _, u := habitTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestHabit(u.ID, "Uno")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestHabit(u.ID, "Dos", testutil.WithInactive())))

	count, err := repo.CountActiveByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
