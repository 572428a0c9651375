package repository

import (
	"context"
	"testing"

	"github.com/rmaldonado/sapo/internal/domain"
	"github.com/rmaldonado/sapo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logTestSetup(t *testing.T) (*SQLiteLogRepo, *domain.User, *domain.Habit) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	userRepo := NewSQLiteUserRepo(db)
	habitRepo := NewSQLiteHabitRepo(db)
	logRepo := NewSQLiteLogRepo(db)

	u := testutil.NewTestUser()
	require.NoError(t, userRepo.Create(ctx, u))
	h := testutil.NewTestHabit(u.ID, "Propuesta")
	require.NoError(t, habitRepo.Create(ctx, h))

	return logRepo, u, h
}

func TestLogRepo_UpsertForDay_LastWriteWins(t *testing.T) {
	repo, _, h := logTestSetup(t)
	ctx := context.Background()
	today := testutil.DayOffset(0)

	require.NoError(t, repo.UpsertForDay(ctx, h.ID, today, domain.StatusCompleted, "salió bien"))
	require.NoError(t, repo.UpsertForDay(ctx, h.ID, today, domain.StatusSkipped, "me arrepentí"))

	logs, err := repo.ListByHabit(ctx, h.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1, "exactly one row per habit per day")
	assert.Equal(t, domain.StatusSkipped, logs[0].Status)
	assert.Equal(t, "me arrepentí", logs[0].FeedbackNote)
}

func TestLogRepo_UpsertNoteForDay_NewRowIsPending(t *testing.T) {
	repo, _, h := logTestSetup(t)
	ctx := context.Background()
	today := testutil.DayOffset(0)

	require.NoError(t, repo.UpsertNoteForDay(ctx, h.ID, today, "en 10 minutos"))

	log, err := repo.GetForDay(ctx, h.ID, today)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, log.Status)
	assert.Equal(t, "en 10 minutos", log.FeedbackNote)
}

func TestLogRepo_UpsertNoteForDay_PreservesCompletedStatus(t *testing.T) {
	repo, _, h := logTestSetup(t)
	ctx := context.Background()
	today := testutil.DayOffset(0)

	require.NoError(t, repo.UpsertForDay(ctx, h.ID, today, domain.StatusCompleted, ""))
	require.NoError(t, repo.UpsertNoteForDay(ctx, h.ID, today, "pero más tarde lo reviso"))

	log, err := repo.GetForDay(ctx, h.ID, today)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, log.Status, "a postpone note must not downgrade a completed day")
	assert.Equal(t, "pero más tarde lo reviso", log.FeedbackNote)
}

func TestLogRepo_GetForDay_NotFound(t *testing.T) {
	repo, _, h := logTestSetup(t)

	_, err := repo.GetForDay(context.Background(), h.ID, testutil.DayOffset(0))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogRepo_ListCompletedDays_DistinctDescending(t *testing.T) {
	repo, u, h := logTestSetup(t)
	ctx := context.Background()

	// A second habit completed on an overlapping day: days must be distinct.
	habitRepo := NewSQLiteHabitRepo(repo.db)
	h2 := testutil.NewTestHabit(u.ID, "Leer")
	require.NoError(t, habitRepo.Create(ctx, h2))

	require.NoError(t, repo.UpsertForDay(ctx, h.ID, testutil.DayOffset(-2), domain.StatusCompleted, ""))
	require.NoError(t, repo.UpsertForDay(ctx, h.ID, testutil.DayOffset(-1), domain.StatusCompleted, ""))
	require.NoError(t, repo.UpsertForDay(ctx, h2.ID, testutil.DayOffset(-1), domain.StatusCompleted, ""))
	require.NoError(t, repo.UpsertForDay(ctx, h.ID, testutil.DayOffset(0), domain.StatusSkipped, ""))

	days, err := repo.ListCompletedDays(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, testutil.DayOffset(-1), days[0])
	assert.Equal(t, testutil.DayOffset(-2), days[1])
}

func TestLogRepo_CountWindow(t *testing.T) {
	repo, u, h := logTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertForDay(ctx, h.ID, testutil.DayOffset(-1), domain.StatusCompleted, ""))
	require.NoError(t, repo.UpsertForDay(ctx, h.ID, testutil.DayOffset(0), domain.StatusSkipped, ""))
	// Outside the window.
	require.NoError(t, repo.UpsertForDay(ctx, h.ID, testutil.DayOffset(-10), domain.StatusCompleted, ""))

	counts, err := repo.CountWindow(ctx, u.ID, testutil.DayOffset(-6))
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Completed)
	assert.Equal(t, 2, counts.Total)
}

func TestLogRepo_CountCompleted(t *testing.T) {
	repo, u, h := logTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertForDay(ctx, h.ID, testutil.DayOffset(-30), domain.StatusCompleted, ""))
	require.NoError(t, repo.UpsertForDay(ctx, h.ID, testutil.DayOffset(-1), domain.StatusCompleted, ""))
	require.NoError(t, repo.UpsertForDay(ctx, h.ID, testutil.DayOffset(0), domain.StatusSkipped, ""))

	count, err := repo.CountCompleted(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
