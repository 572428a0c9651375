package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rmaldonado/sapo/internal/db"
	"github.com/rmaldonado/sapo/internal/domain"
)

// SQLiteLogRepo implements LogRepo using a SQLite database.
//
// Both upserts are single INSERT ... ON CONFLICT statements. The unique
// (habit_id, logged_at) constraint serializes concurrent writers; a
// read-then-write would race under duplicate webhook deliveries.
type SQLiteLogRepo struct {
	db db.DBTX
}

// NewSQLiteLogRepo creates a new SQLiteLogRepo.
func NewSQLiteLogRepo(conn db.DBTX) *SQLiteLogRepo {
	return &SQLiteLogRepo{db: conn}
}

func (r *SQLiteLogRepo) UpsertForDay(ctx context.Context, habitID, day string, status domain.LogStatus, note string) error {
	now := nowUTC()
	query := `INSERT INTO habit_logs (id, habit_id, logged_at, status, feedback_note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, logged_at) DO UPDATE SET
			status = excluded.status,
			feedback_note = excluded.feedback_note,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(), habitID, day, string(status), note, now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting habit log: %w", err)
	}
	return nil
}

// UpsertNoteForDay attaches a note to today's row without touching an
// existing status, so a postpone note never downgrades a completed or
// skipped day back to pending.
func (r *SQLiteLogRepo) UpsertNoteForDay(ctx context.Context, habitID, day, note string) error {
	now := nowUTC()
	query := `INSERT INTO habit_logs (id, habit_id, logged_at, status, feedback_note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, logged_at) DO UPDATE SET
			feedback_note = excluded.feedback_note,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(), habitID, day, string(domain.StatusPending), note, now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting habit log note: %w", err)
	}
	return nil
}

func (r *SQLiteLogRepo) GetForDay(ctx context.Context, habitID, day string) (*domain.HabitLog, error) {
	query := `SELECT id, habit_id, logged_at, status, feedback_note, created_at, updated_at
		FROM habit_logs WHERE habit_id = ? AND logged_at = ?`
	row := r.db.QueryRowContext(ctx, query, habitID, day)

	l, err := scanLog(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit log: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit log: %w", err)
	}
	return l, nil
}

func (r *SQLiteLogRepo) ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	query := `SELECT id, habit_id, logged_at, status, feedback_note, created_at, updated_at
		FROM habit_logs WHERE habit_id = ? ORDER BY logged_at DESC`
	rows, err := r.db.QueryContext(ctx, query, habitID)
	if err != nil {
		return nil, fmt.Errorf("listing habit logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.HabitLog
	for rows.Next() {
		l, err := scanLog(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning habit log row: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *SQLiteLogRepo) ListCompletedDays(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT DISTINCT l.logged_at
		FROM habit_logs l
		JOIN habits h ON l.habit_id = h.id
		WHERE h.user_id = ? AND l.status = 'completed'
		ORDER BY l.logged_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing completed days: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning completed day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *SQLiteLogRepo) CountWindow(ctx context.Context, userID, since string) (WindowCounts, error) {
	query := `SELECT
			COALESCE(SUM(CASE WHEN l.status = 'completed' THEN 1 ELSE 0 END), 0),
			COUNT(*)
		FROM habit_logs l
		JOIN habits h ON l.habit_id = h.id
		WHERE h.user_id = ? AND l.logged_at >= ?`
	var c WindowCounts
	if err := r.db.QueryRowContext(ctx, query, userID, since).Scan(&c.Completed, &c.Total); err != nil {
		return WindowCounts{}, fmt.Errorf("counting log window: %w", err)
	}
	return c, nil
}

func (r *SQLiteLogRepo) CountCompleted(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*)
		FROM habit_logs l
		JOIN habits h ON l.habit_id = h.id
		WHERE h.user_id = ? AND l.status = 'completed'`
	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting completed logs: %w", err)
	}
	return count, nil
}

func scanLog(scan func(dest ...any) error) (*domain.HabitLog, error) {
	var l domain.HabitLog
	var status, createdAt, updatedAt string
	err := scan(&l.ID, &l.HabitID, &l.LoggedAt, &status, &l.FeedbackNote, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	l.Status = domain.LogStatus(status)
	l.CreatedAt = parseTime(createdAt)
	l.UpdatedAt = parseTime(updatedAt)
	return &l, nil
}
