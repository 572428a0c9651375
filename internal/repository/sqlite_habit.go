package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rmaldonado/sapo/internal/db"
	"github.com/rmaldonado/sapo/internal/domain"
)

// SQLiteHabitRepo implements HabitRepo using a SQLite database.
type SQLiteHabitRepo struct {
	db db.DBTX
}

// NewSQLiteHabitRepo creates a new SQLiteHabitRepo.
func NewSQLiteHabitRepo(conn db.DBTX) *SQLiteHabitRepo {
	return &SQLiteHabitRepo{db: conn}
}

const habitColumns = `id, user_id, name, reminder_time, priority, is_active, delay_count, habit_kind, created_at, updated_at`

func (r *SQLiteHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	query := `INSERT INTO habits (` + habitColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.UserID,
		h.Name,
		h.ReminderTime,
		h.Priority,
		boolToInt(h.IsActive),
		h.DelayCount,
		h.Kind,
		h.CreatedAt.Format(time.RFC3339),
		h.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting habit: %w", err)
	}
	return nil
}

func (r *SQLiteHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	h, err := scanHabit(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("habit: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning habit: %w", err)
	}
	return h, nil
}

func (r *SQLiteHabitRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits
		WHERE user_id = ?
		ORDER BY priority DESC, created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing habits by user: %w", err)
	}
	defer rows.Close()
	return scanHabits(rows)
}

func (r *SQLiteHabitRepo) ListActiveByUser(ctx context.Context, userID string) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits
		WHERE user_id = ? AND is_active = 1
		ORDER BY priority DESC, created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing active habits by user: %w", err)
	}
	defer rows.Close()
	return scanHabits(rows)
}

// ListDueAt matches reminder times against a wall-clock minute. The prefix
// match tolerates stored values carrying seconds ("09:00:00").
func (r *SQLiteHabitRepo) ListDueAt(ctx context.Context, hhmm string) ([]DueHabit, error) {
	query := `SELECT h.id, h.user_id, h.name, h.reminder_time, h.priority, h.is_active,
			h.delay_count, h.habit_kind, h.created_at, h.updated_at,
			u.whatsapp_number, u.name
		FROM habits h
		JOIN users u ON h.user_id = u.id
		WHERE h.is_active = 1 AND h.reminder_time LIKE ? || '%'
		ORDER BY h.created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, hhmm)
	if err != nil {
		return nil, fmt.Errorf("listing due habits: %w", err)
	}
	defer rows.Close()

	var due []DueHabit
	for rows.Next() {
		var h domain.Habit
		var isActive int
		var createdAt, updatedAt, number, userName string
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.Name, &h.ReminderTime, &h.Priority, &isActive,
			&h.DelayCount, &h.Kind, &createdAt, &updatedAt,
			&number, &userName,
		); err != nil {
			return nil, fmt.Errorf("scanning due habit: %w", err)
		}
		h.IsActive = intToBool(isActive)
		h.CreatedAt = parseTime(createdAt)
		h.UpdatedAt = parseTime(updatedAt)
		due = append(due, DueHabit{Habit: h, WhatsAppNumber: number, UserName: userName})
	}
	return due, rows.Err()
}

// IncrementDelayCount bumps the habit's postponement counter atomically.
func (r *SQLiteHabitRepo) IncrementDelayCount(ctx context.Context, habitID string) error {
	query := `UPDATE habits SET delay_count = delay_count + 1, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC(), habitID)
	if err != nil {
		return fmt.Errorf("incrementing delay count: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delay count update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("habit %s: %w", habitID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteHabitRepo) SumDelayCount(ctx context.Context, userID string) (int, error) {
	query := `SELECT COALESCE(SUM(delay_count), 0) FROM habits WHERE user_id = ?`
	var sum int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("summing delay counts: %w", err)
	}
	return sum, nil
}

func (r *SQLiteHabitRepo) CountActiveByUser(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM habits WHERE user_id = ? AND is_active = 1`
	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active habits: %w", err)
	}
	return count, nil
}

func scanHabit(scan func(dest ...any) error) (*domain.Habit, error) {
	var h domain.Habit
	var isActive int
	var createdAt, updatedAt string
	err := scan(
		&h.ID, &h.UserID, &h.Name, &h.ReminderTime, &h.Priority, &isActive,
		&h.DelayCount, &h.Kind, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	h.IsActive = intToBool(isActive)
	h.CreatedAt = parseTime(createdAt)
	h.UpdatedAt = parseTime(updatedAt)
	return &h, nil
}

func scanHabits(rows *sql.Rows) ([]*domain.Habit, error) {
	var habits []*domain.Habit
	for rows.Next() {
		h, err := scanHabit(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning habit row: %w", err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}
