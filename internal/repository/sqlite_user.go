package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rmaldonado/sapo/internal/db"
	"github.com/rmaldonado/sapo/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, whatsapp_number, name, created_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.WhatsAppNumber,
		u.Name,
		u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, whatsapp_number, name, created_at FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteUserRepo) GetByNumber(ctx context.Context, number string) (*domain.User, error) {
	query := `SELECT id, whatsapp_number, name, created_at FROM users WHERE whatsapp_number = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, number))
}

// Upsert registers the user keyed by WhatsApp number. An existing number
// keeps its id and creation time; a non-empty name refreshes the stored one.
// The stored identity is loaded back into u.
func (r *SQLiteUserRepo) Upsert(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, whatsapp_number, name, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(whatsapp_number) DO UPDATE SET
			name = CASE WHEN excluded.name != '' THEN excluded.name ELSE users.name END`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.WhatsAppNumber,
		u.Name,
		u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}

	stored, err := r.GetByNumber(ctx, u.WhatsAppNumber)
	if err != nil {
		return fmt.Errorf("reloading upserted user: %w", err)
	}
	*u = *stored
	return nil
}

func (r *SQLiteUserRepo) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var createdAt string
	err := row.Scan(&u.ID, &u.WhatsAppNumber, &u.Name, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}
