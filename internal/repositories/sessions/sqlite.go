package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/deskdev/deskdev-setup/internal/common"
	"github.com/deskdev/deskdev-setup/internal/dbx"
	"github.com/deskdev/deskdev-setup/internal/models"
	"github.com/google/uuid"
)

type SQLiteRepository struct {
	db       dbx.DBTX
	now      func() time.Time
	newToken func() string
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now, newToken: uuid.NewString}
}

func (r *SQLiteRepository) Create(ctx context.Context, userID int64, validity time.Duration) (*models.Session, error) {
	if validity <= 0 {
		return nil, fmt.Errorf("%w: session validity must be positive", common.ErrValidation)
	}

	now := r.now().UTC().Truncate(time.Second)
	s := &models.Session{
		ID:        r.newToken(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(validity),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		s.ID, s.UserID, models.FormatTimestamp(s.CreatedAt), models.FormatTimestamp(s.ExpiresAt))
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: user[%d]", common.ErrNotFound, userID)
		}
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: session token", common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create session for user[%d]: %w", userID, err)
	}

	return s, nil
}

func (r *SQLiteRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	var (
		s         models.Session
		userID    sql.NullInt64
		createdAt sql.NullTime
		expiresAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, created_at, expires_at FROM sessions WHERE id = ?`, id).
		Scan(&s.ID, &userID, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	s.UserID = userID.Int64
	s.CreatedAt = createdAt.Time
	s.ExpiresAt = expiresAt.Time
	return &s, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at <= ?`, models.FormatTimestamp(now))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return n, nil
}
