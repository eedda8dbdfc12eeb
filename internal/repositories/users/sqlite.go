package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deskdev/deskdev-setup/internal/common"
	"github.com/deskdev/deskdev-setup/internal/dbx"
	"github.com/deskdev/deskdev-setup/internal/models"
)

const selectUser = `
	SELECT id, github_id, username, email, avatar_url, access_token,
	       created_at, last_login, settings
	FROM users
`

type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if strings.TrimSpace(u.Username) == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrValidation)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (github_id, username, email, avatar_url, access_token, settings)
		VALUES (?, ?, ?, ?, ?, COALESCE(?, '{}'))
	`,
		nullInt(u.GitHubID), u.Username, nullString(u.Email), nullString(u.AvatarURL),
		nullString(u.AccessToken), nullString(u.Settings),
	)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: github_id %d", common.ErrAlreadyExists, u.GitHubID)
		}
		return nil, fmt.Errorf("failed to create user %q: %w", u.Username, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", u.Username, err)
	}

	// reload to pick up column defaults
	return r.GetByID(ctx, id)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user[%d]: %w", id, err)
	}
	return u, nil
}

func (r *SQLiteRepository) GetByGitHubID(ctx context.Context, githubID int64) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE github_id = ?`, githubID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by github_id[%d]: %w", githubID, err)
	}
	return u, nil
}

func (r *SQLiteRepository) TouchLastLogin(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = ? WHERE id = ?`,
		models.FormatTimestamp(r.now()), id)
	if err != nil {
		return fmt.Errorf("failed to touch last_login[%d]: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to touch last_login[%d]: %w", id, err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u                          models.User
		githubID                   sql.NullInt64
		email, avatar, token, sets sql.NullString
		createdAt, lastLogin       sql.NullTime
	)
	if err := row.Scan(&u.ID, &githubID, &u.Username, &email, &avatar, &token,
		&createdAt, &lastLogin, &sets); err != nil {
		return nil, err
	}
	u.GitHubID = githubID.Int64
	u.Email = email.String
	u.AvatarURL = avatar.String
	u.AccessToken = token.String
	u.CreatedAt = createdAt.Time
	u.LastLogin = lastLogin.Time
	u.Settings = sets.String
	return &u, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}
