package sessions

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/deskdev/deskdev-setup/internal/common"
	"github.com/deskdev/deskdev-setup/internal/database"
	"github.com/deskdev/deskdev-setup/internal/dbx"
	"github.com/deskdev/deskdev-setup/internal/logging"
	"github.com/deskdev/deskdev-setup/internal/models"
	"github.com/deskdev/deskdev-setup/internal/repositories/users"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "users.db"), logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createUser(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	u, err := users.NewSQLiteRepository(db).Create(context.Background(), &models.User{Username: name})
	require.NoError(t, err)
	return u.ID
}

func newRepo(db dbx.DBTX, now time.Time) *SQLiteRepository {
	r := NewSQLiteRepository(db)
	r.now = func() time.Time { return now }
	return r
}

func TestCreate_GeneratesUUIDTokenAndExpiry(t *testing.T) {
	db := setupDB(t)
	uid := createUser(t, db, "a")
	r := newRepo(db, base)

	s, err := r.Create(context.Background(), uid, 24*time.Hour)
	require.NoError(t, err)

	_, err = uuid.Parse(s.ID)
	require.NoError(t, err, "token must be a UUID")
	assert.Equal(t, uid, s.UserID)
	assert.True(t, base.Equal(s.CreatedAt))
	assert.True(t, base.Add(24*time.Hour).Equal(s.ExpiresAt))
}

func TestCreate_TokensAreUnique(t *testing.T) {
	db := setupDB(t)
	uid := createUser(t, db, "a")
	r := newRepo(db, base)

	a, err := r.Create(context.Background(), uid, time.Hour)
	require.NoError(t, err)
	b, err := r.Create(context.Background(), uid, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreate_TokenCollision(t *testing.T) {
	db := setupDB(t)
	uid := createUser(t, db, "a")
	r := newRepo(db, base)
	r.newToken = func() string { return "fixed" }

	_, err := r.Create(context.Background(), uid, time.Hour)
	require.NoError(t, err)
	_, err = r.Create(context.Background(), uid, time.Hour)
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestCreate_UnknownUser(t *testing.T) {
	r := newRepo(setupDB(t), base)

	_, err := r.Create(context.Background(), 404, time.Hour)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreate_NonPositiveValidity(t *testing.T) {
	db := setupDB(t)
	uid := createUser(t, db, "a")
	r := newRepo(db, base)

	_, err := r.Create(context.Background(), uid, 0)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestFind_RoundTrip(t *testing.T) {
	db := setupDB(t)
	uid := createUser(t, db, "a")
	r := newRepo(db, base)
	ctx := context.Background()

	created, err := r.Create(ctx, uid, 2*time.Hour)
	require.NoError(t, err)

	got, err := r.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, uid, got.UserID)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt), "created_at = %v", got.CreatedAt)
	assert.True(t, created.ExpiresAt.Equal(got.ExpiresAt), "expires_at = %v", got.ExpiresAt)
	assert.False(t, got.Expired(base.Add(time.Hour)))
	assert.True(t, got.Expired(base.Add(2*time.Hour)))
}

func TestFind_NotFound(t *testing.T) {
	r := newRepo(setupDB(t), base)

	_, err := r.Find(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_IsIdempotent(t *testing.T) {
	db := setupDB(t)
	uid := createUser(t, db, "a")
	r := newRepo(db, base)
	ctx := context.Background()

	s, err := r.Create(ctx, uid, time.Hour)
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, s.ID))
	_, err = r.Find(ctx, s.ID)
	require.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, r.Delete(ctx, s.ID))
}

func TestDeleteExpired(t *testing.T) {
	db := setupDB(t)
	uid := createUser(t, db, "a")
	r := newRepo(db, base)
	ctx := context.Background()

	short, err := r.Create(ctx, uid, time.Minute)
	require.NoError(t, err)
	exact, err := r.Create(ctx, uid, time.Hour)
	require.NoError(t, err)
	long, err := r.Create(ctx, uid, 48*time.Hour)
	require.NoError(t, err)

	n, err := r.DeleteExpired(ctx, base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = r.Find(ctx, short.ID)
	require.ErrorIs(t, err, common.ErrNotFound)
	_, err = r.Find(ctx, exact.ID)
	require.ErrorIs(t, err, common.ErrNotFound)
	_, err = r.Find(ctx, long.ID)
	require.NoError(t, err)
}

func TestLoginFlowInTransaction(t *testing.T) {
	db := setupDB(t)
	uid := createUser(t, db, "a")
	ctx := context.Background()

	var token string
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := users.NewSQLiteRepository(tx).TouchLastLogin(ctx, uid); err != nil {
			return err
		}
		s, err := newRepo(tx, base).Create(ctx, uid, time.Hour)
		if err != nil {
			return err
		}
		token = s.ID
		return nil
	})
	require.NoError(t, err)

	_, err = newRepo(db, base).Find(ctx, token)
	require.NoError(t, err)
}

func TestLoginFlowInTransaction_RollsBackSession(t *testing.T) {
	db := setupDB(t)
	uid := createUser(t, db, "a")
	ctx := context.Background()
	boom := errors.New("boom")

	var token string
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		s, err := newRepo(tx, base).Create(ctx, uid, time.Hour)
		if err != nil {
			return err
		}
		token = s.ID
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = newRepo(db, base).Find(ctx, token)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestRepository_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := newRepo(db, base)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err := r.Find(ctx, "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to find session")

	err = r.Delete(ctx, "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to delete session")

	_, err = r.DeleteExpired(ctx, base)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to delete expired sessions")
}

var _ Repository = (*SQLiteRepository)(nil)
