package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-registration/internal/data/entity"
)

// fakeRow scans fixed values or returns err
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *string:
			*p = r.values[i].(string)
		case *bool:
			*p = r.values[i].(bool)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return errors.New("unsupported scan target")
		}
	}
	return nil
}

// fakeDB records the last QueryRow call and answers with row
type fakeDB struct {
	row      fakeRow
	lastSQL  string
	lastArgs []any
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL = sql
	f.lastArgs = args
	return f.row
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) Ping(ctx context.Context) error { return nil }

func (f *fakeDB) Close() {}

func userRow(id int64, status bool) fakeRow {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return fakeRow{values: []any{id, "A", "a@x.com", "555", "NYC", status, now, now}}
}

func TestUserRepositoryCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id", func(t *testing.T) {
		now := time.Now().UTC()
		db := &fakeDB{row: fakeRow{values: []any{int64(42), now, now}}}
		repo := NewUserRepository(db, zap.NewNop())

		user := &entity.User{Name: "A", Email: "a@x.com", PhoneNumber: "555", City: "NYC"}
		require.NoError(t, repo.Create(ctx, user))

		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, now, user.CreatedAt)
		assert.Equal(t, []any{"A", "a@x.com", "555", "NYC", false}, db.lastArgs)
	})

	t.Run("unique violation", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}}
		repo := NewUserRepository(db, zap.NewNop())

		err := repo.Create(ctx, &entity.User{Email: "a@x.com"})
		require.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("other error", func(t *testing.T) {
		dbErr := &pgconn.PgError{Code: "57P01"}
		db := &fakeDB{row: fakeRow{err: dbErr}}
		repo := NewUserRepository(db, zap.NewNop())

		err := repo.Create(ctx, &entity.User{Email: "a@x.com"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailExists)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db := &fakeDB{row: userRow(1, false)}
		repo := NewUserRepository(db, zap.NewNop())

		user, err := repo.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "NYC", user.City)
		assert.False(t, user.Status)
		assert.Equal(t, []any{"a@x.com"}, db.lastArgs)
	})

	t.Run("absent", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
		repo := NewUserRepository(db, zap.NewNop())

		user, err := repo.FindByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepositoryActivate(t *testing.T) {
	ctx := context.Background()

	t.Run("activated", func(t *testing.T) {
		db := &fakeDB{row: userRow(1, true)}
		repo := NewUserRepository(db, zap.NewNop())

		user, err := repo.Activate(ctx, "a@x.com")
		require.NoError(t, err)
		assert.True(t, user.Status)
		assert.Contains(t, db.lastSQL, "status = FALSE")
	})

	t.Run("nothing to activate", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
		repo := NewUserRepository(db, zap.NewNop())

		_, err := repo.Activate(ctx, "a@x.com")
		require.ErrorIs(t, err, ErrNotActivated)
	})
}

func TestUserRepositoryUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("missing user", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
		repo := NewUserRepository(db, zap.NewNop())

		err := repo.Update(ctx, &entity.User{Base: entity.Base{ID: 9}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("email collision", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: &pgconn.PgError{Code: "23505"}}}
		repo := NewUserRepository(db, zap.NewNop())

		err := repo.Update(ctx, &entity.User{Base: entity.Base{ID: 9}, Email: "b@x.com"})
		require.ErrorIs(t, err, ErrEmailExists)
	})
}
