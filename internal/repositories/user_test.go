package repositories

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func strPtr(s string) *string { return &s }

func TestUserReadRepository_GetByUsername_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "bio", "phone", "hometown"}).
				AddRow(int64(7), "alice", "hi", nil, "Paris"))

		user, err := repo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(7), user.UserID)
		assert.Equal(t, "hi", *user.Bio)
		assert.Nil(t, user.Phone)
		assert.Equal(t, "Paris", *user.Hometown)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "bio", "phone", "hometown"}))

		user, err := repo.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
			WithArgs("alice").
			WillReturnError(errors.New("connection refused"))

		user, err := repo.GetByUsername(ctx, "alice")
		assert.EqualError(t, err, "connection refused")
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateProfile_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET bio = $2, phone = $3, hometown = $4 WHERE id = $1")).
		WithArgs(int64(99), "x", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.UpdateProfile(context.Background(), 99, strPtr("x"), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Create_Idempotent(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	first, err := repo.Create(ctx, "alice")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users WHERE username = $1", "alice"))
	assert.Equal(t, 1, count)
}

func TestUserWriteRepository_Create_Concurrent(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	const workers = 10
	ids := make([]int64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = repo.Create(ctx, "racer")
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users WHERE username = $1", "racer"))
	assert.Equal(t, 1, count)
}

func TestUserRepositories_ProfileRoundTrip(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	userID, err := writeRepo.Create(ctx, "bob")
	require.NoError(t, err)

	t.Run("fields start empty", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "bob", user.Username)
		assert.Nil(t, user.Bio)
		assert.Nil(t, user.Phone)
		assert.Nil(t, user.Hometown)
	})

	t.Run("update sets fields", func(t *testing.T) {
		rows, err := writeRepo.UpdateProfile(ctx, userID, strPtr("x"), strPtr("555"), strPtr("Lyon"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		user, err := readRepo.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "x", *user.Bio)
		assert.Equal(t, "555", *user.Phone)
		assert.Equal(t, "Lyon", *user.Hometown)
	})

	t.Run("omitted fields are cleared", func(t *testing.T) {
		_, err := writeRepo.UpdateProfile(ctx, userID, strPtr("y"), nil, nil)
		require.NoError(t, err)

		user, err := readRepo.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "y", *user.Bio)
		assert.Nil(t, user.Phone)
		assert.Nil(t, user.Hometown)
	})

	t.Run("unknown id affects no rows", func(t *testing.T) {
		rows, err := writeRepo.UpdateProfile(ctx, userID+1000, strPtr("z"), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		user, err := readRepo.GetByID(ctx, userID+1000)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
