package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns nil without an error when the username is unknown.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, bio, phone, hometown
		FROM users
		WHERE username = $1
	`
	return r.get(ctx, query, username)
}

// GetByID returns nil without an error when the id is unknown.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT id, username, bio, phone, hometown
		FROM users
		WHERE id = $1
	`
	return r.get(ctx, query, userID)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts the user and returns its id. A concurrent insert of the same
// username resolves to the existing row, so the call never fails on the
// unique constraint.
func (r *UserWriteRepository) Create(ctx context.Context, username string) (int64, error) {
	const query = `
		INSERT INTO users (username)
		VALUES ($1)
		ON CONFLICT (username) DO UPDATE
		SET username = EXCLUDED.username
		RETURNING id
	`

	var userID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &userID, query, username)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", userID,
		"error", err,
	)

	return userID, err
}

// UpdateProfile overwrites all three profile fields and returns the number of
// rows affected. Nil values are stored as NULL.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID int64, bio, phone, hometown *string) (int64, error) {
	const query = `
		UPDATE users
		SET bio = $2, phone = $3, hometown = $4
		WHERE id = $1
	`
	args := []any{userID, bio, phone, hometown}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
