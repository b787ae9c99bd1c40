package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
)

// TerritoryWriteRepository handles block ownership writes
type TerritoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTerritoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TerritoryWriteRepository {
	return &TerritoryWriteRepository{db: db, txGetter: txGetter}
}

// Capture performs an UPSERT: creates the block if unseen, otherwise overwrites
// owner and timestamp. It is a single statement, so concurrent captures of the
// same block serialize on the row and the last commit wins.
func (r *TerritoryWriteRepository) Capture(ctx context.Context, blockID string, ownerID int64, capturedAt time.Time) error {
	const query = `
		INSERT INTO territory_blocks (block_id, owner_id, last_updated)
		VALUES ($1, $2, $3)
		ON CONFLICT (block_id)
		DO UPDATE SET owner_id = EXCLUDED.owner_id, last_updated = EXCLUDED.last_updated
	`
	args := []any{blockID, ownerID, capturedAt}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
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

	return err
}

// TerritoryReadRepository handles block ownership reads
type TerritoryReadRepository struct {
	db *sqlx.DB
}

func NewTerritoryReadRepository(db *sqlx.DB) *TerritoryReadRepository {
	return &TerritoryReadRepository{db: db}
}

// List returns every owned block in store order.
func (r *TerritoryReadRepository) List(ctx context.Context) ([]models.Territory, error) {
	const query = `
		SELECT block_id, owner_id
		FROM territory_blocks
	`

	territories := []models.Territory{}
	err := r.db.SelectContext(ctx, &territories, query)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", len(territories),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return territories, nil
}

// GetByBlockID returns nil without an error when the block was never captured.
func (r *TerritoryReadRepository) GetByBlockID(ctx context.Context, blockID string) (*models.TerritoryBlockDB, error) {
	const query = `
		SELECT block_id, owner_id, last_updated
		FROM territory_blocks
		WHERE block_id = $1
	`

	var block models.TerritoryBlockDB
	err := r.db.GetContext(ctx, &block, query, blockID)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{blockID},
		"result", block,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}
