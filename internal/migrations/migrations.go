package migrations

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
)

// Tables created at startup. Statements must be safe to run on every boot.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS territory_blocks (
		block_id TEXT PRIMARY KEY,
		owner_id BIGINT,
		last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_territory_blocks_owner_id ON territory_blocks(owner_id)`,
}

// Column is an additive column migration.
type Column struct {
	Table      string
	Name       string
	Definition string
}

// Columns added after the initial schema. They are only added when absent.
var Columns = []Column{
	{Table: "users", Name: "bio", Definition: "TEXT"},
	{Table: "users", Name: "phone", Definition: "TEXT"},
	{Table: "users", Name: "hometown", Definition: "TEXT"},
}

const columnExistsQuery = `
	SELECT EXISTS (
		SELECT 1
		FROM information_schema.columns
		WHERE table_schema = current_schema()
		  AND table_name = $1
		  AND column_name = $2
	)
`

// Migrate creates missing tables and adds missing columns.
// Any failure other than the column already being present aborts startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range tables {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	for _, col := range Columns {
		added, err := addColumnIfAbsent(ctx, db, col)
		if err != nil {
			return fmt.Errorf("add column %s.%s: %w", col.Table, col.Name, err)
		}
		logger.Log.Infow("column migration",
			"table", col.Table,
			"column", col.Name,
			"added", added,
		)
	}

	return nil
}

func addColumnIfAbsent(ctx context.Context, db *sqlx.DB, col Column) (bool, error) {
	var exists bool
	if err := db.GetContext(ctx, &exists, columnExistsQuery, col.Table, col.Name); err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	// Identifiers come from the Columns table above, never from user input.
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s", col.Table, col.Name, col.Definition)
	_, err := db.ExecContext(ctx, stmt)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(stmt), " "),
		"error", err,
	)

	return err == nil, err
}
