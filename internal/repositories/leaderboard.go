package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
)

// LeaderboardReadRepository aggregates block ownership per user
type LeaderboardReadRepository struct {
	db *sqlx.DB
}

func NewLeaderboardReadRepository(db *sqlx.DB) *LeaderboardReadRepository {
	return &LeaderboardReadRepository{db: db}
}

// Compute counts owned blocks for every user, including users with none.
// Rows are ordered by block count descending, then username ascending.
func (r *LeaderboardReadRepository) Compute(ctx context.Context) ([]models.LeaderboardEntry, error) {
	const query = `
		SELECT u.username, COUNT(t.block_id) AS blocks
		FROM users u
		LEFT JOIN territory_blocks t ON t.owner_id = u.id
		GROUP BY u.id, u.username
		ORDER BY blocks DESC, u.username ASC
	`

	entries := []models.LeaderboardEntry{}
	err := r.db.SelectContext(ctx, &entries, query)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
