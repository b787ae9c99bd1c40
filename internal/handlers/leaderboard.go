package handlers

//go:generate mockgen -source=leaderboard.go -destination=mock_leaderboard.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
)

// Leaderboarder defines the interface that the leaderboard service must implement.
type Leaderboarder interface {
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// NewLeaderboardHandler returns an HTTP handler for the leaderboard.
// @Summary Leaderboard
// @Description Users ordered by owned block count, descending, ties by username
// @Tags territory
// @Produce json
// @Success 200 {array} models.LeaderboardEntry "Leaderboard"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func NewLeaderboardHandler(svc Leaderboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.Leaderboard(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute leaderboard", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if entries == nil {
			entries = []models.LeaderboardEntry{}
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
