package services

//go:generate mockgen -source=leaderboard.go -destination=mock_leaderboard.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
)

// LeaderboardReader aggregates ownership counts.
type LeaderboardReader interface {
	Compute(ctx context.Context) ([]models.LeaderboardEntry, error)
}

// LeaderboardService serves the leaderboard view.
type LeaderboardService struct {
	reader LeaderboardReader
}

func NewLeaderboardService(reader LeaderboardReader) *LeaderboardService {
	return &LeaderboardService{reader: reader}
}

// Leaderboard returns every user with their block count, most blocks first.
func (s *LeaderboardService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries, err := s.reader.Compute(ctx)
	if err != nil {
		logger.Log.Errorw("failed to compute leaderboard", "error", err)
		return nil, err
	}
	return entries, nil
}
