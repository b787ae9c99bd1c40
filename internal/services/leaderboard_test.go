package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
	"github.com/sbilibin2017/gw-territory-capture/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLeaderboardService_Leaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockLeaderboardReader(ctrl)
	svc := services.NewLeaderboardService(reader)
	ctx := context.Background()

	want := []models.LeaderboardEntry{
		{Username: "alice", Blocks: 3},
		{Username: "bob", Blocks: 0},
	}
	reader.EXPECT().Compute(ctx).Return(want, nil)

	got, err := svc.Leaderboard(ctx)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	reader.EXPECT().Compute(ctx).Return(nil, errors.New("db down"))
	got, err = svc.Leaderboard(ctx)
	assert.EqualError(t, err, "db down")
	assert.Nil(t, got)
}
