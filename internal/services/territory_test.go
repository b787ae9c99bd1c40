package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerritoryService_Capture(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTerritoryWriter(ctrl)
	reader := NewMockTerritoryReader(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	writer.EXPECT().Capture(ctx, "B1", int64(5), at).Return(nil)

	var published kafka.Message
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			published = msgs[0]
			return nil
		})

	svc := NewTerritoryService(writer, reader, kafkaWriter)
	svc.now = func() time.Time { return at }

	require.NoError(t, svc.Capture(ctx, "B1", 5))

	assert.Equal(t, []byte("B1"), published.Key)
	var event models.CaptureEvent
	require.NoError(t, json.Unmarshal(published.Value, &event))
	assert.Equal(t, "B1", event.BlockID)
	assert.Equal(t, int64(5), event.OwnerID)
	assert.Equal(t, at.UnixMilli(), event.CapturedAt)
	assert.NotEmpty(t, event.EventID)
}

func TestTerritoryService_Capture_LastWriteWinsTimestamps(t *testing.T) {
	ctx := context.Background()
	first := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTerritoryWriter(ctrl)
	gomock.InOrder(
		writer.EXPECT().Capture(ctx, "B1", int64(1), first).Return(nil),
		writer.EXPECT().Capture(ctx, "B1", int64(2), second).Return(nil),
	)

	svc := NewTerritoryService(writer, nil, nil)
	clock := []time.Time{first, second}
	svc.now = func() time.Time {
		next := clock[0]
		clock = clock[1:]
		return next
	}

	assert.NoError(t, svc.Capture(ctx, "B1", 1))
	assert.NoError(t, svc.Capture(ctx, "B1", 2))
}

func TestTerritoryService_Capture_Errors(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTerritoryWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)
	svc := NewTerritoryService(writer, nil, kafkaWriter)

	t.Run("empty block id", func(t *testing.T) {
		err := svc.Capture(ctx, "", 1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("store error is not published", func(t *testing.T) {
		writer.EXPECT().Capture(ctx, "B1", int64(1), gomock.Any()).Return(errors.New("db down"))
		err := svc.Capture(ctx, "B1", 1)
		assert.EqualError(t, err, "db down")
	})

	t.Run("publish error does not fail capture", func(t *testing.T) {
		writer.EXPECT().Capture(ctx, "B2", int64(1), gomock.Any()).Return(nil)
		kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		assert.NoError(t, svc.Capture(ctx, "B2", 1))
	})
}

func TestTerritoryService_Capture_WithoutKafka(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTerritoryWriter(ctrl)
	writer.EXPECT().Capture(ctx, "B1", int64(9), gomock.Any()).Return(nil)

	svc := NewTerritoryService(writer, nil, nil)
	assert.NoError(t, svc.Capture(ctx, "B1", 9))
}

func TestTerritoryService_ListTerritories(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockTerritoryReader(ctrl)
	svc := NewTerritoryService(nil, reader, nil)

	reader.EXPECT().List(ctx).Return([]models.Territory{{BlockID: "B1", OwnerID: 1}}, nil)
	territories, err := svc.ListTerritories(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []models.Territory{{BlockID: "B1", OwnerID: 1}}, territories)

	reader.EXPECT().List(ctx).Return(nil, errors.New("db down"))
	territories, err = svc.ListTerritories(ctx)
	assert.EqualError(t, err, "db down")
	assert.Nil(t, territories)
}

func TestTerritoryService_Capture_PublishDeferredUntilCommit(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTerritoryWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)
	writer.EXPECT().Capture(ctx, "B1", int64(3), gomock.Any()).Return(nil)

	var pending []func()
	svc := NewTerritoryService(writer, nil, kafkaWriter).
		WithAfterCommit(func(_ context.Context, fn func()) { pending = append(pending, fn) })

	require.NoError(t, svc.Capture(ctx, "B1", 3))
	require.Len(t, pending, 1)

	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	pending[0]()
}
