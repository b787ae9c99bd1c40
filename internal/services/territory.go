package services

//go:generate mockgen -source=territory.go -destination=mock_territory.go -package=services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
	"github.com/segmentio/kafka-go"
)

// TerritoryWriter defines block ownership writes.
type TerritoryWriter interface {
	Capture(ctx context.Context, blockID string, ownerID int64, capturedAt time.Time) error // Upserts the owner of a block
}

// TerritoryReader defines block ownership reads.
type TerritoryReader interface {
	List(ctx context.Context) ([]models.Territory, error) // Returns every owned block
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TerritoryService handles block captures and publishes capture events.
type TerritoryService struct {
	writeRepo   TerritoryWriter
	readRepo    TerritoryReader
	kafkaWriter KafkaWriter
	afterCommit func(ctx context.Context, fn func())
	now         func() time.Time
}

// NewTerritoryService creates a new TerritoryService. kafkaWriter may be nil,
// in which case capture events are not published.
func NewTerritoryService(
	writeRepo TerritoryWriter,
	readRepo TerritoryReader,
	kafkaWriter KafkaWriter,
) *TerritoryService {
	return &TerritoryService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,
		afterCommit: func(_ context.Context, fn func()) { fn() },
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithAfterCommit sets how capture events are deferred until the surrounding
// transaction commits. By default they are published right after the write.
func (s *TerritoryService) WithAfterCommit(afterCommit func(ctx context.Context, fn func())) *TerritoryService {
	if afterCommit != nil {
		s.afterCommit = afterCommit
	}
	return s
}

// Capture assigns blockID to userID, overwriting any previous owner.
// The user is not checked for existence.
func (s *TerritoryService) Capture(ctx context.Context, blockID string, userID int64) error {
	if blockID == "" {
		return fmt.Errorf("%w: block_id is required", ErrInvalidInput)
	}

	capturedAt := s.now()
	if err := s.writeRepo.Capture(ctx, blockID, userID, capturedAt); err != nil {
		logger.Log.Errorw("failed to capture block", "block_id", blockID, "user_id", userID, "error", err)
		return err
	}

	event := models.CaptureEvent{
		EventID:    uuid.NewString(),
		BlockID:    blockID,
		OwnerID:    userID,
		CapturedAt: capturedAt.UnixMilli(),
	}
	s.afterCommit(ctx, func() { s.publishCapture(ctx, event) })

	return nil
}

// ListTerritories returns the current owner of every captured block.
func (s *TerritoryService) ListTerritories(ctx context.Context) ([]models.Territory, error) {
	territories, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list territories", "error", err)
		return nil, err
	}
	return territories, nil
}

// publishCapture publishes a capture event to Kafka. Failures are logged only.
func (s *TerritoryService) publishCapture(ctx context.Context, event models.CaptureEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal capture event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		// Keyed by block so all captures of one block land on one partition in order.
		Key:   []byte(event.BlockID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "owner_id", Value: []byte(strconv.FormatInt(event.OwnerID, 10))},
		},
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish capture event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Capture event published to Kafka", "event_id", event.EventID, "block_id", event.BlockID)
	}
}
