package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
)

// NewsCacheRepository stores news cache entries in Redis so several service
// instances share one cache.
type NewsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached entries
}

// NewNewsCacheRepository creates a new repository instance. Entries expire
// after expiration, which bounds memory in Redis.
func NewNewsCacheRepository(client *redis.Client, expiration time.Duration) *NewsCacheRepository {
	return &NewsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func newsCacheKey(city string) string {
	return fmt.Sprintf("news:%s", city)
}

// Get returns nil without an error on a cache miss.
func (r *NewsCacheRepository) Get(ctx context.Context, city string) (*models.NewsCacheEntry, error) {
	key := newsCacheKey(city)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("news cache",
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entry models.NewsCacheEntry
	if err := json.Unmarshal(val, &entry); err != nil {
		logger.Log.Infow("news cache",
			"key", key,
			"value", string(val),
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("news cache",
		"key", key,
		"result", len(entry.Articles),
		"timestamp", entry.Timestamp,
		"error", nil,
	)

	return &entry, nil
}

// Set replaces the cached entry for city.
func (r *NewsCacheRepository) Set(ctx context.Context, city string, entry models.NewsCacheEntry) error {
	key := newsCacheKey(city)

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("news cache",
		"key", key,
		"articles", len(entry.Articles),
		"result", "ok",
		"error", err,
	)

	return err
}
