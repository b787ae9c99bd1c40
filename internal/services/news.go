package services

//go:generate mockgen -source=news.go -destination=mock_news.go -package=services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
	"golang.org/x/sync/singleflight"
)

// DefaultNewsFreshness is how long a fetched city stays fresh.
const DefaultNewsFreshness = 10 * time.Minute

// NewsSearcher searches an external news provider.
type NewsSearcher interface {
	Search(ctx context.Context, term string) ([]models.Article, error)
}

// NewsCacheStore stores the last fetch per normalized city.
type NewsCacheStore interface {
	Get(ctx context.Context, city string) (*models.NewsCacheEntry, error)
	Set(ctx context.Context, city string, entry models.NewsCacheEntry) error
}

// NewsService serves city news through a freshness-bounded cache.
type NewsService struct {
	searcher  NewsSearcher
	cache     NewsCacheStore
	freshness time.Duration
	now       func() time.Time
	flights   singleflight.Group
}

// NewNewsService creates a new NewsService. A nil searcher means no provider
// credential is configured and every call fails with ErrNewsNotConfigured.
func NewNewsService(searcher NewsSearcher, cache NewsCacheStore, freshness time.Duration) *NewsService {
	if freshness <= 0 {
		freshness = DefaultNewsFreshness
	}
	return &NewsService{
		searcher:  searcher,
		cache:     cache,
		freshness: freshness,
		now:       time.Now,
	}
}

// GetNews returns up to ten articles about city. Cached results younger than
// the freshness window are returned as is; otherwise the provider is queried
// with the city as given and the cache entry is replaced. Concurrent misses
// for the same city share one upstream call.
func (s *NewsService) GetNews(ctx context.Context, city string) ([]models.Article, error) {
	if s.searcher == nil {
		return nil, ErrNewsNotConfigured
	}

	key := strings.ToLower(city)
	if entry := s.fresh(ctx, key); entry != nil {
		return entry.Articles, nil
	}

	v, err, shared := s.flights.Do(key, func() (any, error) {
		if entry := s.fresh(ctx, key); entry != nil {
			return entry.Articles, nil
		}

		// The fetch outlives a caller that gives up, other waiters still need it.
		articles, err := s.searcher.Search(context.WithoutCancel(ctx), city)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
		}
		if articles == nil {
			articles = []models.Article{}
		}

		entry := models.NewsCacheEntry{Articles: articles, Timestamp: s.now()}
		if err := s.cache.Set(ctx, key, entry); err != nil {
			logger.Log.Errorw("failed to cache news", "city", key, "error", err)
		}
		return articles, nil
	})
	if err != nil {
		logger.Log.Errorw("failed to fetch news", "city", city, "shared", shared, "error", err)
		return nil, err
	}

	return v.([]models.Article), nil
}

// fresh returns the cached entry for key if it is inside the freshness window.
// Cache read failures are treated as misses.
func (s *NewsService) fresh(ctx context.Context, key string) *models.NewsCacheEntry {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Log.Errorw("failed to read news cache", "city", key, "error", err)
		return nil
	}
	if entry == nil || !entry.FreshAt(s.now(), s.freshness) {
		return nil
	}
	return entry
}
