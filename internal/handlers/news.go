package handlers

//go:generate mockgen -source=news.go -destination=mock_news.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
	"github.com/sbilibin2017/gw-territory-capture/internal/services"
)

// NewsGetter defines the interface that the news service must implement.
type NewsGetter interface {
	GetNews(ctx context.Context, city string) ([]models.Article, error)
}

// NewNewsHandler returns an HTTP handler for city news.
// @Summary City news
// @Description Up to ten recent articles about a city, cached for ten minutes
// @Tags news
// @Produce json
// @Param city path string true "City"
// @Success 200 {array} models.Article "Articles"
// @Failure 502 {object} models.ErrorResponse "News provider failure"
// @Failure 503 {object} models.ErrorResponse "News API key not configured"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /news/{city} [get]
func NewNewsHandler(svc NewsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := chi.URLParam(r, "city")

		articles, err := svc.GetNews(r.Context(), city)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNewsNotConfigured):
				writeError(w, http.StatusServiceUnavailable, "News API key not configured")
			case errors.Is(err, services.ErrUpstreamFailure):
				writeError(w, http.StatusBadGateway, "News provider unavailable")
			default:
				logger.Log.Errorw("failed to get news", "city", city, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		if articles == nil {
			articles = []models.Article{}
		}

		writeJSON(w, http.StatusOK, articles)
	}
}
