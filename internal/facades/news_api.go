package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/models"
)

// MaxArticles is the result cap sent upstream and enforced locally.
const MaxArticles = 10

// NewsAPIConfig configures the NewsAPI facade.
type NewsAPIConfig struct {
	BaseURL  string
	APIKey   string
	Language string
	Timeout  time.Duration
}

// NewsAPIFacade searches articles through the NewsAPI "everything" endpoint.
type NewsAPIFacade struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
}

// NewNewsAPIFacade creates a new facade. Requests are bounded by cfg.Timeout.
func NewNewsAPIFacade(cfg NewsAPIConfig) *NewsAPIFacade {
	return &NewsAPIFacade{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
	}
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title      *string `json:"title"`
	URL        *string `json:"url"`
	URLToImage *string `json:"urlToImage"`
}

// Search returns up to MaxArticles articles matching term.
// Transport failures, non-2xx statuses and malformed bodies are errors;
// an empty slice means the provider genuinely found nothing.
func (f *NewsAPIFacade) Search(ctx context.Context, term string) ([]models.Article, error) {
	query := url.Values{}
	query.Set("q", term)
	query.Set("language", f.language)
	query.Set("pageSize", strconv.Itoa(MaxArticles))
	endpoint := fmt.Sprintf("%s/v2/everything?%s", f.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", f.apiKey)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("news search request failed", "term", term, "error", err)
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var body newsAPIResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("news search returned error status",
			"term", term, "status", resp.StatusCode, "code", body.Code, "message", body.Message)
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if decodeErr != nil {
		logger.Log.Errorw("failed to decode news search response", "term", term, "error", decodeErr)
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if body.Status != "ok" {
		logger.Log.Errorw("news search reported failure",
			"term", term, "status", body.Status, "code", body.Code, "message", body.Message)
		return nil, fmt.Errorf("provider status %q: %s", body.Status, body.Message)
	}

	n := len(body.Articles)
	if n > MaxArticles {
		n = MaxArticles
	}
	articles := make([]models.Article, 0, n)
	for _, a := range body.Articles[:n] {
		articles = append(articles, models.Article{
			Title: a.Title,
			URL:   a.URL,
			Image: a.URLToImage,
		})
	}

	logger.Log.Infow("news search completed", "term", term, "articles", len(articles))

	return articles, nil
}
