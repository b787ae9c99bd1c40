package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-territory-capture/internal/cache"
	"github.com/sbilibin2017/gw-territory-capture/internal/facades"
	"github.com/sbilibin2017/gw-territory-capture/internal/handlers"
	"github.com/sbilibin2017/gw-territory-capture/internal/logger"
	"github.com/sbilibin2017/gw-territory-capture/internal/middlewares"
	"github.com/sbilibin2017/gw-territory-capture/internal/migrations"
	"github.com/sbilibin2017/gw-territory-capture/internal/repositories"
	"github.com/sbilibin2017/gw-territory-capture/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	newsCacheBackendMemory = "memory"
	newsCacheBackendRedis  = "redis"
)

type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	NewsAPIKey        string
	NewsAPIURL        string
	NewsAPILanguage   string
	NewsAPITimeout    time.Duration
	NewsCacheTTL      time.Duration
	NewsCacheMaxItems int
	NewsCacheBackend  string

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers      []string
	KafkaCaptureTopic string

	CORSAllowedOrigins []string
}

// @title gw-territory-capture API
// @version 1.0.0
// @description Backend for a territory-capture game: identity, block ownership, leaderboard and city news
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file (if present) and
// returns the application configuration with defaults applied.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return v, nil
	}

	getList := func(key, defaultValue string) []string {
		var out []string
		for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// News config
	cfg.NewsAPIKey = getEnv("NEWS_API_KEY", "")
	cfg.NewsAPIURL = getEnv("NEWS_API_URL", "https://newsapi.org")
	cfg.NewsAPILanguage = getEnv("NEWS_API_LANGUAGE", "en")
	var seconds int
	if seconds, err = getInt("NEWS_API_TIMEOUT_SECOND", "10"); err != nil {
		return
	}
	cfg.NewsAPITimeout = time.Duration(seconds) * time.Second
	if seconds, err = getInt("NEWS_CACHE_TTL_SECOND", "600"); err != nil {
		return
	}
	if seconds <= 0 {
		err = fmt.Errorf("invalid NEWS_CACHE_TTL_SECOND %d: must be positive", seconds)
		return
	}
	cfg.NewsCacheTTL = time.Duration(seconds) * time.Second
	if cfg.NewsCacheMaxItems, err = getInt("NEWS_CACHE_MAX_ENTRIES", "256"); err != nil {
		return
	}
	if cfg.NewsCacheMaxItems <= 0 {
		err = fmt.Errorf("invalid NEWS_CACHE_MAX_ENTRIES %d: must be positive", cfg.NewsCacheMaxItems)
		return
	}
	cfg.NewsCacheBackend = strings.ToLower(getEnv("NEWS_CACHE_BACKEND", newsCacheBackendMemory))
	if cfg.NewsCacheBackend != newsCacheBackendMemory && cfg.NewsCacheBackend != newsCacheBackendRedis {
		err = fmt.Errorf("invalid NEWS_CACHE_BACKEND %q", cfg.NewsCacheBackend)
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.KafkaCaptureTopic = getEnv("KAFKA_CAPTURE_TOPIC", "territory-captures")

	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS", "*")

	return
}

// run initializes the logger, database, news cache, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// News cache store
	var newsStore services.NewsCacheStore
	switch cfg.NewsCacheBackend {
	case newsCacheBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		newsStore = repositories.NewNewsCacheRepository(rdb, cfg.NewsCacheTTL)
	default:
		memStore, err := cache.NewMemoryNewsStore(cfg.NewsCacheMaxItems)
		if err != nil {
			return err
		}
		newsStore = memStore
	}

	// Kafka writer for capture events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaCaptureTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Capture events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaCaptureTopic)
	}

	// News provider; without a key every news request reports a configuration error
	var searcher services.NewsSearcher
	if cfg.NewsAPIKey != "" {
		searcher = facades.NewNewsAPIFacade(facades.NewsAPIConfig{
			BaseURL:  cfg.NewsAPIURL,
			APIKey:   cfg.NewsAPIKey,
			Language: cfg.NewsAPILanguage,
			Timeout:  cfg.NewsAPITimeout,
		})
	} else {
		logger.Log.Warn("NEWS_API_KEY is not set, news endpoint will return 503")
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	territoryReadRepo := repositories.NewTerritoryReadRepository(db)
	territoryWriteRepo := repositories.NewTerritoryWriteRepository(db, middlewares.GetTxFromContext)
	leaderboardRepo := repositories.NewLeaderboardReadRepository(db)

	// Initialize services
	identityService := services.NewIdentityService(userReadRepo, userWriteRepo)
	territoryService := services.NewTerritoryService(territoryWriteRepo, territoryReadRepo, kafkaWriter).
		WithAfterCommit(middlewares.AfterCommit)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo)
	newsService := services.NewNewsService(searcher, newsStore, cfg.NewsCacheTTL)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.Get("/", handlers.NewHomeHandler())
	r.Post("/login", handlers.NewLoginHandler(identityService))
	r.Get("/get_profile/{user_id}", handlers.NewGetProfileHandler(identityService))
	r.Get("/territories", handlers.NewTerritoriesHandler(territoryService))
	r.Get("/leaderboard", handlers.NewLeaderboardHandler(leaderboardService))
	r.Get("/news/{city}", handlers.NewNewsHandler(newsService))

	// Writes run inside a per-request transaction
	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/update_profile", handlers.NewUpdateProfileHandler(identityService))
		r.Post("/capture", handlers.NewCaptureHandler(territoryService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
