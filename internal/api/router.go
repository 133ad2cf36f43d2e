package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/factline/credo/internal/api/handlers"
	mw "github.com/factline/credo/internal/api/middleware"
	"github.com/factline/credo/internal/cache"
	"github.com/factline/credo/internal/config"
	"github.com/factline/credo/internal/domain"
	"github.com/factline/credo/internal/embedding"
	"github.com/factline/credo/internal/engine"
	"github.com/factline/credo/internal/service"
	"github.com/factline/credo/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the router and request metrics for lifecycle management.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp wires stores, services and handlers. rdb may be nil, in which case
// report caching is disabled.
func NewApp(db *pgxpool.Pool, rdb *redis.Client, logger *zap.Logger) *App {
	// Stores
	tenantStore := store.NewTenantStore(db)
	claimStore := store.NewClaimStore(db)
	factStore := store.NewFactStore(db)
	voteStore := store.NewVoteStore(db)

	// Embedding client via provider factory
	embeddingClient, err := embedding.NewClient(config.EmbeddingProvider(), config.EmbeddingAPIKey())
	if err != nil {
		logger.Warn("embedding client initialization failed, fact search falls back to keywords",
			zap.String("provider", config.EmbeddingProvider()), zap.Error(err))
	} else {
		logger.Info("embedding client initialized", zap.String("provider", config.EmbeddingProvider()))
	}

	// Services
	factSvc := service.NewFactService(factStore, embeddingClient, logger)
	voteSvc := service.NewVoteService(voteStore)
	claimSvc := service.NewClaimService(engine.New(), claimStore, voteStore, logger)
	claimSvc.SetRetriever(factSvc)
	if rdb != nil {
		claimSvc.SetCache(cache.NewReportCache(rdb, config.CacheTTL()))
		logger.Info("report cache enabled", zap.Duration("ttl", config.CacheTTL()))
	}

	// Handlers
	tenantHandler := handlers.NewTenantHandler(tenantStore)
	claimsHandler := handlers.NewClaimsHandler(claimSvc)
	factsHandler := handlers.NewFactsHandler(factSvc)
	votesHandler := handlers.NewVotesHandler(voteSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	// Metrics collector for middleware
	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health (no auth)
	r.Get("/health", healthHandler(db))

	// Metrics (no auth)
	r.Get("/metrics", app.metricsHandler())

	// Tenant creation (no auth, bootstrap endpoint)
	r.Post("/v1/tenants", tenantHandler.Create)

	// Authenticated routes
	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(tenantStore))

		r.Route("/claims", func(r chi.Router) {
			r.Post("/score", claimsHandler.Score)
			r.Get("/", claimsHandler.Feed)
			r.Route("/{hash}", func(r chi.Router) {
				r.Get("/", claimsHandler.GetByHash)
				r.Post("/votes", votesHandler.Cast)
				r.Get("/votes", votesHandler.Tally)
			})
		})

		r.Route("/facts", func(r chi.Router) {
			r.Post("/", factsHandler.Create)
			r.Get("/search", factsHandler.Search)
		})
	})

	return app
}

// NewRouter returns just the chi.Mux.
func NewRouter(db *pgxpool.Pool, rdb *redis.Client, logger *zap.Logger) *chi.Mux {
	return NewApp(db, rdb, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores and clients satisfy interfaces at compile time.
var (
	_ domain.TenantStore     = (*store.TenantStore)(nil)
	_ domain.ClaimStore      = (*store.ClaimStore)(nil)
	_ domain.FactStore       = (*store.FactStore)(nil)
	_ domain.VoteStore       = (*store.VoteStore)(nil)
	_ domain.EmbeddingClient = (*embedding.OpenAIClient)(nil)
	_ domain.EmbeddingClient = (*embedding.MockClient)(nil)
	_ domain.ReportCache     = (*cache.ReportCache)(nil)
)
