package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Harshitk-cp/ellipsis/internal/api/handlers"
	mw "github.com/Harshitk-cp/ellipsis/internal/api/middleware"
	"github.com/Harshitk-cp/ellipsis/internal/buildconfig"
	"github.com/Harshitk-cp/ellipsis/internal/classifier"
	"github.com/Harshitk-cp/ellipsis/internal/config"
	"github.com/Harshitk-cp/ellipsis/internal/detect"
	"github.com/Harshitk-cp/ellipsis/internal/domain"
	"github.com/Harshitk-cp/ellipsis/internal/embedding"
	"github.com/Harshitk-cp/ellipsis/internal/service"
	"github.com/Harshitk-cp/ellipsis/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var errDatabaseRequired = errors.New("DATABASE_URL is required for the postgres knowledge provider")

// App holds the router plus request counters for the metrics endpoint.
type App struct {
	Router   *chi.Mux
	Sessions *service.SessionService

	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp wires stores, collaborators and services into the HTTP surface.
// db may be nil when both the knowledge base and the classifier run on
// their in-process defaults.
func NewApp(db *pgxpool.Pool, logger *zap.Logger) (*App, error) {
	countries := config.SubjectCountries()
	if countries == nil {
		countries = detect.DefaultCountries
	}

	// Topic classifier via provider factory
	var embedClient domain.EmbeddingClient
	classifierProvider := config.ClassifierProvider()
	if classifierProvider == classifier.ProviderKNN {
		var err error
		embedClient, err = embedding.NewClient(config.EmbeddingProvider(), config.EmbeddingAPIKey())
		if err != nil {
			return nil, err
		}
	}

	topicClassifier, err := classifier.NewClassifier(classifierProvider, db, embedClient, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("topic classifier initialized", zap.String("provider", classifierProvider))

	// Knowledge base
	var knowledge domain.KnowledgeStore
	switch config.KnowledgeProvider() {
	case "postgres":
		if db == nil {
			return nil, errDatabaseRequired
		}
		knowledge = store.NewPostgresKnowledgeStore(db)
	default:
		knowledge = store.NewStaticKnowledgeStore()
	}
	logger.Info("knowledge store initialized", zap.String("provider", config.KnowledgeProvider()))

	// Services
	tracker := service.NewTrackerService(topicClassifier, countries, logger)
	expander := service.NewExpansionService(countries)
	answerer := service.NewKnowledgeAnswerer(knowledge, logger)
	turnSvc := service.NewTurnService(tracker, expander, answerer, logger)
	sessionSvc := service.NewSessionService(store.NewSessionStore(), turnSvc, logger)

	sessionHandler := handlers.NewSessionHandler(sessionSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Sessions:  sessionSvc,
		startTime: time.Now(),
	}

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Metrics(&app.requestCount, &app.errorCount))
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health and metrics (no auth)
	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(config.APIKey()))

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", sessionHandler.GetByID)
				r.Delete("/", sessionHandler.Delete)
				r.Post("/reset", sessionHandler.Reset)
				r.Post("/turns", sessionHandler.ProcessTurn)
				r.Get("/turns", sessionHandler.History)
			})
		})
	})

	return app, nil
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"version": buildconfig.Version(),
			"commit":  buildconfig.Commit(),
		})
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

// Ensure implementations satisfy the domain contracts at compile time.
var (
	_ domain.SessionStore    = (*store.SessionStore)(nil)
	_ domain.KnowledgeStore  = (*store.StaticKnowledgeStore)(nil)
	_ domain.KnowledgeStore  = (*store.PostgresKnowledgeStore)(nil)
	_ domain.TopicClassifier = (*classifier.RulesClassifier)(nil)
	_ domain.TopicClassifier = (*classifier.KNNClassifier)(nil)
	_ domain.TopicClassifier = (*classifier.MockClassifier)(nil)
	_ domain.Answerer        = (*service.KnowledgeAnswerer)(nil)
	_ domain.EmbeddingClient = (*embedding.OpenAIClient)(nil)
	_ domain.EmbeddingClient = (*embedding.MockClient)(nil)
)
