package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/devinterview/question-catalog/internal/catalog"
	"github.com/devinterview/question-catalog/internal/config"
	"github.com/devinterview/question-catalog/internal/models"
	"github.com/devinterview/question-catalog/internal/seed"
)

// RepositoryService is the import service surface used by repository routes
type RepositoryService interface {
	ListRepositories(ctx context.Context) ([]models.Repository, error)
	AddRepository(ctx context.Context, req models.AddRepositoryRequest) (*models.AddRepositoryResult, error)
	SyncRepository(ctx context.Context, id int64) (*models.SyncResult, error)
}

// Server represents the HTTP API server
type Server struct {
	config         config.ServerConfig
	router         *chi.Mux
	store          *catalog.Store
	seedLoader     *seed.Loader
	repositories   RepositoryService
	authMiddleware *AuthMiddleware
}

// NewServer creates a new API server
func NewServer(
	cfg config.ServerConfig,
	store *catalog.Store,
	loader *seed.Loader,
	repositories RepositoryService,
	adminAPIKey string,
) *Server {
	s := &Server{
		config:         cfg,
		store:          store,
		seedLoader:     loader,
		repositories:   repositories,
		authMiddleware: NewAuthMiddleware(adminAPIKey),
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures all routes and middleware
func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	origins := s.config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check (outside versioned API)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api/v1", func(r chi.Router) {
		// Long-lived stream, no request timeout
		r.Get("/events", s.handleEventsWS)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			r.Get("/status", s.handleStatus)

			r.Route("/questions", func(r chi.Router) {
				r.Get("/", s.handleListQuestions)
				r.Get("/{id}", s.handleGetQuestion)
			})

			r.Get("/technologies", s.handleListTechnologies)
			r.Get("/technologies/{id}", s.handleGetTechnology)
			r.Get("/sort-options", s.handleListSortOptions)
			r.Get("/categories", s.handleListCategories)

			r.Get("/repositories", s.handleListRepositories)

			// Write routes
			r.Group(func(r chi.Router) {
				r.Use(s.authMiddleware.Authenticate)

				r.Post("/refresh", s.handleRefresh)
				r.Post("/repositories", s.handleAddRepository)
				r.Post("/repositories/{id}/sync", s.handleSyncRepository)
			})
		})
	})

	s.router = r
}

// loggingMiddleware logs HTTP requests using slog
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			slog.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
				"remote_addr", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
