package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/suggestion-board/board/config"
	"github.com/suggestion-board/board/internal/db"
	"github.com/suggestion-board/board/internal/handlers"
	"github.com/suggestion-board/board/internal/mq"
	"github.com/suggestion-board/board/internal/services"
	"github.com/suggestion-board/board/internal/session"
	"github.com/suggestion-board/board/internal/store"
)

// Server wraps the HTTP server and the resources its handlers use.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	broker     *mq.MQ
	sessions   session.Store
}

// New connects to the database, broker and session backend and wires the
// board routes.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	broker, err := mq.Open(ctx, cfg.MQ)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	sessions, err := session.New(ctx, cfg)
	if err != nil {
		_ = broker.Close()
		_ = dbConn.Close()
		return nil, err
	}

	var activity *services.ActivityRecorder
	if broker.Enabled() {
		activity = services.NewActivityRecorder(broker, cfg.MQ.Channel)
	}

	h, err := handlers.New(buildServices(dbConn, activity, cfg.Policy), sessions)
	if err != nil {
		_ = sessions.Close()
		_ = broker.Close()
		_ = dbConn.Close()
		return nil, err
	}

	router := newRouter(cfg, h.Routes)

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		broker:     broker,
		sessions:   sessions,
	}, nil
}

func buildServices(dbConn *sql.DB, activity *services.ActivityRecorder, policy config.PolicyConfig) handlers.Services {
	userRepo := store.NewUserRepository(dbConn)
	suggestionRepo := store.NewSuggestionRepository(dbConn)
	likeRepo := store.NewLikeRepository(dbConn)

	return handlers.Services{
		Users:       services.NewUserService(userRepo, activity),
		Suggestions: services.NewSuggestionService(suggestionRepo, userRepo, likeRepo, activity, policy.EnforceOwnership),
		Likes:       services.NewLikeService(likeRepo, suggestionRepo, activity),
		Feed:        services.NewFeedService(suggestionRepo, userRepo, likeRepo),
		Profiles:    services.NewProfileService(userRepo, suggestionRepo, likeRepo),
	}
}

func newRouter(cfg config.Config, routes func(chi.Router)) *chi.Mux {
	requestLog := slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: requestLog, NoColor: true}),
		middleware.Timeout(60*time.Second),
	)
	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	routes(router)
	return router
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	slog.Info("server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and then releases the session backend,
// broker and database.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.sessions != nil {
		err = errors.Join(err, s.sessions.Close())
	}
	if s.broker != nil {
		err = errors.Join(err, s.broker.Close())
	}
	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}
	return err
}
