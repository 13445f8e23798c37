// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	accessservice "github.com/chainsafe/marketplace-favorites/pkg/access/service"
	apphttp "github.com/chainsafe/marketplace-favorites/pkg/app/http"
	"github.com/chainsafe/marketplace-favorites/pkg/auth"
	"github.com/chainsafe/marketplace-favorites/pkg/config"
	"github.com/chainsafe/marketplace-favorites/pkg/favoritesstore"
	listsservice "github.com/chainsafe/marketplace-favorites/pkg/lists/service"
	"github.com/chainsafe/marketplace-favorites/pkg/oracle/items"
	"github.com/chainsafe/marketplace-favorites/pkg/oracle/votingpower"
	"github.com/chainsafe/marketplace-favorites/pkg/pgutil"
	picksservice "github.com/chainsafe/marketplace-favorites/pkg/picks/service"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// services are the logged component services served over HTTP.
type services struct {
	lists  listsservice.Service
	picks  picksservice.Service
	access accessservice.Service
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting favorites API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	store := favoritesstore.NewStore(db)
	itemsClient := items.NewClient(&cfg.Items, logger)
	powerClient := votingpower.NewClient(&cfg.VotingPower, logger)

	lists := listsservice.NewLog(
		listsservice.NewService(store, itemsClient, powerClient, logger),
		logger,
	)
	svcs := services{
		lists: lists,
		picks: picksservice.NewLog(
			picksservice.NewService(store, lists, itemsClient, powerClient, logger),
			logger,
		),
		access: accessservice.NewLog(
			accessservice.NewService(store, lists, logger),
			logger,
		),
	}

	router := s.setupRouter(auth.NewAuthenticator(&cfg.Auth, logger), svcs, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) setupRouter(authn *auth.Authenticator, svcs services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(countRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", auth.HeaderSignature, auth.HeaderMessage},
		MaxAge:         s.cfg.CORS.MaxAge,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if !s.cfg.Metrics.Disabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authn.RequireAddress)
			listsservice.RegisterRoutes(r, svcs.lists, &s.cfg.Picks, logger)
			accessservice.RegisterRoutes(r, svcs.access, logger)
		})
		r.Group(func(r chi.Router) {
			r.Use(authn.OptionalAddress)
			picksservice.RegisterRoutes(r, svcs.picks, &s.cfg.Picks, logger)
		})
	})

	return r
}
