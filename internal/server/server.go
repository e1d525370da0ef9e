// Package server exposes health, metrics and the read-only GearScore API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/RaidBot_Go/internal/character"
	"github.com/osse101/RaidBot_Go/internal/database"
	"github.com/osse101/RaidBot_Go/internal/gearscore"
	"github.com/osse101/RaidBot_Go/internal/handler"
	"github.com/osse101/RaidBot_Go/internal/metrics"
)

type Server struct {
	httpServer *http.Server
}

// NewServer builds the HTTP API. apiKey may be empty, which leaves /api/v1 open.
func NewServer(port int, apiKey string, proxies []string, dbPool database.Pool, scorer handler.Breakdowner, items gearscore.ItemLookup, characterService character.Service) *Server {
	tracker := NewClientTracker(maxRequestsPerWindow, rateLimitWindow)
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           newRouter(apiKey, parseTrustedProxies(proxies), tracker, dbPool, scorer, items, characterService),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

func newRouter(apiKey string, proxies trustedProxies, tracker *ClientTracker, dbPool database.Pool, scorer handler.Breakdowner, items gearscore.ItemLookup, characterService character.Service) chi.Router {
	r := chi.NewRouter()

	// Outermost first
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders()...)
	r.Use(AuthMiddleware(apiKey, proxies, tracker))
	r.Use(RateLimitMiddleware(proxies, tracker))
	r.Use(middleware.RequestSize(maxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Post("/gearscore", handler.HandleGearScore(scorer))
		r.Get("/items/{id}", handler.HandleGetItem(items))
		r.Get("/characters/{guild}/{name}", handler.HandleGetCharacter(characterService))
	})

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until Stop is called. A graceful shutdown is not an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
