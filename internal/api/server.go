// Package api provides the HTTP/JSON surface of the hub. It mirrors
// the gRPC surface and additionally serves the event stream and the
// browser UI.
package api

import (
	"context"
	"embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meshwork-io/grpc-hub/internal/events"
	"github.com/meshwork-io/grpc-hub/internal/proxy"
	"github.com/meshwork-io/grpc-hub/internal/registry"
)

//go:embed static/index.html
var staticFS embed.FS

// Server is the HTTP/JSON API server.
type Server struct {
	Router chi.Router
	store  *registry.Store
	bus    *events.Bus
	proxy  *proxy.Proxy
	logger *slog.Logger
}

// NewServer creates an HTTP server with all routes registered.
func NewServer(store *registry.Store, bus *events.Bus, px *proxy.Proxy, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		Router: router,
		store:  store,
		bus:    bus,
		proxy:  px,
		logger: logger.With("component", "api"),
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Get("/", s.handleIndex)
	s.Router.Handle("/metrics", promhttp.Handler())

	s.Router.Get("/api/services", s.handleListServices)
	s.Router.Get("/api/service-schema", s.handleServiceSchema)
	s.Router.Delete("/api/services/{service_id}", s.handleUnregisterService)
	s.Router.Post("/api/service-status", s.handleServiceStatus)
	s.Router.Post("/api/grpc-call", s.handleGRPCCall)
	s.Router.Get("/api/events", s.handleEvents)
}

// Start runs the HTTP server until the context is cancelled, then
// shuts it down gracefully. Long-lived event streams end when the bus
// closes.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Router}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info("starting HTTP server", "addr", addr)
	select {
	case <-ctx.Done():
		s.logger.Info("HTTP server stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return srv.Close()
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "index unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}
