// Package server exposes the remote input bridge, metrics and health checks
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const readHeaderTimeout = 5 * time.Second

// Server owns the HTTP listener
type Server struct {
	http *http.Server
	log  *zap.Logger
}

// NewRouter mounts the routes, nil handlers are skipped
func NewRouter(bridge, metrics http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	if bridge != nil {
		r.Handle("/ws", bridge)
	}
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	return r
}

// New creates a server on addr
func New(addr string, handler http.Handler, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: log,
	}
}

// Start listens and serves in the background
// The listener is bound before returning so address errors surface here
func (s *Server) Start() (net.Addr, error) {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return nil, err
	}

	s.log.Info("http server listening", zap.String("addr", ln.Addr().String()))
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("http server stopped", zap.Error(err))
		}
	}()
	return ln.Addr(), nil
}

// Shutdown stops accepting connections and waits for handlers up to ctx
// Hijacked websocket connections are not tracked and must be closed by their owner
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		_ = s.http.Close()
		return err
	}
	return nil
}
