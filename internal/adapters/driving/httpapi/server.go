// Package httpapi exposes the question answering pipeline over HTTP
// for browser frontends.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/custodia-labs/planqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/planqa-cli/internal/logger"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8000"

// shutdownTimeout bounds graceful shutdown on stop.
const shutdownTimeout = 10 * time.Second

// Server serves the chat and evaluation endpoints.
type Server struct {
	addr string
	chat driving.ChatService
	eval driving.EvalService
	http *http.Server
}

// NewServer creates an HTTP server for the given services.
func NewServer(addr string, chat driving.ChatService, eval driving.EvalService) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	s := &Server{
		addr: addr,
		chat: chat,
		eval: eval,
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// router assembles the chi routes and middleware.
func (s *Server) router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(allowAllCORS)

	r.Get("/health", s.handleHealth)
	r.Post("/chat", s.handleChat)
	r.Get("/eval", s.handleEval)
	return r
}

// Run serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http: listening on %s", s.addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("http: shutting down")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// allowAllCORS permits any origin. The API carries no credentials and
// is meant for local frontends during document review.
func allowAllCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
