// Package webhook exposes the bot's HTTP surface: the Slack interaction
// endpoint and the Q-signup calendar endpoint.
package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/f3stcharles/f3utils/internal/slack"
)

// Server is the webhook HTTP server.
type Server struct {
	listen      string
	verifier    *slack.Verifier
	dialogs     DialogOpener
	submissions SubmissionProcessor
	schedule    ScheduleSource
	logger      *slog.Logger
	server      *http.Server
}

// New creates a webhook server. The schedule source may be nil, in which
// case the calendar endpoint reports unavailability.
func New(listen string, verifier *slack.Verifier, dialogs DialogOpener, submissions SubmissionProcessor, schedule ScheduleSource, logger *slog.Logger) *Server {
	return &Server{
		listen:      listen,
		verifier:    verifier,
		dialogs:     dialogs,
		submissions: submissions,
		schedule:    schedule,
		logger:      logger,
	}
}

// Start starts the webhook HTTP server (blocking until ctx is cancelled or
// the listener fails).
func (s *Server) Start(ctx context.Context) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         s.listen,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("webhook server starting", "listen", s.listen)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("webhook server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("webhook server shutdown failed: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("webhook server error: %w", err)
	}
}

// setupRoutes configures the HTTP router.
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Post("/fngbot/", s.handleInteraction)
	r.Post("/calendar/", s.handleCalendar)

	return r
}

// loggingMiddleware logs HTTP requests (excludes payload content).
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("webhook request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", middleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
		)
	})
}
