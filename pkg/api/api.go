// Package api exposes the REST API for managing the book catalog.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shelfd/shelfd/pkg/logging"
	"github.com/shelfd/shelfd/pkg/store"
)

// shutdownTimeout is the maximum time Stop waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Server exposes the book catalog over HTTP.
type Server struct {
	store      store.BookStore
	httpServer *http.Server
	handler    http.Handler
	port       int
	startTime  time.Time
	log        *slog.Logger
	version    string

	readTimeout  time.Duration
	writeTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithPort sets the TCP port the server listens on.
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

// WithLogger sets the operational logger. If not set, logging is disabled.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithVersion sets the version string returned by the status endpoint.
// If not set, defaults to "dev".
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithTimeouts sets the HTTP read and write timeouts.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *Server) {
		if read > 0 {
			s.readTimeout = read
		}
		if write > 0 {
			s.writeTimeout = write
		}
	}
}

// New creates a Server backed by the given book store.
func New(bs store.BookStore, opts ...Option) *Server {
	s := &Server{
		store:        bs,
		log:          logging.Nop(),
		readTimeout:  30 * time.Second,
		writeTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)
	s.handler = s.withMiddleware(mux)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.handler,
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}

	return s
}

// Handler returns the fully assembled HTTP handler, including
// middleware. Intended for tests driving the server via httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the API server in the background.
func (s *Server) Start() error {
	s.startTime = time.Now()

	s.log.Info("starting book API", "port", s.port)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("book API error", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the API server.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Uptime returns the server uptime in seconds.
func (s *Server) Uptime() int {
	return int(time.Since(s.startTime).Seconds())
}
