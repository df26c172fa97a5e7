package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"rechub/internal/config"
	"rechub/internal/logging"
	"rechub/internal/poster"
)

// Server serves the recommendation pages and the JSON API.
type Server struct {
	bind     string
	logger   *slog.Logger
	library  *Library
	resolver *poster.Resolver

	lock     *flock.Flock
	listener net.Listener
	server   *http.Server
}

// New creates a Server. The library may start unloaded, in which case the
// home page shows the upload prompt until a catalog arrives.
func New(cfg *config.Config, library *Library, resolver *poster.Resolver, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config required")
	}
	if library == nil {
		library = NewLibrary()
	}

	srv := &Server{
		bind:     cfg.Paths.Bind,
		logger:   logging.NewComponentLogger(logger, "server"),
		library:  library,
		resolver: resolver,
		lock:     flock.New(cfg.LockFilePath()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleHome)
	mux.HandleFunc("/recommend", srv.handleRecommend)
	mux.HandleFunc("/upload", srv.handleUpload)
	mux.HandleFunc("/api/moods", srv.handleAPIMoods)
	mux.HandleFunc("/api/search", srv.handleAPISearch)
	mux.HandleFunc("/api/poster", srv.handleAPIPoster)

	srv.server = &http.Server{
		Handler:           srv.withRequestLog(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Start acquires the single-instance lock, binds the listener, and serves
// until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	locked, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire serve lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another rechub serve instance holds %s", s.lock.Path())
	}

	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("listen on %s: %w", s.bind, err)
	}
	s.listener = listener

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("listening", logging.String("address", listener.Addr().String()))
	err = s.server.Serve(listener)
	_ = s.lock.Unlock()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Addr returns the bound listener address, or empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		requestID := uuid.NewString()
		next.ServeHTTP(recorder, r)
		s.logger.Info("request",
			logging.String(logging.FieldRequestID, requestID),
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", recorder.status),
			logging.Duration("duration", time.Since(start)))
	})
}
