package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/healthpoint/internal/availability"
	"github.com/hamed0406/healthpoint/internal/repo"
)

const maxRoundsLimit = 100

// Server exposes the aggregator and recent rounds read-only over HTTP.
type Server struct {
	Logger       *zap.Logger
	Availability *availability.Aggregator
	Rounds       repo.RoundStore
}

func NewServer(l *zap.Logger, agg *availability.Aggregator, rounds repo.RoundStore) *Server {
	return &Server{Logger: l, Availability: agg, Rounds: rounds}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         300,
	}))
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/availability", s.handleAvailability)
		r.Get("/cnames", s.handleCNAMEs)
		r.Get("/rounds", s.handleRounds)
		r.Get("/rounds/latest", s.handleLatestRound)
	})

	return r
}

// ListenAndServe serves the router on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("status_api_listen", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.Logger.Info("status_api_stopped")
	return nil
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Availability.Snapshot())
}

func (s *Server) handleCNAMEs(w http.ResponseWriter, r *http.Request) {
	cnames := availability.RedundantCNAMEs(s.Availability.Keys())
	if cnames == nil {
		cnames = []string{}
	}
	writeJSON(w, http.StatusOK, cnames)
}

func (s *Server) handleLatestRound(w http.ResponseWriter, r *http.Request) {
	round, err := s.Rounds.LastRound(r.Context())
	if err != nil {
		s.Logger.Warn("status_api_round_error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load round")
		return
	}
	if round == nil {
		writeError(w, http.StatusNotFound, "no completed round yet")
		return
	}
	writeJSON(w, http.StatusOK, round)
}

func (s *Server) handleRounds(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxRoundsLimit)
	}
	rounds, err := s.Rounds.Rounds(r.Context(), limit)
	if err != nil {
		s.Logger.Warn("status_api_round_error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load rounds")
		return
	}
	writeJSON(w, http.StatusOK, rounds)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.Debug("status_api_request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
