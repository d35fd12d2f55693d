// Package server exposes the analysis pipeline as a JSON API.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/localmind/internal/analysis"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// Server routes API requests to the analysis service.
type Server struct {
	svc    *analysis.Service
	router chi.Router
}

// New builds the API server around an analysis service.
func New(svc *analysis.Service) *Server {
	s := &Server{svc: svc}

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(recoverPanics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/analyze-competitors", s.handleAnalyzeCompetitors)
		r.Post("/optimize-hours", s.handleOptimizeHours)
		r.Post("/scan-market", s.handleScanMarket)
		r.Post("/generate-report", s.handleGenerateReport)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger tags each request with an id and logs its outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		zap.L().Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// recoverPanics converts handler panics into the generic 500 envelope.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				zap.L().Error("server: handler panic", zap.Any("panic", rec))
				respondError(w, http.StatusInternalServerError,
					"Internal server error. Please try again later.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
