package server

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tracklit/internal/config"
	"tracklit/internal/logger"
	"tracklit/internal/server/handlers"
	"tracklit/internal/storage"
)

// Server is the JSON API server behind the dashboard.
type Server struct {
	router   *mux.Router
	server   *http.Server
	handlers *handlers.Handlers
	cfg      config.Server
}

// New creates a server over the given store.
func New(cfg config.Server, store storage.Provider) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		handlers: handlers.New(store),
		cfg:      cfg,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Router exposes the handler tree for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.requestLoggingMiddleware)
	s.router.Use(s.metricsMiddleware)
	s.router.Use(s.timeoutMiddleware)
	s.router.Use(s.corsMiddleware)

	s.router.HandleFunc("/health", s.handlers.Health).Methods("GET")
	s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Preflight requests carry no credentials; the CORS middleware answers
	// them once this catch-all gives mux a route to match.
	s.router.PathPrefix("/api/v1").Methods("OPTIONS").HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	// Authenticated API. An unauthenticated caller is rejected here, before
	// any handler or filtering logic runs.
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.Use(s.authMiddleware)

	api.HandleFunc("/trackables", s.handlers.ListTrackables).Methods("GET")
	api.HandleFunc("/trackables", s.handlers.CreateTrackable).Methods("POST")
	api.HandleFunc("/trackables/{id}", s.handlers.GetTrackable).Methods("GET")
	api.HandleFunc("/trackables/{id}", s.handlers.UpdateTrackable).Methods("PUT")
	api.HandleFunc("/trackables/{id}", s.handlers.DeleteTrackable).Methods("DELETE")
	api.HandleFunc("/trackables/{id}/complete", s.handlers.CompleteTrackable).Methods("POST")
	api.HandleFunc("/trackables/{id}/restore", s.handlers.RestoreTrackable).Methods("POST")

	api.HandleFunc("/metric-entries", s.handlers.ListMetricEntries).Methods("GET")
	api.HandleFunc("/metric-entries", s.handlers.CreateMetricEntry).Methods("POST")
	api.HandleFunc("/metric-entries/{id}", s.handlers.UpdateMetricEntry).Methods("PUT")
	api.HandleFunc("/metric-entries/{id}", s.handlers.DeleteMetricEntry).Methods("DELETE")

	api.HandleFunc("/moods", s.handlers.ListMoods).Methods("GET")
	api.HandleFunc("/moods/{day}", s.handlers.GetMood).Methods("GET")
	api.HandleFunc("/moods/{day}", s.handlers.PutMood).Methods("PUT")
	api.HandleFunc("/moods/{day}", s.handlers.DeleteMood).Methods("DELETE")

	api.HandleFunc("/transactions", s.handlers.ListTransactions).Methods("GET")
	api.HandleFunc("/transactions", s.handlers.CreateTransaction).Methods("POST")
	api.HandleFunc("/transactions/summary", s.handlers.SummarizeTransactions).Methods("GET")
	api.HandleFunc("/transactions/{id}", s.handlers.UpdateTransaction).Methods("PUT")
	api.HandleFunc("/transactions/{id}", s.handlers.DeleteTransaction).Methods("DELETE")

	api.HandleFunc("/settings", s.handlers.GetSettings).Methods("GET")
	api.HandleFunc("/settings", s.handlers.PutSettings).Methods("PUT")

	s.router.NotFoundHandler = http.HandlerFunc(s.handlers.NotFound)
}

// authMiddleware enforces the configured bearer API key. An empty configured
// key disables auth for local single-user deployments.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.APIKey)) != 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"Unauthorized","code":"invalid_api_key"}`)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware adds a unique request ID to each request.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		ctx := context.WithValue(r.Context(), handlers.RequestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLoggingMiddleware logs all requests in structured form.
func (s *Server) requestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID, _ := r.Context().Value(handlers.RequestIDKey).(string)

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		logger.Info("request",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

// metricsMiddleware records request count and latency per route.
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapper.statusCode)).Inc()
		requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// timeoutMiddleware enforces a per-request deadline.
func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// corsMiddleware allows localhost dashboard origins during development.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1") {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start() error {
	logger.Info("Starting HTTP server", "addr", s.cfg.Addr())
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// responseWrapper captures HTTP status codes for logging and metrics.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
