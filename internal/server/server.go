package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/SentimentService_Go/internal/handler"
	"github.com/osse101/SentimentService_Go/internal/metrics"
	"github.com/osse101/SentimentService_Go/internal/sentiment"
	"github.com/osse101/SentimentService_Go/internal/worker"
)

type Server struct {
	httpServer *http.Server
	startMsg   string
}

// NewServer creates the public server: /health, /api/sentiment and /metrics, GET only
func NewServer(port int, pool *worker.Pool, classifier sentiment.Classifier, m *metrics.Metrics) *Server {
	return &Server{
		httpServer: newHTTPServer(port, NewRouter(pool, classifier, m)),
		startMsg:   LogMsgServerStarting,
	}
}

// NewRouter builds the public route table and middleware stack
func NewRouter(pool *worker.Pool, classifier sentiment.Classifier, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(normalizeMethod)
	r.Use(chimiddleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(m.Middleware)
	r.Use(PoolMiddleware(pool))

	notFound := handler.HandleNotFound()
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed(notFound, handler.HandleMethodNotAllowed()))

	getPrefix(r, PathHealth, handler.HandleHealth())
	getPrefix(r, PathSentiment, handler.HandleSentiment(classifier, m))

	// Static exposition, independent of the internal registry
	getPrefix(r, PathMetrics, handler.HandleMetrics(metrics.NewExpositionRegistry()))

	return r
}

// getPrefix serves GET requests for path and for every path that starts with it,
// so /healthz and /api/sentiment/ reach the same handler as the bare path
func getPrefix(r chi.Router, path string, h http.HandlerFunc) {
	r.Get(path, h)
	r.Get(path+"*", h)
}

// methodNotAllowed answers 405 only under a served prefix. chi also calls it for
// methods it does not know, which must stay 404 on unknown paths.
func methodNotAllowed(notFound, notAllowed http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !isServedPath(r.URL.Path) {
			notFound.ServeHTTP(w, r)
			return
		}
		notAllowed.ServeHTTP(w, r)
	}
}

// NewAdminServer creates the internal listener exposing the real Prometheus registry,
// readiness and build information
func NewAdminServer(port int, version string, m *metrics.Metrics, checkers ...handler.HealthChecker) *Server {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Handle(PathMetrics, promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{
		Registry:          m.Registry(),
		EnableOpenMetrics: true,
	}))
	r.Get(PathReadyz, handler.HandleReadyz(checkers...))
	r.Get(PathVersion, handler.HandleVersion(version))

	return &Server{
		httpServer: newHTTPServer(port, r),
		startMsg:   LogMsgAdminServerStarting,
	}
}

func newHTTPServer(port int, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h,
		ReadHeaderTimeout: ReadHeaderTimeout,
		IdleTimeout:       IdleTimeout,
	}
}

// Handler returns the root handler, for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(s.startMsg, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
