package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/SentimentService_Go/internal/domain"
	"github.com/osse101/SentimentService_Go/internal/handler"
	"github.com/osse101/SentimentService_Go/internal/logger"
	"github.com/osse101/SentimentService_Go/internal/worker"
)

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME sniffing
			w.Header().Set(HeaderContentTypeOptions, HeaderValueNoSniff)
			// Responses are never meant to be framed
			w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerNoReferrer)

			next.ServeHTTP(w, r)
		})
	}
}

// PoolMiddleware executes the rest of the chain on the worker pool and waits for it.
// A panic on the worker is re-raised on the request goroutine so the recoverer sees it.
func PoolMiddleware(pool *worker.Pool) func(http.Handler) http.Handler {
	unavailable := handler.HandleServiceUnavailable()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := make(chan struct{})
			var panicked any

			job := worker.JobFunc(func(ctx context.Context) error {
				defer close(done)
				defer func() {
					panicked = recover()
				}()
				next.ServeHTTP(w, r)
				return nil
			})

			if err := pool.Submit(r.Context(), job); err != nil {
				log := logger.FromContext(r.Context())
				if errors.Is(err, domain.ErrPoolStopped) {
					log.Warn(LogMsgPoolRejected, "error", err)
					unavailable.ServeHTTP(w, r)
					return
				}
				log.Debug(LogMsgClientGone, "error", err)
				return
			}

			<-done
			if panicked != nil {
				panic(panicked)
			}
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// normalizeMethod upper-cases the request method so "get" routes like "GET"
func normalizeMethod(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if upper := strings.ToUpper(r.Method); upper != r.Method {
			r = r.WithContext(r.Context())
			r.Method = upper
		}
		next.ServeHTTP(w, r)
	})
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func isServedPath(path string) bool {
	return hasAnyPrefix(path, ServedPaths)
}

func isQuietPath(path string) bool {
	return hasAnyPrefix(path, QuietPaths)
}

func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		sanitized[k] = v
		for _, s := range SensitiveHeaders {
			if strings.EqualFold(k, s) {
				sanitized[k] = []string{RedactedValue}
				break
			}
		}
	}
	return sanitized
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Generate unique request ID
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}
