package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/R-Gerard/Roguelike-sub001/internal/handler"
	"github.com/R-Gerard/Roguelike-sub001/internal/logger"
	"github.com/R-Gerard/Roguelike-sub001/internal/metrics"
)

// Server is the read-only debug surface of a simulation.
type Server struct {
	httpServer *http.Server
}

// Deps are the components the debug routes read from.
type Deps struct {
	Templates handler.TemplateReader
	Regions   handler.RegionReader
	Checkers  []handler.HealthChecker

	// Version and Seed identify the run on /version.
	Version string
	Seed    uint64
}

// NewServer creates a new Server listening on addr
func NewServer(addr string, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Chi middleware executes in the order
// defined, outermost first.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(ReadOnlyMiddleware)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Checkers...))
	r.Get("/version", handler.HandleVersion(deps.Version, deps.Seed))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/templates", func(r chi.Router) {
			r.Get("/", handler.HandleListTemplates(deps.Templates))
			r.Get("/{"+handler.ParamTemplateID+"}", handler.HandleGetTemplate(deps.Templates))
		})
		r.Route("/regions", func(r chi.Router) {
			r.Get("/", handler.HandleListRegions(deps.Regions))
			r.Get("/{"+handler.ParamRegion+"}", handler.HandleGetRegion(deps.Regions))
		})
	})

	return r
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
		statusCode:     http.StatusOK,
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithSessionID(r.Context(), logger.GenerateSessionID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitized := make(http.Header)
		for k, v := range r.Header {
			if isRedacted(k) {
				sanitized[k] = []string{RedactedValue}
			} else {
				sanitized[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitized)

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

// Start serves until Stop is called. A graceful stop is not an error.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Default().Info(LogMsgServerStopped, "addr", s.httpServer.Addr)
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func isRedacted(header string) bool {
	return slices.ContainsFunc(RedactedHeaders, func(h string) bool { return strings.EqualFold(h, header) })
}
