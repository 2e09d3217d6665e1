// Package http assembles the API surface: global middleware, feature
// handlers, and the operational endpoints.
package http

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campusconnect/internal/platform/metrics"
	"campusconnect/internal/platform/middleware"
	"campusconnect/internal/platform/redis"
	"campusconnect/internal/transport/http/shared"
)

const requestTimeout = 30 * time.Second

// Registrar is anything that can attach its routes to the router. Every
// feature handler implements it.
type Registrar interface {
	Register(r chi.Router)
}

// Deps carries everything the router wires together. Redis and DB are nil
// when not configured; healthz then skips them.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Redis    *redis.Client
	DB       *sql.DB
	Handlers []Registrar
}

// NewRouter builds the chi router with the global middleware chain and all
// registered handlers.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.ContentTypeJSON)
	if deps.Metrics != nil {
		r.Use(middleware.LatencyMiddleware(deps.Metrics))
	}

	for _, h := range deps.Handlers {
		h.Register(r)
	}

	r.Get("/healthz", healthz(deps))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func healthz(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		healthy := true

		if deps.Redis != nil {
			if err := deps.Redis.Health(r.Context()); err != nil {
				status["redis"] = err.Error()
				healthy = false
			} else {
				status["redis"] = "ok"
			}
		}
		if deps.DB != nil {
			if err := deps.DB.PingContext(r.Context()); err != nil {
				status["postgres"] = err.Error()
				healthy = false
			} else {
				status["postgres"] = "ok"
			}
		}

		code := http.StatusOK
		if !healthy {
			status["status"] = "degraded"
			code = http.StatusServiceUnavailable
		}
		shared.WriteJSON(w, code, status)
	}
}
