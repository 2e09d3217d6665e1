package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersRegistered    prometheus.Counter
	Logins             prometheus.Counter
	LoginFailures      prometheus.Counter
	PostsCreated       prometheus.Counter
	MessagesSent       prometheus.Counter
	EventRegistrations prometheus.Counter
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campusconnect_users_registered_total",
			Help: "Total number of accounts created through registration",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campusconnect_logins_total",
			Help: "Total number of successful logins",
		}),
		LoginFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campusconnect_login_failures_total",
			Help: "Total number of rejected login attempts",
		}),
		PostsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campusconnect_posts_created_total",
			Help: "Total number of feed posts created",
		}),
		MessagesSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campusconnect_messages_sent_total",
			Help: "Total number of chat messages sent",
		}),
		EventRegistrations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "campusconnect_event_registrations_total",
			Help: "Total number of event registrations",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "campusconnect_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}
