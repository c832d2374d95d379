package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	RegistrationsTotal prometheus.Counter
	UploadsTotal       *prometheus.CounterVec
	ReviewsTotal       *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the given registerer.
// Passing prometheus.DefaultRegisterer wires the standard /metrics output.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "kyc_vendor_registrations_total",
			Help: "Total number of vendor registrations accepted",
		}),
		UploadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kyc_document_uploads_total",
			Help: "Total number of document uploads by slot type",
		}, []string{"doc_type"}),
		ReviewsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kyc_reviews_total",
			Help: "Total number of review decisions by resulting status",
		}, []string{"status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kyc_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}
