// Package metrics expone los colectores Prometheus del servicio de ranking.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricRankingsTotal       = "psymatch_rankings_total"
	MetricRankingDuration     = "psymatch_ranking_duration_seconds"
	MetricRankingPoolSize     = "psymatch_ranking_pool_size"
	MetricRankingCacheTotal   = "psymatch_ranking_cache_total"
	MetricHTTPRequestsTotal   = "psymatch_http_requests_total"
	MetricHTTPRequestDuration = "psymatch_http_request_duration_seconds"
)

// Origen del perfil de preferencias.
const (
	SourceClient  = "client"
	SourceProfile = "profile"
)

const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics agrupa los colectores. Un *Metrics nil es valido y no registra nada,
// asi los tests y el CLI no necesitan un registry.
type Metrics struct {
	rankingsTotal   *prometheus.CounterVec
	rankingDuration *prometheus.HistogramVec
	poolSize        prometheus.Histogram
	cacheTotal      *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewMetrics crea los colectores sin registrarlos.
func NewMetrics() *Metrics {
	return &Metrics{
		rankingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRankingsTotal,
				Help: "Total number of ranking requests by profile source and outcome",
			},
			[]string{"source", "outcome"},
		),
		rankingDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricRankingDuration,
				Help:    "Ranking duration in seconds, including repository and cache access",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"source"},
		),
		poolSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricRankingPoolSize,
				Help:    "Number of active specialists scored per ranking",
				Buckets: prometheus.ExponentialBuckets(1, 4, 7),
			},
		),
		cacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRankingCacheTotal,
				Help: "Ranking cache lookups by result (hit, miss, error)",
			},
			[]string{"result"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricHTTPRequestsTotal,
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricHTTPRequestDuration,
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0},
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Register registra todos los colectores en reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Collectors devuelve los colectores, util en tests.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.rankingsTotal,
		m.rankingDuration,
		m.poolSize,
		m.cacheTotal,
		m.httpRequests,
		m.httpDuration,
	}
}

// ObserveRanking registra una ejecucion de ranking. pool < 0 omite el tamaño.
func (m *Metrics) ObserveRanking(source, outcome string, d time.Duration, pool int) {
	if m == nil {
		return
	}
	m.rankingsTotal.WithLabelValues(source, outcome).Inc()
	m.rankingDuration.WithLabelValues(source).Observe(d.Seconds())
	if pool >= 0 {
		m.poolSize.Observe(float64(pool))
	}
}

func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.cacheTotal.WithLabelValues(result).Inc()
}

// ObserveHTTP registra una peticion HTTP. path debe ser la ruta del router
// (con parametros) para no disparar la cardinalidad.
func (m *Metrics) ObserveHTTP(method, path, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
}
