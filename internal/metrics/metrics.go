package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics reúne os indicadores Prometheus do painel
type Metrics struct {
	registry *prometheus.Registry

	DatasetLoads      *prometheus.CounterVec
	LoadDuration      *prometheus.HistogramVec
	DatasetRows       *prometheus.GaugeVec
	CacheRequests     *prometheus.CounterVec
	DashboardRequests *prometheus.CounterVec
	HTTPRequests      *prometheus.HistogramVec
}

// NewMetrics cria um registro próprio com os coletores de runtime e os indicadores do painel
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		DatasetLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dataset_loads_total",
				Help:      "Total de cargas de fontes de dados por status",
			},
			[]string{"status"},
		),
		LoadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dataset_load_duration_seconds",
				Help:      "Duração das cargas de fontes de dados",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"format"},
		),
		DatasetRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "dataset_rows",
				Help:      "Linhas da última carga bem-sucedida por fonte",
			},
			[]string{"source"},
		),
		CacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dataset_cache_requests_total",
				Help:      "Consultas ao cache de datasets por resultado",
			},
			[]string{"result"},
		),
		DashboardRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dashboard_requests_total",
				Help:      "Consultas ao painel por visão",
			},
			[]string{"view"},
		),
		HTTPRequests: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duração das requisições HTTP por método e status",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "status"},
		),
	}
}

// ObserveLoad registra o resultado de uma carga. Aceita receptor nil.
func (m *Metrics) ObserveLoad(source, status, format string, duration time.Duration, rows int) {
	if m == nil {
		return
	}

	m.DatasetLoads.WithLabelValues(status).Inc()
	if format != "" {
		m.LoadDuration.WithLabelValues(format).Observe(duration.Seconds())
		m.DatasetRows.WithLabelValues(source).Set(float64(rows))
	}
}

func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}

	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheRequests.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveDashboard(view string) {
	if m == nil {
		return
	}
	m.DashboardRequests.WithLabelValues(view).Inc()
}

func (m *Metrics) ObserveRequest(method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler expõe o registro no formato de scrape do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
