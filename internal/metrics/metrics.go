package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SessionsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gtv_sessions_created_total",
		Help: "Total number of annotation sessions created",
	})
	LoadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gtv_loads_total",
		Help: "Total number of successful dataset loads",
	})
	LoadFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gtv_load_failures_total",
		Help: "Total number of rejected dataset loads",
	})
	DuplicatesRemovedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gtv_duplicates_removed_total",
		Help: "Total duplicate points collapsed at load time",
	})
	ValidationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gtv_validations_total",
		Help: "Total validation writes by resulting status",
	}, []string{"status"})
	ExportsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gtv_exports_total",
		Help: "Total CSV exports served",
	})
)

// Register installs all collectors on the default registry.
func Register() {
	prometheus.MustRegister(
		SessionsCreatedTotal,
		LoadsTotal,
		LoadFailuresTotal,
		DuplicatesRemovedTotal,
		ValidationsTotal,
		ExportsTotal,
	)
}

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
