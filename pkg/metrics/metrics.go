// Package metrics registra las métricas Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal total de peticiones HTTP por método, ruta y status.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration duración de peticiones HTTP en segundos.
	HTTPRequestDuration *prometheus.HistogramVec

	// MovementsTotal movimientos de inventario registrados, por razón.
	MovementsTotal *prometheus.CounterVec

	// SalesTotal ventas registradas.
	SalesTotal prometheus.Counter

	// ExpensesTotal gastos registrados, por categoría.
	ExpensesTotal *prometheus.CounterVec
)

// Init registra las métricas con el prefijo dado. Llamar una sola vez al
// arrancar, antes de servir tráfico.
func Init(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	MovementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_inventory_movements_total",
			Help: "Movimientos de inventario registrados",
		},
		[]string{"reason"},
	)
	SalesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_sales_total",
			Help: "Ventas registradas",
		},
	)
	ExpensesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_expenses_total",
			Help: "Gastos registrados",
		},
		[]string{"category"},
	)
}
