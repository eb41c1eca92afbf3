// Package metrics expone instrumentación Prometheus para ventas-api.
//
// Registra contadores de negocio (ventas confirmadas/rechazadas) y los
// collectors estándar del runtime. Montar el handler en GET /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// VentasCommitted cuenta las ventas confirmadas (stock descontado y venta registrada).
	VentasCommitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ventas",
		Name:      "committed_total",
		Help:      "Total de ventas confirmadas.",
	})

	// VentasRejected cuenta las ventas rechazadas, por motivo:
	// "validation" | "not_found" | "insufficient_stock".
	VentasRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ventas",
		Name:      "rejected_total",
		Help:      "Total de ventas rechazadas por motivo.",
	}, []string{"reason"})

	// ProductosCreated cuenta los productos registrados en el catálogo.
	ProductosCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ventas",
		Name:      "productos_created_total",
		Help:      "Total de productos registrados.",
	})
)

// Registry registro propio (no el global) para controlar qué se expone.
var Registry = prometheus.NewRegistry()

func init() {
	// Métricas del runtime Go y del proceso
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	Registry.MustRegister(VentasCommitted, VentasRejected, ProductosCreated)
}

// Handler devuelve el handler HTTP de la página de métricas.
// En Fiber se monta con adaptor.HTTPHandler.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
