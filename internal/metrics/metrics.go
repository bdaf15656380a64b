package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "warehouse"

var (
	StockMovements = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_movements_total",
		Help:      "Movement log entries written, by movement type.",
	}, []string{"type"})

	StockMovementQuantity = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_movement_quantity_total",
		Help:      "Absolute quantity moved, by movement type.",
	}, []string{"type"})

	LowStockAlerts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "low_stock_alerts_total",
		Help:      "Low stock alerts raised from movement events, by stock level.",
	}, []string{"level"})

	LowStockParts = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "low_stock_parts",
		Help:      "Parts in the last low-stock report, by stock level.",
	}, []string{"level"})

	MirrorRefreshFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mirror_refresh_failures_total",
		Help:      "Failed collection refreshes, by resource.",
	}, []string{"resource"})

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		StockMovements,
		StockMovementQuantity,
		LowStockAlerts,
		LowStockParts,
		MirrorRefreshFailures,
		HTTPRequests,
		HTTPDuration,
	}
}

// Register adds every collector to reg. Collectors that are already
// registered are skipped.
func Register(reg prometheus.Registerer) error {
	for _, c := range collectors() {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
