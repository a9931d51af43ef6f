// Package metrics defines the custom Prometheus metrics for Taco Cloud. It is
// the single source of truth for metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tacocloud"

// TacosDesignedTotal counts tacos saved from the design form.
var TacosDesignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tacos_designed_total",
		Help:      "Total number of tacos composed and persisted.",
	},
)

// OrdersPlacedTotal counts checkout attempts.
// Label:
//   - outcome: "ok" or "error"
var OrdersPlacedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_placed_total",
		Help:      "Total number of checkout attempts, by outcome.",
	},
	[]string{"outcome"},
)

// OrderSaveDuration measures the order store's two-table write path.
var OrderSaveDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_save_duration_seconds",
		Help:      "Duration of persisting an order header and its line items.",
		Buckets:   prometheus.DefBuckets,
	},
)

// LoginAttemptsTotal counts form-login attempts.
// Label:
//   - outcome: "ok" or "rejected"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)
