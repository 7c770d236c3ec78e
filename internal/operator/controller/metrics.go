package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	// Reconciliation metrics
	reconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oai_du",
			Subsystem: "controller",
			Name:      "reconcile_total",
			Help:      "Total number of reconciliations by result",
		},
		[]string{"du", "result"},
	)

	reconcileDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "oai_du",
			Subsystem: "controller",
			Name:      "reconcile_duration_seconds",
			Help:      "Duration of reconciliation in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
		},
		[]string{"du"},
	)

	// Configuration metrics
	configRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "oai_du",
			Subsystem: "config",
			Name:      "renders_total",
			Help:      "Total number of workload configuration content changes",
		},
		[]string{"du"},
	)

	// Workload metrics
	workloadAvailable = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "oai_du",
			Subsystem: "workload",
			Name:      "available",
			Help:      "Whether the DU workload deployment is available (1) or not (0)",
		},
		[]string{"du"},
	)
)

func init() {
	// Register metrics with controller-runtime's registry
	metrics.Registry.MustRegister(
		reconcileTotal,
		reconcileDuration,
		configRendersTotal,
		workloadAvailable,
	)
}

// recordReconcileMetric records a reconciliation result.
func recordReconcileMetric(du string, result string, duration float64) {
	reconcileTotal.WithLabelValues(du, result).Inc()
	reconcileDuration.WithLabelValues(du).Observe(duration)
}

// recordConfigRenderMetric records a configuration content change.
func recordConfigRenderMetric(du string) {
	configRendersTotal.WithLabelValues(du).Inc()
}

// recordWorkloadAvailableMetric records workload availability.
func recordWorkloadAvailableMetric(du string, available bool) {
	v := 0.0
	if available {
		v = 1.0
	}
	workloadAvailable.WithLabelValues(du).Set(v)
}

// Metrics helper methods that check enableMetrics before recording.

func (r *DUReconciler) recordReconcile(du, result string, duration float64) {
	if r.enableMetrics {
		recordReconcileMetric(du, result, duration)
	}
}

func (r *DUReconciler) recordConfigRender(du string) {
	if r.enableMetrics {
		recordConfigRenderMetric(du)
	}
}

func (r *DUReconciler) recordWorkloadAvailable(du string, available bool) {
	if r.enableMetrics {
		recordWorkloadAvailableMetric(du, available)
	}
}
