package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Planner Metrics
var (
	PlansComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlansComputed,
			Help: HelpTextPlansComputed,
		},
	)

	PlanFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlanFailures,
			Help: HelpTextPlanFailures,
		},
		[]string{LabelReason},
	)

	PlanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePlanDuration,
			Help:    HelpTextPlanDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	PlanSteps = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePlanSteps,
			Help:    HelpTextPlanSteps,
			Buckets: PlanStepBuckets,
		},
	)

	TableReloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTableReloads,
			Help: HelpTextTableReloads,
		},
	)
)
