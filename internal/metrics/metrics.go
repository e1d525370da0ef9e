// Package metrics registers the Prometheus collectors served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// GearScore Metrics
var (
	GearScoreCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameGearScoreCalculations,
			Help:      HelpTextGearScoreCalculations,
		},
		[]string{LabelSource},
	)

	CatalogMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCatalogMisses,
			Help:      HelpTextCatalogMisses,
		},
		[]string{LabelReason},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameCatalogItems,
			Help:      HelpTextCatalogItems,
		},
	)
)

// Armory Metrics
var (
	ArmoryRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameArmoryRequestsTotal,
			Help:      HelpTextArmoryRequestsTotal,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	ArmoryRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameArmoryRequestDuration,
			Help:      HelpTextArmoryRequestDuration,
			Buckets:   ArmoryLatencyBuckets,
		},
		[]string{LabelEndpoint},
	)

	RosterCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRosterCacheLookups,
			Help:      HelpTextRosterCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Bot Metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCommandsTotal,
			Help:      HelpTextCommandsTotal,
		},
		[]string{LabelCommand},
	)

	RoleChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRoleChanges,
			Help:      HelpTextRoleChanges,
		},
		[]string{LabelAction},
	)

	RemindersSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRemindersSent,
			Help:      HelpTextRemindersSent,
		},
	)

	BackgroundRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameBackgroundRuns,
			Help:      HelpTextBackgroundRuns,
		},
		[]string{LabelJob, LabelResult},
	)
)
