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

// Population Metrics
var (
	SpawnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpawnsTotal,
			Help: HelpTextSpawnsTotal,
		},
		[]string{LabelRegion, LabelTemplate},
	)

	SpawnsRefused = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpawnsRefused,
			Help: HelpTextSpawnsRefused,
		},
		[]string{LabelRegion, LabelReason},
	)

	DespawnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDespawnsTotal,
			Help: HelpTextDespawnsTotal,
		},
		[]string{LabelRegion},
	)

	LivingEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLivingEntities,
			Help: HelpTextLivingEntities,
		},
		[]string{LabelRegion},
	)

	LootDropsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootDropsTotal,
			Help: HelpTextLootDropsTotal,
		},
		[]string{LabelContainer, LabelTemplate},
	)

	ContainersOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameContainersOpened,
			Help: HelpTextContainersOpened,
		},
		[]string{LabelContainer},
	)

	LootTableCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLootTableCacheMiss,
			Help: HelpTextLootTableCacheMiss,
		},
	)
)

// Item Metrics
var (
	MergesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMergesTotal,
			Help: HelpTextMergesTotal,
		},
		[]string{LabelKind},
	)

	RoundsFired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsFired,
			Help: HelpTextRoundsFired,
		},
		[]string{LabelKind},
	)

	RoundsReloaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoundsReloaded,
			Help: HelpTextRoundsReloaded,
		},
		[]string{LabelKind},
	)

	ItemsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsConsumed,
			Help: HelpTextItemsConsumed,
		},
		[]string{LabelKind},
	)

	EquipsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEquipsTotal,
			Help: HelpTextEquipsTotal,
		},
		[]string{LabelSlot, LabelOperation},
	)

	ActionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionErrors,
			Help: HelpTextActionErrors,
		},
		[]string{LabelAction},
	)
)
