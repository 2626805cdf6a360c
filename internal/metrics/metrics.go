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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PlantsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsPlaced,
			Help: HelpTextPlantsPlaced,
		},
		[]string{LabelPlant},
	)

	PlantsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsRemoved,
			Help: HelpTextPlantsRemoved,
		},
		[]string{LabelPlant},
	)

	PlantsMatured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlantsMatured,
			Help: HelpTextPlantsMatured,
		},
		[]string{LabelPlant, LabelRarity},
	)

	ShopPurchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShopPurchases,
			Help: HelpTextShopPurchases,
		},
		[]string{LabelItem},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	WalletsConnected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWalletsConnected,
			Help: HelpTextWalletsConnected,
		},
	)

	GardensCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGardensCreated,
			Help: HelpTextGardensCreated,
		},
	)
)

// Growth Metrics
var (
	GrowthTickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameGrowthTickDuration,
			Help:    HelpTextGrowthTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	GardensTracked = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameGardensTracked,
			Help: HelpTextGardensTracked,
		},
	)
)
