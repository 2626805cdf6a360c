package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePlantsPlaced       = "garden_plants_placed_total"
	MetricNamePlantsRemoved      = "garden_plants_removed_total"
	MetricNamePlantsMatured      = "garden_plants_matured_total"
	MetricNameShopPurchases      = "garden_shop_purchases_total"
	MetricNameCoinsSpent         = "garden_coins_spent_total"
	MetricNameLevelUps           = "garden_level_ups_total"
	MetricNameWalletsConnected   = "garden_wallets_connected_total"
	MetricNameGardensCreated     = "garden_gardens_created_total"
	MetricNameGrowthTickDuration = "garden_growth_tick_duration_seconds"
	MetricNameGardensTracked     = "garden_gardens_tracked"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPlantsPlaced       = "Total number of plants placed"
	HelpTextPlantsRemoved      = "Total number of plants removed"
	HelpTextPlantsMatured      = "Total number of plants that reached full growth"
	HelpTextShopPurchases      = "Total number of shop purchases"
	HelpTextCoinsSpent         = "Total coins spent in the shop"
	HelpTextLevelUps           = "Total number of garden level-ups"
	HelpTextWalletsConnected   = "Total number of wallet connections"
	HelpTextGardensCreated     = "Total number of gardens registered"
	HelpTextGrowthTickDuration = "Duration of one growth pass over all gardens"
	HelpTextGardensTracked     = "Number of gardens seen by the last growth pass"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelPlant  = "plant"
	LabelRarity = "rarity"
	LabelItem   = "item"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets covers growth passes from 100µs to 5s
var TickLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
