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

// Population metric names
const (
	MetricNameSpawnsTotal        = "spawns_total"
	MetricNameSpawnsRefused      = "spawns_refused_total"
	MetricNameDespawnsTotal      = "despawns_total"
	MetricNameLivingEntities     = "living_entities"
	MetricNameLootDropsTotal     = "loot_drops_total"
	MetricNameContainersOpened   = "containers_opened_total"
	MetricNameLootTableCacheMiss = "loot_table_cache_misses_total"
)

// Item metric names
const (
	MetricNameMergesTotal    = "stack_merges_total"
	MetricNameRoundsFired    = "rounds_fired_total"
	MetricNameRoundsReloaded = "rounds_reloaded_total"
	MetricNameItemsConsumed  = "items_consumed_total"
	MetricNameEquipsTotal    = "equips_total"
	MetricNameActionErrors   = "action_errors_total"
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

// Population metric help text
const (
	HelpTextSpawnsTotal        = "Total number of entities spawned"
	HelpTextSpawnsRefused      = "Total number of spawn attempts refused"
	HelpTextDespawnsTotal      = "Total number of entities removed from a region"
	HelpTextLivingEntities     = "Current number of living spawned entities"
	HelpTextLootDropsTotal     = "Total number of items dropped by containers"
	HelpTextContainersOpened   = "Total number of loot containers opened"
	HelpTextLootTableCacheMiss = "Total number of loot tables compiled on a cache miss"
)

// Item metric help text
const (
	HelpTextMergesTotal    = "Total number of stack merges that moved units"
	HelpTextRoundsFired    = "Total number of rounds fired"
	HelpTextRoundsReloaded = "Total number of rounds moved into magazines"
	HelpTextItemsConsumed  = "Total number of disposable items consumed"
	HelpTextEquipsTotal    = "Total number of equip and unequip operations"
	HelpTextActionErrors   = "Total number of rejected actor actions"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelRegion    = "region"
	LabelTemplate  = "template"
	LabelReason    = "reason"
	LabelContainer = "container"
	LabelKind      = "kind"
	LabelSlot      = "slot"
	LabelOperation = "operation"
	LabelAction    = "action"
)

// Label values
const (
	OperationEquip   = "equip"
	OperationUnequip = "unequip"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines latency buckets for HTTP requests (in seconds)
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
