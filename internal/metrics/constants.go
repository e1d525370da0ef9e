package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric name.
const Namespace = "raidbot"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// GearScore metric names
const (
	MetricNameGearScoreCalculations = "gearscore_calculations_total"
	MetricNameCatalogMisses         = "gearscore_catalog_misses_total"
	MetricNameCatalogItems          = "gearscore_catalog_items"
)

// Armory metric names
const (
	MetricNameArmoryRequestsTotal   = "armory_requests_total"
	MetricNameArmoryRequestDuration = "armory_request_duration_seconds"
	MetricNameRosterCacheLookups    = "armory_roster_cache_lookups_total"
)

// Bot metric names
const (
	MetricNameCommandsTotal  = "discord_commands_total"
	MetricNameRoleChanges    = "discord_role_changes_total"
	MetricNameRemindersSent  = "raid_reminders_sent_total"
	MetricNameBackgroundRuns = "background_job_runs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextGearScoreCalculations = "Total number of GearScore calculations by caller"
	HelpTextCatalogMisses         = "Equipped items skipped because they could not be resolved"
	HelpTextCatalogItems          = "Number of items in the loaded catalog"

	HelpTextArmoryRequestsTotal   = "Armory API requests by endpoint and outcome"
	HelpTextArmoryRequestDuration = "Armory API latency in seconds"
	HelpTextRosterCacheLookups    = "Guild roster cache lookups by result"

	HelpTextCommandsTotal  = "Discord interactions handled by command"
	HelpTextRoleChanges    = "Member role grants and removals performed by role sync"
	HelpTextRemindersSent  = "Raid reminders posted"
	HelpTextBackgroundRuns = "Background job runs by job and outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelSource   = "source"
	LabelReason   = "reason"
	LabelEndpoint = "endpoint"
	LabelResult   = "result"
	LabelCommand  = "command"
	LabelAction   = "action"
	LabelJob      = "job"
)

// unmatchedRoute labels requests no route handled, keeping 404 scans out of
// the path label.
const unmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ArmoryLatencyBuckets covers the retry/backoff range of the armory client
var ArmoryLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30}
