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

// Planner metric names
const (
	MetricNamePlansComputed = "plans_computed_total"
	MetricNamePlanFailures  = "plan_failures_total"
	MetricNamePlanDuration  = "plan_duration_seconds"
	MetricNamePlanSteps     = "plan_steps"
	MetricNameTableReloads  = "reward_table_reloads_total"
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

// Planner metric help text
const (
	HelpTextPlansComputed = "Total number of plans successfully computed"
	HelpTextPlanFailures  = "Total number of failed optimization requests"
	HelpTextPlanDuration  = "Plan optimization latency in seconds"
	HelpTextPlanSteps     = "Number of steps per computed plan"
	HelpTextTableReloads  = "Total number of reward table reloads"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelReason = "reason"
)

// Failure reason label values
const (
	ReasonValidation       = "validation"
	ReasonNoActiveQuests   = "no_active_quests"
	ReasonInsufficientTime = "insufficient_time"
)

// HTTPLatencyBuckets covers the expected sub-100ms optimization path plus
// headroom for cold starts.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// PlanStepBuckets spans the 1..10 step cap.
var PlanStepBuckets = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
