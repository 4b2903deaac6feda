package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidWinRate    = "Invalid win_rate parameter"

	// Plan operation error messages
	ErrMsgOptimizeFailed    = "Failed to optimize plan"
	ErrMsgMarkStepFailed    = "Failed to update plan step"
	ErrMsgRecalculateFailed = "Failed to recalculate plan"

	// Queue operation error messages
	ErrMsgListQueuesFailed = "Failed to list queues"
	ErrMsgQueueEVFailed    = "Failed to compute queue expected value"
	ErrMsgQueueNotFound    = "Queue '%s' not found"

	// Quest operation error messages
	ErrMsgValidateQuestsFailed = "Failed to validate quests"

	// Admin error messages
	ErrMsgReloadTablesFailed = "Failed to reload reward tables"
)

// Success messages for API responses
const (
	MsgTablesReloadedSuccess = "Reward tables reloaded successfully"
)
