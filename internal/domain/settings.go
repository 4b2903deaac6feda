package domain

// Settings carries caller preferences. They act only as defaults and
// filters; explicit arguments always take precedence.
type Settings struct {
	// PreferredQueues restricts the optimizer to a subset of queue IDs.
	// Empty means all queues in the reward table are allowed.
	PreferredQueues []string `json:"preferred_queues,omitempty"`

	// DefaultWinRate is used when the caller omits an explicit win rate.
	DefaultWinRate float64 `json:"default_win_rate,omitempty"`

	// DefaultGameMinutes is the caller's average game length. When the
	// time budget is omitted, the planner sizes a default session from
	// it: budget = DefaultGameMinutes * the planner's session game count.
	DefaultGameMinutes float64 `json:"default_game_minutes,omitempty"`
}
