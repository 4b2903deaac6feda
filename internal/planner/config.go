package planner

import "time"

// Config carries the optimizer's policy knobs. The defaults mirror the
// product's tuned values; all of them are plain data so experiments can
// override any subset.
type Config struct {
	// Accepted input ranges for plan requests.
	MinTimeBudget int     // minutes
	MaxTimeBudget int     // minutes
	MinWinRate    float64
	MaxWinRate    float64

	// Step shaping.
	MaxPlanSteps    int
	MaxGamesPerStep int

	// DefaultSessionGames sizes the assumed session when the caller
	// supplies a per-game duration instead of an explicit time budget.
	DefaultSessionGames int

	// Urgency boosts for quests nearing expiry.
	UrgentExpiryDays int
	SoonExpiryDays   int
	UrgentMultiplier float64
	SoonMultiplier   float64

	// UnusedTimeWarning triggers an advisory when a plan leaves more than
	// this many minutes of the budget on the table.
	UnusedTimeWarning float64

	// Per-queue EV memoization across optimizer runs.
	EVCacheSize int
	EVCacheTTL  time.Duration
}

// DefaultConfig returns the standard policy.
func DefaultConfig() Config {
	return Config{
		MinTimeBudget:       15,
		MaxTimeBudget:       180,
		MinWinRate:          0.3,
		MaxWinRate:          0.8,
		MaxPlanSteps:        10,
		MaxGamesPerStep:     3,
		DefaultSessionGames: 10,
		UrgentExpiryDays:    1,
		SoonExpiryDays:      2,
		UrgentMultiplier:    2.0,
		SoonMultiplier:      1.5,
		UnusedTimeWarning:   15,
		EVCacheSize:         256,
		EVCacheTTL:          5 * time.Minute,
	}
}

// urgencyMultiplier maps the soonest contributing expiry to a priority boost.
func (c Config) urgencyMultiplier(expiresInDays int) float64 {
	switch {
	case expiresInDays <= c.UrgentExpiryDays:
		return c.UrgentMultiplier
	case expiresInDays <= c.SoonExpiryDays:
		return c.SoonMultiplier
	default:
		return 1.0
	}
}
