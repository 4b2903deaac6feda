package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Optimizer errors
	ErrMsgNoActiveQuests   = "no active quests"
	ErrMsgInsufficientTime = "insufficient time"

	// Plan mutation errors
	ErrMsgStepNotFound = "step not found"
	ErrMsgNilPlan      = "plan is required"

	// Reward table errors
	ErrMsgInvalidRewardTable = "invalid reward table"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidInput covers out-of-range budgets and win rates as well as
	// malformed quest records. No partial computation is attempted.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrNoActiveQuests is returned when every supplied quest already has
	// zero remaining progress.
	ErrNoActiveQuests = errors.New(ErrMsgNoActiveQuests)

	// ErrInsufficientTime is returned when no active quest is completable
	// inside the given budget under any allowed queue.
	ErrInsufficientTime = errors.New(ErrMsgInsufficientTime)

	// Plan mutation errors
	ErrStepNotFound = errors.New(ErrMsgStepNotFound)
	ErrNilPlan      = errors.New(ErrMsgNilPlan)

	// Reward table errors
	ErrInvalidRewardTable = errors.New(ErrMsgInvalidRewardTable)
)
