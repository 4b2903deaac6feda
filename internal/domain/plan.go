package domain

import "time"

// Rewards is an expected payout expressed as a gold/gems/packs triple.
// All components are non-negative whole reward units.
type Rewards struct {
	Gold  int `json:"gold"`
	Gems  int `json:"gems"`
	Packs int `json:"packs"`
}

// Add returns the component-wise sum of two reward triples.
func (r Rewards) Add(other Rewards) Rewards {
	return Rewards{
		Gold:  r.Gold + other.Gold,
		Gems:  r.Gems + other.Gems,
		Packs: r.Packs + other.Packs,
	}
}

// GoldEquivalent converts the triple to a single gold figure using the
// fixed conversion rates.
func (r Rewards) GoldEquivalent() int {
	return r.Gold + r.Gems*GemGoldRate + r.Packs*PackGoldRate
}

// IsZero reports whether all components are zero.
func (r Rewards) IsZero() bool {
	return r.Gold == 0 && r.Gems == 0 && r.Packs == 0
}

// QuestProgress records how much one quest advances if a plan step is played.
type QuestProgress struct {
	QuestID string  `json:"quest_id"`
	Amount  float64 `json:"amount"` // always > 0
}

// PlanStep is one atomic recommendation: a block of games in a single queue.
// Completed is the only field mutated after creation, and only through
// the planner's MarkStep.
type PlanStep struct {
	StepID           string          `json:"step_id"`
	Queue            string          `json:"queue"`
	TargetGames      int             `json:"target_games"`
	EstimatedMinutes float64         `json:"estimated_minutes"`
	ExpectedRewards  Rewards         `json:"expected_rewards"`
	QuestProgress    []QuestProgress `json:"quest_progress"`
	Completed        bool            `json:"completed"`
}

// PlanSummary contains aggregate analytics about a plan.
type PlanSummary struct {
	GoldPerHour      float64 `json:"gold_per_hour"`
	QuestsCompleted  int     `json:"quests_completed"`
	QuestsUnfinished int     `json:"quests_unfinished"`
	CompletionRate   float64 `json:"completion_rate"`
}

// OptimizedPlan is an ordered, time-bounded action plan. Structural changes
// always produce a new plan; only step Completed flags are toggled in place
// (via a cloned plan returned by MarkStep).
type OptimizedPlan struct {
	PlanID                string      `json:"plan_id"`
	Steps                 []PlanStep  `json:"steps"`
	TotalEstimatedMinutes float64     `json:"total_estimated_minutes"`
	TotalExpectedRewards  Rewards     `json:"total_expected_rewards"`
	CompletedQuestIDs     []string    `json:"completed_quest_ids"`
	TimeBudget            int         `json:"time_budget"`
	WinRate               float64     `json:"win_rate"`
	Summary               PlanSummary `json:"summary"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// Clone returns a deep copy of the plan. The copy shares nothing with the
// original, so callers can mutate step flags without aliasing.
func (p *OptimizedPlan) Clone() *OptimizedPlan {
	clone := *p

	clone.Steps = make([]PlanStep, len(p.Steps))
	copy(clone.Steps, p.Steps)
	for i := range clone.Steps {
		progress := make([]QuestProgress, len(p.Steps[i].QuestProgress))
		copy(progress, p.Steps[i].QuestProgress)
		clone.Steps[i].QuestProgress = progress
	}

	clone.CompletedQuestIDs = make([]string, len(p.CompletedQuestIDs))
	copy(clone.CompletedQuestIDs, p.CompletedQuestIDs)

	return &clone
}

// CompletedMinutes sums the estimated minutes of steps marked complete.
func (p *OptimizedPlan) CompletedMinutes() float64 {
	var total float64
	for _, step := range p.Steps {
		if step.Completed {
			total += step.EstimatedMinutes
		}
	}
	return total
}

// StepByID returns the index of the step with the given ID, or -1.
func (p *OptimizedPlan) StepByID(stepID string) int {
	for i := range p.Steps {
		if p.Steps[i].StepID == stepID {
			return i
		}
	}
	return -1
}
