package rewards

import (
	"fmt"

	"github.com/arenatools/questplanner/internal/domain"
)

// QueueRewardProfile describes one queue's static reward structure.
// Reward arrays are indexed by cumulative win count: GoldRewards[3] is the
// total gold paid when the run stops after exactly 3 wins. The gold array
// is required; gem and pack arrays are optional.
type QueueRewardProfile struct {
	QueueID            string                       `json:"queue_id"`
	DisplayName        string                       `json:"display_name,omitempty"`
	EntryCost          int                          `json:"entry_cost"` // gold
	GoldRewards        []int                        `json:"gold_rewards"`
	GemRewards         []int                        `json:"gem_rewards,omitempty"`
	PackRewards        []int                        `json:"pack_rewards,omitempty"`
	AverageGameMinutes float64                      `json:"average_game_minutes"`
	ProgressMultiplier map[domain.QuestType]float64 `json:"progress_multiplier,omitempty"`
}

// Multiplier returns the quest-progress multiplier for a quest type.
// Queues that do not configure a type default to 1.0.
func (p QueueRewardProfile) Multiplier(t domain.QuestType) float64 {
	if p.ProgressMultiplier == nil {
		return 1.0
	}
	m, ok := p.ProgressMultiplier[t]
	if !ok {
		return 1.0
	}
	return m
}

// Validate checks the profile invariants.
func (p QueueRewardProfile) Validate() error {
	if p.QueueID == "" {
		return fmt.Errorf("%w: queue id is required", domain.ErrInvalidRewardTable)
	}
	if p.EntryCost < 0 {
		return fmt.Errorf("%w: queue %s has negative entry cost", domain.ErrInvalidRewardTable, p.QueueID)
	}
	if len(p.GoldRewards) == 0 {
		return fmt.Errorf("%w: queue %s has no gold reward array", domain.ErrInvalidRewardTable, p.QueueID)
	}
	if p.AverageGameMinutes <= 0 {
		return fmt.Errorf("%w: queue %s has non-positive game duration", domain.ErrInvalidRewardTable, p.QueueID)
	}
	for _, arr := range [][]int{p.GoldRewards, p.GemRewards, p.PackRewards} {
		for _, v := range arr {
			if v < 0 {
				return fmt.Errorf("%w: queue %s has a negative reward entry", domain.ErrInvalidRewardTable, p.QueueID)
			}
		}
	}
	for t, m := range p.ProgressMultiplier {
		if !t.IsValid() {
			return fmt.Errorf("%w: queue %s has multiplier for unknown quest type %q", domain.ErrInvalidRewardTable, p.QueueID, t)
		}
		if m < 0 {
			return fmt.Errorf("%w: queue %s has negative multiplier for %s", domain.ErrInvalidRewardTable, p.QueueID, t)
		}
	}
	return nil
}
