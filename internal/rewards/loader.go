package rewards

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arenatools/questplanner/internal/domain"
)

// tableDocument is the on-disk shape of the versioned reward table.
type tableDocument struct {
	Version      string                   `json:"version"`
	DefaultQueue string                   `json:"default_queue"`
	Queues       map[string]queueDocument `json:"queues"`
}

type queueDocument struct {
	DisplayName        string             `json:"display_name,omitempty"`
	EntryCost          int                `json:"entry_cost"`
	GoldRewards        []int              `json:"gold_rewards"`
	GemRewards         []int              `json:"gem_rewards,omitempty"`
	PackRewards        []int              `json:"pack_rewards,omitempty"`
	AverageGameMinutes float64            `json:"average_game_minutes"`
	ProgressMultiplier map[string]float64 `json:"progress_multiplier,omitempty"`
}

// Load reads and validates a reward table JSON document from disk.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reward table: %w", err)
	}
	return Parse(data)
}

// Parse validates a reward table JSON document.
func Parse(data []byte) (*Table, error) {
	var doc tableDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRewardTable, err)
	}

	profiles := make([]QueueRewardProfile, 0, len(doc.Queues))
	for id, q := range doc.Queues {
		profile := QueueRewardProfile{
			QueueID:            id,
			DisplayName:        q.DisplayName,
			EntryCost:          q.EntryCost,
			GoldRewards:        q.GoldRewards,
			GemRewards:         q.GemRewards,
			PackRewards:        q.PackRewards,
			AverageGameMinutes: q.AverageGameMinutes,
		}
		if len(q.ProgressMultiplier) > 0 {
			profile.ProgressMultiplier = make(map[domain.QuestType]float64, len(q.ProgressMultiplier))
			for key, m := range q.ProgressMultiplier {
				profile.ProgressMultiplier[domain.QuestType(key)] = m
			}
		}
		profiles = append(profiles, profile)
	}

	return NewTable(doc.Version, doc.DefaultQueue, profiles)
}
