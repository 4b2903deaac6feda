// Package ev computes expected values for playing queues and quest
// progress rates. All functions are pure computations over their
// arguments: no mutation, no I/O, total over the documented input domain.
package ev

import (
	"fmt"
	"math"

	"github.com/arenatools/questplanner/internal/domain"
	"github.com/arenatools/questplanner/internal/rewards"
)

// QueueEV is the expected monetary outcome of playing one game in a queue
// at a given win rate. NetValue and EVPerMinute are gold-equivalent
// (gems and packs converted at the fixed rates), net of entry cost.
type QueueEV struct {
	QueueID       string  `json:"queue_id"`
	ExpectedGold  float64 `json:"expected_gold"`
	ExpectedGems  float64 `json:"expected_gems"`
	ExpectedPacks float64 `json:"expected_packs"`
	EntryCost     float64 `json:"entry_cost"`
	NetValue      float64 `json:"net_value"`
	EVPerMinute   float64 `json:"ev_per_minute"`
}

// ProgressEstimate describes how fast one quest advances in one queue.
// GamesToComplete is +Inf when the queue cannot progress the quest at all.
type ProgressEstimate struct {
	ProgressPerGame   float64 `json:"progress_per_game"`
	GamesToComplete   float64 `json:"games_to_complete"`
	MinutesToComplete float64 `json:"minutes_to_complete"`
}

// CompletionEstimate is a ProgressEstimate held against a time budget.
type CompletionEstimate struct {
	CanComplete   bool    `json:"can_complete"`
	MinutesNeeded float64 `json:"minutes_needed"`
	GamesNeeded   float64 `json:"games_needed"`
	TimeRemaining float64 `json:"time_remaining"`
}

// Calculator answers EV questions against the current reward table.
// It holds no mutable state beyond the table source, so concurrent calls
// never interfere.
type Calculator struct {
	tables          *rewards.Source
	completionBonus float64
	spellsPerGame   float64
}

// NewCalculator builds a calculator with the standard policy constants.
func NewCalculator(tables *rewards.Source) *Calculator {
	return &Calculator{
		tables:          tables,
		completionBonus: domain.QuestCompletionBonusGold,
		spellsPerGame:   domain.BaseSpellsPerGame,
	}
}

// NewCalculatorWithPolicy overrides the completion bonus and spells-per-game
// policy constants. Used by tests and experiments.
func NewCalculatorWithPolicy(tables *rewards.Source, completionBonus, spellsPerGame float64) *Calculator {
	return &Calculator{
		tables:          tables,
		completionBonus: completionBonus,
		spellsPerGame:   spellsPerGame,
	}
}

// validateWinRate rejects win rates outside [0,1] with a typed error.
// The probability math itself is total over the full unit interval; the
// stricter configured range for plan requests is enforced by the planner.
func validateWinRate(winRate float64) error {
	if math.IsNaN(winRate) || winRate < 0 || winRate > 1 {
		return fmt.Errorf("%w: win rate %v outside [0,1]", domain.ErrInvalidInput, winRate)
	}
	return nil
}

// QueueEV computes the expected value of one game in queueID at winRate.
// Unknown queue IDs resolve to the table's default profile.
func (c *Calculator) QueueEV(queueID string, winRate float64) (QueueEV, error) {
	if err := validateWinRate(winRate); err != nil {
		return QueueEV{}, err
	}

	profile := c.tables.Table().Lookup(queueID)
	return c.profileEV(queueID, profile, winRate), nil
}

func (c *Calculator) profileEV(queueID string, profile rewards.QueueRewardProfile, winRate float64) QueueEV {
	gold := rewards.ExpectedValue(profile.GoldRewards, winRate)
	gems := rewards.ExpectedValue(profile.GemRewards, winRate)
	packs := rewards.ExpectedValue(profile.PackRewards, winRate)

	net := gold + gems*domain.GemGoldRate + packs*domain.PackGoldRate - float64(profile.EntryCost)

	return QueueEV{
		QueueID:       queueID,
		ExpectedGold:  gold,
		ExpectedGems:  gems,
		ExpectedPacks: packs,
		EntryCost:     float64(profile.EntryCost),
		NetValue:      net,
		EVPerMinute:   net / profile.AverageGameMinutes,
	}
}

// progressPerGame is the type-specific amount of quest progress earned by
// one game, before capping at the quest's remaining count.
func (c *Calculator) progressPerGame(quest domain.Quest, profile rewards.QueueRewardProfile, winRate float64) float64 {
	multiplier := profile.Multiplier(quest.Type)

	switch quest.Type {
	case domain.QuestTypeWinGames:
		return winRate * multiplier
	case domain.QuestTypeCastSpells:
		return c.spellsPerGame * multiplier
	case domain.QuestTypePlayColors:
		return 1 * multiplier
	default:
		return 0
	}
}

// QuestProgressRate computes per-game progress and time-to-completion for
// one quest in one queue. Progress is capped at the quest's remaining
// count per game.
func (c *Calculator) QuestProgressRate(quest domain.Quest, queueID string, winRate float64) (ProgressEstimate, error) {
	if err := validateWinRate(winRate); err != nil {
		return ProgressEstimate{}, err
	}
	if err := quest.Validate(); err != nil {
		return ProgressEstimate{}, err
	}

	profile := c.tables.Table().Lookup(queueID)

	progress := c.progressPerGame(quest, profile, winRate)
	if remaining := float64(quest.Remaining); progress > remaining {
		progress = remaining
	}

	est := ProgressEstimate{ProgressPerGame: progress}

	switch {
	case quest.Remaining <= 0:
		est.GamesToComplete = 0
		est.MinutesToComplete = 0
	case progress <= 0:
		est.GamesToComplete = math.Inf(1)
		est.MinutesToComplete = math.Inf(1)
	default:
		est.GamesToComplete = math.Ceil(float64(quest.Remaining) / progress)
		est.MinutesToComplete = est.GamesToComplete * profile.AverageGameMinutes
	}

	return est, nil
}

// EstimateCompletion reports whether a quest is completable in queueID
// within budgetMinutes.
func (c *Calculator) EstimateCompletion(quest domain.Quest, queueID string, winRate float64, budgetMinutes float64) (CompletionEstimate, error) {
	progress, err := c.QuestProgressRate(quest, queueID, winRate)
	if err != nil {
		return CompletionEstimate{}, err
	}

	return CompletionEstimate{
		CanComplete:   progress.MinutesToComplete <= budgetMinutes,
		MinutesNeeded: progress.MinutesToComplete,
		GamesNeeded:   progress.GamesToComplete,
		TimeRemaining: budgetMinutes - progress.MinutesToComplete,
	}, nil
}

// CombinedEV is QueueEV plus an amortized quest-completion bonus: the fixed
// completion reward divided across the games needed to finish the quest.
// It represents the marginal value of progressing toward completion, not
// just raw queue rewards.
func (c *Calculator) CombinedEV(quest domain.Quest, queueID string, winRate float64) (QueueEV, error) {
	base, err := c.QueueEV(queueID, winRate)
	if err != nil {
		return QueueEV{}, err
	}

	progress, err := c.QuestProgressRate(quest, queueID, winRate)
	if err != nil {
		return QueueEV{}, err
	}

	if math.IsInf(progress.GamesToComplete, 1) || progress.GamesToComplete <= 0 {
		return base, nil
	}

	profile := c.tables.Table().Lookup(queueID)
	base.NetValue += c.completionBonus / progress.GamesToComplete
	base.EVPerMinute = base.NetValue / profile.AverageGameMinutes

	return base, nil
}

// ProgressPerGame returns the uncapped per-game progress rate for a quest
// in a queue. The planner uses this to project progress against its own
// tracked remaining counts.
func (c *Calculator) ProgressPerGame(quest domain.Quest, queueID string, winRate float64) (float64, error) {
	if err := validateWinRate(winRate); err != nil {
		return 0, err
	}
	profile := c.tables.Table().Lookup(queueID)
	return c.progressPerGame(quest, profile, winRate), nil
}

// CompletionBonus exposes the configured per-quest completion bonus.
func (c *Calculator) CompletionBonus() float64 {
	return c.completionBonus
}
