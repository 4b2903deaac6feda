package domain

// Currency conversion rates used to express mixed reward triples as a
// single gold figure for EV comparison.
const (
	// GemGoldRate is how many gold one gem is worth.
	GemGoldRate = 5

	// PackGoldRate is how many gold one booster pack is worth.
	PackGoldRate = 1000
)

// Quest progress policy constants. These mirror the reward structure of
// the game client and are deliberately plain named constants so tuning
// them is a one-line change.
const (
	// QuestCompletionBonusGold is the fixed value credited for finishing a
	// quest, amortized per game when ranking queue options.
	QuestCompletionBonusGold = 500

	// BaseSpellsPerGame is the assumed number of spells cast in an average
	// game, before queue-specific multipliers.
	BaseSpellsPerGame = 10.0
)
