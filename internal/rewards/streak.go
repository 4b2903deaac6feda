package rewards

import "math"

// Win-streak probability model: a run stops at exactly w wins with
// probability winRate^w * (1-winRate), except the maximum index n
// (the "never lost" case) which carries the full tail winRate^n.
// The probabilities form a complete distribution for any winRate in [0,1].

// StreakProbabilities returns the stop-at-exactly-w probabilities for
// win counts 0..maxWins. maxWins < 0 yields nil.
func StreakProbabilities(winRate float64, maxWins int) []float64 {
	if maxWins < 0 {
		return nil
	}

	probs := make([]float64, maxWins+1)
	lossRate := 1 - winRate

	streak := 1.0 // winRate^w, starting at w=0
	for w := 0; w < maxWins; w++ {
		probs[w] = streak * lossRate
		streak *= winRate
	}
	probs[maxWins] = streak

	return probs
}

// ExpectedValue computes the probability-weighted average of a reward
// array indexed by win count, under the win-streak model. An empty array
// is worth nothing. winRate=0 yields rewardArray[0]; winRate=1 yields the
// last entry.
func ExpectedValue(rewardArray []int, winRate float64) float64 {
	if len(rewardArray) == 0 {
		return 0
	}

	probs := StreakProbabilities(winRate, len(rewardArray)-1)

	var ev float64
	for w, p := range probs {
		ev += float64(rewardArray[w]) * p
	}

	if math.IsNaN(ev) {
		// Indicates a bug, not a user-input problem.
		panic("rewards: expected value produced NaN")
	}

	return ev
}
