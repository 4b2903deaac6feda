package planner

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/arenatools/questplanner/internal/domain"
	"github.com/arenatools/questplanner/internal/logger"
	"github.com/arenatools/questplanner/internal/metrics"
)

// priorityEpsilon separates genuinely better options from floating noise
// so tie-breaking stays deterministic.
const priorityEpsilon = 1e-9

// runState is the explicit state value threaded through the greedy loop.
// It is private to one OptimizePlan call, which keeps each iteration a
// pure state transition with no hidden aliasing.
type runState struct {
	quests    []domain.Quest
	arena     map[string]float64 // tracked remaining progress per quest ID
	remaining float64            // minutes left in the budget
	steps     []domain.PlanStep
	completed []string // quest IDs expected to reach zero remaining
}

func newRunState(quests []domain.Quest, budgetMinutes float64) *runState {
	arena := make(map[string]float64, len(quests))
	for _, q := range quests {
		arena[q.ID] = float64(q.Remaining)
	}
	return &runState{quests: quests, arena: arena, remaining: budgetMinutes}
}

func (st *runState) allQuestsDone() bool {
	for _, rem := range st.arena {
		if rem > 0 {
			return false
		}
	}
	return true
}

// queueOption is one candidate step: a block of games in a single queue,
// scored by urgency-adjusted EV per minute.
type queueOption struct {
	queueID          string
	targetGames      int
	estimatedMinutes float64
	expectedGold     float64 // per game
	expectedGems     float64 // per game
	expectedPacks    float64 // per game
	priority         float64
	soonestExpiry    int
	progress         []domain.QuestProgress
}

// betterThan orders options by priority, then soonest contributing expiry,
// then lexicographically-first queue ID. The ordering is deterministic,
// never implementation-defined.
func (o queueOption) betterThan(other queueOption) bool {
	if o.priority > other.priority+priorityEpsilon {
		return true
	}
	if other.priority > o.priority+priorityEpsilon {
		return false
	}
	if o.soonestExpiry != other.soonestExpiry {
		return o.soonestExpiry < other.soonestExpiry
	}
	return o.queueID < other.queueID
}

// OptimizePlan implements Service.
func (s *service) OptimizePlan(ctx context.Context, quests []domain.Quest, timeBudget int, winRate float64, settings *domain.Settings) (*domain.OptimizedPlan, []string, error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	timeBudget, winRate = s.applyDefaults(timeBudget, winRate, settings)

	if err := s.validateRequest(quests, timeBudget, winRate); err != nil {
		metrics.PlanFailures.WithLabelValues(metrics.ReasonValidation).Inc()
		return nil, nil, err
	}

	allowed, warnings := s.allowedQueues(settings)

	// Pre-check 1: at least one quest must still have progress remaining.
	var active []domain.Quest
	for _, q := range quests {
		if q.IsActive() {
			active = append(active, q)
		}
	}
	if len(active) == 0 {
		metrics.PlanFailures.WithLabelValues(metrics.ReasonNoActiveQuests).Inc()
		return nil, warnings, domain.ErrNoActiveQuests
	}

	// Pre-check 2: at least one active quest must be completable inside
	// the budget under some allowed queue. Quests that cannot finish only
	// produce warnings; they still accrue partial progress.
	budget := float64(timeBudget)
	feasible := 0
	for _, q := range active {
		if s.questFeasible(q, allowed, winRate, budget) {
			feasible++
		} else {
			warnings = append(warnings, fmt.Sprintf(WarnQuestNotCompletable, q.ID))
		}
		switch {
		case q.ExpiresInDays == 0:
			warnings = append(warnings, fmt.Sprintf(WarnQuestExpiresToday, q.ID))
		case q.ExpiresInDays == 1:
			warnings = append(warnings, fmt.Sprintf(WarnQuestExpiresSoon, q.ID))
		}
	}
	if feasible == 0 {
		metrics.PlanFailures.WithLabelValues(metrics.ReasonInsufficientTime).Inc()
		return nil, warnings, domain.ErrInsufficientTime
	}

	// Accumulating state: greedily emit steps until time is exhausted,
	// every quest is satisfied, or the step cap is reached.
	state := newRunState(active, budget)
	for len(state.steps) < s.cfg.MaxPlanSteps && !state.allQuestsDone() {
		best, ok, err := s.bestOption(state, allowed, winRate)
		if err != nil {
			return nil, warnings, err
		}
		if !ok {
			break // no option fits the remaining time
		}
		s.applyOption(state, best)
	}

	if len(state.steps) == 0 {
		metrics.PlanFailures.WithLabelValues(metrics.ReasonInsufficientTime).Inc()
		return nil, warnings, domain.ErrInsufficientTime
	}

	plan := s.assemblePlan(state, timeBudget, winRate)

	if unfinished := len(active) - len(state.completed); unfinished > 0 {
		warnings = append(warnings, fmt.Sprintf(WarnQuestsUnfinished, unfinished))
	}
	if unused := budget - plan.TotalEstimatedMinutes; unused > s.cfg.UnusedTimeWarning {
		warnings = append(warnings, fmt.Sprintf(WarnUnusedTime, unused))
	}

	metrics.PlansComputed.Inc()
	metrics.PlanSteps.Observe(float64(len(plan.Steps)))
	metrics.PlanDuration.Observe(time.Since(start).Seconds())

	log.Info("Plan optimized",
		"quests", len(active),
		"steps", len(plan.Steps),
		"estimated_minutes", plan.TotalEstimatedMinutes,
		"budget_minutes", timeBudget,
		"completed_quests", len(plan.CompletedQuestIDs),
		"warnings", len(warnings))

	return plan, warnings, nil
}

// questFeasible reports whether any allowed queue completes the quest
// inside the budget.
func (s *service) questFeasible(q domain.Quest, allowed []string, winRate, budget float64) bool {
	for _, queueID := range allowed {
		est, err := s.calc.EstimateCompletion(q, queueID, winRate, budget)
		if err != nil {
			return false
		}
		if est.CanComplete {
			return true
		}
	}
	return false
}

// bestOption evaluates every allowed queue against the current state and
// returns the highest-priority option that fits the remaining time.
func (s *service) bestOption(state *runState, allowed []string, winRate float64) (queueOption, bool, error) {
	var best queueOption
	found := false

	for _, queueID := range allowed {
		opt, viable, err := s.buildOption(state, queueID, winRate)
		if err != nil {
			return queueOption{}, false, err
		}
		if !viable {
			continue
		}
		if !found || opt.betterThan(best) {
			best = opt
			found = true
		}
	}

	return best, found, nil
}

// buildOption sizes a candidate step for one queue: combined EV across all
// still-incomplete quests reachable from the queue, urgency from the
// soonest contributing expiry, and a target game count bounded by the
// per-step cap, the nearest quest completion, and the remaining time.
func (s *service) buildOption(state *runState, queueID string, winRate float64) (queueOption, bool, error) {
	profile := s.tables.Table().Lookup(queueID)

	maxFit := int(state.remaining / profile.AverageGameMinutes)
	if maxFit < 1 {
		return queueOption{}, false, nil
	}

	base, err := s.queueEV(queueID, winRate)
	if err != nil {
		return queueOption{}, false, err
	}

	type contribution struct {
		questID string
		perGame float64
	}
	var contribs []contribution
	bonusPerGame := 0.0
	soonest := math.MaxInt
	nearestCompletion := math.Inf(1)

	for _, q := range state.quests {
		tracked := state.arena[q.ID]
		if tracked <= 0 {
			continue
		}
		perGame, err := s.calc.ProgressPerGame(q, queueID, winRate)
		if err != nil {
			return queueOption{}, false, err
		}
		if perGame <= 0 {
			continue
		}

		games := math.Ceil(tracked / perGame)
		bonusPerGame += s.calc.CompletionBonus() / games
		if q.ExpiresInDays < soonest {
			soonest = q.ExpiresInDays
		}
		if games < nearestCompletion {
			nearestCompletion = games
		}
		contribs = append(contribs, contribution{questID: q.ID, perGame: perGame})
	}

	// A queue that advances no quest is never a candidate: the engine's
	// purpose is quest completion, not open-ended grinding.
	if len(contribs) == 0 {
		return queueOption{}, false, nil
	}

	targetGames := s.cfg.MaxGamesPerStep
	if games := int(nearestCompletion); games < targetGames {
		targetGames = games
	}
	if maxFit < targetGames {
		targetGames = maxFit
	}
	if targetGames < 1 {
		targetGames = 1
	}

	netPerGame := base.NetValue + bonusPerGame
	evPerMinute := netPerGame / profile.AverageGameMinutes
	priority := evPerMinute * s.cfg.urgencyMultiplier(soonest)

	progress := make([]domain.QuestProgress, 0, len(contribs))
	for _, c := range contribs {
		amount := c.perGame * float64(targetGames)
		if tracked := state.arena[c.questID]; amount > tracked {
			amount = tracked
		}
		progress = append(progress, domain.QuestProgress{QuestID: c.questID, Amount: amount})
	}

	return queueOption{
		queueID:          queueID,
		targetGames:      targetGames,
		estimatedMinutes: float64(targetGames) * profile.AverageGameMinutes,
		expectedGold:     base.ExpectedGold,
		expectedGems:     base.ExpectedGems,
		expectedPacks:    base.ExpectedPacks,
		priority:         priority,
		soonestExpiry:    soonest,
		progress:         progress,
	}, true, nil
}

// applyOption emits the chosen option as a plan step and transitions the
// state: time is deducted and each contributing quest's tracked remaining
// progress shrinks, never below zero.
func (s *service) applyOption(state *runState, opt queueOption) {
	games := float64(opt.targetGames)

	step := domain.PlanStep{
		StepID:           uuid.NewString(),
		Queue:            opt.queueID,
		TargetGames:      opt.targetGames,
		EstimatedMinutes: opt.estimatedMinutes,
		ExpectedRewards: domain.Rewards{
			Gold:  int(math.Round(opt.expectedGold * games)),
			Gems:  int(math.Round(opt.expectedGems * games)),
			Packs: int(math.Round(opt.expectedPacks * games)),
		},
		QuestProgress: opt.progress,
	}

	state.steps = append(state.steps, step)
	state.remaining -= opt.estimatedMinutes

	for _, pr := range opt.progress {
		tracked := state.arena[pr.QuestID] - pr.Amount
		if tracked <= priorityEpsilon {
			tracked = 0
			state.completed = append(state.completed, pr.QuestID)
		}
		state.arena[pr.QuestID] = tracked
	}
}

// assemblePlan aggregates the accumulated steps into an OptimizedPlan and
// computes the summary analytics.
func (s *service) assemblePlan(state *runState, timeBudget int, winRate float64) *domain.OptimizedPlan {
	var totalMinutes float64
	var totalRewards domain.Rewards
	for _, step := range state.steps {
		totalMinutes += step.EstimatedMinutes
		totalRewards = totalRewards.Add(step.ExpectedRewards)
	}

	completed := make([]string, len(state.completed))
	copy(completed, state.completed)
	sort.Strings(completed)

	summary := domain.PlanSummary{
		QuestsCompleted:  len(completed),
		QuestsUnfinished: len(state.quests) - len(completed),
	}
	if totalMinutes > 0 {
		summary.GoldPerHour = float64(totalRewards.GoldEquivalent()) / (totalMinutes / 60)
	}
	if len(state.quests) > 0 {
		summary.CompletionRate = float64(len(completed)) / float64(len(state.quests))
	}

	now := nowUTC()
	return &domain.OptimizedPlan{
		PlanID:                uuid.NewString(),
		Steps:                 state.steps,
		TotalEstimatedMinutes: totalMinutes,
		TotalExpectedRewards:  totalRewards,
		CompletedQuestIDs:     completed,
		TimeBudget:            timeBudget,
		WinRate:               winRate,
		Summary:               summary,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}
