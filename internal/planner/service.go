// Package planner turns a set of quests, a time budget, and a win-rate
// estimate into an ordered, time-bounded action plan. The optimizer is a
// constrained greedy scheduler: each iteration picks the single best queue
// option by urgency-adjusted EV per minute, deducts the consumed time and
// quest progress, and re-evaluates. Every call is a pure function of its
// inputs; no state is shared across calls.
package planner

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/arenatools/questplanner/internal/domain"
	"github.com/arenatools/questplanner/internal/ev"
	"github.com/arenatools/questplanner/internal/rewards"
)

// Service is the optimization engine's public surface.
type Service interface {
	// OptimizePlan builds a fresh plan. Warnings are advisory and are
	// returned on both success and failure.
	OptimizePlan(ctx context.Context, quests []domain.Quest, timeBudget int, winRate float64, settings *domain.Settings) (*domain.OptimizedPlan, []string, error)

	// MarkStep returns a new plan with only the targeted step's completed
	// flag changed. It touches no quest state.
	MarkStep(plan *domain.OptimizedPlan, stepID string, completed bool) (*domain.OptimizedPlan, error)

	// Recalculate re-plans the unused portion of the budget after some
	// steps were marked complete.
	Recalculate(ctx context.Context, plan *domain.OptimizedPlan, quests []domain.Quest, settings *domain.Settings) (*domain.OptimizedPlan, []string, error)
}

type service struct {
	tables  *rewards.Source
	calc    *ev.Calculator
	cfg     Config
	evCache *expirable.LRU[string, ev.QueueEV]
}

// NewService wires the optimizer against a reward table source and EV
// calculator.
func NewService(tables *rewards.Source, calc *ev.Calculator, cfg Config) Service {
	return &service{
		tables:  tables,
		calc:    calc,
		cfg:     cfg,
		evCache: expirable.NewLRU[string, ev.QueueEV](cfg.EVCacheSize, nil, cfg.EVCacheTTL),
	}
}

// queueEV memoizes raw per-queue EV. The greedy loop re-ranks every queue
// each iteration, but raw queue EV only depends on (table version, queue,
// win rate), so repeated lookups within and across runs hit the cache.
// The win rate is keyed by its exact shortest representation; rounded
// formatting would let nearby rates share an entry.
func (s *service) queueEV(queueID string, winRate float64) (ev.QueueEV, error) {
	key := fmt.Sprintf("%s|%s|%s", s.tables.Table().Version(), queueID,
		strconv.FormatFloat(winRate, 'g', -1, 64))

	if cached, ok := s.evCache.Get(key); ok {
		return cached, nil
	}

	computed, err := s.calc.QueueEV(queueID, winRate)
	if err != nil {
		return ev.QueueEV{}, err
	}

	s.evCache.Add(key, computed)
	return computed, nil
}

// validateRequest applies the configured input ranges and quest invariants.
func (s *service) validateRequest(quests []domain.Quest, timeBudget int, winRate float64) error {
	if timeBudget < s.cfg.MinTimeBudget || timeBudget > s.cfg.MaxTimeBudget {
		return fmt.Errorf("%w: time budget %d outside [%d,%d] minutes",
			domain.ErrInvalidInput, timeBudget, s.cfg.MinTimeBudget, s.cfg.MaxTimeBudget)
	}
	if winRate < s.cfg.MinWinRate || winRate > s.cfg.MaxWinRate {
		return fmt.Errorf("%w: win rate %.2f outside [%.2f,%.2f]",
			domain.ErrInvalidInput, winRate, s.cfg.MinWinRate, s.cfg.MaxWinRate)
	}
	for _, q := range quests {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// applyDefaults fills omitted arguments from caller settings. Explicit
// arguments always win; settings only supply defaults. An omitted budget
// resolves to a default session of DefaultSessionGames games at the
// caller's average game length.
func (s *service) applyDefaults(timeBudget int, winRate float64, settings *domain.Settings) (int, float64) {
	if settings == nil {
		return timeBudget, winRate
	}
	if winRate == 0 && settings.DefaultWinRate > 0 {
		winRate = settings.DefaultWinRate
	}
	if timeBudget == 0 && settings.DefaultGameMinutes > 0 {
		timeBudget = int(math.Round(settings.DefaultGameMinutes * float64(s.cfg.DefaultSessionGames)))
	}
	return timeBudget, winRate
}

// allowedQueues resolves the caller's preferred queue subset against the
// known queue IDs, in deterministic lexicographic order.
func (s *service) allowedQueues(settings *domain.Settings) ([]string, []string) {
	table := s.tables.Table()

	if settings == nil || len(settings.PreferredQueues) == 0 {
		return table.QueueIDs(), nil
	}

	var warnings []string
	seen := make(map[string]bool, len(settings.PreferredQueues))
	var allowed []string
	for _, id := range settings.PreferredQueues {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !table.Contains(id) {
			warnings = append(warnings, fmt.Sprintf(WarnUnknownQueue, id))
			continue
		}
		allowed = append(allowed, id)
	}

	if len(allowed) == 0 {
		warnings = append(warnings, WarnNoPreferredQueues)
		return table.QueueIDs(), warnings
	}

	sort.Strings(allowed)
	return allowed, warnings
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
