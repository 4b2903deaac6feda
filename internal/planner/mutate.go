package planner

import (
	"context"
	"fmt"
	"math"

	"github.com/arenatools/questplanner/internal/domain"
)

// MarkStep implements Service. Only the targeted step's completed flag
// changes; quest state is untouched.
func (s *service) MarkStep(plan *domain.OptimizedPlan, stepID string, completed bool) (*domain.OptimizedPlan, error) {
	if plan == nil {
		return nil, domain.ErrNilPlan
	}

	idx := plan.StepByID(stepID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrStepNotFound, stepID)
	}

	updated := plan.Clone()
	updated.Steps[idx].Completed = completed
	updated.UpdatedAt = nowUTC()

	return updated, nil
}

// Recalculate implements Service. It re-plans the unused portion of the
// budget with the plan's original win rate. When no usable time remains
// the current plan is returned unchanged with an advisory warning.
func (s *service) Recalculate(ctx context.Context, plan *domain.OptimizedPlan, quests []domain.Quest, settings *domain.Settings) (*domain.OptimizedPlan, []string, error) {
	if plan == nil {
		return nil, nil, domain.ErrNilPlan
	}

	remaining := float64(plan.TimeBudget) - plan.CompletedMinutes()

	if remaining <= 0 {
		return plan, []string{WarnAllTimeUsed}, nil
	}
	if remaining < float64(s.cfg.MinTimeBudget) {
		return plan, []string{WarnRemainingTooSmall}, nil
	}

	return s.OptimizePlan(ctx, quests, int(math.Floor(remaining)), plan.WinRate, settings)
}
