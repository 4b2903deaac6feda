package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenatools/questplanner/internal/domain"
)

func planFixture(t *testing.T, svc Service) (*domain.OptimizedPlan, []domain.Quest) {
	t.Helper()

	quests := []domain.Quest{
		{ID: "q-win", Type: domain.QuestTypeWinGames, Remaining: 4, ExpiresInDays: 2},
		{ID: "q-spells", Type: domain.QuestTypeCastSpells, Remaining: 40, ExpiresInDays: 3},
	}

	plan, _, err := svc.OptimizePlan(context.Background(), quests, 90, 0.5, nil)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Steps)

	return plan, quests
}

// stripTimestamps zeroes the transient fields so plans can be compared
// structurally.
func stripTimestamps(p *domain.OptimizedPlan) domain.OptimizedPlan {
	c := *p.Clone()
	c.CreatedAt = time.Time{}
	c.UpdatedAt = time.Time{}
	return c
}

func TestMarkStep_Toggle(t *testing.T) {
	svc := testService(t)
	plan, _ := planFixture(t, svc)

	stepID := plan.Steps[0].StepID

	marked, err := svc.MarkStep(plan, stepID, true)
	require.NoError(t, err)
	assert.True(t, marked.Steps[0].Completed)
	assert.False(t, plan.Steps[0].Completed, "original plan must be untouched")

	unmarked, err := svc.MarkStep(marked, stepID, false)
	require.NoError(t, err)

	assert.Equal(t, stripTimestamps(plan), stripTimestamps(unmarked),
		"mark-then-unmark must round-trip to the original structure")
}

func TestMarkStep_OnlyTargetedStepChanges(t *testing.T) {
	svc := testService(t)
	plan, _ := planFixture(t, svc)
	require.Greater(t, len(plan.Steps), 1)

	marked, err := svc.MarkStep(plan, plan.Steps[1].StepID, true)
	require.NoError(t, err)

	assert.False(t, marked.Steps[0].Completed)
	assert.True(t, marked.Steps[1].Completed)
	assert.Equal(t, plan.PlanID, marked.PlanID)
	assert.Equal(t, plan.TotalEstimatedMinutes, marked.TotalEstimatedMinutes)
	assert.Equal(t, plan.TotalExpectedRewards, marked.TotalExpectedRewards)
}

func TestMarkStep_UnknownStep(t *testing.T) {
	svc := testService(t)
	plan, _ := planFixture(t, svc)

	_, err := svc.MarkStep(plan, "not-a-step", true)
	assert.ErrorIs(t, err, domain.ErrStepNotFound)
}

func TestMarkStep_NilPlan(t *testing.T) {
	svc := testService(t)

	_, err := svc.MarkStep(nil, "any", true)
	assert.ErrorIs(t, err, domain.ErrNilPlan)
}

func TestRecalculate_AllTimeUsed(t *testing.T) {
	svc := testService(t)
	plan, quests := planFixture(t, svc)

	// Inflate completed minutes past the budget by completing every step.
	current := plan
	for _, step := range plan.Steps {
		var err error
		current, err = svc.MarkStep(current, step.StepID, true)
		require.NoError(t, err)
	}
	// Shrink budget so the completed steps consume all of it.
	current.TimeBudget = int(current.TotalEstimatedMinutes)

	result, warnings, err := svc.Recalculate(context.Background(), current, quests, nil)
	require.NoError(t, err)

	assert.Same(t, current, result, "plan must be returned unchanged")
	assert.Contains(t, warnings, WarnAllTimeUsed)
}

func TestRecalculate_RemainderTooSmall(t *testing.T) {
	svc := testService(t)
	plan, quests := planFixture(t, svc)

	completed, err := svc.MarkStep(plan, plan.Steps[0].StepID, true)
	require.NoError(t, err)
	// Leave less than the minimum viable budget unplayed.
	completed.TimeBudget = int(completed.Steps[0].EstimatedMinutes) + DefaultConfig().MinTimeBudget - 1

	result, warnings, err := svc.Recalculate(context.Background(), completed, quests, nil)
	require.NoError(t, err)

	assert.Same(t, completed, result)
	assert.Contains(t, warnings, WarnRemainingTooSmall)
}

func TestRecalculate_ProducesFreshPlan(t *testing.T) {
	svc := testService(t)
	plan, quests := planFixture(t, svc)

	completed, err := svc.MarkStep(plan, plan.Steps[0].StepID, true)
	require.NoError(t, err)

	// Report the progress the completed step earned.
	updated := make([]domain.Quest, len(quests))
	copy(updated, quests)
	for _, pr := range plan.Steps[0].QuestProgress {
		for i := range updated {
			if updated[i].ID == pr.QuestID {
				updated[i].Remaining -= int(pr.Amount)
				if updated[i].Remaining < 0 {
					updated[i].Remaining = 0
				}
			}
		}
	}

	fresh, _, err := svc.Recalculate(context.Background(), completed, updated, nil)
	require.NoError(t, err)

	assert.NotEqual(t, plan.PlanID, fresh.PlanID, "recalculation must produce a new plan")
	assert.Equal(t, plan.WinRate, fresh.WinRate, "original win rate is reused")
	remaining := float64(completed.TimeBudget) - completed.CompletedMinutes()
	assert.LessOrEqual(t, fresh.TotalEstimatedMinutes, remaining)
}

func TestRecalculate_NilPlan(t *testing.T) {
	svc := testService(t)

	_, _, err := svc.Recalculate(context.Background(), nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrNilPlan)
}
