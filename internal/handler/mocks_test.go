package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/arenatools/questplanner/internal/domain"
)

// MockPlannerService implements planner.Service for handler tests.
type MockPlannerService struct {
	mock.Mock
}

func (m *MockPlannerService) OptimizePlan(ctx context.Context, quests []domain.Quest, timeBudget int, winRate float64, settings *domain.Settings) (*domain.OptimizedPlan, []string, error) {
	args := m.Called(ctx, quests, timeBudget, winRate, settings)
	var plan *domain.OptimizedPlan
	if args.Get(0) != nil {
		plan = args.Get(0).(*domain.OptimizedPlan)
	}
	var warnings []string
	if args.Get(1) != nil {
		warnings = args.Get(1).([]string)
	}
	return plan, warnings, args.Error(2)
}

func (m *MockPlannerService) MarkStep(plan *domain.OptimizedPlan, stepID string, completed bool) (*domain.OptimizedPlan, error) {
	args := m.Called(plan, stepID, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OptimizedPlan), args.Error(1)
}

func (m *MockPlannerService) Recalculate(ctx context.Context, plan *domain.OptimizedPlan, quests []domain.Quest, settings *domain.Settings) (*domain.OptimizedPlan, []string, error) {
	args := m.Called(ctx, plan, quests, settings)
	var next *domain.OptimizedPlan
	if args.Get(0) != nil {
		next = args.Get(0).(*domain.OptimizedPlan)
	}
	var warnings []string
	if args.Get(1) != nil {
		warnings = args.Get(1).([]string)
	}
	return next, warnings, args.Error(2)
}
