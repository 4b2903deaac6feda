package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/arenatools/questplanner/internal/domain"
)

func validOptimizeRequest() OptimizePlanRequest {
	return OptimizePlanRequest{
		Quests: []QuestInput{
			{ID: "q1", Type: "win_games", Remaining: 4, ExpiresInDays: 3},
		},
		TimeBudgetMinutes: 60,
		WinRate:           0.5,
	}
}

func samplePlan() *domain.OptimizedPlan {
	return &domain.OptimizedPlan{
		PlanID: "plan-123",
		Steps: []domain.PlanStep{
			{StepID: "step-1", Queue: "play", TargetGames: 3, EstimatedMinutes: 24},
		},
		TotalEstimatedMinutes: 24,
		TimeBudget:            60,
		WinRate:               0.5,
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch v := body.(type) {
	case string:
		buf.WriteString(v)
	default:
		assert.NoError(t, json.NewEncoder(&buf).Encode(v))
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleOptimizePlan(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockPlannerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "not json",
			setupMocks:     func(mp *MockPlannerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Missing quests",
			reqBody: OptimizePlanRequest{
				TimeBudgetMinutes: 60,
			},
			setupMocks:     func(mp *MockPlannerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Unknown quest type",
			reqBody: OptimizePlanRequest{
				Quests:            []QuestInput{{ID: "q1", Type: "collect_gems", Remaining: 1}},
				TimeBudgetMinutes: 60,
			},
			setupMocks:     func(mp *MockPlannerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid quest type",
		},
		{
			name:    "Validation error from service",
			reqBody: validOptimizeRequest(),
			setupMocks: func(mp *MockPlannerService) {
				mp.On("OptimizePlan", mock.Anything, mock.Anything, 60, 0.5, mock.Anything).
					Return(nil, nil, domain.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidInputError,
		},
		{
			name:    "No active quests",
			reqBody: validOptimizeRequest(),
			setupMocks: func(mp *MockPlannerService) {
				mp.On("OptimizePlan", mock.Anything, mock.Anything, 60, 0.5, mock.Anything).
					Return(nil, nil, domain.ErrNoActiveQuests)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   ErrMsgNoActiveQuestsError,
		},
		{
			name:    "Insufficient time",
			reqBody: validOptimizeRequest(),
			setupMocks: func(mp *MockPlannerService) {
				mp.On("OptimizePlan", mock.Anything, mock.Anything, 60, 0.5, mock.Anything).
					Return(nil, nil, domain.ErrInsufficientTime)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   ErrMsgNotEnoughTimeError,
		},
		{
			name:    "Success",
			reqBody: validOptimizeRequest(),
			setupMocks: func(mp *MockPlannerService) {
				mp.On("OptimizePlan", mock.Anything, mock.Anything, 60, 0.5, mock.Anything).
					Return(samplePlan(), []string{"quest q2 cannot be completed in this budget"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"plan_id":"plan-123"`,
		},
		{
			name: "Omitted budget resolved from settings defaults",
			reqBody: OptimizePlanRequest{
				Quests:   []QuestInput{{ID: "q1", Type: "win_games", Remaining: 4, ExpiresInDays: 3}},
				Settings: &domain.Settings{DefaultWinRate: 0.5, DefaultGameMinutes: 8},
			},
			setupMocks: func(mp *MockPlannerService) {
				mp.On("OptimizePlan", mock.Anything, mock.Anything, 0, 0.0, mock.Anything).
					Return(samplePlan(), nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"plan_id":"plan-123"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPlanner := new(MockPlannerService)
			tt.setupMocks(mockPlanner)
			h := NewPlanHandler(mockPlanner)

			rec := postJSON(t, h.HandleOptimizePlan, tt.reqBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockPlanner.AssertExpectations(t)
		})
	}
}

func TestHandleOptimizePlan_ForwardsQuests(t *testing.T) {
	mockPlanner := new(MockPlannerService)
	mockPlanner.On("OptimizePlan", mock.Anything,
		[]domain.Quest{{ID: "q1", Type: domain.QuestTypePlayColors, Remaining: 3, ExpiresInDays: 1, Colors: []domain.Color{domain.ColorRed, domain.ColorGreen}}},
		90, 0.6, mock.Anything).
		Return(samplePlan(), nil, nil)
	h := NewPlanHandler(mockPlanner)

	rec := postJSON(t, h.HandleOptimizePlan, OptimizePlanRequest{
		Quests: []QuestInput{
			{ID: "q1", Type: "play_colors", Remaining: 3, ExpiresInDays: 1, Colors: []string{"R", "G"}},
		},
		TimeBudgetMinutes: 90,
		WinRate:           0.6,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	mockPlanner.AssertExpectations(t)
}

func TestHandleMarkStep(t *testing.T) {
	completed := true

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockPlannerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Missing completed flag",
			reqBody: map[string]interface{}{
				"plan":    samplePlan(),
				"step_id": "step-1",
			},
			setupMocks:     func(mp *MockPlannerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Unknown step",
			reqBody: MarkStepRequest{
				Plan:      samplePlan(),
				StepID:    "step-99",
				Completed: &completed,
			},
			setupMocks: func(mp *MockPlannerService) {
				mp.On("MarkStep", mock.Anything, "step-99", true).
					Return(nil, domain.ErrStepNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgStepNotFoundError,
		},
		{
			name: "Success",
			reqBody: MarkStepRequest{
				Plan:      samplePlan(),
				StepID:    "step-1",
				Completed: &completed,
			},
			setupMocks: func(mp *MockPlannerService) {
				updated := samplePlan()
				updated.Steps[0].Completed = true
				mp.On("MarkStep", mock.Anything, "step-1", true).
					Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"completed":true`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPlanner := new(MockPlannerService)
			tt.setupMocks(mockPlanner)
			h := NewPlanHandler(mockPlanner)

			rec := postJSON(t, h.HandleMarkStep, tt.reqBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockPlanner.AssertExpectations(t)
		})
	}
}

func TestHandleRecalculate(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockPlannerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Missing plan",
			reqBody: RecalculateRequest{
				Quests: []QuestInput{{ID: "q1", Type: "win_games", Remaining: 2}},
			},
			setupMocks:     func(mp *MockPlannerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Success with warnings",
			reqBody: RecalculateRequest{
				Plan:   samplePlan(),
				Quests: []QuestInput{{ID: "q1", Type: "win_games", Remaining: 2}},
			},
			setupMocks: func(mp *MockPlannerService) {
				mp.On("Recalculate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(samplePlan(), []string{"all time used"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"warnings":["all time used"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPlanner := new(MockPlannerService)
			tt.setupMocks(mockPlanner)
			h := NewPlanHandler(mockPlanner)

			rec := postJSON(t, h.HandleRecalculate, tt.reqBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockPlanner.AssertExpectations(t)
		})
	}
}
