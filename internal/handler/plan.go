package handler

import (
	"net/http"

	"github.com/arenatools/questplanner/internal/domain"
	"github.com/arenatools/questplanner/internal/logger"
	"github.com/arenatools/questplanner/internal/planner"
)

// PlanHandler serves the plan lifecycle endpoints. The engine is stateless,
// so mutation endpoints carry the plan in the request body and return the
// updated plan instead of persisting anything server-side.
type PlanHandler struct {
	planner planner.Service
}

func NewPlanHandler(plannerService planner.Service) *PlanHandler {
	return &PlanHandler{planner: plannerService}
}

// QuestInput is the wire form of a quest with request validation tags.
type QuestInput struct {
	ID            string   `json:"id" validate:"required"`
	Type          string   `json:"type" validate:"required,quest_type"`
	Description   string   `json:"description,omitempty"`
	Remaining     int      `json:"remaining" validate:"gte=0"`
	ExpiresInDays int      `json:"expires_in_days" validate:"gte=0"`
	Colors        []string `json:"colors,omitempty" validate:"omitempty,dive,mana_color"`
}

func (in QuestInput) toDomain() domain.Quest {
	quest := domain.Quest{
		ID:            in.ID,
		Type:          domain.QuestType(in.Type),
		Description:   in.Description,
		Remaining:     in.Remaining,
		ExpiresInDays: in.ExpiresInDays,
	}
	for _, c := range in.Colors {
		quest.Colors = append(quest.Colors, domain.Color(c))
	}
	return quest
}

func questInputsToDomain(inputs []QuestInput) []domain.Quest {
	quests := make([]domain.Quest, 0, len(inputs))
	for _, in := range inputs {
		quests = append(quests, in.toDomain())
	}
	return quests
}

// OptimizePlanRequest represents the body of the optimize request. The
// time budget may be omitted when settings carry default_game_minutes;
// the planner then sizes a default session.
type OptimizePlanRequest struct {
	Quests            []QuestInput     `json:"quests" validate:"required,min=1,dive"`
	TimeBudgetMinutes int              `json:"time_budget_minutes" validate:"omitempty,gte=0"`
	WinRate           float64          `json:"win_rate" validate:"omitempty,gte=0,lte=1"`
	Settings          *domain.Settings `json:"settings,omitempty"`
}

// PlanResponse wraps a plan together with advisory warnings
type PlanResponse struct {
	Plan     *domain.OptimizedPlan `json:"plan"`
	Warnings []string              `json:"warnings,omitempty"`
}

// HandleOptimizePlan builds an optimized plan from scratch
// @Summary Optimize a quest plan
// @Description Computes an ordered play plan from quests, a time budget and a win rate
// @Tags plan
// @Accept json
// @Produce json
// @Param request body OptimizePlanRequest true "Optimization request"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/plan/optimize [post]
func (h *PlanHandler) HandleOptimizePlan(w http.ResponseWriter, r *http.Request) {
	var req OptimizePlanRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Optimize plan"); err != nil {
		return
	}

	log := logger.FromContext(r.Context())
	log.Debug("Optimize plan request",
		"quests", len(req.Quests),
		"time_budget_minutes", req.TimeBudgetMinutes,
		"win_rate", req.WinRate)

	plan, warnings, err := h.planner.OptimizePlan(r.Context(), questInputsToDomain(req.Quests), req.TimeBudgetMinutes, req.WinRate, req.Settings)
	if err != nil {
		respondServiceError(w, r, "Optimize plan", err)
		return
	}

	respondJSON(w, http.StatusOK, PlanResponse{Plan: plan, Warnings: warnings})
}

// MarkStepRequest represents the body of the step completion request
type MarkStepRequest struct {
	Plan      *domain.OptimizedPlan `json:"plan" validate:"required"`
	StepID    string                `json:"step_id" validate:"required"`
	Completed *bool                 `json:"completed" validate:"required"`
}

// HandleMarkStep toggles the completion flag on a single plan step
// @Summary Mark a plan step complete or incomplete
// @Tags plan
// @Accept json
// @Produce json
// @Param request body MarkStepRequest true "Step completion request"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plan/step/complete [post]
func (h *PlanHandler) HandleMarkStep(w http.ResponseWriter, r *http.Request) {
	var req MarkStepRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Mark step"); err != nil {
		return
	}

	plan, err := h.planner.MarkStep(req.Plan, req.StepID, *req.Completed)
	if err != nil {
		respondServiceError(w, r, "Mark step", err)
		return
	}

	respondJSON(w, http.StatusOK, PlanResponse{Plan: plan})
}

// RecalculateRequest represents the body of the recalculate request
type RecalculateRequest struct {
	Plan     *domain.OptimizedPlan `json:"plan" validate:"required"`
	Quests   []QuestInput          `json:"quests" validate:"required,min=1,dive"`
	Settings *domain.Settings      `json:"settings,omitempty"`
}

// HandleRecalculate rebuilds the incomplete remainder of a plan against
// the caller's current quest state
// @Summary Recalculate a partially played plan
// @Tags plan
// @Accept json
// @Produce json
// @Param request body RecalculateRequest true "Recalculation request"
// @Success 200 {object} PlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/plan/recalculate [post]
func (h *PlanHandler) HandleRecalculate(w http.ResponseWriter, r *http.Request) {
	var req RecalculateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Recalculate plan"); err != nil {
		return
	}

	plan, warnings, err := h.planner.Recalculate(r.Context(), req.Plan, questInputsToDomain(req.Quests), req.Settings)
	if err != nil {
		respondServiceError(w, r, "Recalculate plan", err)
		return
	}

	respondJSON(w, http.StatusOK, PlanResponse{Plan: plan, Warnings: warnings})
}
