package handler

import (
	"math"
	"net/http"

	"github.com/arenatools/questplanner/internal/ev"
	"github.com/arenatools/questplanner/internal/rewards"
)

// QuestHandler serves quest feasibility checks.
type QuestHandler struct {
	tables *rewards.Source
	calc   *ev.Calculator
}

func NewQuestHandler(tables *rewards.Source, calc *ev.Calculator) *QuestHandler {
	return &QuestHandler{tables: tables, calc: calc}
}

// ValidateQuestsRequest represents the body of the quest validation request
type ValidateQuestsRequest struct {
	Quests            []QuestInput `json:"quests" validate:"required,min=1,dive"`
	TimeBudgetMinutes int          `json:"time_budget_minutes" validate:"omitempty,gt=0"`
	WinRate           float64      `json:"win_rate" validate:"omitempty,gte=0,lte=1"`
}

// QuestReport is the feasibility verdict for a single quest.
type QuestReport struct {
	QuestID       string  `json:"quest_id"`
	Valid         bool    `json:"valid"`
	Error         string  `json:"error,omitempty"`
	Active        bool    `json:"active"`
	BestQueue     string  `json:"best_queue,omitempty"`
	MinutesNeeded float64 `json:"minutes_needed,omitempty"`
	CanComplete   *bool   `json:"can_complete,omitempty"`
}

// ValidateQuestsResponse represents the feasibility report
type ValidateQuestsResponse struct {
	Reports []QuestReport `json:"reports"`
}

// HandleValidateQuests checks quests for structural validity and, when a
// budget is supplied, whether each one is completable inside it
// @Summary Validate quests
// @Description Returns a per-quest feasibility report
// @Tags quests
// @Accept json
// @Produce json
// @Param request body ValidateQuestsRequest true "Validation request"
// @Success 200 {object} ValidateQuestsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/quests/validate [post]
func (h *QuestHandler) HandleValidateQuests(w http.ResponseWriter, r *http.Request) {
	var req ValidateQuestsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Validate quests"); err != nil {
		return
	}

	winRate := req.WinRate
	if winRate == 0 {
		winRate = DefaultEVWinRate
	}

	queueIDs := h.tables.Table().QueueIDs()

	reports := make([]QuestReport, 0, len(req.Quests))
	for _, in := range req.Quests {
		quest := in.toDomain()
		report := QuestReport{QuestID: quest.ID, Active: quest.IsActive()}

		if err := quest.Validate(); err != nil {
			report.Error = err.Error()
			reports = append(reports, report)
			continue
		}
		report.Valid = true

		if !quest.IsActive() {
			reports = append(reports, report)
			continue
		}

		// Find the queue that completes the quest fastest.
		bestMinutes := math.Inf(1)
		for _, queueID := range queueIDs {
			estimate, err := h.calc.QuestProgressRate(quest, queueID, winRate)
			if err != nil {
				respondServiceError(w, r, "Validate quests", err)
				return
			}
			if estimate.MinutesToComplete < bestMinutes {
				bestMinutes = estimate.MinutesToComplete
				report.BestQueue = queueID
			}
		}

		if !math.IsInf(bestMinutes, 1) {
			report.MinutesNeeded = bestMinutes
		}
		if req.TimeBudgetMinutes > 0 {
			canComplete := bestMinutes <= float64(req.TimeBudgetMinutes)
			report.CanComplete = &canComplete
		}

		reports = append(reports, report)
	}

	respondJSON(w, http.StatusOK, ValidateQuestsResponse{Reports: reports})
}
