package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arenatools/questplanner/internal/ev"
	"github.com/arenatools/questplanner/internal/rewards"
)

// DefaultEVWinRate is assumed when the caller does not pass win_rate.
const DefaultEVWinRate = 0.5

var titleCaser = cases.Title(language.English)

// QueueHandler serves reward-table introspection endpoints.
type QueueHandler struct {
	tables *rewards.Source
	calc   *ev.Calculator
}

func NewQueueHandler(tables *rewards.Source, calc *ev.Calculator) *QueueHandler {
	return &QueueHandler{tables: tables, calc: calc}
}

// QueueInfo is one queue in the list response, with an EV preview at the
// requested win rate.
type QueueInfo struct {
	QueueID            string  `json:"queue_id"`
	DisplayName        string  `json:"display_name"`
	EntryCost          int     `json:"entry_cost"`
	AverageGameMinutes float64 `json:"average_game_minutes"`
	MaxWins            int     `json:"max_wins"`
	EVPerMinute        float64 `json:"ev_per_minute"`
	NetValue           float64 `json:"net_value"`
}

// ListQueuesResponse represents the queue list response
type ListQueuesResponse struct {
	TableVersion string      `json:"table_version"`
	WinRate      float64     `json:"win_rate"`
	Queues       []QueueInfo `json:"queues"`
}

// displayName falls back to title-casing the queue ID when the table
// does not configure one.
func displayName(profile rewards.QueueRewardProfile) string {
	if profile.DisplayName != "" {
		return profile.DisplayName
	}
	return titleCaser.String(strings.ReplaceAll(profile.QueueID, "_", " "))
}

// parseWinRate reads the optional win_rate query parameter.
func parseWinRate(r *http.Request) (float64, error) {
	raw := GetOptionalQueryParam(r, "win_rate", "")
	if raw == "" {
		return DefaultEVWinRate, nil
	}
	winRate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return winRate, nil
}

// HandleListQueues lists every queue in the active reward table
// @Summary List queues
// @Description Returns all queues in the active reward table with an EV preview
// @Tags queues
// @Produce json
// @Param win_rate query number false "Win rate for the EV preview (default 0.5)"
// @Success 200 {object} ListQueuesResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/queues [get]
func (h *QueueHandler) HandleListQueues(w http.ResponseWriter, r *http.Request) {
	winRate, err := parseWinRate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidWinRate)
		return
	}

	table := h.tables.Table()
	queueIDs := table.QueueIDs()

	queues := make([]QueueInfo, 0, len(queueIDs))
	for _, queueID := range queueIDs {
		profile := table.Lookup(queueID)

		queueEV, err := h.calc.QueueEV(queueID, winRate)
		if err != nil {
			respondServiceError(w, r, "List queues", err)
			return
		}

		queues = append(queues, QueueInfo{
			QueueID:            queueID,
			DisplayName:        displayName(profile),
			EntryCost:          profile.EntryCost,
			AverageGameMinutes: profile.AverageGameMinutes,
			MaxWins:            len(profile.GoldRewards) - 1,
			EVPerMinute:        queueEV.EVPerMinute,
			NetValue:           queueEV.NetValue,
		})
	}

	respondJSON(w, http.StatusOK, ListQueuesResponse{
		TableVersion: table.Version(),
		WinRate:      winRate,
		Queues:       queues,
	})
}

// QueueEVResponse represents a single queue's EV breakdown
type QueueEVResponse struct {
	TableVersion string     `json:"table_version"`
	WinRate      float64    `json:"win_rate"`
	EV           ev.QueueEV `json:"ev"`
}

// HandleQueueEV returns the full EV breakdown for one queue
// @Summary Queue expected value
// @Tags queues
// @Produce json
// @Param queueID path string true "Queue ID"
// @Param win_rate query number false "Win rate (default 0.5)"
// @Success 200 {object} QueueEVResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/queues/{queueID}/ev [get]
func (h *QueueHandler) HandleQueueEV(w http.ResponseWriter, r *http.Request) {
	queueID := chi.URLParam(r, "queueID")

	winRate, err := parseWinRate(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidWinRate)
		return
	}

	table := h.tables.Table()
	if !table.Contains(queueID) {
		respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgQueueNotFound, queueID))
		return
	}

	queueEV, err := h.calc.QueueEV(queueID, winRate)
	if err != nil {
		respondServiceError(w, r, "Queue EV", err)
		return
	}

	respondJSON(w, http.StatusOK, QueueEVResponse{
		TableVersion: table.Version(),
		WinRate:      winRate,
		EV:           queueEV,
	})
}
