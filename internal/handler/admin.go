package handler

import (
	"net/http"

	"github.com/arenatools/questplanner/internal/logger"
	"github.com/arenatools/questplanner/internal/metrics"
	"github.com/arenatools/questplanner/internal/rewards"
)

// HandleReloadTables re-reads the reward table file and swaps it in (admin only)
// @Summary Reload reward tables
// @Description Reloads the queue reward tables from the configured JSON file
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /admin/reload-tables [post]
// @Security ApiKeyAuth
func HandleReloadTables(tables *rewards.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		log.Info("Reloading reward tables")

		if err := tables.Reload(ctx); err != nil {
			log.Error("Failed to reload reward tables", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadTablesFailed)
			return
		}

		metrics.TableReloads.Inc()

		table := tables.Table()
		response := map[string]interface{}{
			"message":       MsgTablesReloadedSuccess,
			"table_version": table.Version(),
			"queues":        table.Len(),
		}

		respondJSON(w, http.StatusOK, response)
	}
}
