package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/blogem/task-tracker/models"
	"github.com/blogem/task-tracker/repositories"
	"github.com/blogem/task-tracker/services"
)

// StatsController serves the aggregated time report
type StatsController struct {
	services *services.Services
}

// NewStatsController creates a new stats controller
func NewStatsController(services *services.Services) *StatsController {
	return &StatsController{
		services: services,
	}
}

// GetStats handles GET /get_stats?range=today|week|all
func (c *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	rng, err := models.ParseStatsRange(r.URL.Query().Get("range"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := c.services.Stats.GetStats(r.Context(), rng)
	if errors.Is(err, repositories.ErrMalformedTimestamp) {
		slog.Error("task log has a malformed timestamp", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, stats)
		return
	}
	if err != nil {
		slog.Error("failed to calculate stats", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Internal server error calculating stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
