package controllers

import (
	"net/http"

	"github.com/blogem/task-tracker/models"
	"github.com/blogem/task-tracker/services"
)

// DashboardController serves the single-page UI
type DashboardController struct {
	services *services.Services
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services) *DashboardController {
	return &DashboardController{
		services: services,
	}
}

// Index handles GET /
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	templateData := struct {
		Title          string
		Ranges         []models.StatsRange
		MaxDescription int
		Uncategorized  string
		StopMarker     string
	}{
		Title:          "Task Tracker",
		Ranges:         []models.StatsRange{models.RangeToday, models.RangeWeek, models.RangeAll},
		MaxDescription: models.MaxDescriptionLength,
		Uncategorized:  models.Uncategorized,
		StopMarker:     models.StopMarker,
	}

	renderTemplate(w, "index", "index.html", templateData)
}
