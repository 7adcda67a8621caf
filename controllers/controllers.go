package controllers

import (
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/blogem/task-tracker/repositories"
	"github.com/blogem/task-tracker/services"
	"github.com/blogem/task-tracker/web"
)

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	tmpl := template.New(templateName)

	// Parse layout and page template
	_, err := tmpl.ParseFS(web.Templates(), "layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// statusResponse is the envelope of every mutating endpoint
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

func writeSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "success", Message: message})
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, statusResponse{Status: "error", Message: message})
}

// writeServiceError maps service and repository errors onto HTTP responses
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, strings.Join(validationErr.Messages, ", "))
	case errors.Is(err, repositories.ErrLogNotFound):
		writeError(w, http.StatusNotFound, "No task log found")
	case errors.Is(err, repositories.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, "Task entry not found")
	case errors.Is(err, repositories.ErrAmbiguousTimestamp):
		writeError(w, http.StatusConflict, "More than one task entry has this timestamp")
	case errors.Is(err, services.ErrStopMarkerImmutable):
		writeError(w, http.StatusBadRequest, "Stop markers cannot be recategorized")
	default:
		slog.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads the request body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Controllers holds all controller instances
type Controllers struct {
	Dashboard *DashboardController
	Tasks     *TaskController
	Stats     *StatsController
	Audit     *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Dashboard: NewDashboardController(services),
		Tasks:     NewTaskController(services),
		Stats:     NewStatsController(services),
		Audit:     NewAuditController(services),
	}
}
