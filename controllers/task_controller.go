package controllers

import (
	"fmt"
	"net/http"

	"github.com/blogem/task-tracker/models"
	"github.com/blogem/task-tracker/services"
)

// TaskController handles task logging requests
type TaskController struct {
	services *services.Services
}

// NewTaskController creates a new task controller
func NewTaskController(services *services.Services) *TaskController {
	return &TaskController{
		services: services,
	}
}

type logTaskResponse struct {
	statusResponse
	Project   string `json:"project"`
	TaskType  string `json:"task_type"`
	Timestamp string `json:"timestamp"`
}

type clearResponse struct {
	statusResponse
	ClearedCount int `json:"cleared_count"`
}

// LogTask handles POST /log_task
func (c *TaskController) LogTask(w http.ResponseWriter, r *http.Request) {
	var form models.LogTaskForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "No description provided")
		return
	}

	entry, err := c.services.Tasks.LogTask(r.Context(), &form)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, logTaskResponse{
		statusResponse: statusResponse{Status: "success", Message: "Task logged"},
		Project:        entry.Project,
		TaskType:       entry.TaskType,
		Timestamp:      models.FormatTimestamp(entry.Timestamp),
	})
}

// StopTask handles POST /stop_task
func (c *TaskController) StopTask(w http.ResponseWriter, r *http.Request) {
	result, err := c.services.Tasks.StopTask(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if result.AlreadyStopped {
		writeSuccess(w, "Task already stopped.")
		return
	}
	writeSuccess(w, "Stop marker logged.")
}

// ClearRecent handles POST /clear_recent
func (c *TaskController) ClearRecent(w http.ResponseWriter, r *http.Request) {
	var form models.ClearRecentForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid number of minutes.")
		return
	}

	result, err := c.services.Tasks.ClearRecent(r.Context(), &form)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	message := fmt.Sprintf("Cleared entries from the last %d minutes.", result.Minutes)
	if result.LogMissing {
		message = "Log file doesn't exist."
	}
	writeJSON(w, http.StatusOK, clearResponse{
		statusResponse: statusResponse{Status: "success", Message: message},
		ClearedCount:   result.ClearedCount,
	})
}

// UpdateCategories handles POST /update_task_categories
func (c *TaskController) UpdateCategories(w http.ResponseWriter, r *http.Request) {
	var form models.CategoryUpdateForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := c.services.Tasks.UpdateCategories(r.Context(), &form); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, "Categories updated successfully")
}

// GetCategories handles GET /get_categories
func (c *TaskController) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.services.Tasks.GetCategories())
}
