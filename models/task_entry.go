package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// StopMarker is written to both category columns of a stop row
	StopMarker = "--STOPPED--"
	// StopDescription is the description column of a stop row
	StopDescription = "Task Stopped"
	// Uncategorized is the fallback label for both taxonomies
	Uncategorized = "Un-categorized"

	MaxDescriptionLength = 1000
)

// TaskEntry represents a single row of the task log
type TaskEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"task_description"`
	Project     string    `json:"project"`
	TaskType    string    `json:"task_type"`
}

// NewStopMarker returns the sentinel row that closes the running task at ts
func NewStopMarker(ts time.Time) TaskEntry {
	return TaskEntry{
		Timestamp:   ts,
		Description: StopDescription,
		Project:     StopMarker,
		TaskType:    StopMarker,
	}
}

// IsStopMarker reports whether the entry is an explicit end-of-task row
func (e TaskEntry) IsStopMarker() bool {
	return e.Project == StopMarker && e.TaskType == StopMarker
}

// LogTaskForm represents the body of POST /log_task
type LogTaskForm struct {
	Description string `json:"description"`
}

// Validate validates the log task form data
func (f *LogTaskForm) Validate() []string {
	var errors []string

	description := strings.TrimSpace(f.Description)
	if description == "" {
		errors = append(errors, "No description provided")
	}

	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		errors = append(errors, fmt.Sprintf("Description must be less than %d characters", MaxDescriptionLength))
	}

	return errors
}

// ClearRecentForm represents the body of POST /clear_recent
type ClearRecentForm struct {
	Minutes *int `json:"minutes"`
}

// Validate validates the clear recent form data
func (f *ClearRecentForm) Validate() []string {
	if f.Minutes == nil || *f.Minutes <= 0 {
		return []string{"Invalid number of minutes."}
	}
	return nil
}

// CategoryUpdateForm represents the body of POST /update_task_categories
type CategoryUpdateForm struct {
	Timestamp string `json:"timestamp"`
	Project   string `json:"project"`
	TaskType  string `json:"task_type"`
}

// Validate validates the category update form data
func (f *CategoryUpdateForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Timestamp) == "" || strings.TrimSpace(f.Project) == "" || strings.TrimSpace(f.TaskType) == "" {
		errors = append(errors, "Missing required fields")
		return errors
	}

	if _, err := ParseTimestamp(strings.TrimSpace(f.Timestamp)); err != nil {
		errors = append(errors, "Timestamp format is invalid")
	}

	return errors
}
