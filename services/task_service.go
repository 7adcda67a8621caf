package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/blogem/task-tracker/models"
	"github.com/blogem/task-tracker/repositories"
)

var (
	// ErrValidation matches every *ValidationError
	ErrValidation = errors.New("validation failed")
	// ErrStopMarkerImmutable is returned when a correction targets a stop row
	ErrStopMarkerImmutable = errors.New("stop markers cannot be recategorized")
)

// ValidationError carries the user-facing messages of a rejected form
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Messages, ", ")
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TaskService interface defines task logging business logic
type TaskService interface {
	LogTask(ctx context.Context, form *models.LogTaskForm) (*models.TaskEntry, error)
	StopTask(ctx context.Context) (*StopResult, error)
	ClearRecent(ctx context.Context, form *models.ClearRecentForm) (*ClearResult, error)
	UpdateCategories(ctx context.Context, form *models.CategoryUpdateForm) error
	GetCategories() models.Taxonomy
}

// StopResult reports what a stop request did
type StopResult struct {
	AlreadyStopped bool
	Entry          *models.TaskEntry
}

// ClearResult reports what a clear request did
type ClearResult struct {
	Minutes      int
	ClearedCount int
	LogMissing   bool
}

// taskService implements TaskService interface
type taskService struct {
	taskLogRepo repositories.TaskLogRepository
	categorizer Categorizer
	taxonomy    models.Taxonomy
}

// NewTaskService creates a new task service
func NewTaskService(taskLogRepo repositories.TaskLogRepository, categorizer Categorizer, taxonomy models.Taxonomy) TaskService {
	return &taskService{
		taskLogRepo: taskLogRepo,
		categorizer: categorizer,
		taxonomy:    taxonomy,
	}
}

// LogTask timestamps, categorizes and appends a new task switch
func (s *taskService) LogTask(ctx context.Context, form *models.LogTaskForm) (*models.TaskEntry, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	description := strings.TrimSpace(form.Description)
	timestamp := timeNow()

	slog.Info("categorizing task", slog.String("description", description))
	project, taskType := s.categorizer.Categorize(ctx, description)
	slog.Info("task categorized", slog.String("project", project), slog.String("type", taskType))

	entry := models.TaskEntry{
		Timestamp:   timestamp,
		Description: description,
		Project:     project,
		TaskType:    taskType,
	}

	if err := s.taskLogRepo.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to log task: %w", err)
	}

	return &entry, nil
}

// StopTask appends a stop marker unless the log already ends with one
func (s *taskService) StopTask(ctx context.Context) (*StopResult, error) {
	last, err := s.taskLogRepo.Last()
	if err != nil {
		// An unreadable log must not prevent stopping; the marker is still useful.
		slog.Warn("could not read last task entry to check if stopped", slog.Any("error", err))
	} else if last != nil && last.IsStopMarker() {
		return &StopResult{AlreadyStopped: true, Entry: last}, nil
	}

	marker := models.NewStopMarker(timeNow())
	if err := s.taskLogRepo.Append(marker); err != nil {
		return nil, fmt.Errorf("failed to log stop marker: %w", err)
	}

	return &StopResult{Entry: &marker}, nil
}

// ClearRecent deletes entries logged within the last form.Minutes minutes
func (s *taskService) ClearRecent(ctx context.Context, form *models.ClearRecentForm) (*ClearResult, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Messages: errs}
	}

	minutes := *form.Minutes
	cutoff := timeNow().Add(-time.Duration(minutes) * time.Minute)

	cleared, err := s.taskLogRepo.DeleteSince(cutoff)
	if errors.Is(err, repositories.ErrLogNotFound) {
		return &ClearResult{Minutes: minutes, LogMissing: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to clear recent entries: %w", err)
	}

	slog.Info("cleared recent entries", slog.Int("minutes", minutes), slog.Int("count", cleared))
	return &ClearResult{Minutes: minutes, ClearedCount: cleared}, nil
}

// UpdateCategories corrects the project and task type of the entry at form.Timestamp
func (s *taskService) UpdateCategories(ctx context.Context, form *models.CategoryUpdateForm) error {
	if errs := form.Validate(); len(errs) > 0 {
		return &ValidationError{Messages: errs}
	}

	timestamp, err := models.ParseTimestamp(strings.TrimSpace(form.Timestamp))
	if err != nil {
		return &ValidationError{Messages: []string{err.Error()}}
	}

	entries, err := s.taskLogRepo.LoadAll()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Timestamp.Equal(timestamp) && e.IsStopMarker() {
			return ErrStopMarkerImmutable
		}
	}

	project := strings.TrimSpace(form.Project)
	taskType := strings.TrimSpace(form.TaskType)
	if err := s.taskLogRepo.UpdateCategories(timestamp, project, taskType); err != nil {
		return err
	}

	slog.Info("task recategorized", slog.String("timestamp", models.FormatTimestamp(timestamp)),
		slog.String("project", project), slog.String("type", taskType))
	return nil
}

// GetCategories returns the configured taxonomy
func (s *taskService) GetCategories() models.Taxonomy {
	return s.taxonomy
}
