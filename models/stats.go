package models

import (
	"fmt"
	"time"
)

// StatsRange is the window statistics are aggregated over
type StatsRange string

const (
	RangeToday StatsRange = "today"
	RangeWeek  StatsRange = "week"
	RangeAll   StatsRange = "all"
)

// ParseStatsRange converts the range query parameter. An empty value means today.
func ParseStatsRange(s string) (StatsRange, error) {
	switch StatsRange(s) {
	case "":
		return RangeToday, nil
	case RangeToday, RangeWeek, RangeAll:
		return StatsRange(s), nil
	default:
		return "", fmt.Errorf("invalid range %q (must be today, week or all)", s)
	}
}

// Contains reports whether t's calendar date, seen from now's location, falls in the window
func (r StatsRange) Contains(t, now time.Time) bool {
	day := StartOfDay(t.In(now.Location()))
	switch r {
	case RangeToday:
		return day.Equal(StartOfDay(now))
	case RangeWeek:
		return !day.Before(StartOfWeek(now))
	default:
		return true
	}
}

// CurrentTask is the open task reported alongside the aggregates
type CurrentTask struct {
	Description string `json:"description"`
	Project     string `json:"project"`
	Type        string `json:"type"`
	StartTime   string `json:"start_time"`
}

// TaskView is a log entry with its derived interval
type TaskView struct {
	Timestamp       string  `json:"timestamp"`
	Description     string  `json:"task_description"`
	Project         string  `json:"project"`
	TaskType        string  `json:"task_type"`
	EndTime         string  `json:"end_time"`
	DurationSeconds float64 `json:"duration_seconds"`
	Date            string  `json:"date"`
}

// Stats is the response of GET /get_stats
type Stats struct {
	Projects    map[string]float64 `json:"projects"`
	Types       map[string]float64 `json:"types"`
	CurrentTask *CurrentTask       `json:"current_task"`
	Tasks       []TaskView         `json:"tasks"`
	Message     string             `json:"message,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// EmptyStats returns a result with no data and the given informational error
func EmptyStats(reason string) *Stats {
	return &Stats{
		Projects: map[string]float64{},
		Types:    map[string]float64{},
		Tasks:    []TaskView{},
		Error:    reason,
	}
}
