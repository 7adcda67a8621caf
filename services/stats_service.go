package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blogem/task-tracker/models"
	"github.com/blogem/task-tracker/repositories"
)

var timeNow = func() time.Time {
	return time.Now()
}

// StatsService interface defines time aggregation logic
type StatsService interface {
	GetStats(ctx context.Context, rng models.StatsRange) (*models.Stats, error)
}

// statsService implements StatsService interface
type statsService struct {
	taskLogRepo repositories.TaskLogRepository
}

// NewStatsService creates a new stats service
func NewStatsService(taskLogRepo repositories.TaskLogRepository) StatsService {
	return &statsService{taskLogRepo: taskLogRepo}
}

// GetStats loads the whole log and aggregates it over rng.
// A missing or empty log is not an error; a malformed timestamp is returned
// wrapped in repositories.ErrMalformedTimestamp together with an empty result.
func (s *statsService) GetStats(ctx context.Context, rng models.StatsRange) (*models.Stats, error) {
	entries, err := s.taskLogRepo.LoadAll()
	if errors.Is(err, repositories.ErrLogNotFound) {
		return models.EmptyStats("No data yet."), nil
	}
	if errors.Is(err, repositories.ErrMalformedTimestamp) {
		return models.EmptyStats("Error processing timestamp data."), err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task log: %w", err)
	}

	if len(entries) == 0 {
		return models.EmptyStats("No data yet."), nil
	}

	stats := Aggregate(entries, rng, timeNow())
	return &stats, nil
}

// interval is an entry with its derived end time
type interval struct {
	models.TaskEntry
	end time.Time
}

// seconds returns the interval length, clamped to zero
func (iv interval) seconds() float64 {
	return math.Max(0, iv.end.Sub(iv.Timestamp).Seconds())
}

// Aggregate turns log entries into per-project and per-type minute totals over rng.
// Each entry lasts until the next one starts; the last one runs until now.
// Stop markers close the entry before them and are never counted themselves.
func Aggregate(entries []models.TaskEntry, rng models.StatsRange, now time.Time) models.Stats {
	sorted := make([]models.TaskEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	intervals := make([]interval, len(sorted))
	for i, e := range sorted {
		end := now
		if i+1 < len(sorted) {
			end = sorted[i+1].Timestamp
		}
		intervals[i] = interval{TaskEntry: e, end: end}
	}

	stats := models.Stats{
		Projects: map[string]float64{},
		Types:    map[string]float64{},
		Tasks:    []models.TaskView{},
	}

	if len(sorted) > 0 {
		last := sorted[len(sorted)-1]
		if !last.IsStopMarker() && rng.Contains(last.Timestamp, now) {
			stats.CurrentTask = &models.CurrentTask{
				Description: last.Description,
				Project:     last.Project,
				Type:        last.TaskType,
				StartTime:   models.FormatTimestamp(last.Timestamp),
			}
		}
	}

	projectSeconds := map[string]float64{}
	typeSeconds := map[string]float64{}
	for _, iv := range intervals {
		if iv.IsStopMarker() || !rng.Contains(iv.Timestamp, now) {
			continue
		}

		secs := iv.seconds()
		projectSeconds[iv.Project] += secs
		typeSeconds[iv.TaskType] += secs

		stats.Tasks = append(stats.Tasks, models.TaskView{
			Timestamp:       models.FormatTimestamp(iv.Timestamp),
			Description:     iv.Description,
			Project:         iv.Project,
			TaskType:        iv.TaskType,
			EndTime:         models.FormatTimestamp(iv.end),
			DurationSeconds: secs,
			Date:            models.FormatDate(iv.Timestamp.In(now.Location())),
		})
	}

	if len(stats.Tasks) == 0 {
		stats.Message = fmt.Sprintf("No completed task data to aggregate for range '%s'.", rng)
		return stats
	}

	for name, secs := range projectSeconds {
		stats.Projects[name] = toMinutes(secs)
	}
	for name, secs := range typeSeconds {
		stats.Types[name] = toMinutes(secs)
	}

	return stats
}

// toMinutes converts seconds to minutes rounded to 2 decimal places
func toMinutes(seconds float64) float64 {
	return math.Round(seconds/60*100) / 100
}
