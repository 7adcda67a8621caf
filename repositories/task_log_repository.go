package repositories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/blogem/task-tracker/models"
)

var (
	// ErrLogNotFound is returned when the log file has not been created yet
	ErrLogNotFound = errors.New("task log not found")
	// ErrTaskNotFound is returned when no row matches a timestamp
	ErrTaskNotFound = errors.New("task entry not found")
	// ErrAmbiguousTimestamp is returned when several rows share the requested timestamp
	ErrAmbiguousTimestamp = errors.New("several task entries share this timestamp")
	// ErrMalformedTimestamp is returned when a row's timestamp cannot be parsed
	ErrMalformedTimestamp = errors.New("malformed timestamp in task log")
)

// logHeader is the fixed header of the task log
var logHeader = []string{"timestamp", "task_description", "project", "task_type"}

// TaskLogRepository interface defines task log storage operations
type TaskLogRepository interface {
	EnsureExists() error
	Append(entry models.TaskEntry) error
	LoadAll() ([]models.TaskEntry, error)
	Last() (*models.TaskEntry, error)
	DeleteSince(cutoff time.Time) (int, error)
	UpdateCategories(timestamp time.Time, project, taskType string) error
}

// csvTaskLogRepository implements TaskLogRepository on a comma-delimited file
type csvTaskLogRepository struct {
	path string
	mu   sync.Mutex
}

// NewTaskLogRepository creates a task log repository backed by the CSV file at path
func NewTaskLogRepository(path string) TaskLogRepository {
	return &csvTaskLogRepository{path: path}
}

// EnsureExists creates the log file with its header if it is absent or empty
func (r *csvTaskLogRepository) EnsureExists() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureExists()
}

func (r *csvTaskLogRepository) ensureExists() error {
	info, err := os.Stat(r.path)
	if err == nil && info.Size() > 0 {
		return nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat task log: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create task log directory: %w", err)
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to create task log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(logHeader); err != nil {
		return fmt.Errorf("failed to write task log header: %w", err)
	}
	w.Flush()
	return w.Error()
}

// Append adds one row at the end of the log
func (r *csvTaskLogRepository) Append(entry models.TaskEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureExists(); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open task log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(toRecord(entry)); err != nil {
		return fmt.Errorf("failed to append task entry: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to append task entry: %w", err)
	}

	return nil
}

// LoadAll returns every row in file order
func (r *csvTaskLogRepository) LoadAll() ([]models.TaskEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadAll()
}

func (r *csvTaskLogRepository) loadAll() ([]models.TaskEntry, error) {
	rows, err := r.loadRows()
	if err != nil {
		return nil, err
	}

	entries := make([]models.TaskEntry, 0, len(rows))
	for _, row := range rows {
		if row.entry != nil {
			entries = append(entries, *row.entry)
		}
	}
	return entries, nil
}

// logRow is one data row of the file. Rows with the wrong field count keep
// their raw record so a rewrite puts them back unchanged.
type logRow struct {
	entry *models.TaskEntry
	raw   []string
}

func (r *csvTaskLogRepository) loadRows() ([]logRow, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open task log: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows []logRow
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read task log line %d: %w", line, err)
		}

		if line == 1 && record[0] == logHeader[0] {
			continue
		}
		if len(record) != len(logHeader) {
			slog.Warn("skipping malformed task log row", slog.Int("line", line), slog.Int("fields", len(record)))
			rows = append(rows, logRow{raw: record})
			continue
		}

		ts, err := models.ParseTimestamp(record[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedTimestamp, line, err)
		}

		rows = append(rows, logRow{entry: &models.TaskEntry{
			Timestamp:   ts,
			Description: record[1],
			Project:     record[2],
			TaskType:    record[3],
		}})
	}

	return rows, nil
}

// Last returns the final row, or nil when the log is missing or has no rows
func (r *csvTaskLogRepository) Last() (*models.TaskEntry, error) {
	entries, err := r.LoadAll()
	if errors.Is(err, ErrLogNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	last := entries[len(entries)-1]
	return &last, nil
}

// DeleteSince rewrites the log keeping only rows strictly older than cutoff.
// Unparsed rows are kept as they are.
func (r *csvTaskLogRepository) DeleteSince(cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.loadRows()
	if err != nil {
		return 0, err
	}

	kept := make([]logRow, 0, len(rows))
	for _, row := range rows {
		if row.entry == nil || row.entry.Timestamp.Before(cutoff) {
			kept = append(kept, row)
		}
	}

	removed := len(rows) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := r.rewrite(kept); err != nil {
		return 0, err
	}

	return removed, nil
}

// UpdateCategories replaces project and task type of the single row at timestamp
func (r *csvTaskLogRepository) UpdateCategories(timestamp time.Time, project, taskType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.loadRows()
	if err != nil {
		return err
	}

	match := -1
	for i, row := range rows {
		if row.entry == nil || !row.entry.Timestamp.Equal(timestamp) {
			continue
		}
		if match != -1 {
			return ErrAmbiguousTimestamp
		}
		match = i
	}

	if match == -1 {
		return ErrTaskNotFound
	}

	rows[match].entry.Project = project
	rows[match].entry.TaskType = taskType

	return r.rewrite(rows)
}

// rewrite replaces the log with rows through a temp file and a rename,
// keeping the permissions of the current file
func (r *csvTaskLogRepository) rewrite(rows []logRow) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(r.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp task log: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set temp task log mode: %w", err)
	}

	w := csv.NewWriter(tmp)
	if err := w.Write(logHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write task log header: %w", err)
	}
	for _, row := range rows {
		record := row.raw
		if row.entry != nil {
			record = toRecord(*row.entry)
		}
		if err := w.Write(record); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write task entry: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write task log: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp task log: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace task log: %w", err)
	}

	return nil
}

func toRecord(e models.TaskEntry) []string {
	return []string{models.FormatTimestamp(e.Timestamp), e.Description, e.Project, e.TaskType}
}
