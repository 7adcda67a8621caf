package controllers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/task-tracker/config"
	"github.com/blogem/task-tracker/database"
	"github.com/blogem/task-tracker/models"
	"github.com/blogem/task-tracker/repositories"
	"github.com/blogem/task-tracker/services"
)

type testEnv struct {
	ctrl    *Controllers
	repos   *repositories.Repositories
	logPath string
}

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "audit_test.db")
	require.NoError(t, database.InitializeDatabase(dbPath))
	t.Cleanup(func() { database.CloseDB() })
	return database.GetDB()
}

// setupTestEnv wires real services against a temp log and an inference stub
// that labels everything Dev/Coding
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ollama := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response": "{\"project\": \"Dev\", \"task_type\": \"Coding\"}"}`)
	}))
	t.Cleanup(ollama.Close)

	cfg := config.Default()
	cfg.Ollama.APIURL = ollama.URL
	cfg.Ollama.Timeout = time.Second
	cfg.Taxonomy = models.Taxonomy{
		Projects:  []models.Category{{Name: "Dev", Description: "Engineering"}},
		TaskTypes: []models.Category{{Name: "Coding", Description: "Writing code"}},
	}

	logPath := filepath.Join(t.TempDir(), "results", "task_log.csv")
	repos := repositories.NewRepositories(setupTestDB(t), logPath)
	require.NoError(t, repos.TaskLog.EnsureExists())

	return &testEnv{
		ctrl:    NewControllers(services.NewServices(repos, cfg)),
		repos:   repos,
		logPath: logPath,
	}
}

func do(handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestLogTask(t *testing.T) {
	env := setupTestEnv(t)

	rec := do(env.ctrl.Tasks.LogTask, http.MethodPost, "/log_task", `{"description":"  fix login bug "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Task logged", body["message"])
	assert.Equal(t, "Dev", body["project"])
	assert.Equal(t, "Coding", body["task_type"])

	entries, err := env.repos.TaskLog.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fix login bug", entries[0].Description)
}

func TestLogTask_Validation(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty description", `{"description":"   "}`, "No description provided"},
		{"missing field", `{}`, "No description provided"},
		{"no body", ``, "No description provided"},
		{"invalid JSON", `{"description":`, "No description provided"},
		{"too long", fmt.Sprintf(`{"description":"%s"}`, strings.Repeat("x", models.MaxDescriptionLength+1)),
			fmt.Sprintf("Description must be less than %d characters", models.MaxDescriptionLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(env.ctrl.Tasks.LogTask, http.MethodPost, "/log_task", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.message, body["message"])
		})
	}

	entries, err := env.repos.TaskLog.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStopTask(t *testing.T) {
	env := setupTestEnv(t)

	rec := do(env.ctrl.Tasks.StopTask, http.MethodPost, "/stop_task", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Stop marker logged.", decodeBody(t, rec)["message"])

	rec = do(env.ctrl.Tasks.StopTask, http.MethodPost, "/stop_task", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Task already stopped.", decodeBody(t, rec)["message"])

	entries, err := env.repos.TaskLog.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsStopMarker())
}

func TestClearRecent(t *testing.T) {
	env := setupTestEnv(t)

	old := models.TaskEntry{Timestamp: time.Now().Add(-2 * time.Hour), Description: "old", Project: "Dev", TaskType: "Coding"}
	require.NoError(t, env.repos.TaskLog.Append(old))
	do(env.ctrl.Tasks.LogTask, http.MethodPost, "/log_task", `{"description":"new"}`)

	rec := do(env.ctrl.Tasks.ClearRecent, http.MethodPost, "/clear_recent", `{"minutes":10}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Cleared entries from the last 10 minutes.", body["message"])
	assert.Equal(t, float64(1), body["cleared_count"])

	entries, err := env.repos.TaskLog.LoadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "old", entries[0].Description)
}

func TestClearRecent_InvalidMinutes(t *testing.T) {
	env := setupTestEnv(t)

	for _, body := range []string{`{"minutes":0}`, `{"minutes":-5}`, `{}`, `{"minutes":"ten"}`, `{"minutes":1.5}`} {
		rec := do(env.ctrl.Tasks.ClearRecent, http.MethodPost, "/clear_recent", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Invalid number of minutes.", decodeBody(t, rec)["message"], body)
	}
}

func TestClearRecent_MissingLog(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, os.Remove(env.logPath))

	rec := do(env.ctrl.Tasks.ClearRecent, http.MethodPost, "/clear_recent", `{"minutes":5}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Log file doesn't exist.", body["message"])
	assert.Equal(t, float64(0), body["cleared_count"])
}

func TestUpdateCategories(t *testing.T) {
	env := setupTestEnv(t)
	ts := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	require.NoError(t, env.repos.TaskLog.Append(models.TaskEntry{Timestamp: ts, Description: "standup", Project: "Dev", TaskType: "Coding"}))
	require.NoError(t, env.repos.TaskLog.Append(models.NewStopMarker(ts.Add(time.Hour))))

	tests := []struct {
		name    string
		body    string
		code    int
		message string
	}{
		{"success", `{"timestamp":"2026-10-19T09:00:00Z","project":"Un-categorized","task_type":"Coding"}`,
			http.StatusOK, "Categories updated successfully"},
		{"missing fields", `{"timestamp":"2026-10-19T09:00:00Z","project":"Dev"}`,
			http.StatusBadRequest, "Missing required fields"},
		{"bad timestamp", `{"timestamp":"yesterday","project":"Dev","task_type":"Coding"}`,
			http.StatusBadRequest, "Timestamp format is invalid"},
		{"unknown entry", `{"timestamp":"2026-10-19T08:00:00Z","project":"Dev","task_type":"Coding"}`,
			http.StatusNotFound, "Task entry not found"},
		{"stop marker", `{"timestamp":"2026-10-19T10:00:00Z","project":"Dev","task_type":"Coding"}`,
			http.StatusBadRequest, "Stop markers cannot be recategorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(env.ctrl.Tasks.UpdateCategories, http.MethodPost, "/update_task_categories", tt.body)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.message, decodeBody(t, rec)["message"])
		})
	}

	entries, err := env.repos.TaskLog.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, models.Uncategorized, entries[0].Project)
}

func TestUpdateCategories_Ambiguous(t *testing.T) {
	env := setupTestEnv(t)
	ts := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	require.NoError(t, env.repos.TaskLog.Append(models.TaskEntry{Timestamp: ts, Description: "a", Project: "Dev", TaskType: "Coding"}))
	require.NoError(t, env.repos.TaskLog.Append(models.TaskEntry{Timestamp: ts, Description: "b", Project: "Dev", TaskType: "Coding"}))

	rec := do(env.ctrl.Tasks.UpdateCategories, http.MethodPost, "/update_task_categories",
		`{"timestamp":"2026-10-19T09:00:00Z","project":"Dev","task_type":"Coding"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateCategories_MissingLog(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, os.Remove(env.logPath))

	rec := do(env.ctrl.Tasks.UpdateCategories, http.MethodPost, "/update_task_categories",
		`{"timestamp":"2026-10-19T09:00:00Z","project":"Dev","task_type":"Coding"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No task log found", decodeBody(t, rec)["message"])
}

func TestGetCategories(t *testing.T) {
	env := setupTestEnv(t)

	rec := do(env.ctrl.Tasks.GetCategories, http.MethodGet, "/get_categories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var taxonomy models.Taxonomy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &taxonomy))
	assert.Equal(t, "Dev", taxonomy.Projects[0].Name)
	assert.Equal(t, "Writing code", taxonomy.TaskTypes[0].Description)
	assert.Contains(t, rec.Body.String(), `"project_categories"`)
	assert.Contains(t, rec.Body.String(), `"task_type_categories"`)
}

func TestGetStats(t *testing.T) {
	env := setupTestEnv(t)
	do(env.ctrl.Tasks.LogTask, http.MethodPost, "/log_task", `{"description":"fix login bug"}`)

	rec := do(env.ctrl.Stats.GetStats, http.MethodGet, "/get_stats?range=all", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.NotNil(t, stats.CurrentTask)
	assert.Equal(t, "fix login bug", stats.CurrentTask.Description)
	assert.Equal(t, "Dev", stats.CurrentTask.Project)
	require.Len(t, stats.Tasks, 1)
	assert.Contains(t, stats.Projects, "Dev")
}

func TestGetStats_EmptyLog(t *testing.T) {
	env := setupTestEnv(t)

	rec := do(env.ctrl.Stats.GetStats, http.MethodGet, "/get_stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No data yet.", body["error"])
	assert.Nil(t, body["current_task"])
	assert.Empty(t, body["tasks"])
}

func TestGetStats_InvalidRange(t *testing.T) {
	env := setupTestEnv(t)

	rec := do(env.ctrl.Stats.GetStats, http.MethodGet, "/get_stats?range=month", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", decodeBody(t, rec)["status"])
}

func TestGetStats_MalformedTimestamp(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, os.WriteFile(env.logPath,
		[]byte("timestamp,task_description,project,task_type\nnot-a-time,x,Dev,Coding\n"), 0644))

	rec := do(env.ctrl.Stats.GetStats, http.MethodGet, "/get_stats?range=all", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Error processing timestamp data.", body["error"])
	assert.Empty(t, body["projects"])
}

func TestAuditIndex(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, env.repos.Audit.Create(&models.AuditLogEntry{
		Timestamp: time.Now(), Method: http.MethodPost, Path: "/stop_task", Body: "{}",
	}))

	rec := do(env.ctrl.Audit.Index, http.MethodGet, "/audit_log?limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.AuditLogEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "/stop_task", entries[0].Path)
}

func TestAuditIndex_InvalidLimit(t *testing.T) {
	env := setupTestEnv(t)

	for _, target := range []string{"/audit_log?limit=abc", "/audit_log?limit=0", "/audit_log?limit=100000"} {
		rec := do(env.ctrl.Audit.Index, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestDashboardIndex(t *testing.T) {
	env := setupTestEnv(t)

	rec := do(env.ctrl.Dashboard.Index, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	html := rec.Body.String()
	assert.Contains(t, html, "<title>Task Tracker</title>")
	assert.Contains(t, html, `id="taskInput"`)
	assert.Contains(t, html, `data-range="week"`)
	assert.Contains(t, html, `data-stop-marker="--STOPPED--"`)
	assert.Contains(t, html, "/static/script.js")
}
