package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/task-tracker/config"
	"github.com/blogem/task-tracker/models"
)

var testTaxonomy = models.Taxonomy{
	Projects: []models.Category{
		{Name: "Dev", Description: "Product engineering"},
		{Name: "Admin", Description: "Email and paperwork"},
	},
	TaskTypes: []models.Category{
		{Name: "Coding", Description: "Writing code"},
		{Name: "Email", Description: "Reading and answering mail"},
	},
}

func newTestCategorizer(url string, timeout time.Duration) Categorizer {
	return NewCategorizer(config.OllamaConfig{APIURL: url, Model: "llama3:latest", Timeout: timeout}, testTaxonomy)
}

// ollamaStub answers every generate call with inner as the "response" string
func ollamaStub(t *testing.T, inner string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "llama3:latest", req.Model)
		assert.Equal(t, "json", req.Format)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "'fix login bug'")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"model": req.Model, "response": inner, "done": true})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCategorize_ValidLabels(t *testing.T) {
	srv := ollamaStub(t, `{"project": "Dev", "task_type": "Coding"}`)

	project, taskType := newTestCategorizer(srv.URL, time.Second).Categorize(context.Background(), "fix login bug")

	assert.Equal(t, "Dev", project)
	assert.Equal(t, "Coding", taskType)
}

func TestCategorize_UnknownLabelsFallBack(t *testing.T) {
	srv := ollamaStub(t, `{"project": "Moonshot", "task_type": "Email"}`)

	project, taskType := newTestCategorizer(srv.URL, time.Second).Categorize(context.Background(), "fix login bug")

	assert.Equal(t, models.Uncategorized, project)
	assert.Equal(t, "Email", taskType)
}

func TestCategorize_ExplicitUncategorizedIsAccepted(t *testing.T) {
	srv := ollamaStub(t, `{"project": "Un-categorized", "task_type": "Coding"}`)

	project, taskType := newTestCategorizer(srv.URL, time.Second).Categorize(context.Background(), "fix login bug")

	assert.Equal(t, models.Uncategorized, project)
	assert.Equal(t, "Coding", taskType)
}

func TestCategorize_FailsSoft(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "invalid inner JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"response": "the project is Dev"}`)
			},
		},
		{
			name: "invalid envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `<html>`)
			},
		},
		{
			name: "missing fields",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"response": ""}`)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model not loaded", http.StatusInternalServerError)
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(2 * time.Second):
				case <-r.Context().Done():
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			project, taskType := newTestCategorizer(srv.URL, 100*time.Millisecond).Categorize(context.Background(), "fix login bug")

			assert.Equal(t, models.Uncategorized, project)
			assert.Equal(t, models.Uncategorized, taskType)
		})
	}
}

func TestCategorize_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	project, taskType := newTestCategorizer(url, time.Second).Categorize(context.Background(), "anything")

	assert.Equal(t, models.Uncategorized, project)
	assert.Equal(t, models.Uncategorized, taskType)
}

func TestCategorize_DisabledWithoutURL(t *testing.T) {
	project, taskType := newTestCategorizer("", time.Second).Categorize(context.Background(), "anything")

	assert.Equal(t, models.Uncategorized, project)
	assert.Equal(t, models.Uncategorized, taskType)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("answer 100% of emails", testTaxonomy)

	assert.Contains(t, prompt, "'answer 100% of emails'")
	assert.Contains(t, prompt, "Available Project Categories:\n* Name: Dev\n  Description: Product engineering\n* Name: Admin")
	assert.Contains(t, prompt, "Available Task Type Categories:\n* Name: Coding\n  Description: Writing code")
	assert.Contains(t, prompt, `choose "Un-categorized"`)
	assert.Contains(t, prompt, `{"project": "Chosen Project Name", "task_type": "Chosen Task Type Name"}`)
}
