package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/blogem/task-tracker/config"
	"github.com/blogem/task-tracker/models"
)

// Categorizer assigns a project and a task type to a free-text description.
// Implementations never fail: anything that goes wrong yields Un-categorized labels.
type Categorizer interface {
	Categorize(ctx context.Context, description string) (project, taskType string)
}

// generateRequest is the body of an Ollama /api/generate call
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format"`
}

// generateResponse is the envelope returned by /api/generate; Response holds a JSON document as a string
type generateResponse struct {
	Response string `json:"response"`
}

// categoryChoice is the document the model is asked to produce
type categoryChoice struct {
	Project  *string `json:"project"`
	TaskType *string `json:"task_type"`
}

// ollamaCategorizer implements Categorizer against a local Ollama endpoint
type ollamaCategorizer struct {
	apiURL   string
	model    string
	taxonomy models.Taxonomy
	http     *http.Client
}

// NewCategorizer creates a categorizer for the configured inference endpoint
func NewCategorizer(cfg config.OllamaConfig, taxonomy models.Taxonomy) Categorizer {
	return &ollamaCategorizer{
		apiURL:   cfg.APIURL,
		model:    cfg.Model,
		taxonomy: taxonomy,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Categorize asks the model for labels and validates them against the taxonomy
func (c *ollamaCategorizer) Categorize(ctx context.Context, description string) (string, string) {
	if c.apiURL == "" {
		slog.Warn("ollama API URL not configured, skipping categorization")
		return models.Uncategorized, models.Uncategorized
	}

	choice, err := c.generate(ctx, BuildPrompt(description, c.taxonomy))
	if err != nil {
		slog.Error("categorization failed", slog.String("url", c.apiURL), slog.Any("error", err))
		return models.Uncategorized, models.Uncategorized
	}

	project := validLabel("project", choice.Project, c.taxonomy.ValidProjects())
	taskType := validLabel("task type", choice.TaskType, c.taxonomy.ValidTaskTypes())
	return project, taskType
}

func (c *ollamaCategorizer) generate(ctx context.Context, prompt string) (*categoryChoice, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Format: "json",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("ollama: unexpected status %d: %s", resp.StatusCode, string(snippet))
	}

	var envelope generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("ollama: decode envelope: %w", err)
	}

	raw := envelope.Response
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}

	var choice categoryChoice
	if err := json.Unmarshal([]byte(raw), &choice); err != nil {
		return nil, fmt.Errorf("ollama: parse response %q: %w", raw, err)
	}

	slog.Debug("ollama responded", slog.Duration("dur", time.Since(start)), slog.String("response", raw))
	return &choice, nil
}

func validLabel(kind string, value *string, valid map[string]bool) string {
	if value == nil {
		return models.Uncategorized
	}
	if !valid[*value] {
		slog.Warn("model returned unknown label, using Un-categorized", slog.String("kind", kind), slog.String("label", *value))
		return models.Uncategorized
	}
	return *value
}

// BuildPrompt renders the classification prompt for description
func BuildPrompt(description string, taxonomy models.Taxonomy) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nAnalyze the following task description entered by a user:\n'%s'\n\n", description)
	b.WriteString("Your goal is to classify this task into the single most appropriate project category and the single most appropriate task type category based *only* on the definitions provided below.\n")
	b.WriteString("Carefully consider the meaning and keywords in the user's description and match them against the category names AND their detailed descriptions to find the best fit.\n\n")

	b.WriteString("Available Project Categories:\n")
	writeCategories(&b, taxonomy.Projects)
	b.WriteString("\n\nAvailable Task Type Categories:\n")
	writeCategories(&b, taxonomy.TaskTypes)

	fmt.Fprintf(&b, `

Instructions:
1. Choose exactly one project category name from the available project names listed above.
2. Choose exactly one task type category name from the available task type names listed above.
3. If the user's description does not clearly fit any of the specific categories defined (considering both name and description), choose "%s" for that specific category (project or task type or both).
4. Respond *only* with a valid JSON object containing the chosen project name and task type name. Do not add any explanation or introductory text. The JSON object should look exactly like this:
{"project": "Chosen Project Name", "task_type": "Chosen Task Type Name"}
`, models.Uncategorized)

	return b.String()
}

func writeCategories(b *strings.Builder, categories []models.Category) {
	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("* Name: %s\n  Description: %s", c.Name, c.Description))
	}
	b.WriteString(strings.Join(lines, "\n"))
}
