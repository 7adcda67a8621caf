package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/blogem/task-tracker/models"
)

const (
	defaultOllamaURL     = "http://localhost:11434/api/generate"
	defaultOllamaModel   = "llama3:latest"
	defaultOllamaTimeout = 60
)

// Config holds the categorization settings read from the YAML config file.
type Config struct {
	Ollama   OllamaConfig
	Taxonomy models.Taxonomy
}

// OllamaConfig describes the inference endpoint.
type OllamaConfig struct {
	// APIURL is empty when categorization is disabled.
	APIURL  string
	Model   string
	Timeout time.Duration
}

// ServerConfig holds process settings read from the environment.
type ServerConfig struct {
	Host        string
	Port        string
	ConfigPath  string
	TaskLogPath string
	AuditDBPath string
	LogLevel    string
	LogFormat   string // "text" or "json"
}

// fileConfig mirrors config.yaml. Pointers distinguish an absent key from an empty one.
type fileConfig struct {
	OllamaAPIURL       *string        `yaml:"ollama_api_url"`
	OllamaModel        *string        `yaml:"ollama_model"`
	OllamaTimeout      *int           `yaml:"ollama_request_timeout"`
	ProjectCategories  []fileCategory `yaml:"project_categories"`
	TaskTypeCategories []fileCategory `yaml:"task_type_categories"`
}

type fileCategory struct {
	Name        *string `yaml:"name"`
	Description *string `yaml:"description"`
}

// Default returns the configuration used when no usable config file exists.
func Default() *Config {
	return &Config{
		Ollama: OllamaConfig{
			APIURL:  defaultOllamaURL,
			Model:   defaultOllamaModel,
			Timeout: defaultOllamaTimeout * time.Second,
		},
		Taxonomy: models.Taxonomy{
			Projects:  []models.Category{{Name: "Default Project", Description: "Default"}},
			TaskTypes: []models.Category{{Name: "Default Task", Description: "Default"}},
		},
	}
}

// Load reads the YAML config file at path. A missing, empty or malformed file
// is logged and replaced by defaults; the returned error is only for I/O failures
// other than the file not existing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("config file not found, using defaults", slog.String("path", path))
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data, path), nil
}

// Parse builds a Config from YAML bytes, falling back to defaults key by key.
func Parse(data []byte, source string) *Config {
	cfg := Default()

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		slog.Warn("could not parse config file, using defaults", slog.String("path", source), slog.Any("error", err))
		return cfg
	}
	if isEmpty(fc) {
		slog.Warn("config file is empty, using defaults", slog.String("path", source))
		return cfg
	}

	if fc.OllamaAPIURL != nil {
		cfg.Ollama.APIURL = *fc.OllamaAPIURL
	}
	if fc.OllamaModel != nil && *fc.OllamaModel != "" {
		cfg.Ollama.Model = *fc.OllamaModel
	}
	if fc.OllamaTimeout != nil {
		if *fc.OllamaTimeout > 0 {
			cfg.Ollama.Timeout = time.Duration(*fc.OllamaTimeout) * time.Second
		} else {
			slog.Warn("ollama_request_timeout must be positive, using default", slog.Int("value", *fc.OllamaTimeout))
		}
	}
	if fc.ProjectCategories != nil {
		cfg.Taxonomy.Projects = toCategories("project", fc.ProjectCategories)
	}
	if fc.TaskTypeCategories != nil {
		cfg.Taxonomy.TaskTypes = toCategories("task type", fc.TaskTypeCategories)
	}

	return cfg
}

func isEmpty(fc fileConfig) bool {
	return fc.OllamaAPIURL == nil && fc.OllamaModel == nil && fc.OllamaTimeout == nil &&
		fc.ProjectCategories == nil && fc.TaskTypeCategories == nil
}

// toCategories drops items missing a name or a description.
func toCategories(kind string, items []fileCategory) []models.Category {
	categories := make([]models.Category, 0, len(items))
	for i, item := range items {
		if item.Name == nil || item.Description == nil || *item.Name == "" {
			slog.Warn("invalid category item, skipping", slog.String("kind", kind), slog.Int("index", i))
			continue
		}
		categories = append(categories, models.Category{Name: *item.Name, Description: *item.Description})
	}
	return categories
}

// LoadServer reads process settings from environment variables with defaults.
func LoadServer() ServerConfig {
	return ServerConfig{
		Host:        getenv("HOST", "127.0.0.1"),
		Port:        getenvPort("PORT", "5001"),
		ConfigPath:  getenv("CONFIG_PATH", "config.yaml"),
		TaskLogPath: getenv("TASK_LOG_PATH", "results/task_log.csv"),
		AuditDBPath: getenv("AUDIT_DB_PATH", "results/audit.db"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "text"),
	}
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvPort(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if n, err := strconv.Atoi(v); err != nil || n <= 0 || n > 65535 {
		slog.Warn("invalid port, using default", slog.String("key", key), slog.String("value", v))
		return fallback
	}
	return v
}
