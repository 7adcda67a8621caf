package services

import (
	"github.com/blogem/task-tracker/config"
	"github.com/blogem/task-tracker/repositories"
)

// Services holds all service instances
type Services struct {
	Tasks TaskService
	Stats StatsService
	Audit AuditService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, cfg *config.Config) *Services {
	categorizer := NewCategorizer(cfg.Ollama, cfg.Taxonomy)
	return &Services{
		Tasks: NewTaskService(repos.TaskLog, categorizer, cfg.Taxonomy),
		Stats: NewStatsService(repos.TaskLog),
		Audit: NewAuditService(repos.Audit),
	}
}
