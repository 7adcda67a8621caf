package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	TaskLog TaskLogRepository
	Audit   AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB, taskLogPath string) *Repositories {
	return &Repositories{
		TaskLog: NewTaskLogRepository(taskLogPath),
		Audit:   NewAuditRepository(db),
	}
}
