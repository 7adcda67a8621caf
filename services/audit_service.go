package services

import (
	"context"
	"fmt"

	"github.com/blogem/task-tracker/models"
	"github.com/blogem/task-tracker/repositories"
)

const maxAuditLimit = 500

// AuditService interface defines read access to the mutation audit trail
type AuditService interface {
	Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

type auditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// Recent returns up to limit entries, newest first
func (s *auditService) Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	if limit <= 0 || limit > maxAuditLimit {
		return nil, &ValidationError{Messages: []string{fmt.Sprintf("limit must be between 1 and %d", maxAuditLimit)}}
	}
	return s.auditRepo.Recent(limit)
}
