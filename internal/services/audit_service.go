package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"finanzas/internal/logger"
	"finanzas/internal/models"
)

// auditService writes the audit trail of API mutations.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log stores one audit entry tagged with the request id found in ctx.
// Failures are logged and swallowed so the write being audited still
// succeeds.
func (s *auditService) Log(ctx context.Context, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any) {
	log := logger.FromContext(ctx).With("action", action, "recurso", resourceType, "recurso_id", resourceID)

	entry := &models.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		RequestID:    logger.RequestID(ctx),
		IPAddress:    ipAddress,
	}
	if len(changes) > 0 {
		data, err := json.Marshal(changes)
		if err != nil {
			log.Warnw("audit changes not serializable", "error", err)
		} else {
			entry.Changes = string(data)
		}
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		log.Errorw("failed to write audit entry", "error", err)
		return
	}
	log.Debugw("audit entry written", "id", entry.ID)
}
