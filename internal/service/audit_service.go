package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
)

// IAuditService records admin activity through the in-process queue so
// request handlers never wait on the activity_logs table.
type IAuditService interface {
	Record(ctx context.Context, adminId *uuid.UUID, action entity.ActionType, changes map[string]interface{}, ipAddress string)
}

type auditService struct {
	publisher IPublisherService
	logger    logger.ILogger
}

func NewAuditService(publisher IPublisherService, log logger.ILogger) IAuditService {
	return &auditService{
		publisher: publisher,
		logger:    log,
	}
}

// Record is fire-and-forget. A publish failure is logged and swallowed;
// losing an audit row must never fail the operation being audited.
func (s *auditService) Record(ctx context.Context, adminId *uuid.UUID, action entity.ActionType, changes map[string]interface{}, ipAddress string) {
	msg := dto.AuditMessage{
		AdminId:    adminId,
		ActionType: string(action),
		Changes:    changes,
		IpAddress:  ipAddress,
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("audit", "failed to marshal audit message", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Error("audit", "failed to publish audit message", map[string]interface{}{
			"error":  err.Error(),
			"action": string(action),
		})
	}
}
