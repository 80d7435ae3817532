package dto

import (
	"time"

	"github.com/google/uuid"
)

// AuditMessage is the wire format published on the in-process audit
// queue. The consumer persists it as an activity log row.
type AuditMessage struct {
	AdminId    *uuid.UUID             `json:"admin_id"`
	ActionType string                 `json:"action_type"`
	Changes    map[string]interface{} `json:"changes"`
	IpAddress  string                 `json:"ip_address"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type ActivityLogResponse struct {
	LogId      uuid.UUID              `json:"log_id"`
	AdminId    *uuid.UUID             `json:"admin_id"`
	ActionType string                 `json:"action_type"`
	Changes    map[string]interface{} `json:"changes"`
	IpAddress  string                 `json:"ip_address"`
	CreatedAt  time.Time              `json:"created_at"`
}

type ActivityLogListResponse struct {
	Logs  []ActivityLogResponse `json:"logs"`
	Total int64                 `json:"total"`
}
