package entity

import (
	"time"

	"github.com/google/uuid"
)

type AuthProvider string

const (
	AuthProviderEmail  AuthProvider = "email"
	AuthProviderGoogle AuthProvider = "google"
)

// Admin is a principal in the credential store. PasswordHash is nil for
// accounts that only ever authenticated through a federated provider.
type Admin struct {
	Id           uuid.UUID
	Username     string
	Email        *string
	PasswordHash *string
	IsAdmin      bool
	AuthProvider AuthProvider
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ActionType string

const (
	ActionLogin           ActionType = "LOGIN"
	ActionLogout          ActionType = "LOGOUT"
	ActionCreateAdmin     ActionType = "CREATE_ADMIN"
	ActionGoogleSuccess   ActionType = "GOOGLE_AUTH_SUCCESS"
	ActionGoogleFailed    ActionType = "GOOGLE_AUTH_FAILED"
	ActionGoogleError     ActionType = "GOOGLE_AUTH_ERROR"
	ActionUserAdded       ActionType = "user_added"
	ActionUserRemoved     ActionType = "user_removed"
	ActionContentCreated  ActionType = "CONTENT_CREATED"
	ActionContentUpdated  ActionType = "CONTENT_UPDATED"
	ActionContentDeleted  ActionType = "CONTENT_DELETED"
	ActionSettingsUpdated ActionType = "SETTINGS_UPDATED"
)

// ActivityLog is append-only. AdminId is nil for failed or anonymous
// attempts (e.g. a rejected Google login).
type ActivityLog struct {
	LogId      uuid.UUID
	AdminId    *uuid.UUID
	ActionType ActionType
	Changes    map[string]interface{}
	IpAddress  string
	CreatedAt  time.Time
}
