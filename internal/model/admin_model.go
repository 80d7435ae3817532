package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Admin struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	AuthProvider string    `gorm:"type:varchar(50);not null;default:'email'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Admin) TableName() string {
	return "admins"
}

type ActivityLog struct {
	LogId      uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AdminId    *uuid.UUID        `gorm:"type:uuid;index"`
	ActionType string            `gorm:"type:varchar(50);not null;index"`
	Changes    datatypes.JSONMap `gorm:"type:jsonb"`
	IpAddress  string            `gorm:"type:varchar(45)"`
	CreatedAt  time.Time         `gorm:"autoCreateTime;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
