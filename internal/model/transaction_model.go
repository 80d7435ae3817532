package model

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction rows are keyed by the provider invoice id so that repeated
// webhook deliveries land on the same row.
type Transaction struct {
	Id         string         `gorm:"type:varchar(100);primaryKey"`
	ExternalId string         `gorm:"type:varchar(100);not null;index"`
	Amount     int64          `gorm:"not null"`
	Status     string         `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Items      datatypes.JSON `gorm:"type:jsonb"`
	Customer   datatypes.JSON `gorm:"type:jsonb"`
	InvoiceURL string         `gorm:"type:text"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}
