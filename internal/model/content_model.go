package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Article struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Slug      string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Excerpt   string     `gorm:"type:text"`
	Content   string     `gorm:"type:text;not null"`
	CoverURL  *string    `gorm:"type:text"`
	Status    string     `gorm:"type:varchar(20);not null;default:'draft';index"`
	AuthorId  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (Article) TableName() string {
	return "articles"
}

type PricingPlan struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Slug        string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Price       int64          `gorm:"not null"`
	Description string         `gorm:"type:text"`
	Features    datatypes.JSON `gorm:"type:jsonb"`
	IsActive    bool           `gorm:"not null;default:true"`
	SortOrder   int            `gorm:"not null;default:0"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (PricingPlan) TableName() string {
	return "pricing_plans"
}

type TeamMember struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Position  string    `gorm:"type:varchar(255);not null"`
	Bio       string    `gorm:"type:text"`
	PhotoURL  *string   `gorm:"type:text"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

type Testimonial struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Origin    string    `gorm:"type:varchar(255)"`
	Quote     string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"not null;default:5"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

type Faq struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Faq) TableName() string {
	return "faqs"
}

type SiteSetting struct {
	Key       string            `gorm:"type:varchar(100);primaryKey"`
	Value     datatypes.JSONMap `gorm:"type:jsonb"`
	UpdatedBy *uuid.UUID        `gorm:"type:uuid"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
