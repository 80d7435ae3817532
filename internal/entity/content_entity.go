package entity

import (
	"time"

	"github.com/google/uuid"
)

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

type Article struct {
	Id        uuid.UUID
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	CoverURL  *string
	Status    ArticleStatus
	AuthorId  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PricingPlan struct {
	Id          uuid.UUID
	Name        string
	Slug        string
	Price       int64
	Description string
	Features    []string
	IsActive    bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TeamMember struct {
	Id        uuid.UUID
	Name      string
	Position  string
	Bio       string
	PhotoURL  *string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Testimonial struct {
	Id        uuid.UUID
	Name      string
	Origin    string
	Quote     string
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Faq struct {
	Id        uuid.UUID
	Question  string
	Answer    string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SiteSetting is a key/value row; values are free-form JSON so the frontend
// can store structured blocks (hero copy, contact info, socials).
type SiteSetting struct {
	Key       string
	Value     map[string]interface{}
	UpdatedBy *uuid.UUID
	UpdatedAt time.Time
}
