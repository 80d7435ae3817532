package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Articles ---

type CreateArticleRequest struct {
	Title    string `json:"title" validate:"required"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" validate:"required"`
	CoverURL string `json:"cover_url"`
	Status   string `json:"status" validate:"omitempty,oneof=draft published"`
}

type UpdateArticleRequest struct {
	Id       uuid.UUID
	Title    string `json:"title" validate:"required"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" validate:"required"`
	CoverURL string `json:"cover_url"`
	Status   string `json:"status" validate:"omitempty,oneof=draft published"`
}

type ArticleResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content,omitempty"`
	CoverURL  string    `json:"cover_url,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int64             `json:"total"`
}

// --- Pricing ---

type UpsertPricingPlanRequest struct {
	Id          uuid.UUID
	Name        string   `json:"name" validate:"required"`
	Slug        string   `json:"slug"`
	Price       int64    `json:"price" validate:"gte=0"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"is_active"`
	SortOrder   int      `json:"sort_order"`
}

type PricingPlanResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Price       int64     `json:"price"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
}

// --- Team / Testimonials / FAQ ---

type UpsertTeamMemberRequest struct {
	Id        uuid.UUID
	Name      string `json:"name" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photo_url"`
	SortOrder int    `json:"sort_order"`
}

type TeamMemberResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Bio       string    `json:"bio"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	SortOrder int       `json:"sort_order"`
}

type UpsertTestimonialRequest struct {
	Id     uuid.UUID
	Name   string `json:"name" validate:"required"`
	Origin string `json:"origin"`
	Quote  string `json:"quote" validate:"required"`
	Rating int    `json:"rating" validate:"gte=0,lte=5"`
}

type TestimonialResponse struct {
	Id     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Origin string    `json:"origin"`
	Quote  string    `json:"quote"`
	Rating int       `json:"rating"`
}

type UpsertFaqRequest struct {
	Id        uuid.UUID
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

type FaqResponse struct {
	Id        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	SortOrder int       `json:"sort_order"`
}

// --- Site settings ---

type UpdateSettingRequest struct {
	Key   string                 `json:"key" validate:"required"`
	Value map[string]interface{} `json:"value" validate:"required"`
}

type SettingResponse struct {
	Key       string                 `json:"key"`
	Value     map[string]interface{} `json:"value"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// --- Dashboard ---

type DashboardStatsResponse struct {
	PublishedArticles int64 `json:"published_articles"`
	DraftArticles     int64 `json:"draft_articles"`
	TotalTransactions int64 `json:"total_transactions"`
	PaidTransactions  int64 `json:"paid_transactions"`
	AdminCount        int64 `json:"admin_count"`
}
