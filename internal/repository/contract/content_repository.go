package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
)

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Article, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Article, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type PricingPlanRepository interface {
	Create(ctx context.Context, plan *entity.PricingPlan) error
	Update(ctx context.Context, plan *entity.PricingPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PricingPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PricingPlan, error)
}

type TeamMemberRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	Update(ctx context.Context, member *entity.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TeamMember, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error)
}

type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	Update(ctx context.Context, testimonial *entity.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Testimonial, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Testimonial, error)
}

type FaqRepository interface {
	Create(ctx context.Context, faq *entity.Faq) error
	Update(ctx context.Context, faq *entity.Faq) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Faq, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Faq, error)
}

type SiteSettingRepository interface {
	Upsert(ctx context.Context, setting *entity.SiteSetting) error
	FindOne(ctx context.Context, key string) (*entity.SiteSetting, error)
	FindAll(ctx context.Context) ([]*entity.SiteSetting, error)
}
