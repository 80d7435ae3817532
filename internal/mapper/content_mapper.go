package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/model"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) ArticleToEntity(a *model.Article) *entity.Article {
	if a == nil {
		return nil
	}
	return &entity.Article{
		Id:        a.Id,
		Title:     a.Title,
		Slug:      a.Slug,
		Excerpt:   a.Excerpt,
		Content:   a.Content,
		CoverURL:  a.CoverURL,
		Status:    entity.ArticleStatus(a.Status),
		AuthorId:  a.AuthorId,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *ContentMapper) ArticleToModel(a *entity.Article) *model.Article {
	if a == nil {
		return nil
	}
	return &model.Article{
		Id:        a.Id,
		Title:     a.Title,
		Slug:      a.Slug,
		Excerpt:   a.Excerpt,
		Content:   a.Content,
		CoverURL:  a.CoverURL,
		Status:    string(a.Status),
		AuthorId:  a.AuthorId,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (m *ContentMapper) ArticlesToEntities(models []*model.Article) []*entity.Article {
	entities := make([]*entity.Article, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ArticleToEntity(mod))
	}
	return entities
}

func (m *ContentMapper) PlanToEntity(p *model.PricingPlan) *entity.PricingPlan {
	if p == nil {
		return nil
	}
	var features []string
	_ = json.Unmarshal(p.Features, &features)
	return &entity.PricingPlan{
		Id:          p.Id,
		Name:        p.Name,
		Slug:        p.Slug,
		Price:       p.Price,
		Description: p.Description,
		Features:    features,
		IsActive:    p.IsActive,
		SortOrder:   p.SortOrder,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ContentMapper) PlanToModel(p *entity.PricingPlan) *model.PricingPlan {
	if p == nil {
		return nil
	}
	features, _ := json.Marshal(p.Features)
	return &model.PricingPlan{
		Id:          p.Id,
		Name:        p.Name,
		Slug:        p.Slug,
		Price:       p.Price,
		Description: p.Description,
		Features:    datatypes.JSON(features),
		IsActive:    p.IsActive,
		SortOrder:   p.SortOrder,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (m *ContentMapper) PlansToEntities(models []*model.PricingPlan) []*entity.PricingPlan {
	entities := make([]*entity.PricingPlan, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.PlanToEntity(mod))
	}
	return entities
}

func (m *ContentMapper) TeamMemberToEntity(t *model.TeamMember) *entity.TeamMember {
	if t == nil {
		return nil
	}
	return &entity.TeamMember{
		Id:        t.Id,
		Name:      t.Name,
		Position:  t.Position,
		Bio:       t.Bio,
		PhotoURL:  t.PhotoURL,
		SortOrder: t.SortOrder,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *ContentMapper) TeamMemberToModel(t *entity.TeamMember) *model.TeamMember {
	if t == nil {
		return nil
	}
	return &model.TeamMember{
		Id:        t.Id,
		Name:      t.Name,
		Position:  t.Position,
		Bio:       t.Bio,
		PhotoURL:  t.PhotoURL,
		SortOrder: t.SortOrder,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *ContentMapper) TeamMembersToEntities(models []*model.TeamMember) []*entity.TeamMember {
	entities := make([]*entity.TeamMember, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.TeamMemberToEntity(mod))
	}
	return entities
}

func (m *ContentMapper) TestimonialToEntity(t *model.Testimonial) *entity.Testimonial {
	if t == nil {
		return nil
	}
	return &entity.Testimonial{
		Id:        t.Id,
		Name:      t.Name,
		Origin:    t.Origin,
		Quote:     t.Quote,
		Rating:    t.Rating,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *ContentMapper) TestimonialToModel(t *entity.Testimonial) *model.Testimonial {
	if t == nil {
		return nil
	}
	return &model.Testimonial{
		Id:        t.Id,
		Name:      t.Name,
		Origin:    t.Origin,
		Quote:     t.Quote,
		Rating:    t.Rating,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (m *ContentMapper) TestimonialsToEntities(models []*model.Testimonial) []*entity.Testimonial {
	entities := make([]*entity.Testimonial, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.TestimonialToEntity(mod))
	}
	return entities
}

func (m *ContentMapper) FaqToEntity(f *model.Faq) *entity.Faq {
	if f == nil {
		return nil
	}
	return &entity.Faq{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		SortOrder: f.SortOrder,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *ContentMapper) FaqToModel(f *entity.Faq) *model.Faq {
	if f == nil {
		return nil
	}
	return &model.Faq{
		Id:        f.Id,
		Question:  f.Question,
		Answer:    f.Answer,
		SortOrder: f.SortOrder,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *ContentMapper) FaqsToEntities(models []*model.Faq) []*entity.Faq {
	entities := make([]*entity.Faq, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.FaqToEntity(mod))
	}
	return entities
}

func (m *ContentMapper) SettingToEntity(s *model.SiteSetting) *entity.SiteSetting {
	if s == nil {
		return nil
	}
	return &entity.SiteSetting{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedBy: s.UpdatedBy,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *ContentMapper) SettingToModel(s *entity.SiteSetting) *model.SiteSetting {
	if s == nil {
		return nil
	}
	return &model.SiteSetting{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedBy: s.UpdatedBy,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *ContentMapper) SettingsToEntities(models []*model.SiteSetting) []*entity.SiteSetting {
	entities := make([]*entity.SiteSetting, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.SettingToEntity(mod))
	}
	return entities
}
