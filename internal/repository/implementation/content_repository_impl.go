package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/mapper"
	"github.com/mp-codespace/masterprima-site-sub001/internal/model"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/contract"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
)

func applySpecifications(db *gorm.DB, specs []specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// --- Articles ---

type ArticleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewArticleRepository(db *gorm.DB) contract.ArticleRepository {
	return &ArticleRepositoryImpl{db: db, mapper: mapper.NewContentMapper()}
}

func (r *ArticleRepositoryImpl) Create(ctx context.Context, article *entity.Article) error {
	m := r.mapper.ArticleToModel(article)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*article = *r.mapper.ArticleToEntity(m)
	return nil
}

func (r *ArticleRepositoryImpl) Update(ctx context.Context, article *entity.Article) error {
	m := r.mapper.ArticleToModel(article)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*article = *r.mapper.ArticleToEntity(m)
	return nil
}

func (r *ArticleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Article{}).Error
}

func (r *ArticleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Article, error) {
	var m model.Article
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ArticleToEntity(&m), nil
}

func (r *ArticleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Article, error) {
	var models []*model.Article
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ArticlesToEntities(models), nil
}

func (r *ArticleRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Article{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ArticleRepositoryImpl) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Article{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// --- Pricing Plans ---

type PricingPlanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewPricingPlanRepository(db *gorm.DB) contract.PricingPlanRepository {
	return &PricingPlanRepositoryImpl{db: db, mapper: mapper.NewContentMapper()}
}

func (r *PricingPlanRepositoryImpl) Create(ctx context.Context, plan *entity.PricingPlan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *PricingPlanRepositoryImpl) Update(ctx context.Context, plan *entity.PricingPlan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *PricingPlanRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PricingPlan{}).Error
}

func (r *PricingPlanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PricingPlan, error) {
	var m model.PricingPlan
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PlanToEntity(&m), nil
}

func (r *PricingPlanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PricingPlan, error) {
	var models []*model.PricingPlan
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PlansToEntities(models), nil
}

// --- Team Members ---

type TeamMemberRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewTeamMemberRepository(db *gorm.DB) contract.TeamMemberRepository {
	return &TeamMemberRepositoryImpl{db: db, mapper: mapper.NewContentMapper()}
}

func (r *TeamMemberRepositoryImpl) Create(ctx context.Context, member *entity.TeamMember) error {
	m := r.mapper.TeamMemberToModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.TeamMemberToEntity(m)
	return nil
}

func (r *TeamMemberRepositoryImpl) Update(ctx context.Context, member *entity.TeamMember) error {
	m := r.mapper.TeamMemberToModel(member)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.TeamMemberToEntity(m)
	return nil
}

func (r *TeamMemberRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TeamMember{}).Error
}

func (r *TeamMemberRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TeamMember, error) {
	var m model.TeamMember
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TeamMemberToEntity(&m), nil
}

func (r *TeamMemberRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TeamMember, error) {
	var models []*model.TeamMember
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TeamMembersToEntities(models), nil
}

// --- Testimonials ---

type TestimonialRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewTestimonialRepository(db *gorm.DB) contract.TestimonialRepository {
	return &TestimonialRepositoryImpl{db: db, mapper: mapper.NewContentMapper()}
}

func (r *TestimonialRepositoryImpl) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	m := r.mapper.TestimonialToModel(testimonial)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*testimonial = *r.mapper.TestimonialToEntity(m)
	return nil
}

func (r *TestimonialRepositoryImpl) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	m := r.mapper.TestimonialToModel(testimonial)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*testimonial = *r.mapper.TestimonialToEntity(m)
	return nil
}

func (r *TestimonialRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Testimonial{}).Error
}

func (r *TestimonialRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Testimonial, error) {
	var m model.Testimonial
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TestimonialToEntity(&m), nil
}

func (r *TestimonialRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Testimonial, error) {
	var models []*model.Testimonial
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TestimonialsToEntities(models), nil
}

// --- FAQs ---

type FaqRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewFaqRepository(db *gorm.DB) contract.FaqRepository {
	return &FaqRepositoryImpl{db: db, mapper: mapper.NewContentMapper()}
}

func (r *FaqRepositoryImpl) Create(ctx context.Context, faq *entity.Faq) error {
	m := r.mapper.FaqToModel(faq)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.FaqToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) Update(ctx context.Context, faq *entity.Faq) error {
	m := r.mapper.FaqToModel(faq)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.FaqToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Faq{}).Error
}

func (r *FaqRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Faq, error) {
	var m model.Faq
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FaqToEntity(&m), nil
}

func (r *FaqRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Faq, error) {
	var models []*model.Faq
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.FaqsToEntities(models), nil
}

// --- Site Settings ---

type SiteSettingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewSiteSettingRepository(db *gorm.DB) contract.SiteSettingRepository {
	return &SiteSettingRepositoryImpl{db: db, mapper: mapper.NewContentMapper()}
}

func (r *SiteSettingRepositoryImpl) Upsert(ctx context.Context, setting *entity.SiteSetting) error {
	m := r.mapper.SettingToModel(setting)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
	}).Create(m).Error
}

func (r *SiteSettingRepositoryImpl) FindOne(ctx context.Context, key string) (*entity.SiteSetting, error) {
	var m model.SiteSetting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SettingToEntity(&m), nil
}

func (r *SiteSettingRepositoryImpl) FindAll(ctx context.Context) ([]*entity.SiteSetting, error) {
	var models []*model.SiteSetting
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SettingsToEntities(models), nil
}
