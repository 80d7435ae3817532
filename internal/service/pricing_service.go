package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
)

const pricingCacheKey = "pricing:active"

type IPricingService interface {
	ListActive(ctx context.Context) ([]dto.PricingPlanResponse, error)
	ListAll(ctx context.Context) ([]dto.PricingPlanResponse, error)
	Create(ctx context.Context, actor *session.Claims, req *dto.UpsertPricingPlanRequest, ipAddress string) (*dto.PricingPlanResponse, error)
	Update(ctx context.Context, actor *session.Claims, req *dto.UpsertPricingPlanRequest, ipAddress string) (*dto.PricingPlanResponse, error)
	Delete(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error
}

type pricingService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
	audit      IAuditService
}

func NewPricingService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache, audit IAuditService) IPricingService {
	return &pricingService{
		uowFactory: uowFactory,
		cache:      cache,
		audit:      audit,
	}
}

// ListActive serves the public pricing page. Plans change rarely, so the
// result sits in cache for a few minutes and every write invalidates it.
func (s *pricingService) ListActive(ctx context.Context) ([]dto.PricingPlanResponse, error) {
	if cached, found := s.cache.Get(pricingCacheKey); found {
		if plans, ok := cached.([]dto.PricingPlanResponse); ok {
			return plans, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.PricingPlanRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	resp := toPricingDTOs(plans)
	s.cache.Set(pricingCacheKey, resp, 5*time.Minute)
	return resp, nil
}

func (s *pricingService) ListAll(ctx context.Context) ([]dto.PricingPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.PricingPlanRepository().FindAll(ctx, specification.OrderBy{Field: "sort_order"})
	if err != nil {
		return nil, err
	}
	return toPricingDTOs(plans), nil
}

func (s *pricingService) Create(ctx context.Context, actor *session.Claims, req *dto.UpsertPricingPlanRequest, ipAddress string) (*dto.PricingPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Name)
	}
	existing, err := uow.PricingPlanRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("slug %w", ErrConflict)
	}

	plan := &entity.PricingPlan{
		Id:          uuid.New(),
		Name:        req.Name,
		Slug:        slug,
		Price:       req.Price,
		Description: req.Description,
		Features:    req.Features,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uow.PricingPlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}

	s.invalidate()
	s.recordAudit(ctx, actor, entity.ActionContentCreated, plan.Id.String(), ipAddress)

	resp := toPricingDTO(plan)
	return &resp, nil
}

func (s *pricingService) Update(ctx context.Context, actor *session.Claims, req *dto.UpsertPricingPlanRequest, ipAddress string) (*dto.PricingPlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PricingPlanRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrNotFound
	}

	plan.Name = req.Name
	if req.Slug != "" {
		plan.Slug = req.Slug
	}
	plan.Price = req.Price
	plan.Description = req.Description
	plan.Features = req.Features
	plan.IsActive = req.IsActive
	plan.SortOrder = req.SortOrder
	plan.UpdatedAt = time.Now()

	if err := uow.PricingPlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}

	s.invalidate()
	s.recordAudit(ctx, actor, entity.ActionContentUpdated, plan.Id.String(), ipAddress)

	resp := toPricingDTO(plan)
	return &resp, nil
}

func (s *pricingService) Delete(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PricingPlanRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if plan == nil {
		return ErrNotFound
	}

	if err := uow.PricingPlanRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate()
	s.recordAudit(ctx, actor, entity.ActionContentDeleted, id.String(), ipAddress)
	return nil
}

func (s *pricingService) invalidate() {
	s.cache.Delete(pricingCacheKey)
}

func (s *pricingService) recordAudit(ctx context.Context, actor *session.Claims, action entity.ActionType, id, ipAddress string) {
	var actorId *uuid.UUID
	if actor != nil {
		actorId = &actor.AdminId
	}
	s.audit.Record(ctx, actorId, action, map[string]interface{}{
		"kind": "pricing_plan",
		"id":   id,
	}, ipAddress)
}

func toPricingDTO(p *entity.PricingPlan) dto.PricingPlanResponse {
	return dto.PricingPlanResponse{
		Id:          p.Id,
		Name:        p.Name,
		Slug:        p.Slug,
		Price:       p.Price,
		Description: p.Description,
		Features:    p.Features,
		IsActive:    p.IsActive,
		SortOrder:   p.SortOrder,
	}
}

func toPricingDTOs(plans []*entity.PricingPlan) []dto.PricingPlanResponse {
	out := make([]dto.PricingPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPricingDTO(p))
	}
	return out
}
