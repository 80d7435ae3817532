package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
)

const settingsCacheKey = "settings:all"

// ISiteService covers the remaining marketing-site content: team,
// testimonials, FAQ, key/value settings, and the dashboard stats block.
type ISiteService interface {
	ListTeam(ctx context.Context) ([]dto.TeamMemberResponse, error)
	UpsertTeamMember(ctx context.Context, actor *session.Claims, req *dto.UpsertTeamMemberRequest, ipAddress string) (*dto.TeamMemberResponse, error)
	DeleteTeamMember(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error

	ListTestimonials(ctx context.Context) ([]dto.TestimonialResponse, error)
	UpsertTestimonial(ctx context.Context, actor *session.Claims, req *dto.UpsertTestimonialRequest, ipAddress string) (*dto.TestimonialResponse, error)
	DeleteTestimonial(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error

	ListFaqs(ctx context.Context) ([]dto.FaqResponse, error)
	UpsertFaq(ctx context.Context, actor *session.Claims, req *dto.UpsertFaqRequest, ipAddress string) (*dto.FaqResponse, error)
	DeleteFaq(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error

	GetSettings(ctx context.Context) ([]dto.SettingResponse, error)
	UpdateSetting(ctx context.Context, actor *session.Claims, req *dto.UpdateSettingRequest, ipAddress string) (*dto.SettingResponse, error)

	DashboardStats(ctx context.Context, articleService IArticleService) (*dto.DashboardStatsResponse, error)
}

type siteService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
	audit      IAuditService
}

func NewSiteService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache, audit IAuditService) ISiteService {
	return &siteService{
		uowFactory: uowFactory,
		cache:      cache,
		audit:      audit,
	}
}

// --- Team ---

func (s *siteService) ListTeam(ctx context.Context) ([]dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	members, err := uow.TeamMemberRepository().FindAll(ctx, specification.OrderBy{Field: "sort_order"})
	if err != nil {
		return nil, err
	}

	out := make([]dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toTeamMemberDTO(m))
	}
	return out, nil
}

func (s *siteService) UpsertTeamMember(ctx context.Context, actor *session.Claims, req *dto.UpsertTeamMemberRequest, ipAddress string) (*dto.TeamMemberResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	member := &entity.TeamMember{
		Id:        req.Id,
		Name:      req.Name,
		Position:  req.Position,
		Bio:       req.Bio,
		SortOrder: req.SortOrder,
		UpdatedAt: time.Now(),
	}
	if req.PhotoURL != "" {
		member.PhotoURL = &req.PhotoURL
	}

	action := entity.ActionContentUpdated
	if req.Id == uuid.Nil {
		member.Id = uuid.New()
		member.CreatedAt = time.Now()
		action = entity.ActionContentCreated
		if err := uow.TeamMemberRepository().Create(ctx, member); err != nil {
			return nil, err
		}
	} else {
		existing, err := uow.TeamMemberRepository().FindOne(ctx, specification.ByID{ID: req.Id})
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		member.CreatedAt = existing.CreatedAt
		if err := uow.TeamMemberRepository().Update(ctx, member); err != nil {
			return nil, err
		}
	}

	s.recordAudit(ctx, actor, action, "team_member", member.Id.String(), ipAddress)

	resp := toTeamMemberDTO(member)
	return &resp, nil
}

func (s *siteService) DeleteTeamMember(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.TeamMemberRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := uow.TeamMemberRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.recordAudit(ctx, actor, entity.ActionContentDeleted, "team_member", id.String(), ipAddress)
	return nil
}

// --- Testimonials ---

func (s *siteService) ListTestimonials(ctx context.Context) ([]dto.TestimonialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.TestimonialRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	out := make([]dto.TestimonialResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.TestimonialResponse{
			Id:     it.Id,
			Name:   it.Name,
			Origin: it.Origin,
			Quote:  it.Quote,
			Rating: it.Rating,
		})
	}
	return out, nil
}

func (s *siteService) UpsertTestimonial(ctx context.Context, actor *session.Claims, req *dto.UpsertTestimonialRequest, ipAddress string) (*dto.TestimonialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item := &entity.Testimonial{
		Id:        req.Id,
		Name:      req.Name,
		Origin:    req.Origin,
		Quote:     req.Quote,
		Rating:    req.Rating,
		UpdatedAt: time.Now(),
	}

	action := entity.ActionContentUpdated
	if req.Id == uuid.Nil {
		item.Id = uuid.New()
		item.CreatedAt = time.Now()
		action = entity.ActionContentCreated
		if err := uow.TestimonialRepository().Create(ctx, item); err != nil {
			return nil, err
		}
	} else {
		existing, err := uow.TestimonialRepository().FindOne(ctx, specification.ByID{ID: req.Id})
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		item.CreatedAt = existing.CreatedAt
		if err := uow.TestimonialRepository().Update(ctx, item); err != nil {
			return nil, err
		}
	}

	s.recordAudit(ctx, actor, action, "testimonial", item.Id.String(), ipAddress)

	return &dto.TestimonialResponse{
		Id:     item.Id,
		Name:   item.Name,
		Origin: item.Origin,
		Quote:  item.Quote,
		Rating: item.Rating,
	}, nil
}

func (s *siteService) DeleteTestimonial(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.TestimonialRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := uow.TestimonialRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.recordAudit(ctx, actor, entity.ActionContentDeleted, "testimonial", id.String(), ipAddress)
	return nil
}

// --- FAQ ---

func (s *siteService) ListFaqs(ctx context.Context) ([]dto.FaqResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	faqs, err := uow.FaqRepository().FindAll(ctx, specification.OrderBy{Field: "sort_order"})
	if err != nil {
		return nil, err
	}

	out := make([]dto.FaqResponse, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, dto.FaqResponse{
			Id:        f.Id,
			Question:  f.Question,
			Answer:    f.Answer,
			SortOrder: f.SortOrder,
		})
	}
	return out, nil
}

func (s *siteService) UpsertFaq(ctx context.Context, actor *session.Claims, req *dto.UpsertFaqRequest, ipAddress string) (*dto.FaqResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	faq := &entity.Faq{
		Id:        req.Id,
		Question:  req.Question,
		Answer:    req.Answer,
		SortOrder: req.SortOrder,
		UpdatedAt: time.Now(),
	}

	action := entity.ActionContentUpdated
	if req.Id == uuid.Nil {
		faq.Id = uuid.New()
		faq.CreatedAt = time.Now()
		action = entity.ActionContentCreated
		if err := uow.FaqRepository().Create(ctx, faq); err != nil {
			return nil, err
		}
	} else {
		existing, err := uow.FaqRepository().FindOne(ctx, specification.ByID{ID: req.Id})
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		faq.CreatedAt = existing.CreatedAt
		if err := uow.FaqRepository().Update(ctx, faq); err != nil {
			return nil, err
		}
	}

	s.recordAudit(ctx, actor, action, "faq", faq.Id.String(), ipAddress)

	return &dto.FaqResponse{
		Id:        faq.Id,
		Question:  faq.Question,
		Answer:    faq.Answer,
		SortOrder: faq.SortOrder,
	}, nil
}

func (s *siteService) DeleteFaq(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.FaqRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := uow.FaqRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.recordAudit(ctx, actor, entity.ActionContentDeleted, "faq", id.String(), ipAddress)
	return nil
}

// --- Settings ---

func (s *siteService) GetSettings(ctx context.Context) ([]dto.SettingResponse, error) {
	if cached, found := s.cache.Get(settingsCacheKey); found {
		if settings, ok := cached.([]dto.SettingResponse); ok {
			return settings, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.SiteSettingRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SettingResponse, 0, len(settings))
	for _, st := range settings {
		out = append(out, dto.SettingResponse{
			Key:       st.Key,
			Value:     st.Value,
			UpdatedAt: st.UpdatedAt,
		})
	}

	s.cache.Set(settingsCacheKey, out, 5*time.Minute)
	return out, nil
}

func (s *siteService) UpdateSetting(ctx context.Context, actor *session.Claims, req *dto.UpdateSettingRequest, ipAddress string) (*dto.SettingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	setting := &entity.SiteSetting{
		Key:       req.Key,
		Value:     req.Value,
		UpdatedAt: time.Now(),
	}
	if actor != nil {
		setting.UpdatedBy = &actor.AdminId
	}

	if err := uow.SiteSettingRepository().Upsert(ctx, setting); err != nil {
		return nil, err
	}

	s.cache.Delete(settingsCacheKey)
	s.recordAudit(ctx, actor, entity.ActionSettingsUpdated, "site_setting", req.Key, ipAddress)

	return &dto.SettingResponse{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	}, nil
}

// --- Dashboard ---

func (s *siteService) DashboardStats(ctx context.Context, articleService IArticleService) (*dto.DashboardStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stats := &dto.DashboardStatsResponse{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		published, draft, err := articleService.CountByStatus(gctx)
		if err != nil {
			return err
		}
		stats.PublishedArticles = published
		stats.DraftArticles = draft
		return nil
	})
	g.Go(func() error {
		total, err := uow.TransactionRepository().Count(gctx)
		if err != nil {
			return err
		}
		stats.TotalTransactions = total
		return nil
	})
	g.Go(func() error {
		paid, err := uow.TransactionRepository().Count(gctx, specification.ByStatus{Status: string(entity.TransactionStatusPaid)})
		if err != nil {
			return err
		}
		stats.PaidTransactions = paid
		return nil
	})
	g.Go(func() error {
		admins, err := uow.AdminRepository().CountAdmins(gctx)
		if err != nil {
			return err
		}
		stats.AdminCount = admins
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *siteService) recordAudit(ctx context.Context, actor *session.Claims, action entity.ActionType, kind, id, ipAddress string) {
	var actorId *uuid.UUID
	if actor != nil {
		actorId = &actor.AdminId
	}
	s.audit.Record(ctx, actorId, action, map[string]interface{}{
		"kind": kind,
		"id":   id,
	}, ipAddress)
}

func toTeamMemberDTO(m *entity.TeamMember) dto.TeamMemberResponse {
	resp := dto.TeamMemberResponse{
		Id:        m.Id,
		Name:      m.Name,
		Position:  m.Position,
		Bio:       m.Bio,
		SortOrder: m.SortOrder,
	}
	if m.PhotoURL != nil {
		resp.PhotoURL = *m.PhotoURL
	}
	return resp
}
