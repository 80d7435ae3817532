package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
	"github.com/mp-codespace/masterprima-site-sub001/pkg/events"
	pktNats "github.com/mp-codespace/masterprima-site-sub001/pkg/nats"
)

type IArticleService interface {
	ListPublished(ctx context.Context, limit, offset int) (*dto.ArticleListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.ArticleResponse, error)
	ListAll(ctx context.Context, limit, offset int) (*dto.ArticleListResponse, error)
	Create(ctx context.Context, actor *session.Claims, req *dto.CreateArticleRequest, ipAddress string) (*dto.ArticleResponse, error)
	Update(ctx context.Context, actor *session.Claims, req *dto.UpdateArticleRequest, ipAddress string) (*dto.ArticleResponse, error)
	Delete(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error
	CountByStatus(ctx context.Context) (published, draft int64, err error)
}

type articleService struct {
	uowFactory     unitofwork.RepositoryFactory
	audit          IAuditService
	eventPublisher *pktNats.Publisher
}

func NewArticleService(uowFactory unitofwork.RepositoryFactory, audit IAuditService, eventPublisher *pktNats.Publisher) IArticleService {
	return &articleService{
		uowFactory:     uowFactory,
		audit:          audit,
		eventPublisher: eventPublisher,
	}
}

func (s *articleService) publishContentEvent(ctx context.Context, article *entity.Article) {
	if err := s.eventPublisher.Publish(ctx, events.NewEvent(events.TypeContentPublished, map[string]interface{}{
		"article_id": article.Id.String(),
		"slug":       article.Slug,
	})); err != nil {
		fmt.Printf("Error publishing content event: %v\n", err)
	}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	slug := strings.Trim(slugStrip.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if slug == "" {
		slug = uuid.New().String()[:8]
	}
	return slug
}

func normalizeLimit(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *articleService) list(ctx context.Context, limit, offset int, specs ...specification.Specification) (*dto.ArticleListResponse, error) {
	limit, offset = normalizeLimit(limit, offset)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	querySpecs := append([]specification.Specification{}, specs...)
	querySpecs = append(querySpecs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)

	articles, err := uow.ArticleRepository().FindAll(ctx, querySpecs...)
	if err != nil {
		return nil, err
	}
	total, err := uow.ArticleRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	resp := &dto.ArticleListResponse{
		Articles: make([]dto.ArticleResponse, 0, len(articles)),
		Total:    total,
	}
	for _, a := range articles {
		item := toArticleDTO(a)
		item.Content = "" // list responses stay light
		resp.Articles = append(resp.Articles, item)
	}
	return resp, nil
}

func (s *articleService) ListPublished(ctx context.Context, limit, offset int) (*dto.ArticleListResponse, error) {
	return s.list(ctx, limit, offset, specification.ByStatus{Status: string(entity.ArticleStatusPublished)})
}

func (s *articleService) ListAll(ctx context.Context, limit, offset int) (*dto.ArticleListResponse, error) {
	return s.list(ctx, limit, offset)
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*dto.ArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if article == nil || article.Status != entity.ArticleStatusPublished {
		// Drafts stay invisible on the public site.
		return nil, ErrNotFound
	}

	resp := toArticleDTO(article)
	return &resp, nil
}

func (s *articleService) Create(ctx context.Context, actor *session.Claims, req *dto.CreateArticleRequest, ipAddress string) (*dto.ArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}
	existing, err := uow.ArticleRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("slug %w", ErrConflict)
	}

	status := entity.ArticleStatus(req.Status)
	if status == "" {
		status = entity.ArticleStatusDraft
	}

	article := &entity.Article{
		Id:        uuid.New(),
		Title:     req.Title,
		Slug:      slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if req.CoverURL != "" {
		article.CoverURL = &req.CoverURL
	}
	if actor != nil {
		article.AuthorId = &actor.AdminId
	}

	if err := uow.ArticleRepository().Create(ctx, article); err != nil {
		return nil, err
	}

	s.recordContentAudit(ctx, actor, entity.ActionContentCreated, "article", article.Id.String(), ipAddress)
	if article.Status == entity.ArticleStatusPublished {
		s.publishContentEvent(ctx, article)
	}

	resp := toArticleDTO(article)
	return &resp, nil
}

func (s *articleService) Update(ctx context.Context, actor *session.Claims, req *dto.UpdateArticleRequest, ipAddress string) (*dto.ArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	if req.Slug != "" && req.Slug != article.Slug {
		existing, err := uow.ArticleRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.Id != article.Id {
			return nil, fmt.Errorf("slug %w", ErrConflict)
		}
		article.Slug = req.Slug
	}

	article.Title = req.Title
	article.Excerpt = req.Excerpt
	article.Content = req.Content
	if req.CoverURL != "" {
		article.CoverURL = &req.CoverURL
	}
	wasPublished := article.Status == entity.ArticleStatusPublished
	if req.Status != "" {
		article.Status = entity.ArticleStatus(req.Status)
	}
	article.UpdatedAt = time.Now()

	if err := uow.ArticleRepository().Update(ctx, article); err != nil {
		return nil, err
	}

	s.recordContentAudit(ctx, actor, entity.ActionContentUpdated, "article", article.Id.String(), ipAddress)
	if !wasPublished && article.Status == entity.ArticleStatusPublished {
		s.publishContentEvent(ctx, article)
	}

	resp := toArticleDTO(article)
	return &resp, nil
}

func (s *articleService) Delete(ctx context.Context, actor *session.Claims, id uuid.UUID, ipAddress string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	article, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}

	if err := uow.ArticleRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.recordContentAudit(ctx, actor, entity.ActionContentDeleted, "article", id.String(), ipAddress)
	return nil
}

// CountByStatus runs the two dashboard counts concurrently.
func (s *articleService) CountByStatus(ctx context.Context) (published, draft int64, err error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var e error
		published, e = uow.ArticleRepository().CountByStatus(gctx, string(entity.ArticleStatusPublished))
		return e
	})
	g.Go(func() error {
		var e error
		draft, e = uow.ArticleRepository().CountByStatus(gctx, string(entity.ArticleStatusDraft))
		return e
	})
	if err = g.Wait(); err != nil {
		return 0, 0, err
	}
	return published, draft, nil
}

func (s *articleService) recordContentAudit(ctx context.Context, actor *session.Claims, action entity.ActionType, kind, id, ipAddress string) {
	var actorId *uuid.UUID
	if actor != nil {
		actorId = &actor.AdminId
	}
	s.audit.Record(ctx, actorId, action, map[string]interface{}{
		"kind": kind,
		"id":   id,
	}, ipAddress)
}

func toArticleDTO(a *entity.Article) dto.ArticleResponse {
	resp := dto.ArticleResponse{
		Id:        a.Id,
		Title:     a.Title,
		Slug:      a.Slug,
		Excerpt:   a.Excerpt,
		Content:   a.Content,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.CoverURL != nil {
		resp.CoverURL = *a.CoverURL
	}
	return resp
}
