package service

import (
	"context"

	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
)

type IActivityService interface {
	List(ctx context.Context, limit, offset int) (*dto.ActivityLogListResponse, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory) IActivityService {
	return &activityService{uowFactory: uowFactory}
}

func (s *activityService) List(ctx context.Context, limit, offset int) (*dto.ActivityLogListResponse, error) {
	limit, offset = normalizeLimit(limit, offset)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.ActivityLogRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	total, err := uow.ActivityLogRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ActivityLogListResponse{
		Logs:  make([]dto.ActivityLogResponse, 0, len(logs)),
		Total: total,
	}
	for _, l := range logs {
		resp.Logs = append(resp.Logs, dto.ActivityLogResponse{
			LogId:      l.LogId,
			AdminId:    l.AdminId,
			ActionType: string(l.ActionType),
			Changes:    l.Changes,
			IpAddress:  l.IpAddress,
			CreatedAt:  l.CreatedAt,
		})
	}
	return resp, nil
}
