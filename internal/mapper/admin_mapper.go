package mapper

import (
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/model"
)

type AdminMapper struct{}

func NewAdminMapper() *AdminMapper {
	return &AdminMapper{}
}

func (m *AdminMapper) ToEntity(a *model.Admin) *entity.Admin {
	if a == nil {
		return nil
	}
	return &entity.Admin{
		Id:           a.Id,
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		IsAdmin:      a.IsAdmin,
		AuthProvider: entity.AuthProvider(a.AuthProvider),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AdminMapper) ToModel(a *entity.Admin) *model.Admin {
	if a == nil {
		return nil
	}
	return &model.Admin{
		Id:           a.Id,
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		IsAdmin:      a.IsAdmin,
		AuthProvider: string(a.AuthProvider),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AdminMapper) ToEntities(models []*model.Admin) []*entity.Admin {
	entities := make([]*entity.Admin, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ToEntity(mod))
	}
	return entities
}

func (m *AdminMapper) ActivityLogToModel(l *entity.ActivityLog) *model.ActivityLog {
	if l == nil {
		return nil
	}
	return &model.ActivityLog{
		LogId:      l.LogId,
		AdminId:    l.AdminId,
		ActionType: string(l.ActionType),
		Changes:    l.Changes,
		IpAddress:  l.IpAddress,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *AdminMapper) ActivityLogToEntity(l *model.ActivityLog) *entity.ActivityLog {
	if l == nil {
		return nil
	}
	return &entity.ActivityLog{
		LogId:      l.LogId,
		AdminId:    l.AdminId,
		ActionType: entity.ActionType(l.ActionType),
		Changes:    l.Changes,
		IpAddress:  l.IpAddress,
		CreatedAt:  l.CreatedAt,
	}
}

func (m *AdminMapper) ActivityLogsToEntities(models []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, 0, len(models))
	for _, mod := range models {
		entities = append(entities, m.ActivityLogToEntity(mod))
	}
	return entities
}
