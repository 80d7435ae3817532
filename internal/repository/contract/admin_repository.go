package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	Update(ctx context.Context, admin *entity.Admin) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Admin, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
	UpdateAuthProvider(ctx context.Context, id uuid.UUID, provider string) error
}

type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
