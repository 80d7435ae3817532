package contract

import (
	"context"

	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
)

type TransactionRepository interface {
	// Upsert inserts or overwrites the row keyed by the provider invoice
	// id. The conflict target is the primary key, so concurrent webhook
	// deliveries for the same invoice converge on a single row.
	Upsert(ctx context.Context, tx *entity.Transaction) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
