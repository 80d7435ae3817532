package unitofwork

import (
	"context"

	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AdminRepository() contract.AdminRepository
	ActivityLogRepository() contract.ActivityLogRepository
	TransactionRepository() contract.TransactionRepository

	ArticleRepository() contract.ArticleRepository
	PricingPlanRepository() contract.PricingPlanRepository
	TeamMemberRepository() contract.TeamMemberRepository
	TestimonialRepository() contract.TestimonialRepository
	FaqRepository() contract.FaqRepository
	SiteSettingRepository() contract.SiteSettingRepository
}
