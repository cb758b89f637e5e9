package repository

import (
	"context"

	"tapstar/reviewgate/internal/model"
)

type TenantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*model.Tenant, error)
	Upsert(ctx context.Context, tenant *model.Tenant) error
	List(ctx context.Context) ([]model.Tenant, error)
}
