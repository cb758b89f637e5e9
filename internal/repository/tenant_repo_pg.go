package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tapstar/reviewgate/internal/model"
)

type pgTenantRepository struct {
	db *gorm.DB
}

func NewPGTenantRepository(db *gorm.DB) TenantRepository {
	return &pgTenantRepository{db: db}
}

func (r *pgTenantRepository) GetBySlug(ctx context.Context, slug string) (*model.Tenant, error) {
	var tenant model.Tenant
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Upsert inserts the tenant or, when the slug already exists, refreshes its
// directory fields. Used only by the startup seeding step.
func (r *pgTenantRepository) Upsert(ctx context.Context, tenant *model.Tenant) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name_en", "name_ar", "whatsapp_number", "review_url", "reward_text", "updated_at",
			}),
		}).
		Create(tenant).Error
}

func (r *pgTenantRepository) List(ctx context.Context) ([]model.Tenant, error) {
	var tenants []model.Tenant
	if err := r.db.WithContext(ctx).Order("slug ASC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}
