package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tapstar/reviewgate/internal/model"
)

type pgVisitRepository struct {
	db *gorm.DB
}

func NewPGVisitRepository(db *gorm.DB) VisitRepository {
	return &pgVisitRepository{db: db}
}

func (r *pgVisitRepository) Create(ctx context.Context, visit *model.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *pgVisitRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Visit, error) {
	var visits []model.Visit
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}
