package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tapstar/reviewgate/internal/model"
)

type pgFeedbackRepository struct {
	db *gorm.DB
}

func NewPGFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &pgFeedbackRepository{db: db}
}

func (r *pgFeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *pgFeedbackRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Feedback, error) {
	var entries []model.Feedback
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
