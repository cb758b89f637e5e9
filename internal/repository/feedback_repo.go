package repository

import (
	"context"

	"github.com/google/uuid"

	"tapstar/reviewgate/internal/model"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Feedback, error)
}
