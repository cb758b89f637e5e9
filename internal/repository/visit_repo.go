package repository

import (
	"context"

	"github.com/google/uuid"

	"tapstar/reviewgate/internal/model"
)

type VisitRepository interface {
	Create(ctx context.Context, visit *model.Visit) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Visit, error)
}
