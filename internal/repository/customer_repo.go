package repository

import (
	"context"

	"github.com/google/uuid"

	"tapstar/reviewgate/internal/model"
)

type CustomerRepository interface {
	// GetOrCreate returns the customer for (tenant, contact), inserting it on
	// first sight. The contact is normalized to digits before lookup or
	// storage; "050-123-4567" and "0501234567" resolve to the same row.
	GetOrCreate(ctx context.Context, tenantID uuid.UUID, contact string) (*model.Customer, error)
}
