package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tapstar/reviewgate/internal/model"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *model.Coupon) error
	// GetByID loads a coupon with its customer and the customer's tenant.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error)
	// MarkRedeemed stamps redeemed_at in a single conditional statement and
	// reports whether a row transitioned. It never overwrites an existing
	// redemption and never touches an expired coupon.
	MarkRedeemed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Coupon, error)
}
