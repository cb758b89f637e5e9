package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tapstar/reviewgate/internal/model"
)

type pgCouponRepository struct {
	db *gorm.DB
}

func NewPGCouponRepository(db *gorm.DB) CouponRepository {
	return &pgCouponRepository{db: db}
}

func (r *pgCouponRepository) Create(ctx context.Context, coupon *model.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *pgCouponRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.WithContext(ctx).
		Preload("Customer.Tenant").
		Where("id = ?", id).
		First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *pgCouponRepository) MarkRedeemed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Coupon{}).
		Where("id = ? AND redeemed_at IS NULL AND expires_at >= ?", id, at).
		UpdateColumn("redeemed_at", at)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *pgCouponRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Coupon, error) {
	var coupons []model.Coupon
	if err := r.db.WithContext(ctx).
		Joins("JOIN customers ON customers.id = coupons.customer_id").
		Where("customers.tenant_id = ?", tenantID).
		Preload("Customer").
		Order("coupons.created_at DESC").
		Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}
