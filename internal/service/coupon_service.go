package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/internal/repository"
	"tapstar/reviewgate/pkg/phone"
)

// CouponView is the read model for a coupon page: everything the
// presentation layer renders, joined through customer -> tenant.
type CouponView struct {
	ID         uuid.UUID  `json:"id"`
	TenantName string     `json:"tenant_name"`
	RewardText string     `json:"reward_text"`
	ExpiresAt  time.Time  `json:"expires_at"`
	Redeemed   bool       `json:"redeemed"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
	Redeemable bool       `json:"redeemable"`
	ReviewURL  string     `json:"review_url"`
}

type CouponService interface {
	// Claim issues a coupon for the tenant's reward to the given contact,
	// creating the customer row on first sight. Repeated claims by the same
	// contact issue independent coupons; the service does not deduplicate.
	Claim(ctx context.Context, slug string, contact string) (*model.Coupon, error)
	// Get returns the coupon view. Viewing never mutates state; an expired
	// but unredeemed coupon is still returned, reported as not redeemable.
	Get(ctx context.Context, id uuid.UUID) (*CouponView, error)
	// Redeem stamps the redemption time exactly once. A second call reports
	// ErrCouponAlreadyRedeemed and leaves the stored timestamp untouched.
	Redeem(ctx context.Context, id uuid.UUID) (*CouponView, error)
}

type couponService struct {
	couponRepo   repository.CouponRepository
	customerRepo repository.CustomerRepository
	tenantRepo   repository.TenantRepository
	validity     time.Duration
	now          func() time.Time
}

func NewCouponService(
	couponRepo repository.CouponRepository,
	customerRepo repository.CustomerRepository,
	tenantRepo repository.TenantRepository,
	validity time.Duration,
) CouponService {
	return &couponService{
		couponRepo:   couponRepo,
		customerRepo: customerRepo,
		tenantRepo:   tenantRepo,
		validity:     validity,
		now:          time.Now,
	}
}

func (s *couponService) Claim(ctx context.Context, slug string, contact string) (*model.Coupon, error) {
	if phone.Normalize(contact) == "" {
		return nil, ErrContactRequired
	}

	tenant, err := s.tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}
	if !tenant.HasReward() {
		return nil, ErrRewardNotConfigured
	}

	customer, err := s.customerRepo.GetOrCreate(ctx, tenant.ID, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert customer: %w", err)
	}

	coupon := &model.Coupon{
		CustomerID: customer.ID,
		RewardText: *tenant.RewardText, // copied at issue time, not re-derived
		ExpiresAt:  s.now().Add(s.validity),
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to issue coupon: %w", err)
	}
	return coupon, nil
}

func (s *couponService) Get(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to load coupon: %w", err)
	}
	return s.view(coupon), nil
}

func (s *couponService) Redeem(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	redeemed, err := s.couponRepo.MarkRedeemed(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to redeem coupon: %w", err)
	}
	if redeemed {
		return s.Get(ctx, id)
	}

	// Nothing transitioned: re-read to report why.
	coupon, err := s.couponRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to load coupon: %w", err)
	}
	if coupon.Redeemed() {
		return nil, ErrCouponAlreadyRedeemed
	}
	return nil, ErrCouponExpired
}

func (s *couponService) view(coupon *model.Coupon) *CouponView {
	v := &CouponView{
		ID:         coupon.ID,
		RewardText: coupon.RewardText,
		ExpiresAt:  coupon.ExpiresAt,
		Redeemed:   coupon.Redeemed(),
		RedeemedAt: coupon.RedeemedAt,
		Redeemable: coupon.RedeemableAt(s.now()),
	}
	if coupon.Customer != nil && coupon.Customer.Tenant != nil {
		v.TenantName = coupon.Customer.Tenant.NameEN
		v.ReviewURL = coupon.Customer.Tenant.ReviewURL
	}
	return v
}
