package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/internal/repository"
	"tapstar/reviewgate/internal/testutil"
)

const testValidity = 14 * 24 * time.Hour

func newCouponService(t *testing.T, db *gorm.DB) *couponService {
	t.Helper()
	svc := NewCouponService(
		repository.NewPGCouponRepository(db),
		repository.NewPGCustomerRepository(db),
		repository.NewPGTenantRepository(db),
		testValidity,
	)
	return svc.(*couponService)
}

func TestClaimIssuesUnredeemedCoupon(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTenant(t, db, "owl", "https://maps.example/owl", "Free Cookie")

	svc := newCouponService(t, db)
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	coupon, err := svc.Claim(context.Background(), "owl", "0501234567")
	require.NoError(t, err)
	require.Equal(t, "Free Cookie", coupon.RewardText)
	require.Nil(t, coupon.RedeemedAt)
	require.True(t, coupon.ExpiresAt.Equal(issuedAt.Add(testValidity)))

	view, err := svc.Get(context.Background(), coupon.ID)
	require.NoError(t, err)
	require.False(t, view.Redeemed)
	require.True(t, view.Redeemable)
	require.Equal(t, "Free Cookie", view.RewardText)
	require.Equal(t, "https://maps.example/owl", view.ReviewURL)
	require.WithinDuration(t, issuedAt.Add(testValidity), view.ExpiresAt, time.Second)
}

func TestClaimRepeatedlyIssuesIndependentCoupons(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTenant(t, db, "owl", "https://maps.example/owl", "Free Cookie")

	svc := newCouponService(t, db)

	first, err := svc.Claim(context.Background(), "owl", "0501234567")
	require.NoError(t, err)
	second, err := svc.Claim(context.Background(), "owl", "050-123-4567")
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
	// Same contact, even differently formatted, maps to one customer row.
	require.Equal(t, first.CustomerID, second.CustomerID)

	var customers int64
	require.NoError(t, db.Model(&model.Customer{}).Count(&customers).Error)
	require.EqualValues(t, 1, customers)
}

func TestClaimWithoutRewardProgram(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTenant(t, db, "masra", "https://maps.example/masra", "")

	svc := newCouponService(t, db)

	_, err := svc.Claim(context.Background(), "masra", "0501234567")
	require.ErrorIs(t, err, ErrRewardNotConfigured)

	// No side effects on the reward-less path.
	var customers, coupons int64
	require.NoError(t, db.Model(&model.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&model.Coupon{}).Count(&coupons).Error)
	require.Zero(t, customers)
	require.Zero(t, coupons)
}

func TestClaimValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTenant(t, db, "owl", "https://maps.example/owl", "Free Cookie")

	svc := newCouponService(t, db)

	_, err := svc.Claim(context.Background(), "owl", "no digits here")
	require.ErrorIs(t, err, ErrContactRequired)

	_, err = svc.Claim(context.Background(), "doesnotexist", "0501234567")
	require.ErrorIs(t, err, ErrTenantNotFound)
}

func TestRedeemExactlyOnce(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTenant(t, db, "owl", "https://maps.example/owl", "Free Cookie")

	svc := newCouponService(t, db)
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	coupon, err := svc.Claim(context.Background(), "owl", "0501234567")
	require.NoError(t, err)

	redeemedAt := issuedAt.Add(2 * time.Hour)
	svc.now = func() time.Time { return redeemedAt }

	view, err := svc.Redeem(context.Background(), coupon.ID)
	require.NoError(t, err)
	require.True(t, view.Redeemed)
	require.NotNil(t, view.RedeemedAt)
	require.False(t, view.Redeemable)
	require.WithinDuration(t, redeemedAt, *view.RedeemedAt, time.Second)

	// Second redemption reports the state without touching the timestamp.
	svc.now = func() time.Time { return redeemedAt.Add(3 * time.Hour) }
	_, err = svc.Redeem(context.Background(), coupon.ID)
	require.ErrorIs(t, err, ErrCouponAlreadyRedeemed)

	after, err := svc.Get(context.Background(), coupon.ID)
	require.NoError(t, err)
	require.NotNil(t, after.RedeemedAt)
	require.WithinDuration(t, redeemedAt, *after.RedeemedAt, time.Second)
	require.True(t, after.RedeemedAt.Compare(issuedAt) >= 0)
}

func TestRedeemExpiredCoupon(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTenant(t, db, "owl", "https://maps.example/owl", "Free Cookie")

	svc := newCouponService(t, db)
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	coupon, err := svc.Claim(context.Background(), "owl", "0501234567")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(testValidity + time.Hour) }

	_, err = svc.Redeem(context.Background(), coupon.ID)
	require.ErrorIs(t, err, ErrCouponExpired)

	// Expired but unredeemed stays queryable as issued, just not redeemable.
	view, err := svc.Get(context.Background(), coupon.ID)
	require.NoError(t, err)
	require.False(t, view.Redeemed)
	require.False(t, view.Redeemable)
}

func TestCouponNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newCouponService(t, db)

	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrCouponNotFound)

	_, err = svc.Redeem(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrCouponNotFound)
}
