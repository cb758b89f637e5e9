package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tapstar/reviewgate/internal/config"
	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/internal/repository"
	"tapstar/reviewgate/internal/testutil"
	"tapstar/reviewgate/pkg/crypto"
	jwtpkg "tapstar/reviewgate/pkg/jwt"
)

func newAdminService(t *testing.T, db *gorm.DB) (AdminService, *jwtpkg.Manager) {
	t.Helper()

	hash, err := crypto.HashPassword("dashboard-secret")
	require.NoError(t, err)

	jwtManager := jwtpkg.NewManager("test-signing-key", "reviewgate-test", time.Hour)
	svc := NewAdminService(
		config.AdminConfig{Username: "admin", PasswordHash: hash},
		jwtManager,
		repository.NewMemoryStateStore(),
		repository.NewPGTenantRepository(db),
		repository.NewPGVisitRepository(db),
		repository.NewPGCouponRepository(db),
		repository.NewPGFeedbackRepository(db),
	)
	return svc, jwtManager
}

func TestAdminLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc, jwtManager := newAdminService(t, db)

	token, err := svc.Login(context.Background(), "admin", "dashboard-secret")
	require.NoError(t, err)

	claims, err := jwtManager.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Subject)

	_, err = svc.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "intruder", "dashboard-secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLogoutRevokesToken(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc, jwtManager := newAdminService(t, db)

	token, err := svc.Login(context.Background(), "admin", "dashboard-secret")
	require.NoError(t, err)
	claims, err := jwtManager.Validate(token)
	require.NoError(t, err)

	revoked, err := svc.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, svc.Logout(context.Background(), claims))

	revoked, err = svc.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestAdminListings(t *testing.T) {
	db := testutil.NewTestDB(t)
	tenant := seedTenant(t, db, "owl", "https://maps.example/owl", "Free Cookie")
	svc, _ := newAdminService(t, db)

	customer := &model.Customer{TenantID: tenant.ID, Phone: "0501234567"}
	require.NoError(t, db.Create(customer).Error)
	require.NoError(t, db.Create(&model.Visit{TenantID: tenant.ID, Stars: 5}).Error)
	require.NoError(t, db.Create(&model.Coupon{
		CustomerID: customer.ID,
		RewardText: "Free Cookie",
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}).Error)
	require.NoError(t, db.Create(&model.Feedback{TenantID: tenant.ID, Message: "meh"}).Error)

	visits, err := svc.ListVisits(context.Background(), "owl")
	require.NoError(t, err)
	require.Len(t, visits, 1)

	coupons, err := svc.ListCoupons(context.Background(), "owl")
	require.NoError(t, err)
	require.Len(t, coupons, 1)

	feedback, err := svc.ListFeedback(context.Background(), "owl")
	require.NoError(t, err)
	require.Len(t, feedback, 1)

	_, err = svc.ListVisits(context.Background(), "doesnotexist")
	require.ErrorIs(t, err, ErrTenantNotFound)
	_, err = svc.ListCoupons(context.Background(), "doesnotexist")
	require.ErrorIs(t, err, ErrTenantNotFound)
	_, err = svc.ListFeedback(context.Background(), "doesnotexist")
	require.ErrorIs(t, err, ErrTenantNotFound)
}
