package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tapstar/reviewgate/internal/config"
	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/internal/repository"
	"tapstar/reviewgate/pkg/crypto"
	jwtpkg "tapstar/reviewgate/pkg/jwt"
)

const revocationKeyPrefix = "revoked_jti:"

// AdminService gates the staff dashboard: a single configured operator,
// bcrypt-checked login, bearer tokens revocable through the StateStore.
// The listing operations themselves are auth-agnostic read-only views; the
// gate lives entirely in the HTTP middleware.
type AdminService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, claims *jwtpkg.Claims) error
	IsRevoked(ctx context.Context, jti string) (bool, error)

	ListVisits(ctx context.Context, slug string) ([]model.Visit, error)
	ListCoupons(ctx context.Context, slug string) ([]model.Coupon, error)
	ListFeedback(ctx context.Context, slug string) ([]model.Feedback, error)
}

type adminService struct {
	cfg        config.AdminConfig
	jwtManager *jwtpkg.Manager
	stateStore repository.StateStore

	tenantRepo   repository.TenantRepository
	visitRepo    repository.VisitRepository
	couponRepo   repository.CouponRepository
	feedbackRepo repository.FeedbackRepository
}

func NewAdminService(
	cfg config.AdminConfig,
	jwtManager *jwtpkg.Manager,
	stateStore repository.StateStore,
	tenantRepo repository.TenantRepository,
	visitRepo repository.VisitRepository,
	couponRepo repository.CouponRepository,
	feedbackRepo repository.FeedbackRepository,
) AdminService {
	return &adminService{
		cfg:          cfg,
		jwtManager:   jwtManager,
		stateStore:   stateStore,
		tenantRepo:   tenantRepo,
		visitRepo:    visitRepo,
		couponRepo:   couponRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *adminService) Login(_ context.Context, username, password string) (string, error) {
	if username != s.cfg.Username || !crypto.CheckPassword(password, s.cfg.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, _, err := s.jwtManager.GenerateAccessToken(username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Logout marks the token's JTI as revoked until its natural expiry; the auth
// middleware rejects revoked tokens from then on.
func (s *adminService) Logout(ctx context.Context, claims *jwtpkg.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.stateStore.Set(ctx, revocationKeyPrefix+claims.ID, []byte("1"), ttl)
}

func (s *adminService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.stateStore.Exists(ctx, revocationKeyPrefix+jti)
}

func (s *adminService) ListVisits(ctx context.Context, slug string) ([]model.Visit, error) {
	tenant, err := s.lookupTenant(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.visitRepo.ListByTenant(ctx, tenant.ID)
}

func (s *adminService) ListCoupons(ctx context.Context, slug string) ([]model.Coupon, error) {
	tenant, err := s.lookupTenant(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.couponRepo.ListByTenant(ctx, tenant.ID)
}

func (s *adminService) ListFeedback(ctx context.Context, slug string) ([]model.Feedback, error) {
	tenant, err := s.lookupTenant(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.feedbackRepo.ListByTenant(ctx, tenant.ID)
}

func (s *adminService) lookupTenant(ctx context.Context, slug string) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}
	return tenant, nil
}
