package service

import (
	"context"
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"tapstar/reviewgate/internal/config"
	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/internal/repository"
)

const qrImageSize = 256

type TenantService interface {
	// Lookup resolves a tenant by its slug. Read-only at request time.
	Lookup(ctx context.Context, slug string) (*model.Tenant, error)
	List(ctx context.Context) ([]model.Tenant, error)
	// Seed upserts the configured tenant directory at startup.
	Seed(ctx context.Context, seeds []config.TenantSeed) error
	// QRCode renders the PNG a tenant prints on its tables: it encodes the
	// public rating page URL for that tenant.
	QRCode(ctx context.Context, slug string) ([]byte, error)
}

type tenantService struct {
	tenantRepo repository.TenantRepository
	baseURL    string
}

func NewTenantService(tenantRepo repository.TenantRepository, baseURL string) TenantService {
	return &tenantService{
		tenantRepo: tenantRepo,
		baseURL:    baseURL,
	}
}

func (s *tenantService) Lookup(ctx context.Context, slug string) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}
	return tenant, nil
}

func (s *tenantService) List(ctx context.Context) ([]model.Tenant, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

func (s *tenantService) Seed(ctx context.Context, seeds []config.TenantSeed) error {
	for _, seed := range seeds {
		tenant := &model.Tenant{
			Slug:           seed.Slug,
			NameEN:         seed.NameEN,
			NameAR:         seed.NameAR,
			WhatsAppNumber: seed.WhatsAppNumber,
			ReviewURL:      seed.ReviewURL,
		}
		if seed.RewardText != "" {
			reward := seed.RewardText
			tenant.RewardText = &reward
		}
		if err := s.tenantRepo.Upsert(ctx, tenant); err != nil {
			return fmt.Errorf("failed to seed tenant %q: %w", seed.Slug, err)
		}
	}
	return nil
}

func (s *tenantService) QRCode(ctx context.Context, slug string) ([]byte, error) {
	if _, err := s.Lookup(ctx, slug); err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(s.baseURL+"/t/"+slug, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
