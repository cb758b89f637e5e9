package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/internal/repository"
	"tapstar/reviewgate/pkg/phone"
)

const feedbackBodyPrefix = "🚨 *Customer Feedback*\n\n"

// FeedbackPayload is what the presentation layer needs to forward a
// complaint: the tenant's WhatsApp number, the formatted body, and the
// ready-made deep link. The core never sends the message itself.
type FeedbackPayload struct {
	FeedbackID  uuid.UUID `json:"feedback_id"`
	Recipient   string    `json:"recipient"`
	Body        string    `json:"body"`
	WhatsAppURL string    `json:"whatsapp_url"`
}

type FeedbackService interface {
	// Record appends the complaint and returns the outbound payload.
	// Contact is optional; when present it upserts the customer row.
	Record(ctx context.Context, slug string, contact string, message string) (*FeedbackPayload, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	customerRepo repository.CustomerRepository
	tenantRepo   repository.TenantRepository
}

func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	customerRepo repository.CustomerRepository,
	tenantRepo repository.TenantRepository,
) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		customerRepo: customerRepo,
		tenantRepo:   tenantRepo,
	}
}

func (s *feedbackService) Record(ctx context.Context, slug string, contact string, message string) (*FeedbackPayload, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrMessageRequired
	}

	tenant, err := s.tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}

	feedback := &model.Feedback{
		TenantID: tenant.ID,
		Message:  message,
	}
	if phone.Normalize(contact) != "" {
		customer, err := s.customerRepo.GetOrCreate(ctx, tenant.ID, contact)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert customer: %w", err)
		}
		feedback.CustomerID = &customer.ID
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}

	body := feedbackBodyPrefix + message
	recipient := phone.Normalize(tenant.WhatsAppNumber)
	return &FeedbackPayload{
		FeedbackID:  feedback.ID,
		Recipient:   recipient,
		Body:        body,
		WhatsAppURL: "https://wa.me/" + recipient + "?text=" + url.QueryEscape(body),
	}, nil
}
