package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tapstar/reviewgate/internal/config"
	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/internal/repository"
)

type Outcome string

const (
	// OutcomeClaimReward routes a happy customer into the coupon claim flow.
	OutcomeClaimReward Outcome = "claim_reward"
	// OutcomeGoToReview forwards a happy customer to the tenant's public review page.
	OutcomeGoToReview Outcome = "go_to_review"
	// OutcomeGiveFeedback routes an unhappy customer to the private feedback channel.
	OutcomeGiveFeedback Outcome = "give_feedback"
)

// RatingResult carries the routing decision plus whatever the presentation
// layer needs to act on it: the review URL for a redirect, or the reward text
// for the claim page.
type RatingResult struct {
	Outcome    Outcome `json:"outcome"`
	ReviewURL  string  `json:"review_url,omitempty"`
	RewardText string  `json:"reward_text,omitempty"`
}

// RatingPolicy is the single home of the star domain and review threshold.
type RatingPolicy struct {
	MinStars        int
	MaxStars        int
	ReviewThreshold int
}

func NewRatingPolicy(cfg config.RatingConfig) RatingPolicy {
	return RatingPolicy{
		MinStars:        cfg.MinStars,
		MaxStars:        cfg.MaxStars,
		ReviewThreshold: cfg.ReviewThreshold,
	}
}

// ValidStars reports whether stars falls inside the accepted domain.
func (p RatingPolicy) ValidStars(stars int) bool {
	return stars >= p.MinStars && stars <= p.MaxStars
}

// Route maps a star count to an outcome. Pure decision, no side effects:
//   - stars >= threshold with a reward program -> claim the reward
//   - stars >= threshold without one          -> go leave a public review
//   - below threshold                          -> private feedback
// Out-of-range stars are a validation error, never clamped.
func (p RatingPolicy) Route(tenant *model.Tenant, stars int) (*RatingResult, error) {
	if !p.ValidStars(stars) {
		return nil, ErrInvalidStars
	}

	if stars >= p.ReviewThreshold {
		if tenant.HasReward() {
			return &RatingResult{Outcome: OutcomeClaimReward, RewardText: *tenant.RewardText}, nil
		}
		return &RatingResult{Outcome: OutcomeGoToReview, ReviewURL: tenant.ReviewURL}, nil
	}
	return &RatingResult{Outcome: OutcomeGiveFeedback}, nil
}

type RatingService interface {
	// SubmitRating validates the stars, appends a visit to the rating log,
	// and returns the routing outcome for the presentation layer.
	SubmitRating(ctx context.Context, slug string, stars int) (*RatingResult, error)
}

type ratingService struct {
	tenantRepo repository.TenantRepository
	visitRepo  repository.VisitRepository
	policy     RatingPolicy
}

func NewRatingService(tenantRepo repository.TenantRepository, visitRepo repository.VisitRepository, policy RatingPolicy) RatingService {
	return &ratingService{
		tenantRepo: tenantRepo,
		visitRepo:  visitRepo,
		policy:     policy,
	}
}

func (s *ratingService) SubmitRating(ctx context.Context, slug string, stars int) (*RatingResult, error) {
	// Reject before any state mutation.
	if !s.policy.ValidStars(stars) {
		return nil, ErrInvalidStars
	}

	tenant, err := s.tenantRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}

	visit := &model.Visit{
		TenantID: tenant.ID,
		Stars:    stars,
	}
	if err := s.visitRepo.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}

	return s.policy.Route(tenant, stars)
}
