package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/internal/repository"
	"tapstar/reviewgate/internal/testutil"
)

func testPolicy() RatingPolicy {
	return RatingPolicy{MinStars: 1, MaxStars: 5, ReviewThreshold: 4}
}

func seedTenant(t *testing.T, db *gorm.DB, slug, reviewURL, rewardText string) *model.Tenant {
	t.Helper()
	tenant := &model.Tenant{
		Slug:           slug,
		NameEN:         slug,
		WhatsAppNumber: "966500000000",
		ReviewURL:      reviewURL,
	}
	if rewardText != "" {
		tenant.RewardText = &rewardText
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func TestRouteLowStarsAlwaysFeedback(t *testing.T) {
	policy := testPolicy()
	withReward := "Free Cookie"
	tenants := []*model.Tenant{
		{ReviewURL: "https://maps.example/owl", RewardText: &withReward},
		{ReviewURL: "https://maps.example/masra"},
	}

	for _, tenant := range tenants {
		for stars := 1; stars <= 3; stars++ {
			result, err := policy.Route(tenant, stars)
			require.NoError(t, err)
			require.Equal(t, OutcomeGiveFeedback, result.Outcome)
			require.Empty(t, result.ReviewURL)
		}
	}
}

func TestRouteHighStars(t *testing.T) {
	policy := testPolicy()
	reward := "Free Cookie"

	withReward := &model.Tenant{ReviewURL: "https://maps.example/owl", RewardText: &reward}
	withoutReward := &model.Tenant{ReviewURL: "https://maps.example/masra"}

	for stars := 4; stars <= 5; stars++ {
		result, err := policy.Route(withReward, stars)
		require.NoError(t, err)
		require.Equal(t, OutcomeClaimReward, result.Outcome)
		require.Equal(t, "Free Cookie", result.RewardText)

		result, err = policy.Route(withoutReward, stars)
		require.NoError(t, err)
		require.Equal(t, OutcomeGoToReview, result.Outcome)
		require.Equal(t, "https://maps.example/masra", result.ReviewURL)
	}
}

func TestRouteRejectsOutOfRangeStars(t *testing.T) {
	policy := testPolicy()
	tenant := &model.Tenant{ReviewURL: "https://maps.example/owl"}

	for _, stars := range []int{0, -1, 6, 100} {
		_, err := policy.Route(tenant, stars)
		require.ErrorIs(t, err, ErrInvalidStars, "stars=%d", stars)
	}
}

func TestSubmitRatingRecordsVisit(t *testing.T) {
	db := testutil.NewTestDB(t)
	tenant := seedTenant(t, db, "owl", "https://maps.example/owl", "Free Cookie")

	svc := NewRatingService(
		repository.NewPGTenantRepository(db),
		repository.NewPGVisitRepository(db),
		testPolicy(),
	)

	result, err := svc.SubmitRating(context.Background(), "owl", 5)
	require.NoError(t, err)
	require.Equal(t, OutcomeClaimReward, result.Outcome)

	var visits []model.Visit
	require.NoError(t, db.Find(&visits).Error)
	require.Len(t, visits, 1)
	require.Equal(t, tenant.ID, visits[0].TenantID)
	require.Equal(t, 5, visits[0].Stars)
	require.Nil(t, visits[0].CustomerID)
}

func TestSubmitRatingInvalidStarsWritesNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedTenant(t, db, "owl", "https://maps.example/owl", "")

	svc := NewRatingService(
		repository.NewPGTenantRepository(db),
		repository.NewPGVisitRepository(db),
		testPolicy(),
	)

	_, err := svc.SubmitRating(context.Background(), "owl", 6)
	require.ErrorIs(t, err, ErrInvalidStars)

	var count int64
	require.NoError(t, db.Model(&model.Visit{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSubmitRatingUnknownTenant(t *testing.T) {
	db := testutil.NewTestDB(t)

	svc := NewRatingService(
		repository.NewPGTenantRepository(db),
		repository.NewPGVisitRepository(db),
		testPolicy(),
	)

	_, err := svc.SubmitRating(context.Background(), "doesnotexist", 5)
	require.ErrorIs(t, err, ErrTenantNotFound)
}
