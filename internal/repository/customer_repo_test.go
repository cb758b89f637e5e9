package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/internal/testutil"
)

func TestGetOrCreateReusesRow(t *testing.T) {
	db := testutil.NewTestDB(t)

	tenant := &model.Tenant{
		Slug:           "owl",
		NameEN:         "Owl Cafe",
		WhatsAppNumber: "966500000000",
		ReviewURL:      "https://maps.example/owl",
	}
	require.NoError(t, db.Create(tenant).Error)

	repo := NewPGCustomerRepository(db)

	first, err := repo.GetOrCreate(context.Background(), tenant.ID, "0501234567")
	require.NoError(t, err)
	require.Equal(t, "0501234567", first.Phone)

	second, err := repo.GetOrCreate(context.Background(), tenant.ID, "0501234567")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	// Same digits in a different format hit the same row.
	third, err := repo.GetOrCreate(context.Background(), tenant.ID, "050-123-4567")
	require.NoError(t, err)
	require.Equal(t, first.ID, third.ID)

	var count int64
	require.NoError(t, db.Model(&model.Customer{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGetOrCreateScopedByTenant(t *testing.T) {
	db := testutil.NewTestDB(t)

	repo := NewPGCustomerRepository(db)

	a := &model.Tenant{Slug: "a", NameEN: "A", WhatsAppNumber: "1", ReviewURL: "https://maps.example/a"}
	b := &model.Tenant{Slug: "b", NameEN: "B", WhatsAppNumber: "2", ReviewURL: "https://maps.example/b"}
	require.NoError(t, db.Create(a).Error)
	require.NoError(t, db.Create(b).Error)

	inA, err := repo.GetOrCreate(context.Background(), a.ID, "0501234567")
	require.NoError(t, err)
	inB, err := repo.GetOrCreate(context.Background(), b.ID, "0501234567")
	require.NoError(t, err)

	require.NotEqual(t, inA.ID, inB.ID)
}
