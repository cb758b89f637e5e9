package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tapstar/reviewgate/internal/model"
	"tapstar/reviewgate/pkg/phone"
)

type pgCustomerRepository struct {
	db *gorm.DB
}

func NewPGCustomerRepository(db *gorm.DB) CustomerRepository {
	return &pgCustomerRepository{db: db}
}

// GetOrCreate relies on the unique index on (tenant_id, phone) rather than a
// check-then-insert in application code: the insert carries ON CONFLICT DO
// NOTHING, and a conflicting (concurrent or repeat) call falls through to
// re-reading the existing row.
func (r *pgCustomerRepository) GetOrCreate(ctx context.Context, tenantID uuid.UUID, contact string) (*model.Customer, error) {
	customer := &model.Customer{
		TenantID: tenantID,
		Phone:    phone.Normalize(contact),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "phone"}},
			DoNothing: true,
		}).
		Create(customer)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 1 {
		return customer, nil
	}

	var existing model.Customer
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND phone = ?", tenantID, customer.Phone).
		First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}
