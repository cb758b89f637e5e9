package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models.
// The composite unique index on customers (tenant_id, phone) is declared via
// struct tags; the storage layer, not application code, enforces that a
// (contact, tenant) pair maps to at most one customer row.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Tenant{},
		&Customer{},
		&Visit{},
		&Coupon{},
		&Feedback{},
	)
}
