package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a contact captured through the claim or feedback flow.
// At most one row exists per (tenant, normalized phone); repeated claims
// reuse it rather than duplicating.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_customers_tenant_phone" json:"tenant_id"`
	Phone     string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_customers_tenant_phone" json:"phone"`
	CreatedAt time.Time `json:"created_at"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (Customer) TableName() string { return "customers" }

func (c *Customer) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
