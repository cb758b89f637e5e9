package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visit is a single rating event. Rows are append-only history and are
// never mutated or deleted. CustomerID is nil when the rating was submitted
// before any contact was captured (the common case).
type Visit struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CustomerID *uuid.UUID `gorm:"type:uuid" json:"customer_id,omitempty"`
	Stars      int        `gorm:"type:smallint;not null" json:"stars"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Visit) TableName() string { return "visits" }

func (v *Visit) BeforeCreate(*gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
