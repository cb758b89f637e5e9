package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant is a business/location using the review gate, identified by a
// unique slug that appears in the scanned URL.
type Tenant struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug           string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	NameEN         string    `gorm:"type:varchar(255);not null" json:"name_en"`
	NameAR         string    `gorm:"type:varchar(255)" json:"name_ar"`
	WhatsAppNumber string    `gorm:"column:whatsapp_number;type:varchar(32);not null" json:"whatsapp_number"`
	ReviewURL      string    `gorm:"type:text;not null" json:"review_url"`
	RewardText     *string   `gorm:"type:text" json:"reward_text,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Tenant) TableName() string { return "tenants" }

func (t *Tenant) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// HasReward reports whether the tenant runs a reward program.
// An absent reward text disables the claim/coupon path; it is a per-tenant
// feature flag, not an error.
func (t *Tenant) HasReward() bool {
	return t.RewardText != nil && *t.RewardText != ""
}
