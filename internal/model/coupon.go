package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Coupon is a single-use reward instance tied to one customer. The ID is
// the opaque identifier embedded in the coupon URL; holding it is the only
// proof of ownership. RewardText is copied from the tenant at issue time so
// later tenant edits do not rewrite outstanding coupons.
//
// Lifecycle: issued -> redeemed (terminal). Expiry is never persisted as a
// state transition; it is computed on read against ExpiresAt.
type Coupon struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	RewardText string     `gorm:"type:text;not null" json:"reward_text"`
	ExpiresAt  time.Time  `gorm:"not null" json:"expires_at"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Coupon) TableName() string { return "coupons" }

func (c *Coupon) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Coupon) Redeemed() bool { return c.RedeemedAt != nil }

// RedeemableAt reports whether the coupon can still be redeemed at the
// given instant: unredeemed and not past expiry.
func (c *Coupon) RedeemableAt(now time.Time) bool {
	return c.RedeemedAt == nil && !now.After(c.ExpiresAt)
}
