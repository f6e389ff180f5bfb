package models

import "time"

// Coupon is read-only reference data; rows are seeded at startup and
// have no mutation endpoint.
type Coupon struct {
	BaseModel
	Code            string    `gorm:"uniqueIndex" json:"code"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discount_percent"`
	MinOrderValue   float64   `json:"min_order_value"`
	ExpiresAt       time.Time `json:"expires_at"`
	IsActive        bool      `json:"is_active"`
}

// NewsletterSubscription records a single opted-in email address.
type NewsletterSubscription struct {
	BaseModel
	Email string `gorm:"uniqueIndex" json:"email"`
}
