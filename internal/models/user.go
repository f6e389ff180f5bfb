package models

import (
	"time"
)

// User represents a registered customer. Phone is the login key; there
// is no password, possession of the number is proven out of band.
type User struct {
	BaseModel
	Phone       string    `gorm:"uniqueIndex" json:"mobile_number"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	LastLoginAt time.Time `json:"last_login_at"`
	Addresses   []Address `json:"addresses,omitempty"`
}
