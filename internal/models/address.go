package models

import (
	"github.com/google/uuid"
)

// Address is a delivery address owned by a single user.
type Address struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Line1      string    `json:"line1"`
	Line2      string    `json:"line2"`
	Landmark   string    `json:"landmark"`
	PostalCode string    `json:"postal_code"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Label      string    `json:"label"`
}
