package models

import "time"

// User is the read-only slice of the identity store this service needs:
// enough to resolve a notification address for a caller-supplied user id.
// Account management lives elsewhere.
type User struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"not null" json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
