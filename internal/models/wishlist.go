package models

import "time"

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TripID    uint      `gorm:"not null;index" json:"trip_id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}
