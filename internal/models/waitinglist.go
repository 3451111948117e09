package models

import "time"

// WaitingListItem is a FIFO queue entry for a sold-out trip. Queue position
// is defined by JoinDate ascending among active entries; entries are
// hard-deleted when a user leaves or an administrator clears the list.
type WaitingListItem struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	TripID   uint      `gorm:"not null;index" json:"trip_id"`
	UserID   string    `gorm:"not null;index" json:"user_id"`
	JoinDate time.Time `gorm:"not null" json:"join_date"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}
