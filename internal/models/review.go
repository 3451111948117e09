package models

import "time"

const (
	MinRating = 1
	MaxRating = 5

	MinCommentLength = 10
	MaxCommentLength = 2000
)

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TripID    uint      `gorm:"not null;index" json:"trip_id"`
	UserID    string    `gorm:"not null" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"not null" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
