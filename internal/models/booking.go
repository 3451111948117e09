package models

import "time"

type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "PendingPayment"
	StatusBooked         BookingStatus = "Booked"
	StatusCancelled      BookingStatus = "Cancelled"
)

// IsActive reports whether a booking counts toward trip capacity and the
// per-user booking limit.
func (s BookingStatus) IsActive() bool {
	return s == StatusPendingPayment || s == StatusBooked
}

const (
	MinPeoplePerBooking = 1
	MaxPeoplePerBooking = 20

	// MaxActiveBookingsPerUser caps simultaneous active bookings whose trip
	// has not yet ended.
	MaxActiveBookingsPerUser = 3
)

type Booking struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	TripID         uint          `gorm:"not null;index" json:"trip_id"`
	UserID         string        `gorm:"not null;index" json:"user_id"`
	BookingDate    time.Time     `gorm:"not null" json:"booking_date"`
	NumberOfPeople int           `gorm:"not null" json:"number_of_people"`
	TotalPrice     float64       `gorm:"not null" json:"total_price"`
	Status         BookingStatus `gorm:"type:varchar(20);not null;default:'PendingPayment'" json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}
