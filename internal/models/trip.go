package models

import "time"

const (
	// DefaultLastBookingOffsetDays is applied when a trip has no explicit
	// booking cutoff: bookings close this many days before departure.
	DefaultLastBookingOffsetDays = 7

	DefaultCancellationDays = 7
	DefaultReminderDays     = 5
)

type Trip struct {
	ID                              uint       `gorm:"primaryKey" json:"id"`
	PackageName                     string     `gorm:"not null" json:"package_name"`
	Destination                     string     `gorm:"not null" json:"destination"`
	Country                         string     `gorm:"not null" json:"country"`
	StartDate                       time.Time  `gorm:"not null" json:"start_date"`
	EndDate                         time.Time  `gorm:"not null" json:"end_date"`
	BasePrice                       float64    `gorm:"not null" json:"base_price"`
	DiscountPrice                   *float64   `json:"discount_price,omitempty"`
	DiscountStartDate               *time.Time `json:"discount_start_date,omitempty"`
	DiscountEndDate                 *time.Time `json:"discount_end_date,omitempty"`
	LastBookingDate                 *time.Time `json:"last_booking_date,omitempty"`
	CancellationDaysBeforeDeparture int        `gorm:"not null;default:7" json:"cancellation_days_before_departure"`
	EnableReminders                 bool       `gorm:"not null;default:true" json:"enable_reminders"`
	ReminderDaysBeforeDeparture     int        `gorm:"not null;default:5" json:"reminder_days_before_departure"`
	TotalRooms                      int        `gorm:"not null" json:"total_rooms"`
	MinAge                          int        `json:"min_age"`
	PackageType                     string     `gorm:"not null" json:"package_type"`
	Description                     string     `json:"description,omitempty"`
	PopularityScore                 int        `gorm:"not null;default:0" json:"popularity_score"`
	IsActive                        bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt                       time.Time  `json:"created_at"`
	UpdatedAt                       time.Time  `json:"updated_at"`
}

// IsOnSale reports whether the discount window is currently open. A discount
// only applies when the price actually undercuts the base price.
func (t *Trip) IsOnSale(now time.Time) bool {
	return t.DiscountPrice != nil &&
		*t.DiscountPrice < t.BasePrice &&
		t.DiscountStartDate != nil &&
		t.DiscountEndDate != nil &&
		!now.Before(*t.DiscountStartDate) &&
		!now.After(*t.DiscountEndDate)
}

// CurrentPrice returns the per-person unit price at the given moment.
func (t *Trip) CurrentPrice(now time.Time) float64 {
	if t.IsOnSale(now) {
		return *t.DiscountPrice
	}
	return t.BasePrice
}

// BookingDeadline is the explicit cutoff or, when unset, seven days before
// departure.
func (t *Trip) BookingDeadline() time.Time {
	if t.LastBookingDate != nil {
		return *t.LastBookingDate
	}
	return t.StartDate.AddDate(0, 0, -DefaultLastBookingOffsetDays)
}

// CanBookNow compares calendar dates only: a booking on the deadline day
// itself is still accepted.
func (t *Trip) CanBookNow(now time.Time) bool {
	return !dateOnly(now).After(dateOnly(t.BookingDeadline()))
}

// DaysUntilDeparture truncates toward zero, matching the cancellation-window
// arithmetic.
func (t *Trip) DaysUntilDeparture(now time.Time) int {
	return int(t.StartDate.Sub(now).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
