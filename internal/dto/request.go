package dto

import "time"

type CreateBookingRequest struct {
	NumberOfPeople int `json:"number_of_people"`
}

type PaymentRequest struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	CardHolder string `json:"card_holder"`
}

type TripRequest struct {
	PackageName                     string     `json:"package_name"`
	Destination                     string     `json:"destination"`
	Country                         string     `json:"country"`
	StartDate                       time.Time  `json:"start_date"`
	EndDate                         time.Time  `json:"end_date"`
	BasePrice                       float64    `json:"base_price"`
	DiscountPrice                   *float64   `json:"discount_price,omitempty"`
	DiscountStartDate               *time.Time `json:"discount_start_date,omitempty"`
	DiscountEndDate                 *time.Time `json:"discount_end_date,omitempty"`
	LastBookingDate                 *time.Time `json:"last_booking_date,omitempty"`
	CancellationDaysBeforeDeparture int        `json:"cancellation_days_before_departure"`
	EnableReminders                 *bool      `json:"enable_reminders,omitempty"`
	ReminderDaysBeforeDeparture     int        `json:"reminder_days_before_departure"`
	TotalRooms                      int        `json:"total_rooms"`
	MinAge                          int        `json:"min_age"`
	PackageType                     string     `json:"package_type"`
	Description                     string     `json:"description"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
