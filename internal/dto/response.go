package dto

import (
	"time"

	"github.com/asapgetaway/travel-booking/internal/models"
	"github.com/asapgetaway/travel-booking/internal/service"
)

type BookingResponse struct {
	ID             uint                 `json:"id"`
	TripID         uint                 `json:"trip_id"`
	UserID         string               `json:"user_id"`
	BookingDate    time.Time            `json:"booking_date"`
	NumberOfPeople int                  `json:"number_of_people"`
	TotalPrice     float64              `json:"total_price"`
	Status         models.BookingStatus `json:"status"`
	Trip           *TripResponse        `json:"trip,omitempty"`
}

type TripResponse struct {
	ID                              uint       `json:"id"`
	PackageName                     string     `json:"package_name"`
	Destination                     string     `json:"destination"`
	Country                         string     `json:"country"`
	StartDate                       time.Time  `json:"start_date"`
	EndDate                         time.Time  `json:"end_date"`
	BasePrice                       float64    `json:"base_price"`
	DiscountPrice                   *float64   `json:"discount_price,omitempty"`
	DiscountStartDate               *time.Time `json:"discount_start_date,omitempty"`
	DiscountEndDate                 *time.Time `json:"discount_end_date,omitempty"`
	CurrentPrice                    float64    `json:"current_price"`
	OnSale                          bool       `json:"on_sale"`
	LastBookingDate                 *time.Time `json:"last_booking_date,omitempty"`
	CancellationDaysBeforeDeparture int        `json:"cancellation_days_before_departure"`
	TotalRooms                      int        `json:"total_rooms"`
	MinAge                          int        `json:"min_age"`
	PackageType                     string     `json:"package_type"`
	Description                     string     `json:"description,omitempty"`
	PopularityScore                 int        `json:"popularity_score"`
	IsActive                        bool       `json:"is_active"`
}

type AvailabilityResponse struct {
	TripID         uint `json:"trip_id"`
	TotalRooms     int  `json:"total_rooms"`
	AvailableSeats int  `json:"available_seats"`
	Full           bool `json:"full"`
}

type WaitingListJoinResponse struct {
	TripID   uint `json:"trip_id"`
	Position int  `json:"position"`
}

type WaitingEntryResponse struct {
	TripID   uint          `json:"trip_id"`
	JoinDate time.Time     `json:"join_date"`
	Position int           `json:"position"`
	Trip     *TripResponse `json:"trip,omitempty"`
}

type WaitingListItemResponse struct {
	TripID   uint      `json:"trip_id"`
	UserID   string    `json:"user_id"`
	JoinDate time.Time `json:"join_date"`
}

type TripQueueResponse struct {
	Trip         TripResponse `json:"trip"`
	WaitingCount int64        `json:"waiting_count"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	TripID    uint      `json:"trip_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type WishlistItemResponse struct {
	TripID    uint          `json:"trip_id"`
	CreatedAt time.Time     `json:"created_at"`
	Trip      *TripResponse `json:"trip,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:             b.ID,
		TripID:         b.TripID,
		UserID:         b.UserID,
		BookingDate:    b.BookingDate,
		NumberOfPeople: b.NumberOfPeople,
		TotalPrice:     b.TotalPrice,
		Status:         b.Status,
	}
	if b.Trip != nil {
		trip := ToTripResponse(b.Trip)
		resp.Trip = &trip
	}
	return resp
}

func ToTripResponse(t *models.Trip) TripResponse {
	now := time.Now()
	return TripResponse{
		ID:                              t.ID,
		PackageName:                     t.PackageName,
		Destination:                     t.Destination,
		Country:                         t.Country,
		StartDate:                       t.StartDate,
		EndDate:                         t.EndDate,
		BasePrice:                       t.BasePrice,
		DiscountPrice:                   t.DiscountPrice,
		DiscountStartDate:               t.DiscountStartDate,
		DiscountEndDate:                 t.DiscountEndDate,
		CurrentPrice:                    t.CurrentPrice(now),
		OnSale:                          t.IsOnSale(now),
		LastBookingDate:                 t.LastBookingDate,
		CancellationDaysBeforeDeparture: t.CancellationDaysBeforeDeparture,
		TotalRooms:                      t.TotalRooms,
		MinAge:                          t.MinAge,
		PackageType:                     t.PackageType,
		Description:                     t.Description,
		PopularityScore:                 t.PopularityScore,
		IsActive:                        t.IsActive,
	}
}

func ToWaitingEntryResponse(e service.WaitingEntry) WaitingEntryResponse {
	resp := WaitingEntryResponse{
		TripID:   e.Item.TripID,
		JoinDate: e.Item.JoinDate,
		Position: e.Position,
	}
	if e.Item.Trip != nil {
		trip := ToTripResponse(e.Item.Trip)
		resp.Trip = &trip
	}
	return resp
}

func ToReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		TripID:    r.TripID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func ToWishlistItemResponse(w *models.WishlistItem) WishlistItemResponse {
	resp := WishlistItemResponse{
		TripID:    w.TripID,
		CreatedAt: w.CreatedAt,
	}
	if w.Trip != nil {
		trip := ToTripResponse(w.Trip)
		resp.Trip = &trip
	}
	return resp
}
