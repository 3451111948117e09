package service

import "errors"

// User-facing errors. Handlers map these to HTTP status codes with
// errors.Is; raw store errors never cross that boundary.
var (
	ErrTripNotFound    = errors.New("trip not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrBookingPeriodEnded       = errors.New("booking period for this trip has ended")
	ErrUserLimitExceeded        = errors.New("you already have 3 active future bookings")
	ErrTripFull                 = errors.New("this trip is full, you have been added to the waiting list")
	ErrAlreadyWaiting           = errors.New("you are already on the waiting list for this trip")
	ErrNotWaiting               = errors.New("you are not on the waiting list for this trip")
	ErrAlreadyCancelled         = errors.New("this booking is already cancelled")
	ErrCancellationWindowClosed = errors.New("cancellation window for this trip has closed")
	ErrInvalidPartySize         = errors.New("number of people must be between 1 and 20")
	ErrPaymentDetails           = errors.New("all payment fields are required")

	ErrInvalidTrip     = errors.New("invalid trip")
	ErrTripHasBookings = errors.New("trip has bookings and cannot be deleted")

	ErrInvalidReview     = errors.New("invalid review")
	ErrAlreadyInWishlist = errors.New("this trip is already in your wish list")
)
