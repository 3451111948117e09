package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/asapgetaway/travel-booking/internal/models"
	"github.com/asapgetaway/travel-booking/internal/repository"
	"gorm.io/gorm"
)

// CardDetails is the simulated payment input: any non-empty set of fields is
// accepted, no gateway is involved.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
	Holder string
}

func (c CardDetails) Complete() bool {
	return c.Number != "" && c.Expiry != "" && c.CVV != "" && c.Holder != ""
}

type BookingService interface {
	AvailableSeats(ctx context.Context, tripID uint) (int, error)
	CreateBooking(ctx context.Context, tripID uint, userID string, numberOfPeople int) (*models.Booking, error)
	ConfirmPayment(ctx context.Context, bookingID uint, userID string, card CardDetails) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID uint, userID string) (*models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	tripRepo    repository.TripRepository
	userRepo    repository.UserRepository
	waiting     WaitingListService
	notifier    Notifier
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	tripRepo repository.TripRepository,
	userRepo repository.UserRepository,
	waiting WaitingListService,
	notifier Notifier,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		tripRepo:    tripRepo,
		userRepo:    userRepo,
		waiting:     waiting,
		notifier:    notifier,
	}
}

// AvailableSeats reads the latest committed booking state; no caching.
func (s *bookingService) AvailableSeats(ctx context.Context, tripID uint) (int, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return 0, ErrTripNotFound
	}

	var active int64
	err = s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		active, err = s.bookingRepo.CountActiveForTrip(ctx, tx, tripID)
		return err
	})
	if err != nil {
		return 0, err
	}

	return trip.TotalRooms - int(active), nil
}

// CreateBooking runs the capacity check and insert in one transaction with a
// row lock on the trip, so two requests for the last room cannot both pass
// the check. When the trip is full the caller is enrolled in the waiting
// list instead (after the transaction, which rolls back on ErrTripFull).
func (s *bookingService) CreateBooking(ctx context.Context, tripID uint, userID string, numberOfPeople int) (*models.Booking, error) {
	if numberOfPeople < models.MinPeoplePerBooking || numberOfPeople > models.MaxPeoplePerBooking {
		return nil, ErrInvalidPartySize
	}

	var result *models.Booking

	err := s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		// 1. Lock the trip row — serializes concurrent booking attempts
		trip, err := s.tripRepo.FindByIDForUpdate(ctx, tx, tripID)
		if err != nil {
			return ErrTripNotFound
		}
		if !trip.IsActive {
			return ErrTripNotFound
		}

		now := time.Now()

		// 2. Booking cutoff (date comparison only)
		if !trip.CanBookNow(now) {
			return ErrBookingPeriodEnded
		}

		// 3. Per-user cap on active future bookings
		active, err := s.bookingRepo.CountActiveFutureForUser(ctx, tx, userID, now)
		if err != nil {
			return err
		}
		if active >= models.MaxActiveBookingsPerUser {
			return ErrUserLimitExceeded
		}

		// 4. Capacity. The trip counts as full once active bookings reach
		// TotalRooms, regardless of this request's party size.
		booked, err := s.bookingRepo.CountActiveForTrip(ctx, tx, tripID)
		if err != nil {
			return err
		}
		if int(booked) >= trip.TotalRooms {
			return ErrTripFull
		}

		// 5. Insert the hold and bump popularity
		booking := &models.Booking{
			TripID:         tripID,
			UserID:         userID,
			BookingDate:    now,
			NumberOfPeople: numberOfPeople,
			TotalPrice:     trip.CurrentPrice(now) * float64(numberOfPeople),
			Status:         models.StatusPendingPayment,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}
		if err := s.tripRepo.IncrementPopularity(ctx, tx, tripID); err != nil {
			return err
		}

		result = booking
		return nil
	})

	if errors.Is(err, ErrTripFull) {
		if _, joinErr := s.waiting.Join(ctx, tripID, userID); joinErr != nil {
			if errors.Is(joinErr, ErrAlreadyWaiting) {
				return nil, ErrAlreadyWaiting
			}
			log.Printf("[Booking] waiting list enrollment for trip %d failed: %v", tripID, joinErr)
		}
		return nil, ErrTripFull
	}

	return result, err
}

// ConfirmPayment simulates the payment gateway: complete card details are
// accepted unconditionally. Confirming an already Booked booking is a no-op.
func (s *bookingService) ConfirmPayment(ctx context.Context, bookingID uint, userID string, card CardDetails) (*models.Booking, error) {
	if !card.Complete() {
		return nil, ErrPaymentDetails
	}

	booking, err := s.ownedBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.StatusCancelled:
		return nil, ErrAlreadyCancelled
	case models.StatusBooked:
		return booking, nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, models.StatusBooked); err != nil {
		return nil, err
	}
	booking.Status = models.StatusBooked

	s.notifyConfirmation(ctx, booking)

	return booking, nil
}

// Cancel enforces the cancellation window for Booked bookings only; an
// unpaid PendingPayment hold can always be released immediately. On success
// the head of the trip's waiting list is notified (best-effort, not
// removed).
func (s *bookingService) Cancel(ctx context.Context, bookingID uint, userID string) (*models.Booking, error) {
	booking, err := s.ownedBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if booking.Status == models.StatusBooked {
		trip, err := s.tripRepo.FindByID(ctx, booking.TripID)
		if err != nil {
			return nil, fmt.Errorf("resolve trip %d: %w", booking.TripID, err)
		}
		if trip.DaysUntilDeparture(time.Now()) < trip.CancellationDaysBeforeDeparture {
			return nil, ErrCancellationWindowClosed
		}
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, models.StatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.StatusCancelled

	s.waiting.ServeNext(ctx, booking.TripID)

	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, userID)
}

// ownedBooking hides other users' bookings behind ErrBookingNotFound rather
// than revealing their existence.
func (s *bookingService) ownedBooking(ctx context.Context, bookingID uint, userID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *bookingService) notifyConfirmation(ctx context.Context, booking *models.Booking) {
	user, err := s.userRepo.FindByID(ctx, booking.UserID)
	if err != nil {
		log.Printf("[Booking] no address for user %s, skipping confirmation", booking.UserID)
		return
	}

	params := map[string]string{
		"booking_id":  strconv.FormatUint(uint64(booking.ID), 10),
		"total_price": strconv.FormatFloat(booking.TotalPrice, 'f', 2, 64),
	}
	if trip, err := s.tripRepo.FindByID(ctx, booking.TripID); err == nil {
		params["package_name"] = trip.PackageName
	}

	s.notifier.Send(ctx, user.Email, NotifyBookingConfirmation, params)
}
