package service

import (
	"context"
	"fmt"

	"github.com/asapgetaway/travel-booking/internal/models"
	"github.com/asapgetaway/travel-booking/internal/repository"
)

type TripService interface {
	ListTrips(ctx context.Context, filter repository.TripFilter) ([]models.Trip, error)
	SearchTrips(ctx context.Context, term string) ([]models.Trip, error)
	GetTrip(ctx context.Context, id uint) (*models.Trip, error)
	CreateTrip(ctx context.Context, trip *models.Trip) error
	UpdateTrip(ctx context.Context, trip *models.Trip) error
	SetTripActive(ctx context.Context, id uint, active bool) error
	DeleteTrip(ctx context.Context, id uint) error
	ListAllTrips(ctx context.Context) ([]models.Trip, error)
}

type tripService struct {
	tripRepo    repository.TripRepository
	bookingRepo repository.BookingRepository
}

func NewTripService(tripRepo repository.TripRepository, bookingRepo repository.BookingRepository) TripService {
	return &tripService{tripRepo: tripRepo, bookingRepo: bookingRepo}
}

func (s *tripService) ListTrips(ctx context.Context, filter repository.TripFilter) ([]models.Trip, error) {
	return s.tripRepo.FindActive(ctx, filter)
}

func (s *tripService) SearchTrips(ctx context.Context, term string) ([]models.Trip, error) {
	return s.tripRepo.Search(ctx, term)
}

func (s *tripService) GetTrip(ctx context.Context, id uint) (*models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

func (s *tripService) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if err := validateTrip(trip); err != nil {
		return err
	}
	applyTripDefaults(trip)
	trip.IsActive = true
	return s.tripRepo.Create(ctx, trip)
}

func (s *tripService) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	if _, err := s.tripRepo.FindByID(ctx, trip.ID); err != nil {
		return ErrTripNotFound
	}
	if err := validateTrip(trip); err != nil {
		return err
	}
	applyTripDefaults(trip)
	return s.tripRepo.Update(ctx, trip)
}

func (s *tripService) SetTripActive(ctx context.Context, id uint, active bool) error {
	if _, err := s.tripRepo.FindByID(ctx, id); err != nil {
		return ErrTripNotFound
	}
	return s.tripRepo.SetActive(ctx, id, active)
}

// DeleteTrip removes a trip permanently. Trips that any booking references,
// whatever its status, can only be deactivated.
func (s *tripService) DeleteTrip(ctx context.Context, id uint) error {
	if _, err := s.tripRepo.FindByID(ctx, id); err != nil {
		return ErrTripNotFound
	}

	count, err := s.bookingRepo.CountForTrip(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTripHasBookings
	}

	return s.tripRepo.Delete(ctx, id)
}

func (s *tripService) ListAllTrips(ctx context.Context) ([]models.Trip, error) {
	return s.tripRepo.FindAll(ctx)
}

const maxDiscountDays = 7

func validateTrip(trip *models.Trip) error {
	if trip.PackageName == "" || trip.Destination == "" || trip.Country == "" || trip.PackageType == "" {
		return fmt.Errorf("%w: package name, destination, country and package type are required", ErrInvalidTrip)
	}
	if !trip.EndDate.After(trip.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", ErrInvalidTrip)
	}
	if trip.BasePrice <= 0 {
		return fmt.Errorf("%w: base price must be greater than 0", ErrInvalidTrip)
	}
	if trip.TotalRooms < 1 {
		return fmt.Errorf("%w: total rooms must be at least 1", ErrInvalidTrip)
	}

	if trip.DiscountPrice != nil && trip.DiscountStartDate != nil && trip.DiscountEndDate != nil {
		if trip.DiscountEndDate.Sub(*trip.DiscountStartDate).Hours() > maxDiscountDays*24 {
			return fmt.Errorf("%w: discount can be active for a maximum of %d days", ErrInvalidTrip, maxDiscountDays)
		}
		if !trip.DiscountEndDate.Before(trip.StartDate) {
			return fmt.Errorf("%w: discount must end before the trip starts", ErrInvalidTrip)
		}
		if *trip.DiscountPrice >= trip.BasePrice {
			return fmt.Errorf("%w: discount price must be lower than base price", ErrInvalidTrip)
		}
	}

	return nil
}

func applyTripDefaults(trip *models.Trip) {
	if trip.LastBookingDate == nil {
		d := trip.StartDate.AddDate(0, 0, -models.DefaultLastBookingOffsetDays)
		trip.LastBookingDate = &d
	}
	if trip.CancellationDaysBeforeDeparture == 0 {
		trip.CancellationDaysBeforeDeparture = models.DefaultCancellationDays
	}
	if trip.ReminderDaysBeforeDeparture == 0 {
		trip.ReminderDaysBeforeDeparture = models.DefaultReminderDays
	}
}
