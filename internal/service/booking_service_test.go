package service

import (
	"context"
	"testing"
	"time"

	"github.com/asapgetaway/travel-booking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureTrip(id uint, rooms int) *models.Trip {
	return &models.Trip{
		ID:                              id,
		PackageName:                     "Bali Escape",
		Destination:                     "Bali",
		Country:                         "Indonesia",
		StartDate:                       time.Now().AddDate(0, 0, 30),
		EndDate:                         time.Now().AddDate(0, 0, 37),
		BasePrice:                       1000,
		TotalRooms:                      rooms,
		CancellationDaysBeforeDeparture: models.DefaultCancellationDays,
		PackageType:                     "Beach",
		IsActive:                        true,
	}
}

func validCard() CardDetails {
	return CardDetails{Number: "4111111111111111", Expiry: "12/27", CVV: "123", Holder: "Jane Doe"}
}

func newBookingService(trips *mockTripRepo, bookings *mockBookingRepo, waiting *mockWaitingSvc, notifier *mockNotifier) BookingService {
	return NewBookingService(bookings, trips, &mockUserRepo{}, waiting, notifier)
}

func TestCreateBooking_Success(t *testing.T) {
	trip := futureTrip(1, 10)
	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return trip, nil
	}}
	bookings := &mockBookingRepo{}
	waiting := &mockWaitingSvc{}

	svc := newBookingService(trips, bookings, waiting, &mockNotifier{})

	booking, err := svc.CreateBooking(context.Background(), 1, "user-1", 2)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingPayment, booking.Status)
	assert.Equal(t, 2000.0, booking.TotalPrice)
	assert.Equal(t, "user-1", booking.UserID)
	assert.Len(t, bookings.created, 1)
	assert.Equal(t, []uint{1}, trips.incrementedPopularity)
	assert.Empty(t, waiting.serveNextCalls)
}

func TestCreateBooking_DiscountApplied(t *testing.T) {
	trip := futureTrip(1, 10)
	discount := 750.0
	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)
	trip.DiscountPrice = &discount
	trip.DiscountStartDate = &from
	trip.DiscountEndDate = &to

	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return trip, nil
	}}
	bookings := &mockBookingRepo{}

	svc := newBookingService(trips, bookings, &mockWaitingSvc{}, &mockNotifier{})

	booking, err := svc.CreateBooking(context.Background(), 1, "user-1", 3)

	require.NoError(t, err)
	assert.Equal(t, 2250.0, booking.TotalPrice)
}

func TestCreateBooking_InvalidPartySize(t *testing.T) {
	svc := newBookingService(&mockTripRepo{}, &mockBookingRepo{}, &mockWaitingSvc{}, &mockNotifier{})

	for _, people := range []int{0, -1, models.MaxPeoplePerBooking + 1} {
		_, err := svc.CreateBooking(context.Background(), 1, "user-1", people)
		assert.ErrorIs(t, err, ErrInvalidPartySize)
	}
}

func TestCreateBooking_TripNotFound(t *testing.T) {
	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return nil, assert.AnError
	}}

	svc := newBookingService(trips, &mockBookingRepo{}, &mockWaitingSvc{}, &mockNotifier{})

	_, err := svc.CreateBooking(context.Background(), 99, "user-1", 1)
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestCreateBooking_InactiveTripHidden(t *testing.T) {
	trip := futureTrip(1, 10)
	trip.IsActive = false
	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return trip, nil
	}}

	svc := newBookingService(trips, &mockBookingRepo{}, &mockWaitingSvc{}, &mockNotifier{})

	_, err := svc.CreateBooking(context.Background(), 1, "user-1", 1)
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestCreateBooking_PeriodEnded(t *testing.T) {
	trip := futureTrip(1, 10)
	yesterday := time.Now().AddDate(0, 0, -1)
	trip.LastBookingDate = &yesterday

	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return trip, nil
	}}
	bookings := &mockBookingRepo{}

	svc := newBookingService(trips, bookings, &mockWaitingSvc{}, &mockNotifier{})

	_, err := svc.CreateBooking(context.Background(), 1, "user-1", 1)
	assert.ErrorIs(t, err, ErrBookingPeriodEnded)
	assert.Empty(t, bookings.created)
}

func TestCreateBooking_UserLimitExceeded(t *testing.T) {
	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return futureTrip(1, 10), nil
	}}
	bookings := &mockBookingRepo{
		countActiveFutureForUserFn: func(userID string) (int64, error) {
			return models.MaxActiveBookingsPerUser, nil
		},
	}

	svc := newBookingService(trips, bookings, &mockWaitingSvc{}, &mockNotifier{})

	_, err := svc.CreateBooking(context.Background(), 1, "user-1", 1)
	assert.ErrorIs(t, err, ErrUserLimitExceeded)
	assert.Empty(t, bookings.created)
}

func TestCreateBooking_TripFullEnrollsWaitingList(t *testing.T) {
	trip := futureTrip(1, 2)
	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return trip, nil
	}}
	bookings := &mockBookingRepo{
		countActiveForTripFn: func(tripID uint) (int64, error) { return 2, nil },
	}
	joined := 0
	waiting := &mockWaitingSvc{joinFn: func(tripID uint, userID string) (int, error) {
		joined++
		assert.Equal(t, uint(1), tripID)
		assert.Equal(t, "user-1", userID)
		return 1, nil
	}}

	svc := newBookingService(trips, bookings, waiting, &mockNotifier{})

	_, err := svc.CreateBooking(context.Background(), 1, "user-1", 1)
	assert.ErrorIs(t, err, ErrTripFull)
	assert.Equal(t, 1, joined)
	assert.Empty(t, bookings.created)
}

func TestCreateBooking_TripFullAlreadyWaiting(t *testing.T) {
	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return futureTrip(1, 1), nil
	}}
	bookings := &mockBookingRepo{
		countActiveForTripFn: func(tripID uint) (int64, error) { return 1, nil },
	}
	waiting := &mockWaitingSvc{joinFn: func(tripID uint, userID string) (int, error) {
		return 0, ErrAlreadyWaiting
	}}

	svc := newBookingService(trips, bookings, waiting, &mockNotifier{})

	_, err := svc.CreateBooking(context.Background(), 1, "user-1", 1)
	assert.ErrorIs(t, err, ErrAlreadyWaiting)
}

func TestAvailableSeats(t *testing.T) {
	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return futureTrip(1, 10), nil
	}}
	bookings := &mockBookingRepo{
		countActiveForTripFn: func(tripID uint) (int64, error) { return 4, nil },
	}

	svc := newBookingService(trips, bookings, &mockWaitingSvc{}, &mockNotifier{})

	seats, err := svc.AvailableSeats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 6, seats)
}

func TestConfirmPayment_Success(t *testing.T) {
	trip := futureTrip(1, 10)
	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return trip, nil
	}}
	bookings := &mockBookingRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, TripID: 1, UserID: "user-1", TotalPrice: 2000, Status: models.StatusPendingPayment}, nil
	}}
	notifier := &mockNotifier{}

	svc := newBookingService(trips, bookings, &mockWaitingSvc{}, notifier)

	booking, err := svc.ConfirmPayment(context.Background(), 7, "user-1", validCard())

	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, booking.Status)
	assert.Equal(t, models.StatusBooked, bookings.statusUpdates[7])

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, NotifyBookingConfirmation, notifier.sent[0].Kind)
	assert.Equal(t, "user-1@example.com", notifier.sent[0].To)
	assert.Equal(t, "2000.00", notifier.sent[0].Params["total_price"])
	assert.Equal(t, "Bali Escape", notifier.sent[0].Params["package_name"])
}

func TestConfirmPayment_Idempotent(t *testing.T) {
	bookings := &mockBookingRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, UserID: "user-1", Status: models.StatusBooked}, nil
	}}
	notifier := &mockNotifier{}

	svc := newBookingService(&mockTripRepo{}, bookings, &mockWaitingSvc{}, notifier)

	booking, err := svc.ConfirmPayment(context.Background(), 7, "user-1", validCard())

	require.NoError(t, err)
	assert.Equal(t, models.StatusBooked, booking.Status)
	assert.Empty(t, bookings.statusUpdates, "a second confirmation must not touch the row")
	assert.Empty(t, notifier.sent)
}

func TestConfirmPayment_CancelledBooking(t *testing.T) {
	bookings := &mockBookingRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, UserID: "user-1", Status: models.StatusCancelled}, nil
	}}

	svc := newBookingService(&mockTripRepo{}, bookings, &mockWaitingSvc{}, &mockNotifier{})

	_, err := svc.ConfirmPayment(context.Background(), 7, "user-1", validCard())
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestConfirmPayment_IncompleteCard(t *testing.T) {
	svc := newBookingService(&mockTripRepo{}, &mockBookingRepo{}, &mockWaitingSvc{}, &mockNotifier{})

	card := validCard()
	card.CVV = ""
	_, err := svc.ConfirmPayment(context.Background(), 7, "user-1", card)
	assert.ErrorIs(t, err, ErrPaymentDetails)
}

func TestConfirmPayment_WrongOwner(t *testing.T) {
	bookings := &mockBookingRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, UserID: "someone-else", Status: models.StatusPendingPayment}, nil
	}}

	svc := newBookingService(&mockTripRepo{}, bookings, &mockWaitingSvc{}, &mockNotifier{})

	_, err := svc.ConfirmPayment(context.Background(), 7, "user-1", validCard())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_PendingAlwaysAllowed(t *testing.T) {
	// Departure is tomorrow, far inside the cancellation window, but an
	// unpaid hold is still released.
	trip := futureTrip(1, 10)
	trip.StartDate = time.Now().Add(24*time.Hour + time.Hour)

	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return trip, nil
	}}
	bookings := &mockBookingRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, TripID: 1, UserID: "user-1", Status: models.StatusPendingPayment}, nil
	}}
	waiting := &mockWaitingSvc{}

	svc := newBookingService(trips, bookings, waiting, &mockNotifier{})

	booking, err := svc.Cancel(context.Background(), 7, "user-1")

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, booking.Status)
	assert.Equal(t, []uint{1}, waiting.serveNextCalls)
}

func TestCancel_BookedOutsideWindow(t *testing.T) {
	// 10 days out with a 7-day window: cancellation still allowed.
	trip := futureTrip(1, 10)
	trip.StartDate = time.Now().Add(10*24*time.Hour + time.Hour)
	trip.CancellationDaysBeforeDeparture = 7

	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return trip, nil
	}}
	bookings := &mockBookingRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, TripID: 1, UserID: "user-1", Status: models.StatusBooked}, nil
	}}
	waiting := &mockWaitingSvc{}

	svc := newBookingService(trips, bookings, waiting, &mockNotifier{})

	booking, err := svc.Cancel(context.Background(), 7, "user-1")

	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, booking.Status)
	assert.Equal(t, models.StatusCancelled, bookings.statusUpdates[7])
	assert.Equal(t, []uint{1}, waiting.serveNextCalls)
}

func TestCancel_BookedInsideWindow(t *testing.T) {
	// 10 days out but the trip requires 11: window closed.
	trip := futureTrip(1, 10)
	trip.StartDate = time.Now().Add(10*24*time.Hour + time.Hour)
	trip.CancellationDaysBeforeDeparture = 11

	trips := &mockTripRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Trip, error) {
		return trip, nil
	}}
	bookings := &mockBookingRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, TripID: 1, UserID: "user-1", Status: models.StatusBooked}, nil
	}}
	waiting := &mockWaitingSvc{}

	svc := newBookingService(trips, bookings, waiting, &mockNotifier{})

	_, err := svc.Cancel(context.Background(), 7, "user-1")

	assert.ErrorIs(t, err, ErrCancellationWindowClosed)
	assert.Empty(t, bookings.statusUpdates)
	assert.Empty(t, waiting.serveNextCalls)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	bookings := &mockBookingRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, UserID: "user-1", Status: models.StatusCancelled}, nil
	}}
	waiting := &mockWaitingSvc{}

	svc := newBookingService(&mockTripRepo{}, bookings, waiting, &mockNotifier{})

	_, err := svc.Cancel(context.Background(), 7, "user-1")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, waiting.serveNextCalls)
}

func TestCancel_WrongOwner(t *testing.T) {
	bookings := &mockBookingRepo{findByIDFn: func(ctx context.Context, id uint) (*models.Booking, error) {
		return &models.Booking{ID: id, UserID: "someone-else", Status: models.StatusBooked}, nil
	}}

	svc := newBookingService(&mockTripRepo{}, bookings, &mockWaitingSvc{}, &mockNotifier{})

	_, err := svc.Cancel(context.Background(), 7, "user-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
