package repository

import (
	"context"
	"time"

	"github.com/asapgetaway/travel-booking/internal/models"
	"gorm.io/gorm"
)

// ReminderDue is the projection the daily reminder sweep works from: one row
// per Booked booking whose trip departs in exactly the configured number of
// days, already joined to the user's notification address.
type ReminderDue struct {
	BookingID   uint
	TripID      uint
	UserID      string
	Email       string
	PackageName string
	StartDate   time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	CountActiveForTrip(ctx context.Context, tx *gorm.DB, tripID uint) (int64, error)
	CountActiveFutureForUser(ctx context.Context, tx *gorm.DB, userID string, today time.Time) (int64, error)
	CountForTrip(ctx context.Context, tripID uint) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) error
	FindDueReminders(ctx context.Context, today time.Time) ([]ReminderDue, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Trip").
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CountActiveForTrip counts Booked and PendingPayment bookings; both hold a
// room against the trip's capacity.
func (r *bookingRepository) CountActiveForTrip(ctx context.Context, tx *gorm.DB, tripID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("trip_id = ? AND status IN ?", tripID,
			[]models.BookingStatus{models.StatusBooked, models.StatusPendingPayment}).
		Count(&count).Error
	return count, err
}

// CountActiveFutureForUser counts a user's active bookings whose trip has not
// ended yet, for the per-user booking limit.
func (r *bookingRepository) CountActiveFutureForUser(ctx context.Context, tx *gorm.DB, userID string, today time.Time) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Joins("JOIN trips ON trips.id = bookings.trip_id").
		Where("bookings.user_id = ? AND bookings.status IN ?", userID,
			[]models.BookingStatus{models.StatusBooked, models.StatusPendingPayment}).
		Where("trips.end_date >= ?", today.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

// CountForTrip counts bookings of any status; used to guard hard deletion of
// a trip.
func (r *bookingRepository) CountForTrip(ctx context.Context, tripID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("trip_id = ?", tripID).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

func (r *bookingRepository) FindDueReminders(ctx context.Context, today time.Time) ([]ReminderDue, error) {
	var due []ReminderDue
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id AS booking_id, bookings.trip_id, bookings.user_id,
			users.email, trips.package_name, trips.start_date`).
		Joins("JOIN trips ON trips.id = bookings.trip_id").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.status = ?", models.StatusBooked).
		Where("trips.enable_reminders = ?", true).
		Where("trips.start_date::date - ?::date = trips.reminder_days_before_departure",
			today.Format("2006-01-02")).
		Scan(&due).Error
	if err != nil {
		return nil, err
	}
	return due, nil
}
