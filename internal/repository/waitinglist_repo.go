package repository

import (
	"context"

	"github.com/asapgetaway/travel-booking/internal/models"
	"gorm.io/gorm"
)

// TripQueueCount pairs a trip with the size of its active waiting list, for
// the admin overview.
type TripQueueCount struct {
	TripID uint
	Count  int64
}

type WaitingListRepository interface {
	Create(ctx context.Context, tx *gorm.DB, item *models.WaitingListItem) error
	Exists(ctx context.Context, tx *gorm.DB, tripID uint, userID string) (bool, error)
	FindForTrip(ctx context.Context, tripID uint) ([]models.WaitingListItem, error)
	FindForUser(ctx context.Context, userID string) ([]models.WaitingListItem, error)
	First(ctx context.Context, tripID uint) (*models.WaitingListItem, error)
	CountForTrip(ctx context.Context, tx *gorm.DB, tripID uint) (int64, error)
	CountsByTrip(ctx context.Context) ([]TripQueueCount, error)
	Delete(ctx context.Context, tripID uint, userID string) error
	DeleteAll(ctx context.Context, tripID uint) error
	GetDB() *gorm.DB
}

type waitingListRepository struct {
	db *gorm.DB
}

func NewWaitingListRepository(db *gorm.DB) WaitingListRepository {
	return &waitingListRepository{db: db}
}

func (r *waitingListRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *waitingListRepository) Create(ctx context.Context, tx *gorm.DB, item *models.WaitingListItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *waitingListRepository) Exists(ctx context.Context, tx *gorm.DB, tripID uint, userID string) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.WaitingListItem{}).
		Where("trip_id = ? AND user_id = ? AND is_active = ?", tripID, userID, true).
		Count(&count).Error
	return count > 0, err
}

// FindForTrip returns active entries oldest first; slice index + 1 is the
// queue position.
func (r *waitingListRepository) FindForTrip(ctx context.Context, tripID uint) ([]models.WaitingListItem, error) {
	var items []models.WaitingListItem
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND is_active = ?", tripID, true).
		Order("join_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *waitingListRepository) FindForUser(ctx context.Context, userID string) ([]models.WaitingListItem, error) {
	var items []models.WaitingListItem
	err := r.db.WithContext(ctx).
		Preload("Trip").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("join_date DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// First peeks the head of the queue without removing it.
func (r *waitingListRepository) First(ctx context.Context, tripID uint) (*models.WaitingListItem, error) {
	var item models.WaitingListItem
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND is_active = ?", tripID, true).
		Order("join_date ASC").
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *waitingListRepository) CountForTrip(ctx context.Context, tx *gorm.DB, tripID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.WaitingListItem{}).
		Where("trip_id = ? AND is_active = ?", tripID, true).
		Count(&count).Error
	return count, err
}

func (r *waitingListRepository) CountsByTrip(ctx context.Context) ([]TripQueueCount, error) {
	var counts []TripQueueCount
	err := r.db.WithContext(ctx).
		Model(&models.WaitingListItem{}).
		Select("trip_id, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("trip_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *waitingListRepository) Delete(ctx context.Context, tripID uint, userID string) error {
	return r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Delete(&models.WaitingListItem{}).Error
}

func (r *waitingListRepository) DeleteAll(ctx context.Context, tripID uint) error {
	return r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Delete(&models.WaitingListItem{}).Error
}
