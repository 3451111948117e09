package repository

import (
	"context"

	"github.com/asapgetaway/travel-booking/internal/models"
	"gorm.io/gorm"
)

type WishlistRepository interface {
	Create(ctx context.Context, item *models.WishlistItem) error
	Exists(ctx context.Context, tripID uint, userID string) (bool, error)
	FindForUser(ctx context.Context, userID string) ([]models.WishlistItem, error)
	Delete(ctx context.Context, tripID uint, userID string) error
	DeleteAll(ctx context.Context, userID string) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Create(ctx context.Context, item *models.WishlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wishlistRepository) Exists(ctx context.Context, tripID uint, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *wishlistRepository) FindForUser(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.WithContext(ctx).
		Preload("Trip").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wishlistRepository) Delete(ctx context.Context, tripID uint, userID string) error {
	return r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Delete(&models.WishlistItem{}).Error
}

func (r *wishlistRepository) DeleteAll(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.WishlistItem{}).Error
}
