package repository

import (
	"context"
	"time"

	"github.com/asapgetaway/travel-booking/internal/models"
	"gorm.io/gorm"
)

// TripFilter narrows the public catalog listing. Zero values mean
// "no constraint". Price bounds apply to the effective price: the discount
// price while its window is still open, the base price otherwise.
type TripFilter struct {
	Country     string
	PackageType string
	OnSaleOnly  bool
	MinPrice    *float64
	MaxPrice    *float64
	TravelFrom  *time.Time
	TravelTo    *time.Time
	Sort        string // price_asc, price_desc, popularity, start_date (default)
}

type TripRepository interface {
	Create(ctx context.Context, trip *models.Trip) error
	Update(ctx context.Context, trip *models.Trip) error
	FindByID(ctx context.Context, id uint) (*models.Trip, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Trip, error)
	FindActive(ctx context.Context, filter TripFilter) ([]models.Trip, error)
	Search(ctx context.Context, term string) ([]models.Trip, error)
	FindAll(ctx context.Context) ([]models.Trip, error)
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
	IncrementPopularity(ctx context.Context, tx *gorm.DB, id uint) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) Update(ctx context.Context, trip *models.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) FindByID(ctx context.Context, id uint) (*models.Trip, error) {
	var trip models.Trip
	if err := r.db.WithContext(ctx).First(&trip, id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// FindByIDForUpdate acquires a row-level lock on the trip within the given
// transaction, serializing concurrent capacity checks.
func (r *tripRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Trip, error) {
	var trip models.Trip
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&trip, id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

const effectivePriceExpr = `CASE
	WHEN discount_price IS NOT NULL AND (discount_end_date IS NULL OR discount_end_date >= NOW())
	THEN discount_price ELSE base_price END`

func (r *tripRepository) FindActive(ctx context.Context, filter TripFilter) ([]models.Trip, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)

	if filter.Country != "" {
		q = q.Where("country = ?", filter.Country)
	}
	if filter.PackageType != "" {
		q = q.Where("package_type = ?", filter.PackageType)
	}
	if filter.OnSaleOnly {
		q = q.Where("discount_price IS NOT NULL AND discount_price < base_price")
	}
	if filter.MinPrice != nil {
		q = q.Where("("+effectivePriceExpr+") >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("("+effectivePriceExpr+") <= ?", *filter.MaxPrice)
	}
	if filter.TravelFrom != nil {
		q = q.Where("start_date >= ?", *filter.TravelFrom)
	}
	if filter.TravelTo != nil {
		q = q.Where("end_date <= ?", *filter.TravelTo)
	}

	switch filter.Sort {
	case "price_asc":
		q = q.Order(effectivePriceExpr + " ASC")
	case "price_desc":
		q = q.Order(effectivePriceExpr + " DESC")
	case "popularity":
		q = q.Order("popularity_score DESC")
	default:
		q = q.Order("start_date ASC")
	}

	var trips []models.Trip
	if err := q.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) Search(ctx context.Context, term string) ([]models.Trip, error) {
	var trips []models.Trip
	pattern := "%" + term + "%"
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("package_name ILIKE ? OR destination ILIKE ? OR country ILIKE ?",
			pattern, pattern, pattern).
		Order("start_date ASC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// FindAll includes deactivated trips; admin listing only.
func (r *tripRepository) FindAll(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	if err := r.db.WithContext(ctx).Order("start_date ASC").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Trip{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *tripRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Trip{}, id).Error
}

func (r *tripRepository) IncrementPopularity(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).
		Model(&models.Trip{}).
		Where("id = ?", id).
		Update("popularity_score", gorm.Expr("popularity_score + 1")).Error
}
