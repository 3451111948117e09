package database

import (
	"log"

	"github.com/asapgetaway/travel-booking/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Trip{},
		&models.Booking{},
		&models.WaitingListItem{},
		&models.User{},
		&models.Review{},
		&models.WishlistItem{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: one active waiting-list entry per user per trip
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_waiting_active
		ON waiting_list_items (trip_id, user_id)
		WHERE is_active
	`)

	// One wish-list entry per user per trip
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_wishlist_unique
		ON wishlist_items (trip_id, user_id)
	`)

	return db
}
