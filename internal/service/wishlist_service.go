package service

import (
	"context"

	"github.com/asapgetaway/travel-booking/internal/models"
	"github.com/asapgetaway/travel-booking/internal/repository"
)

type WishlistService interface {
	Add(ctx context.Context, tripID uint, userID string) error
	List(ctx context.Context, userID string) ([]models.WishlistItem, error)
	Remove(ctx context.Context, tripID uint, userID string) error
	Clear(ctx context.Context, userID string) error
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	tripRepo     repository.TripRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, tripRepo repository.TripRepository) WishlistService {
	return &wishlistService{wishlistRepo: wishlistRepo, tripRepo: tripRepo}
}

func (s *wishlistService) Add(ctx context.Context, tripID uint, userID string) error {
	if _, err := s.tripRepo.FindByID(ctx, tripID); err != nil {
		return ErrTripNotFound
	}

	exists, err := s.wishlistRepo.Exists(ctx, tripID, userID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInWishlist
	}

	return s.wishlistRepo.Create(ctx, &models.WishlistItem{TripID: tripID, UserID: userID})
}

func (s *wishlistService) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.FindForUser(ctx, userID)
}

// Remove is a no-op when the trip is not in the list.
func (s *wishlistService) Remove(ctx context.Context, tripID uint, userID string) error {
	return s.wishlistRepo.Delete(ctx, tripID, userID)
}

func (s *wishlistService) Clear(ctx context.Context, userID string) error {
	return s.wishlistRepo.DeleteAll(ctx, userID)
}
