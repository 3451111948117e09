package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asapgetaway/travel-booking/internal/models"
	"github.com/asapgetaway/travel-booking/internal/repository"
)

type ReviewService interface {
	AddReview(ctx context.Context, tripID uint, userID string, rating int, comment string) (*models.Review, error)
	ListForTrip(ctx context.Context, tripID uint) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	tripRepo   repository.TripRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, tripRepo repository.TripRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, tripRepo: tripRepo}
}

func (s *reviewService) AddReview(ctx context.Context, tripID uint, userID string, rating int, comment string) (*models.Review, error) {
	if _, err := s.tripRepo.FindByID(ctx, tripID); err != nil {
		return nil, ErrTripNotFound
	}

	comment = strings.TrimSpace(comment)
	if rating < models.MinRating || rating > models.MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d stars",
			ErrInvalidReview, models.MinRating, models.MaxRating)
	}
	if len(comment) < models.MinCommentLength || len(comment) > models.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment must be between %d and %d characters",
			ErrInvalidReview, models.MinCommentLength, models.MaxCommentLength)
	}

	review := &models.Review{
		TripID:    tripID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListForTrip(ctx context.Context, tripID uint) ([]models.Review, error) {
	if _, err := s.tripRepo.FindByID(ctx, tripID); err != nil {
		return nil, ErrTripNotFound
	}
	return s.reviewRepo.FindByTripID(ctx, tripID)
}
