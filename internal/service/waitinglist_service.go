package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/asapgetaway/travel-booking/internal/models"
	"github.com/asapgetaway/travel-booking/internal/repository"
	"gorm.io/gorm"
)

// WaitingEntry is a waiting-list item with the user's current 1-based FIFO
// position for that trip.
type WaitingEntry struct {
	Item     models.WaitingListItem
	Position int
}

// TripQueue is an admin view: a trip together with its active queue length.
type TripQueue struct {
	Trip  models.Trip
	Count int64
}

type WaitingListService interface {
	Join(ctx context.Context, tripID uint, userID string) (int, error)
	Position(ctx context.Context, tripID uint, userID string) (int, error)
	ServeNext(ctx context.Context, tripID uint)
	Leave(ctx context.Context, tripID uint, userID string) error
	Clear(ctx context.Context, tripID uint) error
	ListForUser(ctx context.Context, userID string) ([]WaitingEntry, error)
	ListForTrip(ctx context.Context, tripID uint) ([]models.WaitingListItem, error)
	Overview(ctx context.Context) ([]TripQueue, error)
}

type waitingListService struct {
	waitingRepo repository.WaitingListRepository
	tripRepo    repository.TripRepository
	userRepo    repository.UserRepository
	notifier    Notifier
}

func NewWaitingListService(
	waitingRepo repository.WaitingListRepository,
	tripRepo repository.TripRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) WaitingListService {
	return &waitingListService{
		waitingRepo: waitingRepo,
		tripRepo:    tripRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// Join enrolls the user at the tail of the trip's queue and returns the
// 1-based position. A user holds at most one active entry per trip.
func (s *waitingListService) Join(ctx context.Context, tripID uint, userID string) (int, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return 0, ErrTripNotFound
	}

	db := s.waitingRepo.GetDB()

	waiting, err := s.waitingRepo.Exists(ctx, db, tripID, userID)
	if err != nil {
		return 0, err
	}
	if waiting {
		return 0, ErrAlreadyWaiting
	}

	item := &models.WaitingListItem{
		TripID:   tripID,
		UserID:   userID,
		JoinDate: time.Now(),
		IsActive: true,
	}
	if err := s.waitingRepo.Create(ctx, db, item); err != nil {
		return 0, err
	}

	count, err := s.waitingRepo.CountForTrip(ctx, db, tripID)
	if err != nil {
		return 0, err
	}
	position := int(count)

	s.notifyUser(ctx, userID, NotifyWaitlistJoined, map[string]string{
		"package_name": trip.PackageName,
		"position":     strconv.Itoa(position),
	})

	return position, nil
}

func (s *waitingListService) Position(ctx context.Context, tripID uint, userID string) (int, error) {
	items, err := s.waitingRepo.FindForTrip(ctx, tripID)
	if err != nil {
		return 0, err
	}
	for i, item := range items {
		if item.UserID == userID {
			return i + 1, nil
		}
	}
	return 0, ErrNotWaiting
}

// ServeNext peeks the head of the queue and sends a room-available
// notification. The entry is deliberately not removed: the user keeps their
// place until they leave, book, or an administrator clears the list.
// Everything here is best-effort; a cancellation never fails because of it.
func (s *waitingListService) ServeNext(ctx context.Context, tripID uint) {
	first, err := s.waitingRepo.First(ctx, tripID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WaitingList] serve next for trip %d: %v", tripID, err)
		}
		return
	}

	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		log.Printf("[WaitingList] trip %d not resolvable, skipping notification: %v", tripID, err)
		return
	}

	s.notifyUser(ctx, first.UserID, NotifyRoomAvailable, map[string]string{
		"package_name": trip.PackageName,
		"trip_id":      strconv.FormatUint(uint64(tripID), 10),
	})
}

// Leave is idempotent: removing an absent entry is a no-op.
func (s *waitingListService) Leave(ctx context.Context, tripID uint, userID string) error {
	return s.waitingRepo.Delete(ctx, tripID, userID)
}

func (s *waitingListService) Clear(ctx context.Context, tripID uint) error {
	return s.waitingRepo.DeleteAll(ctx, tripID)
}

func (s *waitingListService) ListForUser(ctx context.Context, userID string) ([]WaitingEntry, error) {
	items, err := s.waitingRepo.FindForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]WaitingEntry, 0, len(items))
	for _, item := range items {
		position, err := s.Position(ctx, item.TripID, userID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, WaitingEntry{Item: item, Position: position})
	}
	return entries, nil
}

func (s *waitingListService) ListForTrip(ctx context.Context, tripID uint) ([]models.WaitingListItem, error) {
	if _, err := s.tripRepo.FindByID(ctx, tripID); err != nil {
		return nil, ErrTripNotFound
	}
	return s.waitingRepo.FindForTrip(ctx, tripID)
}

func (s *waitingListService) Overview(ctx context.Context) ([]TripQueue, error) {
	counts, err := s.waitingRepo.CountsByTrip(ctx)
	if err != nil {
		return nil, err
	}

	queues := make([]TripQueue, 0, len(counts))
	for _, c := range counts {
		trip, err := s.tripRepo.FindByID(ctx, c.TripID)
		if err != nil {
			continue
		}
		queues = append(queues, TripQueue{Trip: *trip, Count: c.Count})
	}
	return queues, nil
}

func (s *waitingListService) notifyUser(ctx context.Context, userID string, kind NotificationKind, params map[string]string) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("[WaitingList] no address for user %s, skipping %s", userID, kind)
		return
	}
	s.notifier.Send(ctx, user.Email, kind, params)
}
