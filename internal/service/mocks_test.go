package service

import (
	"context"
	"time"

	"github.com/asapgetaway/travel-booking/internal/models"
	"github.com/asapgetaway/travel-booking/internal/repository"
	"gorm.io/gorm"
)

// --- Mock TripRepository ---

type mockTripRepo struct {
	findByIDFn            func(ctx context.Context, id uint) (*models.Trip, error)
	incrementedPopularity []uint
	created               []*models.Trip
	updated               []*models.Trip
	deleted               []uint
	setActiveFn           func(id uint, active bool) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip *models.Trip) error {
	m.created = append(m.created, trip)
	return nil
}
func (m *mockTripRepo) Update(ctx context.Context, trip *models.Trip) error {
	m.updated = append(m.updated, trip)
	return nil
}
func (m *mockTripRepo) FindByID(ctx context.Context, id uint) (*models.Trip, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockTripRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Trip, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockTripRepo) FindActive(ctx context.Context, filter repository.TripFilter) ([]models.Trip, error) {
	return nil, nil
}
func (m *mockTripRepo) Search(ctx context.Context, term string) ([]models.Trip, error) {
	return nil, nil
}
func (m *mockTripRepo) FindAll(ctx context.Context) ([]models.Trip, error) { return nil, nil }
func (m *mockTripRepo) SetActive(ctx context.Context, id uint, active bool) error {
	if m.setActiveFn != nil {
		return m.setActiveFn(id, active)
	}
	return nil
}
func (m *mockTripRepo) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}
func (m *mockTripRepo) IncrementPopularity(ctx context.Context, tx *gorm.DB, id uint) error {
	m.incrementedPopularity = append(m.incrementedPopularity, id)
	return nil
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	findByIDFn                 func(ctx context.Context, id uint) (*models.Booking, error)
	findByUserIDFn             func(ctx context.Context, userID string) ([]models.Booking, error)
	countActiveForTripFn       func(tripID uint) (int64, error)
	countActiveFutureForUserFn func(userID string) (int64, error)
	countForTripFn             func(tripID uint) (int64, error)
	dueRemindersFn             func(today time.Time) ([]repository.ReminderDue, error)
	created                    []*models.Booking
	statusUpdates              map[uint]models.BookingStatus
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	booking.ID = uint(len(m.created) + 1)
	m.created = append(m.created, booking)
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}
func (m *mockBookingRepo) CountActiveForTrip(ctx context.Context, tx *gorm.DB, tripID uint) (int64, error) {
	if m.countActiveForTripFn != nil {
		return m.countActiveForTripFn(tripID)
	}
	return 0, nil
}
func (m *mockBookingRepo) CountActiveFutureForUser(ctx context.Context, tx *gorm.DB, userID string, today time.Time) (int64, error) {
	if m.countActiveFutureForUserFn != nil {
		return m.countActiveFutureForUserFn(userID)
	}
	return 0, nil
}
func (m *mockBookingRepo) CountForTrip(ctx context.Context, tripID uint) (int64, error) {
	if m.countForTripFn != nil {
		return m.countForTripFn(tripID)
	}
	return 0, nil
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID uint, status models.BookingStatus) error {
	if m.statusUpdates == nil {
		m.statusUpdates = make(map[uint]models.BookingStatus)
	}
	m.statusUpdates[bookingID] = status
	return nil
}
func (m *mockBookingRepo) FindDueReminders(ctx context.Context, today time.Time) ([]repository.ReminderDue, error) {
	if m.dueRemindersFn != nil {
		return m.dueRemindersFn(today)
	}
	return nil, nil
}
func (m *mockBookingRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// --- Mock WaitingListRepository ---

type mockWaitingRepo struct {
	existsFn      func(tripID uint, userID string) (bool, error)
	findForTripFn func(tripID uint) ([]models.WaitingListItem, error)
	findForUserFn func(userID string) ([]models.WaitingListItem, error)
	firstFn       func(tripID uint) (*models.WaitingListItem, error)
	countFn       func(tripID uint) (int64, error)
	countsFn      func() ([]repository.TripQueueCount, error)
	created       []*models.WaitingListItem
	deleted       []string // user IDs removed from a queue
}

func (m *mockWaitingRepo) Create(ctx context.Context, tx *gorm.DB, item *models.WaitingListItem) error {
	item.ID = uint(len(m.created) + 1)
	m.created = append(m.created, item)
	return nil
}
func (m *mockWaitingRepo) Exists(ctx context.Context, tx *gorm.DB, tripID uint, userID string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(tripID, userID)
	}
	return false, nil
}
func (m *mockWaitingRepo) FindForTrip(ctx context.Context, tripID uint) ([]models.WaitingListItem, error) {
	if m.findForTripFn != nil {
		return m.findForTripFn(tripID)
	}
	return nil, nil
}
func (m *mockWaitingRepo) FindForUser(ctx context.Context, userID string) ([]models.WaitingListItem, error) {
	if m.findForUserFn != nil {
		return m.findForUserFn(userID)
	}
	return nil, nil
}
func (m *mockWaitingRepo) First(ctx context.Context, tripID uint) (*models.WaitingListItem, error) {
	if m.firstFn != nil {
		return m.firstFn(tripID)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockWaitingRepo) CountForTrip(ctx context.Context, tx *gorm.DB, tripID uint) (int64, error) {
	if m.countFn != nil {
		return m.countFn(tripID)
	}
	return int64(len(m.created)), nil
}
func (m *mockWaitingRepo) CountsByTrip(ctx context.Context) ([]repository.TripQueueCount, error) {
	if m.countsFn != nil {
		return m.countsFn()
	}
	return nil, nil
}
func (m *mockWaitingRepo) Delete(ctx context.Context, tripID uint, userID string) error {
	m.deleted = append(m.deleted, userID)
	return nil
}
func (m *mockWaitingRepo) DeleteAll(ctx context.Context, tripID uint) error { return nil }
func (m *mockWaitingRepo) GetDB() *gorm.DB                                  { return nil }

// --- Mock UserRepository ---

type mockUserRepo struct {
	findByIDFn func(id string) (*models.User, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return &models.User{ID: id, Email: id + "@example.com"}, nil
}

// --- Mock Notifier ---

type sentNotification struct {
	To     string
	Kind   NotificationKind
	Params map[string]string
}

type mockNotifier struct {
	sendResult *bool // nil means success
	sent       []sentNotification
}

func (m *mockNotifier) Send(ctx context.Context, to string, kind NotificationKind, params map[string]string) bool {
	m.sent = append(m.sent, sentNotification{To: to, Kind: kind, Params: params})
	if m.sendResult != nil {
		return *m.sendResult
	}
	return true
}

// --- Mock WaitingListService ---

type mockWaitingSvc struct {
	joinFn         func(tripID uint, userID string) (int, error)
	serveNextCalls []uint
}

func (m *mockWaitingSvc) Join(ctx context.Context, tripID uint, userID string) (int, error) {
	if m.joinFn != nil {
		return m.joinFn(tripID, userID)
	}
	return 1, nil
}
func (m *mockWaitingSvc) Position(ctx context.Context, tripID uint, userID string) (int, error) {
	return 0, ErrNotWaiting
}
func (m *mockWaitingSvc) ServeNext(ctx context.Context, tripID uint) {
	m.serveNextCalls = append(m.serveNextCalls, tripID)
}
func (m *mockWaitingSvc) Leave(ctx context.Context, tripID uint, userID string) error { return nil }
func (m *mockWaitingSvc) Clear(ctx context.Context, tripID uint) error                { return nil }
func (m *mockWaitingSvc) ListForUser(ctx context.Context, userID string) ([]WaitingEntry, error) {
	return nil, nil
}
func (m *mockWaitingSvc) ListForTrip(ctx context.Context, tripID uint) ([]models.WaitingListItem, error) {
	return nil, nil
}
func (m *mockWaitingSvc) Overview(ctx context.Context) ([]TripQueue, error) { return nil, nil }
