package reminder

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/asapgetaway/travel-booking/internal/repository"
	"github.com/asapgetaway/travel-booking/internal/service"
)

// retryBackoff is the delay before the next attempt after a failed sweep.
const retryBackoff = time.Hour

// Sweeper sends departure reminders for Booked bookings whose trip starts in
// exactly the trip's configured number of days. It runs once per calendar
// day, scheduling itself for the following midnight after each run.
type Sweeper struct {
	bookingRepo repository.BookingRepository
	notifier    service.Notifier
}

func NewSweeper(bookingRepo repository.BookingRepository, notifier service.Notifier) *Sweeper {
	return &Sweeper{bookingRepo: bookingRepo, notifier: notifier}
}

// Run loops until ctx is cancelled. Sweep errors are logged and retried
// after a backoff; they never terminate the loop.
func (s *Sweeper) Run(ctx context.Context) {
	log.Println("[Reminder] sweep loop started")

	for {
		var delay time.Duration
		if err := s.Sweep(ctx); err != nil {
			log.Printf("[Reminder] sweep failed: %v (retrying in %s)", err, retryBackoff)
			delay = retryBackoff
		} else {
			delay = untilNextMidnight(time.Now())
			log.Printf("[Reminder] next sweep in %s", delay.Round(time.Second))
		}

		select {
		case <-ctx.Done():
			log.Println("[Reminder] sweep loop stopped")
			return
		case <-time.After(delay):
		}
	}
}

// Sweep performs one pass. Per-booking send failures are counted and logged
// but do not abort the remaining sends.
func (s *Sweeper) Sweep(ctx context.Context) error {
	due, err := s.bookingRepo.FindDueReminders(ctx, time.Now())
	if err != nil {
		return err
	}

	if len(due) == 0 {
		log.Println("[Reminder] no reminders due today")
		return nil
	}

	sent, failed := 0, 0
	for _, d := range due {
		params := map[string]string{
			"booking_id":   strconv.FormatUint(uint64(d.BookingID), 10),
			"package_name": d.PackageName,
			"start_date":   d.StartDate.Format("2006-01-02"),
		}
		if s.notifier.Send(ctx, d.Email, service.NotifyTripReminder, params) {
			sent++
		} else {
			failed++
			log.Printf("[Reminder] send failed for booking %d (%s)", d.BookingID, d.Email)
		}
	}

	log.Printf("[Reminder] sweep done: %d sent, %d failed", sent, failed)
	return nil
}

func untilNextMidnight(now time.Time) time.Duration {
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return next.Sub(now)
}
