package service

import "context"

type NotificationKind string

const (
	NotifyBookingConfirmation NotificationKind = "booking_confirmation"
	NotifyWaitlistJoined      NotificationKind = "waitlist_joined"
	NotifyRoomAvailable       NotificationKind = "room_available"
	NotifyTripReminder        NotificationKind = "trip_reminder"
)

// Notifier dispatches an email-equivalent message. Sends are best-effort:
// implementations log failures and return false, but must never panic or
// surface an error to the triggering operation.
type Notifier interface {
	Send(ctx context.Context, to string, kind NotificationKind, params map[string]string) bool
}
