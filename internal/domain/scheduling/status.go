package scheduling

import (
	"time"

	"github.com/studysched/tutor-scheduler/internal/httperr"
)

// ===============================
// Session Status (server-owned)
// ===============================

type SessionStatus string

const (
	SessionAvailable SessionStatus = "AVAILABLE"
	SessionPending   SessionStatus = "PENDING"
	SessionConfirmed SessionStatus = "CONFIRMED"
	SessionCancelled SessionStatus = "CANCELLED"
	SessionCompleted SessionStatus = "COMPLETED"
)

// ===============================
// Booking Status
// ===============================

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Active reports whether the booking still claims its session.
func (s BookingStatus) Active() bool {
	return s == BookingPending || s == BookingConfirmed
}

// ===============================
// Transition guards
//
// PENDING -> CONFIRMED | CANCELLED
// CONFIRMED -> CANCELLED
// CANCELLED is terminal.
// Crossing the session end freezes every transition.
// ===============================

func CanConfirm(current BookingStatus, sessionEnd, now time.Time) error {
	if now.After(sessionEnd) {
		return httperr.ErrBusiness("session_finished")
	}
	if current != BookingPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancelBooking(current BookingStatus, sessionEnd, now time.Time) error {
	if now.After(sessionEnd) {
		return httperr.ErrBusiness("session_finished")
	}
	if !current.Active() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancelSession(current SessionStatus, sessionEnd, now time.Time) error {
	if now.After(sessionEnd) {
		return httperr.ErrBusiness("session_finished")
	}
	if current == SessionCancelled || current == SessionCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialBookingStatus() BookingStatus {
	return BookingPending
}
