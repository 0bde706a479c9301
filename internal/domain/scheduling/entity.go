package scheduling

import (
	"time"

	"github.com/studysched/tutor-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func ConfirmBooking(b *models.Booking, sessionEnd, now time.Time) error {
	if err := CanConfirm(BookingStatus(b.Status), sessionEnd, now); err != nil {
		return err
	}

	b.Status = string(BookingConfirmed)
	b.ConfirmedAt = &now
	return nil
}

func CancelBooking(b *models.Booking, sessionEnd, now time.Time) error {
	if err := CanCancelBooking(BookingStatus(b.Status), sessionEnd, now); err != nil {
		return err
	}

	b.Status = string(BookingCancelled)
	b.CancelledAt = &now
	return nil
}

func CancelSession(s *models.TutoringSession, now time.Time) error {
	if err := CanCancelSession(SessionStatus(s.Status), s.EndTime, now); err != nil {
		return err
	}

	s.Status = string(SessionCancelled)
	s.CancelledAt = &now
	return nil
}
