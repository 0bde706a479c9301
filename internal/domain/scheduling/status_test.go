package scheduling

import (
	"testing"
	"time"

	"github.com/studysched/tutor-scheduler/internal/httperr"
)

func assertBusinessCode(t *testing.T, err error, want string) {
	t.Helper()
	code, ok := httperr.BusinessCode(err)
	if !ok {
		t.Fatalf("err = %v, want business error %q", err, want)
	}
	if code != want {
		t.Fatalf("business code = %q, want %q", code, want)
	}
}

func TestCanConfirm(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := now.Add(time.Hour)

	if err := CanConfirm(BookingPending, end, now); err != nil {
		t.Errorf("pending before end: %v", err)
	}

	assertBusinessCode(t, CanConfirm(BookingConfirmed, end, now), "invalid_state")
	assertBusinessCode(t, CanConfirm(BookingCancelled, end, now), "invalid_state")
	assertBusinessCode(t, CanConfirm(BookingPending, end, end.Add(time.Minute)), "session_finished")
}

func TestCanCancelBooking(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := now.Add(time.Hour)

	if err := CanCancelBooking(BookingPending, end, now); err != nil {
		t.Errorf("pending before end: %v", err)
	}
	if err := CanCancelBooking(BookingConfirmed, end, now); err != nil {
		t.Errorf("confirmed before end: %v", err)
	}

	assertBusinessCode(t, CanCancelBooking(BookingCancelled, end, now), "invalid_state")
	assertBusinessCode(t, CanCancelBooking(BookingConfirmed, end, end.Add(time.Minute)), "session_finished")
}

func TestCanCancelSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	end := now.Add(time.Hour)

	for _, status := range []SessionStatus{SessionAvailable, SessionPending, SessionConfirmed} {
		if err := CanCancelSession(status, end, now); err != nil {
			t.Errorf("%s before end: %v", status, err)
		}
	}

	assertBusinessCode(t, CanCancelSession(SessionCancelled, end, now), "invalid_state")
	assertBusinessCode(t, CanCancelSession(SessionCompleted, end, now), "invalid_state")
	assertBusinessCode(t, CanCancelSession(SessionAvailable, end, end.Add(time.Minute)), "session_finished")
}

func TestBookingStatusActive(t *testing.T) {
	if !BookingPending.Active() {
		t.Error("PENDING should be active")
	}
	if !BookingConfirmed.Active() {
		t.Error("CONFIRMED should be active")
	}
	if BookingCancelled.Active() {
		t.Error("CANCELLED should not be active")
	}
}
