package scheduling

import (
	"time"

	"github.com/studysched/tutor-scheduler/internal/models"
)

// DisplayState is the client-facing status derived from the stored status and
// the current time. It drives action buttons only; the stored status is never
// rewritten by the passage of time.
type DisplayState string

const (
	DisplayFinished   DisplayState = "FINISHED"
	DisplayCancelled  DisplayState = "CANCELLED"
	DisplayHasBooking DisplayState = "HAS_BOOKING"
	DisplayBookable   DisplayState = "BOOKABLE"
	DisplayPending    DisplayState = "PENDING"
	DisplayConfirmed  DisplayState = "CONFIRMED"
	DisplayCompleted  DisplayState = "COMPLETED"
)

type EffectiveState struct {
	State     DisplayState `json:"state"`
	CanBook   bool         `json:"can_book"`
	CanCancel bool         `json:"can_cancel"`
	BookingID *uint        `json:"booking_id,omitempty"`
}

// Reconcile computes the effective display state of a session for a viewer.
// viewerBooking is the viewer's own booking on this session, or nil.
//
// A session past its end is FINISHED no matter what is stored, except that
// CANCELLED stays CANCELLED. An active viewer booking wins over the stored
// session status; cancelling it is allowed only while the session has not
// finished.
func Reconcile(session *models.TutoringSession, viewerBooking *models.Booking, now time.Time) EffectiveState {
	finished := now.After(session.EndTime)

	if SessionStatus(session.Status) == SessionCancelled {
		return EffectiveState{State: DisplayCancelled}
	}

	if viewerBooking != nil && BookingStatus(viewerBooking.Status).Active() {
		id := viewerBooking.ID
		if finished {
			return EffectiveState{State: DisplayFinished, BookingID: &id}
		}
		return EffectiveState{
			State:     DisplayHasBooking,
			CanCancel: true,
			BookingID: &id,
		}
	}

	if finished {
		return EffectiveState{State: DisplayFinished}
	}

	if SessionStatus(session.Status) == SessionAvailable {
		return EffectiveState{State: DisplayBookable, CanBook: true}
	}

	return EffectiveState{State: DisplayState(session.Status)}
}
