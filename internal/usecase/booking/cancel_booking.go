package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/studysched/tutor-scheduler/internal/audit"
	"github.com/studysched/tutor-scheduler/internal/cache"
	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/models"
)

type CancelBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  *cache.Cache
	logger *zap.Logger
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
	logger *zap.Logger,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		audit:  audit,
		cache:  cache,
		logger: logger,
	}
}

// Execute cancels a student's own booking. Allowed only while the booking is
// active and the session has not finished. The session reverts to AVAILABLE
// when no other active booking remains on it.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	studentID uint,
	bookingID uint,
) (*models.Booking, error) {

	booking, err := uc.repo.GetBookingForStudent(ctx, bookingID, studentID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := time.Now().UTC()

	if err := domain.CancelBooking(booking, booking.Session.EndTime, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	if err := uc.repo.ReleaseSessionIfUnbooked(ctx, booking.SessionID); err != nil {
		uc.logger.Warn("failed to release session after cancellation",
			zap.Uint("session_id", booking.SessionID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &studentID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &booking.ID,
	})

	uc.cache.InvalidateTutorMonths(ctx, booking.Session.TutorID)

	return booking, nil
}
