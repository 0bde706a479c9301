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

type ConfirmBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  *cache.Cache
	logger *zap.Logger
}

func NewConfirmBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
	logger *zap.Logger,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:   repo,
		audit:  audit,
		cache:  cache,
		logger: logger,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	tutorID uint,
	bookingID uint,
) (*models.Booking, error) {

	booking, err := uc.repo.GetBookingForTutor(ctx, bookingID, tutorID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := time.Now().UTC()

	if err := domain.ConfirmBooking(booking, booking.Session.EndTime, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	session := booking.Session
	session.Status = string(domain.SessionConfirmed)
	if err := uc.repo.UpdateSession(ctx, &session); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &tutorID,
		Action:   "booking_confirmed",
		Entity:   "booking",
		EntityID: &booking.ID,
	})

	uc.cache.InvalidateTutorMonths(ctx, tutorID)

	return booking, nil
}
