package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studysched/tutor-scheduler/internal/audit"
	"github.com/studysched/tutor-scheduler/internal/cache"
	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/models"
)

type BookSession struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  *cache.Cache
	logger *zap.Logger
}

func NewBookSession(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
	logger *zap.Logger,
) *BookSession {
	return &BookSession{
		repo:   repo,
		audit:  audit,
		cache:  cache,
		logger: logger,
	}
}

// Execute claims a session for a student. A duplicate active claim by the
// same student fails with booking_conflict; the repository re-asserts this
// under the session row lock, so two rapid submits cannot both land.
func (uc *BookSession) Execute(
	ctx context.Context,
	studentID uint,
	sessionID uint,
) (*models.Booking, error) {

	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, httperr.ErrBusiness("session_not_found")
	}

	now := time.Now().UTC()

	existing, err := uc.repo.ActiveBookingForSession(ctx, sessionID, studentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("booking_conflict")
	}

	state := domain.Reconcile(session, nil, now)
	if !state.CanBook {
		if state.State == domain.DisplayFinished {
			return nil, httperr.ErrBusiness("session_finished")
		}
		return nil, httperr.ErrBusiness("session_not_bookable")
	}

	booking, err := uc.repo.BookSession(ctx, sessionID, studentID, uuid.NewString())
	if err != nil {
		return nil, err
	}

	uc.logger.Info("session booked",
		zap.Uint("session_id", sessionID),
		zap.Uint("student_id", studentID),
		zap.String("reference", booking.Reference),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &studentID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &booking.ID,
	})

	uc.cache.InvalidateTutorMonths(ctx, session.TutorID)

	return booking, nil
}
