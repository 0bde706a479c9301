package session

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

type CancelSession struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  *cache.Cache
	logger *zap.Logger
}

func NewCancelSession(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
	logger *zap.Logger,
) *CancelSession {
	return &CancelSession{
		repo:   repo,
		audit:  audit,
		cache:  cache,
		logger: logger,
	}
}

// Execute cancels a tutor's own session and every active booking on it.
func (uc *CancelSession) Execute(
	ctx context.Context,
	tutorID uint,
	sessionID uint,
) (*models.TutoringSession, error) {

	session, err := uc.repo.GetSessionForTutor(ctx, sessionID, tutorID)
	if err != nil {
		return nil, httperr.ErrBusiness("session_not_found")
	}

	now := time.Now().UTC()
	if err := domain.CancelSession(session, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	if err := uc.repo.CancelActiveBookingsForSession(ctx, sessionID, now); err != nil {
		uc.logger.Warn("failed to cancel bookings for cancelled session",
			zap.Uint("session_id", sessionID),
			zap.Error(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &tutorID,
		Action:   "session_cancelled",
		Entity:   "session",
		EntityID: &session.ID,
	})

	uc.cache.InvalidateTutorMonths(ctx, tutorID)

	return session, nil
}
