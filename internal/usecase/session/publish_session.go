package session

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/studysched/tutor-scheduler/internal/audit"
	"github.com/studysched/tutor-scheduler/internal/cache"
	"github.com/studysched/tutor-scheduler/internal/calendar"
	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type PublishSessionInput struct {
	TutorID  uint
	CourseID uint

	Title string
	Date  string
	Start string
	End   string
}

// ======================================================
// USE CASE
// ======================================================

type PublishSession struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  *cache.Cache
	logger *zap.Logger
	loc    *time.Location
}

func NewPublishSession(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.Cache,
	logger *zap.Logger,
	loc *time.Location,
) *PublishSession {
	return &PublishSession{
		repo:   repo,
		audit:  audit,
		cache:  cache,
		logger: logger,
		loc:    loc,
	}
}

func (uc *PublishSession) Execute(
	ctx context.Context,
	in PublishSessionInput,
) (*models.TutoringSession, error) {

	if in.Title == "" || in.Date == "" || in.Start == "" || in.End == "" {
		return nil, httperr.ErrBusiness("validation_error")
	}

	course, err := uc.repo.GetCourseForTutor(ctx, in.CourseID, in.TutorID)
	if err != nil {
		return nil, httperr.ErrBusiness("course_not_found")
	}
	if !course.Active {
		return nil, httperr.ErrBusiness("course_inactive")
	}

	start, end, err := calendar.Window(in.Date, in.Start, in.End, uc.loc)
	if err != nil {
		if errors.Is(err, calendar.ErrEndNotAfterStart) {
			return nil, httperr.ErrBusiness("invalid_time_range")
		}
		return nil, httperr.ErrBusiness("validation_error")
	}

	if start.Before(time.Now().UTC()) {
		return nil, httperr.ErrBusiness("session_in_past")
	}

	if err := uc.repo.AssertNoSessionOverlap(ctx, in.TutorID, start, end); err != nil {
		return nil, err
	}

	session := &models.TutoringSession{
		TutorID:   in.TutorID,
		CourseID:  course.ID,
		Title:     in.Title,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.SessionAvailable),
	}

	if err := uc.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	uc.logger.Info("session published",
		zap.Uint("tutor_id", in.TutorID),
		zap.Uint("session_id", session.ID),
	)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.TutorID,
		Action:   "session_published",
		Entity:   "session",
		EntityID: &session.ID,
	})

	uc.cache.InvalidateTutorMonths(ctx, in.TutorID)

	return session, nil
}
