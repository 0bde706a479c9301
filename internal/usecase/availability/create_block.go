package availability

import (
	"context"
	"errors"
	"time"

	"github.com/studysched/tutor-scheduler/internal/audit"
	"github.com/studysched/tutor-scheduler/internal/calendar"
	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBlockInput struct {
	TutorID uint

	Date  string
	Start string
	End   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateBlock {
	return &CreateBlock{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// Execute validates the window, derives the weekday tag and UTC instants, and
// persists the block. The returned slice is the tutor's full list re-fetched
// after the write, so the caller always renders post-mutation server state.
func (uc *CreateBlock) Execute(
	ctx context.Context,
	in CreateBlockInput,
) (*models.AvailabilityBlock, []models.AvailabilityBlock, error) {

	if in.Date == "" || in.Start == "" || in.End == "" {
		return nil, nil, httperr.ErrBusiness("validation_error")
	}

	start, end, err := calendar.Window(in.Date, in.Start, in.End, uc.loc)
	if err != nil {
		return nil, nil, mapWindowError(err)
	}

	block := &models.AvailabilityBlock{
		TutorID:   in.TutorID,
		Weekday:   string(calendar.WeekdayOf(start)),
		StartTime: start,
		EndTime:   end,
	}

	if err := uc.repo.CreateBlock(ctx, block); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.TutorID,
		Action:   "availability_created",
		Entity:   "availability_block",
		EntityID: &block.ID,
	})

	blocks, err := uc.repo.ListBlocksForTutor(ctx, in.TutorID)
	if err != nil {
		return nil, nil, err
	}

	return block, blocks, nil
}

func mapWindowError(err error) error {
	if errors.Is(err, calendar.ErrEndNotAfterStart) {
		return httperr.ErrBusiness("invalid_time_range")
	}
	return httperr.ErrBusiness("validation_error")
}
