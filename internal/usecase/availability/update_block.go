package availability

import (
	"context"
	"time"

	"github.com/studysched/tutor-scheduler/internal/audit"
	"github.com/studysched/tutor-scheduler/internal/calendar"
	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/httperr"
	"github.com/studysched/tutor-scheduler/internal/models"
)

type UpdateBlockInput struct {
	TutorID uint
	BlockID uint

	Date  *string
	Start *string
	End   *string
}

type UpdateBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewUpdateBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateBlock {
	return &UpdateBlock{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// Execute merges the provided fields over the block's current values, then
// re-derives the weekday tag and instants under the same validation as create.
func (uc *UpdateBlock) Execute(
	ctx context.Context,
	in UpdateBlockInput,
) (*models.AvailabilityBlock, []models.AvailabilityBlock, error) {

	block, err := uc.repo.GetBlockForTutor(ctx, in.BlockID, in.TutorID)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("block_not_found")
	}

	// current values rendered back to local wall clock, then overlaid
	date := calendar.LocalDate(block.StartTime, uc.loc)
	start := calendar.LocalClock(block.StartTime, uc.loc)
	end := calendar.LocalClock(block.EndTime, uc.loc)

	if in.Date != nil {
		date = *in.Date
	}
	if in.Start != nil {
		start = *in.Start
	}
	if in.End != nil {
		end = *in.End
	}

	if date == "" || start == "" || end == "" {
		return nil, nil, httperr.ErrBusiness("validation_error")
	}

	startAt, endAt, err := calendar.Window(date, start, end, uc.loc)
	if err != nil {
		return nil, nil, mapWindowError(err)
	}

	block.Weekday = string(calendar.WeekdayOf(startAt))
	block.StartTime = startAt
	block.EndTime = endAt

	if err := uc.repo.UpdateBlock(ctx, block); err != nil {
		return nil, nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.TutorID,
		Action:   "availability_updated",
		Entity:   "availability_block",
		EntityID: &block.ID,
	})

	blocks, err := uc.repo.ListBlocksForTutor(ctx, in.TutorID)
	if err != nil {
		return nil, nil, err
	}

	return block, blocks, nil
}
