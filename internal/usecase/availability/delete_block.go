package availability

import (
	"context"

	"github.com/studysched/tutor-scheduler/internal/audit"
	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/models"
)

type DeleteBlock struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBlock(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBlock {
	return &DeleteBlock{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBlock) Execute(
	ctx context.Context,
	tutorID uint,
	blockID uint,
) ([]models.AvailabilityBlock, error) {

	if err := uc.repo.DeleteBlock(ctx, blockID, tutorID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &tutorID,
		Action:   "availability_deleted",
		Entity:   "availability_block",
		EntityID: &blockID,
	})

	return uc.repo.ListBlocksForTutor(ctx, tutorID)
}
