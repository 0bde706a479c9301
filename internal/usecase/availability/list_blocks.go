package availability

import (
	"context"

	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/models"
)

type ListBlocks struct {
	repo domain.Repository
}

func NewListBlocks(repo domain.Repository) *ListBlocks {
	return &ListBlocks{repo: repo}
}

func (uc *ListBlocks) Execute(
	ctx context.Context,
	tutorID uint,
) ([]models.AvailabilityBlock, error) {
	return uc.repo.ListBlocksForTutor(ctx, tutorID)
}
