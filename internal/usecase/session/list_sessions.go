package session

import (
	"context"
	"time"

	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/dto"
	"github.com/studysched/tutor-scheduler/internal/models"
)

type ListSessions struct {
	repo domain.Repository
}

func NewListSessions(repo domain.Repository) *ListSessions {
	return &ListSessions{repo: repo}
}

// Execute lists sessions and, when the viewer is a student, folds their own
// active bookings into each session's effective display state.
func (uc *ListSessions) Execute(
	ctx context.Context,
	filter domain.SessionFilter,
	viewerStudentID uint,
) ([]dto.SessionListDTO, error) {

	sessions, err := uc.repo.ListSessions(ctx, filter)
	if err != nil {
		return nil, err
	}

	bySession := make(map[uint]*models.Booking)
	if viewerStudentID != 0 {
		bookings, err := uc.repo.ListBookingsForStudent(
			ctx,
			viewerStudentID,
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed)},
		)
		if err != nil {
			return nil, err
		}
		for i := range bookings {
			bySession[bookings[i].SessionID] = &bookings[i]
		}
	}

	now := time.Now().UTC()

	out := make([]dto.SessionListDTO, 0, len(sessions))
	for i := range sessions {
		s := sessions[i]
		out = append(out, dto.SessionListDTO{
			ID:         s.ID,
			Title:      s.Title,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Status:     s.Status,
			CourseName: s.Course.Name,
			TutorName:  s.Tutor.Name,
			Effective:  domain.Reconcile(&sessions[i], bySession[s.ID], now),
		})
	}

	return out, nil
}
