package booking

import (
	"context"
	"time"

	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/dto"
)

type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	studentID uint,
	statuses []string,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForStudent(ctx, studentID, statuses)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for i := range bookings {
		b := bookings[i]
		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			Reference:    b.Reference,
			Status:       b.Status,
			SessionID:    b.SessionID,
			SessionTitle: b.Session.Title,
			StartTime:    b.Session.StartTime,
			EndTime:      b.Session.EndTime,
			CourseName:   b.Session.Course.Name,
			TutorName:    b.Session.Tutor.Name,
			Effective:    domain.Reconcile(&b.Session, &bookings[i], now),
		})
	}

	return out, nil
}
