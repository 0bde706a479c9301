package dto

import (
	"time"

	scheduling "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
)

type BookingListDTO struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`

	SessionID    uint      `json:"session_id"`
	SessionTitle string    `json:"session_title"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	CourseName   string    `json:"course_name"`
	TutorName    string    `json:"tutor_name"`

	Effective scheduling.EffectiveState `json:"effective"`
}
