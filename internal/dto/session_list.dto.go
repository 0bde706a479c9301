package dto

import (
	"time"

	scheduling "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
)

type SessionListDTO struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	CourseName string    `json:"course_name"`
	TutorName  string    `json:"tutor_name"`

	Effective scheduling.EffectiveState `json:"effective"`
}
