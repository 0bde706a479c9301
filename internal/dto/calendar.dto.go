package dto

import "github.com/studysched/tutor-scheduler/internal/calendar"

type CalendarMonthDTO struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Cells []calendar.DayCell `json:"cells"`
}
