package dto

import (
	"time"

	"github.com/studysched/tutor-scheduler/internal/calendar"
	"github.com/studysched/tutor-scheduler/internal/models"
)

type AvailabilityBlockDTO struct {
	ID        uint      `json:"id"`
	DayOfWeek string    `json:"day_of_week"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// local wall-clock renderings in the campus zone
	Date       string `json:"date"`
	StartLocal string `json:"start_local"`
	EndLocal   string `json:"end_local"`
}

func MapAvailabilityBlock(b models.AvailabilityBlock, loc *time.Location) AvailabilityBlockDTO {
	return AvailabilityBlockDTO{
		ID:         b.ID,
		DayOfWeek:  b.Weekday,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Date:       calendar.LocalDate(b.StartTime, loc),
		StartLocal: calendar.LocalClock(b.StartTime, loc),
		EndLocal:   calendar.LocalClock(b.EndTime, loc),
	}
}

func MapAvailabilityBlocks(blocks []models.AvailabilityBlock, loc *time.Location) []AvailabilityBlockDTO {
	out := make([]AvailabilityBlockDTO, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, MapAvailabilityBlock(b, loc))
	}
	return out
}
