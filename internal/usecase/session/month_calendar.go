package session

import (
	"context"
	"time"

	"github.com/studysched/tutor-scheduler/internal/cache"
	"github.com/studysched/tutor-scheduler/internal/calendar"
	domain "github.com/studysched/tutor-scheduler/internal/domain/scheduling"
	"github.com/studysched/tutor-scheduler/internal/dto"
	"github.com/studysched/tutor-scheduler/internal/httperr"
)

type MonthCalendar struct {
	repo  domain.Repository
	cache *cache.Cache
	loc   *time.Location
}

func NewMonthCalendar(
	repo domain.Repository,
	cache *cache.Cache,
	loc *time.Location,
) *MonthCalendar {
	return &MonthCalendar{
		repo:  repo,
		cache: cache,
		loc:   loc,
	}
}

// Execute builds the month grid for a tutor's sessions. The month's event
// fetch is cached; the grid itself is re-derived on every call so navigation
// and selection stay pure recomputations.
func (uc *MonthCalendar) Execute(
	ctx context.Context,
	tutorID uint,
	year int,
	month int,
	compact bool,
	selected string,
) (*dto.CalendarMonthDTO, error) {

	if year < 1 || month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("validation_error")
	}

	key := cache.MonthKey(tutorID, year, month)

	var events []calendar.Event
	if !uc.cache.GetJSON(ctx, key, &events) {
		start, end := calendar.MonthWindow(year, time.Month(month), uc.loc)

		sessions, err := uc.repo.ListSessionsForPeriod(ctx, tutorID, start, end)
		if err != nil {
			return nil, err
		}

		events = make([]calendar.Event, 0, len(sessions))
		for _, s := range sessions {
			events = append(events, calendar.Event{
				ID:         s.ID,
				Title:      s.Title,
				Date:       calendar.LocalDate(s.StartTime, uc.loc),
				StartClock: calendar.LocalClock(s.StartTime, uc.loc),
				EndClock:   calendar.LocalClock(s.EndTime, uc.loc),
				CourseName: s.Course.Name,
				TutorName:  s.Tutor.Name,
				Status:     s.Status,
			})
		}

		uc.cache.SetJSON(ctx, key, events)
	}

	previewLimit := calendar.DefaultPreviewLimit
	if compact {
		previewLimit = 1
	}

	today := calendar.LocalDate(time.Now(), uc.loc)
	cells := calendar.BuildMonthGrid(year, time.Month(month), events, previewLimit, today, selected)

	return &dto.CalendarMonthDTO{
		Year:  year,
		Month: month,
		Cells: cells,
	}, nil
}
