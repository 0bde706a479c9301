package calendar

import "time"

// Event is the read-only projection of a session/booking placed on the grid.
// It is rebuilt on every read, never stored.
type Event struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	StartClock string `json:"start_time"`
	EndClock   string `json:"end_time"`
	CourseName string `json:"course_name"`
	TutorName  string `json:"tutor_name"`
	Status     string `json:"status"`
}

// DayCell is one cell of the month grid. A zero Day marks a leading or
// trailing placeholder outside the month.
type DayCell struct {
	Day        int     `json:"day"`
	Date       string  `json:"date,omitempty"`
	EventCount int     `json:"event_count"`
	Preview    []Event `json:"preview,omitempty"`
	IsToday    bool    `json:"is_today"`
	IsSelected bool    `json:"is_selected"`
}

const DefaultPreviewLimit = 2

// BuildMonthGrid derives the fixed-size cell grid for a month.
//
// The leading offset is the weekday (0=Sunday) of the 1st. The total cell
// count is padded to 35 when the natural count is under 35, bumped to 42 when
// it lands in 36..41, and left alone otherwise, so it is always a multiple of
// 7 between 35 and 42. Events are matched to cells by date string equality,
// and each cell previews at most previewLimit events.
func BuildMonthGrid(year int, month time.Month, events []Event, previewLimit int, today, selected string) []DayCell {
	if previewLimit <= 0 {
		previewLimit = DefaultPreviewLimit
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	natural := offset + daysInMonth
	total := natural
	switch {
	case natural <= 35:
		total = 35
	case natural <= 41:
		total = 42
	}

	byDate := make(map[string][]Event, len(events))
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	cells := make([]DayCell, total)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
		dayEvents := byDate[date]

		preview := dayEvents
		if len(preview) > previewLimit {
			preview = preview[:previewLimit]
		}

		cells[offset+day-1] = DayCell{
			Day:        day,
			Date:       date,
			EventCount: len(dayEvents),
			Preview:    preview,
			IsToday:    date == today,
			IsSelected: date == selected,
		}
	}

	return cells
}
