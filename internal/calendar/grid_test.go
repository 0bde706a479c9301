package calendar

import (
	"testing"
	"time"
)

func TestBuildMonthGridShape(t *testing.T) {
	for year := 2015; year <= 2035; year++ {
		for month := time.January; month <= time.December; month++ {
			cells := BuildMonthGrid(year, month, nil, DefaultPreviewLimit, "", "")

			if len(cells)%7 != 0 {
				t.Errorf("%d-%02d: %d cells, not a multiple of 7", year, month, len(cells))
			}
			if len(cells) < 35 || len(cells) > 42 {
				t.Errorf("%d-%02d: %d cells, want 35..42", year, month, len(cells))
			}

			first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			offset := int(first.Weekday())
			daysInMonth := first.AddDate(0, 1, -1).Day()

			for i, cell := range cells {
				inMonth := i >= offset && i < offset+daysInMonth
				if inMonth && cell.Day != i-offset+1 {
					t.Errorf("%d-%02d cell %d: day %d, want %d", year, month, i, cell.Day, i-offset+1)
				}
				if !inMonth && cell.Day != 0 {
					t.Errorf("%d-%02d cell %d: day %d, want placeholder", year, month, i, cell.Day)
				}
			}
		}
	}
}

func TestBuildMonthGridPadding(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		// Sunday the 1st, 28 days: natural 28.
		{2015, time.February, 35},
		// Sunday the 1st, 30 days: natural 30.
		{2025, time.June, 35},
		// Saturday the 1st, 30 days: natural 36.
		{2025, time.November, 42},
		// Friday the 1st, 31 days: natural 36.
		{2025, time.August, 42},
		// Saturday the 1st, 31 days: natural 37.
		{2025, time.March, 42},
	}

	for _, tc := range cases {
		cells := BuildMonthGrid(tc.year, tc.month, nil, DefaultPreviewLimit, "", "")
		if len(cells) != tc.want {
			t.Errorf("%d-%02d: %d cells, want %d", tc.year, tc.month, len(cells), tc.want)
		}
	}
}

func TestBuildMonthGridEvents(t *testing.T) {
	events := []Event{
		{ID: 1, Title: "Algebra", Date: "2025-03-10", StartClock: "09:00", EndClock: "10:00"},
		{ID: 2, Title: "Calculus", Date: "2025-03-10", StartClock: "11:00", EndClock: "12:00"},
		{ID: 3, Title: "Physics", Date: "2025-03-10", StartClock: "15:00", EndClock: "16:00"},
		{ID: 4, Title: "Chemistry", Date: "2025-03-21", StartClock: "10:00", EndClock: "11:00"},
	}

	cells := BuildMonthGrid(2025, time.March, events, 2, "2025-03-10", "2025-03-21")

	var busy, today, selected *DayCell
	for i := range cells {
		switch cells[i].Date {
		case "2025-03-10":
			busy = &cells[i]
		case "2025-03-21":
			selected = &cells[i]
		}
		if cells[i].IsToday {
			today = &cells[i]
		}
	}

	if busy == nil {
		t.Fatal("no cell for 2025-03-10")
	}
	if busy.EventCount != 3 {
		t.Errorf("event count = %d, want 3", busy.EventCount)
	}
	if len(busy.Preview) != 2 {
		t.Errorf("preview length = %d, want 2", len(busy.Preview))
	}
	if busy.Preview[0].ID != 1 || busy.Preview[1].ID != 2 {
		t.Errorf("preview ids = %d, %d, want 1, 2", busy.Preview[0].ID, busy.Preview[1].ID)
	}

	if today == nil || today.Date != "2025-03-10" {
		t.Error("today flag not on 2025-03-10")
	}
	if selected == nil || !selected.IsSelected {
		t.Error("selected flag not on 2025-03-21")
	}
	if selected != nil && selected.EventCount != 1 {
		t.Errorf("selected event count = %d, want 1", selected.EventCount)
	}
}

func TestBuildMonthGridPreviewLimitFallback(t *testing.T) {
	events := []Event{
		{ID: 1, Date: "2025-06-05"},
		{ID: 2, Date: "2025-06-05"},
		{ID: 3, Date: "2025-06-05"},
	}

	cells := BuildMonthGrid(2025, time.June, events, 0, "", "")
	for _, cell := range cells {
		if cell.Date == "2025-06-05" {
			if len(cell.Preview) != DefaultPreviewLimit {
				t.Errorf("preview length = %d, want %d", len(cell.Preview), DefaultPreviewLimit)
			}
			return
		}
	}
	t.Fatal("no cell for 2025-06-05")
}
