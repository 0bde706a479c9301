package calendar

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func santiago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("load America/Santiago: %v", err)
	}
	return loc
}

func TestInstantRoundTrip(t *testing.T) {
	loc := santiago(t)

	// Every quarter hour of one day per month across a year that crosses
	// both Chilean DST transitions (April and September 2025).
	for month := time.January; month <= time.December; month++ {
		date := fmt.Sprintf("2025-%02d-15", int(month))
		for q := 0; q < 96; q++ {
			clock := fmt.Sprintf("%02d:%02d", q/4, (q%4)*15)

			instant, err := Instant(date, clock, loc)
			if err != nil {
				t.Fatalf("Instant(%s %s): %v", date, clock, err)
			}
			if instant.Location() != time.UTC {
				t.Fatalf("Instant(%s %s) not in UTC", date, clock)
			}
			if got := LocalDate(instant, loc); got != date {
				t.Errorf("LocalDate round trip: %s %s -> %s", date, clock, got)
			}
			if got := LocalClock(instant, loc); got != clock {
				t.Errorf("LocalClock round trip: %s %s -> %s", date, clock, got)
			}
		}
	}
}

func TestInstantRejectsBadInput(t *testing.T) {
	loc := santiago(t)

	cases := []struct {
		name  string
		date  string
		clock string
		want  error
	}{
		{"empty date", "", "10:00", ErrBadDate},
		{"slashed date", "2025/03/10", "10:00", ErrBadDate},
		{"month overflow", "2025-13-01", "10:00", ErrBadDate},
		{"empty clock", "2025-03-10", "", ErrBadClock},
		{"seconds in clock", "2025-03-10", "10:00:00", ErrBadClock},
		{"hour overflow", "2025-03-10", "25:00", ErrBadClock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Instant(tc.date, tc.clock, loc)
			if !errors.Is(err, tc.want) {
				t.Errorf("Instant(%q, %q) err = %v, want %v", tc.date, tc.clock, err, tc.want)
			}
		})
	}
}

func TestWindowOrdering(t *testing.T) {
	loc := santiago(t)

	start, end, err := Window("2025-03-10", "09:00", "10:30", loc)
	if err != nil {
		t.Fatalf("valid window: %v", err)
	}
	if got := end.Sub(start); got != 90*time.Minute {
		t.Errorf("window length = %v, want 90m", got)
	}

	if _, _, err := Window("2025-03-10", "10:00", "10:00", loc); !errors.Is(err, ErrEndNotAfterStart) {
		t.Errorf("equal bounds err = %v, want ErrEndNotAfterStart", err)
	}
	if _, _, err := Window("2025-03-10", "11:00", "10:00", loc); !errors.Is(err, ErrEndNotAfterStart) {
		t.Errorf("inverted bounds err = %v, want ErrEndNotAfterStart", err)
	}
}

func TestWeekdayOfUsesUTC(t *testing.T) {
	loc := santiago(t)

	// Monday 2025-03-10 09:00 in Santiago is still Monday in UTC (12:00Z).
	morning, err := Instant("2025-03-10", "09:00", loc)
	if err != nil {
		t.Fatal(err)
	}
	if got := WeekdayOf(morning); got != Lunes {
		t.Errorf("WeekdayOf(monday morning) = %s, want LUNES", got)
	}

	// Monday 2025-03-10 22:00 in Santiago is already Tuesday in UTC
	// (01:00Z). The tag follows UTC by policy, not the local wall date.
	lateNight, err := Instant("2025-03-10", "22:00", loc)
	if err != nil {
		t.Fatal(err)
	}
	if got := WeekdayOf(lateNight); got != Martes {
		t.Errorf("WeekdayOf(monday late night) = %s, want MARTES", got)
	}
}

func TestWeekdayOfDate(t *testing.T) {
	cases := []struct {
		date string
		want Weekday
	}{
		{"2025-03-09", Domingo},
		{"2025-03-10", Lunes},
		{"2025-03-11", Martes},
		{"2025-03-12", Miercoles},
		{"2025-03-13", Jueves},
		{"2025-03-14", Viernes},
		{"2025-03-15", Sabado},
	}

	for _, tc := range cases {
		got, err := WeekdayOfDate(tc.date)
		if err != nil {
			t.Fatalf("WeekdayOfDate(%s): %v", tc.date, err)
		}
		if got != tc.want {
			t.Errorf("WeekdayOfDate(%s) = %s, want %s", tc.date, got, tc.want)
		}
	}

	if _, err := WeekdayOfDate("not-a-date"); !errors.Is(err, ErrBadDate) {
		t.Errorf("bad date err = %v, want ErrBadDate", err)
	}
}

func TestMonthWindowCoversWholeMonth(t *testing.T) {
	loc := santiago(t)

	start, end := MonthWindow(2025, time.April, loc)
	if got := LocalDate(start, loc); got != "2025-04-01" {
		t.Errorf("start = %s, want 2025-04-01", got)
	}
	if got := LocalDate(end, loc); got != "2025-05-01" {
		t.Errorf("end = %s, want 2025-05-01", got)
	}

	// April 2025 crosses the Chilean DST fall-back, so the window is one
	// hour longer than 30 calendar days.
	if got := end.Sub(start); got != 30*24*time.Hour+time.Hour {
		t.Errorf("april 2025 window length = %v", got)
	}
}
