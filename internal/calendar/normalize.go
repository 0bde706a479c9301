package calendar

import (
	"errors"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	ErrBadDate          = errors.New("invalid date")
	ErrBadClock         = errors.New("invalid clock time")
	ErrEndNotAfterStart = errors.New("end must be after start")
)

// Weekday is the wire tag for a day of the week, indexed 0=Sunday..6=Saturday.
type Weekday string

const (
	Domingo   Weekday = "DOMINGO"
	Lunes     Weekday = "LUNES"
	Martes    Weekday = "MARTES"
	Miercoles Weekday = "MIERCOLES"
	Jueves    Weekday = "JUEVES"
	Viernes   Weekday = "VIERNES"
	Sabado    Weekday = "SABADO"
)

var weekdayTags = [7]Weekday{
	Domingo, Lunes, Martes, Miercoles, Jueves, Viernes, Sabado,
}

// WeekdayOf classifies an instant by day of week.
//
// Policy: the tag is always derived from the instant's UTC representation,
// regardless of the display zone. Mixing UTC and local indices here is how
// off-by-one weekday bugs happen for users outside UTC, so every weekday
// derived from an instant in this codebase goes through this function.
func WeekdayOf(t time.Time) Weekday {
	return weekdayTags[int(t.UTC().Weekday())]
}

// WeekdayOfDate classifies a plain calendar date. A date has an absolute
// weekday independent of any zone.
func WeekdayOfDate(date string) (Weekday, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ErrBadDate
	}
	return weekdayTags[int(d.Weekday())], nil
}

// LocalClock renders an instant as wall-clock "HH:mm" in the given zone.
func LocalClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ClockLayout)
}

// LocalDate renders an instant as a "YYYY-MM-DD" calendar date in the given zone.
func LocalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// Instant interprets a local date + "HH:mm" pair in the given zone and
// returns the corresponding UTC instant.
func Instant(date, clock string, loc *time.Location) (time.Time, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return time.Time{}, ErrBadDate
	}
	if _, err := time.Parse(ClockLayout, clock); err != nil {
		return time.Time{}, ErrBadClock
	}

	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, ErrBadClock
	}
	return t.UTC(), nil
}

// Window builds the [start, end) UTC instants for a local date and a pair of
// "HH:mm" wall-clock bounds. The end must be strictly after the start.
func Window(date, startClock, endClock string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := Instant(date, startClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := Instant(date, endClock, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrEndNotAfterStart
	}

	return start, end, nil
}

// MonthWindow returns the [start, end) instants covering a whole month of
// local calendar days in the given zone.
func MonthWindow(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
