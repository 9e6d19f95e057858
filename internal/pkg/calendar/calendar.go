package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTimeOfDay = errors.New("time of day must be in HH:MM format")
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// DefaultCutoff is the office start time used for lateness.
var DefaultCutoff = TimeOfDay{Hour: 9, Minute: 30}

var timeOfDayRegex = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayRegex.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if h > 23 || mm > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{Hour: h, Minute: mm}, nil
}

// Calendar anchors day boundaries and the lateness cutoff to one location.
type Calendar struct {
	Location *time.Location
	Cutoff   TimeOfDay
}

func New(loc *time.Location, cutoff TimeOfDay) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{Location: loc, Cutoff: cutoff}
}

// DayOf returns local midnight of the calendar day containing t.
func (c Calendar) DayOf(t time.Time) time.Time {
	lt := t.In(c.Location)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, c.Location)
}

// DateKey formats the calendar day of t as YYYY-MM-DD.
func (c Calendar) DateKey(t time.Time) string {
	return c.DayOf(t).Format(DateLayout)
}

// MonthRange returns the first instant of the month and the last millisecond of
// its final day, both in local time.
func (c Calendar) MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, c.Location)
	// day 0 of the next month is the last day of this one
	end := time.Date(year, month+1, 0, 23, 59, 59, int(999*time.Millisecond), c.Location)
	return start, end
}

// EndOfDay returns the last millisecond of the calendar day containing t.
func (c Calendar) EndOfDay(t time.Time) time.Time {
	d := c.DayOf(t)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), c.Location)
}

// CutoffOn returns the lateness cutoff anchored to the calendar day of day.
func (c Calendar) CutoffOn(day time.Time) time.Time {
	d := c.DayOf(day)
	return time.Date(d.Year(), d.Month(), d.Day(), c.Cutoff.Hour, c.Cutoff.Minute, 0, 0, c.Location)
}

// AddDays moves a calendar day by n days, staying on local midnight across DST changes.
func (c Calendar) AddDays(day time.Time, n int) time.Time {
	d := c.DayOf(day)
	return time.Date(d.Year(), d.Month(), d.Day()+n, 0, 0, 0, 0, c.Location)
}

// Days lists every calendar day from from to to inclusive. It returns nil when
// to falls before from.
func (c Calendar) Days(from, to time.Time) []time.Time {
	start := c.DayOf(from)
	end := c.DayOf(to)
	var days []time.Time
	for d := start; !d.After(end); d = c.AddDays(d, 1) {
		days = append(days, d)
	}
	return days
}

// ParseMonth parses a YYYY-MM token. An empty token selects the month of now.
func (c Calendar) ParseMonth(token string, now time.Time) (int, time.Month, error) {
	if token == "" {
		lt := now.In(c.Location)
		return lt.Year(), lt.Month(), nil
	}
	parsed, err := time.ParseInLocation(MonthLayout, token, c.Location)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonth, token)
	}
	return parsed.Year(), parsed.Month(), nil
}

// ParseDate parses a YYYY-MM-DD token into local midnight. An empty token
// selects the day of now.
func (c Calendar) ParseDate(token string, now time.Time) (time.Time, error) {
	if token == "" {
		return c.DayOf(now), nil
	}
	parsed, err := time.ParseInLocation(DateLayout, token, c.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, token)
	}
	return parsed, nil
}

// MonthKey formats a year and month as YYYY-MM.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
