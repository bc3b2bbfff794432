package listing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidClockTime = errors.New("time must be formatted as HH:MM")
	ErrEmptyWindow      = errors.New("schedule window start and end must differ")
	ErrNegativeRate     = errors.New("rate cannot be negative")
	ErrNegativeAddOn    = errors.New("add-on price cannot be negative")
	ErrEmptyAddOnName   = errors.New("add-on name cannot be empty")
	ErrUnknownAddOn     = errors.New("unknown add-on")
	ErrDuplicateWeekday = errors.New("at most one schedule entry per weekday")
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrNegativeBuffer   = errors.New("buffer time cannot be negative")
	ErrNegativeMinimum  = errors.New("minimum duration cannot be negative")
)

const minutesPerDay = 24 * 60

// ClockTime is a wall-clock time of day stored as minutes after midnight.
type ClockTime struct {
	minutes int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: hour*60 + minute}, nil
}

func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' {
		return ClockTime{}, ErrInvalidClockTime
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	return NewClockTime(h, m)
}

func ClockTimeFromMinutes(minutes int) (ClockTime, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: minutes}, nil
}

func (c ClockTime) Hour() int    { return c.minutes / 60 }
func (c ClockTime) Minute() int  { return c.minutes % 60 }
func (c ClockTime) Minutes() int { return c.minutes }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On combines the calendar date of day (in its location) with this time of day.
func (c ClockTime) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, day.Location())
}

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) IsZero() bool { return m.cents == 0 }

// String renders the amount with exactly two decimals.
func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

type ScheduleEntry struct {
	weekday   time.Weekday
	start     ClockTime
	end       ClockTime
	rateCents int64
}

func NewScheduleEntry(weekday time.Weekday, start, end ClockTime, rateCents int64) (ScheduleEntry, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return ScheduleEntry{}, ErrUnknownWeekday
	}
	if start == end {
		return ScheduleEntry{}, ErrEmptyWindow
	}
	if rateCents < 0 {
		return ScheduleEntry{}, ErrNegativeRate
	}
	return ScheduleEntry{weekday: weekday, start: start, end: end, rateCents: rateCents}, nil
}

func (e ScheduleEntry) Weekday() time.Weekday { return e.weekday }
func (e ScheduleEntry) Start() ClockTime      { return e.start }
func (e ScheduleEntry) End() ClockTime        { return e.end }
func (e ScheduleEntry) Rate() Money           { return NewMoney(e.rateCents) }

// Overnight reports whether the window runs past midnight into the next day.
func (e ScheduleEntry) Overnight() bool {
	return e.end.minutes < e.start.minutes
}

// WindowOn returns the absolute service window for the calendar date of day.
func (e ScheduleEntry) WindowOn(day time.Time) (time.Time, time.Time) {
	start := e.start.On(day)
	end := e.end.On(day)
	if e.Overnight() {
		end = e.end.On(day.AddDate(0, 0, 1))
	}
	return start, end
}

// ContainsTimeRange reports whether [from, to] as times of day fits inside the window.
// A range whose end is before its start is taken to cross midnight.
func (e ScheduleEntry) ContainsTimeRange(from, to ClockTime) bool {
	ws, we := e.start.minutes, e.end.minutes
	if e.Overnight() {
		we += minutesPerDay
	}
	rs, re := from.minutes, to.minutes
	if re < rs {
		re += minutesPerDay
	}
	if ws <= rs && re <= we {
		return true
	}
	// range sits entirely in the after-midnight tail of an overnight window
	return e.Overnight() && ws <= rs+minutesPerDay && re+minutesPerDay <= we
}

type AddOn struct {
	name       string
	priceCents int64
}

func NewAddOn(name string, priceCents int64) (AddOn, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AddOn{}, ErrEmptyAddOnName
	}
	if priceCents < 0 {
		return AddOn{}, ErrNegativeAddOn
	}
	return AddOn{name: name, priceCents: priceCents}, nil
}

func (a AddOn) Name() string { return a.name }
func (a AddOn) Price() Money { return NewMoney(a.priceCents) }
