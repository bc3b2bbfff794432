package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("check-out must be after check-in")

// Interval is the half-open range [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() time.Time { return i.start }
func (i Interval) End() time.Time   { return i.end }

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

func (i Interval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

// Overlaps uses half-open semantics: touching endpoints do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

// Widen extends both ends by d.
func (i Interval) Widen(d time.Duration) Interval {
	if d <= 0 {
		return i
	}
	return Interval{start: i.start.Add(-d), end: i.end.Add(d)}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s,%s)", i.start.Format(time.RFC3339), i.end.Format(time.RFC3339))
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
