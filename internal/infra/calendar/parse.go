package calendar

import (
	"bytes"
	"errors"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

var ErrEmptyFeed = errors.New("empty calendar body")

// event is one VEVENT with its recurrence data left unexpanded.
type event struct {
	UID        string
	Summary    string
	Start      time.Time
	End        time.Time
	AllDay     bool
	RRule      string
	ExDates    []time.Time
	Recurrence *time.Time
}

// parseFeed keeps only events that make the calendar busy: cancelled and
// transparent events are dropped, and VEVENTs that cannot be read are skipped.
func parseFeed(body []byte) ([]event, int, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, 0, ErrEmptyFeed
	}
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}

	var (
		events  []event
		skipped int
	)
	for _, ve := range cal.Events() {
		if !occupiesTime(ve) {
			continue
		}
		ev, ok := parseEvent(ve)
		if !ok {
			skipped++
			continue
		}
		events = append(events, ev)
	}
	return events, skipped, nil
}

func occupiesTime(ve *ical.VEvent) bool {
	if p := ve.GetProperty(ical.ComponentProperty("STATUS")); p != nil && strings.EqualFold(strings.TrimSpace(p.Value), "CANCELLED") {
		return false
	}
	if p := ve.GetProperty(ical.ComponentProperty("TRANSP")); p != nil && strings.EqualFold(strings.TrimSpace(p.Value), "TRANSPARENT") {
		return false
	}
	return true
}

func parseEvent(ve *ical.VEvent) (event, bool) {
	var ev event

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || strings.TrimSpace(uid.Value) == "" {
		return ev, false
	}
	ev.UID = strings.TrimSpace(uid.Value)

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Summary = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return ev, false
	}
	ev.Start = start

	if dt := ve.GetProperty(ical.ComponentPropertyDtStart); dt != nil {
		ev.AllDay = isDateValue(dt.Value, dt.ICalParameters)
	}

	end, err := ve.GetEndAt()
	switch {
	case err == nil:
		ev.End = end
	case ev.AllDay:
		ev.End = ev.Start.AddDate(0, 0, 1)
	default:
		return ev, false
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		ev.RRule = strings.TrimSpace(p.Value)
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		loc := locationOf(p.ICalParameters, ev.Start.Location())
		for _, part := range strings.Split(p.Value, ",") {
			if t, err := parseTime(part, loc); err == nil {
				ev.ExDates = append(ev.ExDates, t)
			}
		}
	}

	if p := ve.GetProperty(ical.ComponentProperty("RECURRENCE-ID")); p != nil {
		if t, err := parseTime(p.Value, locationOf(p.ICalParameters, ev.Start.Location())); err == nil {
			ev.Recurrence = &t
		}
	}

	return ev, true
}

func isDateValue(value string, params map[string][]string) bool {
	if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(value, "T")
}

func locationOf(params map[string][]string, fallback *time.Location) *time.Location {
	if tzs, ok := params["TZID"]; ok && len(tzs) > 0 {
		if loc, err := time.LoadLocation(tzs[0]); err == nil {
			return loc
		}
	}
	if fallback == nil {
		return time.UTC
	}
	return fallback
}

// parseTime reads the three ICS time forms: UTC date-time, floating date-time and date.
func parseTime(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, errors.New("empty time value")
	}
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, loc)
	}
	return time.ParseInLocation("20060102", v, loc)
}
