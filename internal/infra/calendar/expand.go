package calendar

import (
	"log/slog"
	"time"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/usecase/shared"

	"github.com/teambition/rrule-go"
)

const maxOccurrencesPerEvent = 5000

// expand turns parsed events into concrete busy intervals that intersect window.
// RECURRENCE-ID overrides replace the matching generated occurrence.
func expand(events []event, window reservation.Interval, logger *slog.Logger) []shared.FeedBlock {
	base := make(map[string][]event)
	overrides := make(map[string][]event)
	order := make([]string, 0)
	for _, ev := range events {
		if ev.Recurrence != nil {
			overrides[ev.UID] = append(overrides[ev.UID], ev)
			continue
		}
		if _, seen := base[ev.UID]; !seen {
			order = append(order, ev.UID)
		}
		base[ev.UID] = append(base[ev.UID], ev)
	}

	var out []shared.FeedBlock
	for _, uid := range order {
		for _, ev := range base[uid] {
			if ev.RRule == "" {
				out = appendIfInWindow(out, ev.UID, ev.Summary, ev.Start, ev.End, window)
				continue
			}
			out = append(out, expandRecurring(ev, overrides[uid], window, logger)...)
		}
	}
	return out
}

func expandRecurring(ev event, overrides []event, window reservation.Interval, logger *slog.Logger) []shared.FeedBlock {
	rule, err := rrule.StrToRRule(ev.RRule)
	if err != nil {
		logger.Warn("calendar event has an unreadable RRULE", "uid", ev.UID, "rrule", ev.RRule, "error", err.Error())
		return nil
	}
	rule.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(rule)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	duration := ev.End.Sub(ev.Start)
	// occurrences that started before the window but still run into it count too
	from := window.Start().Add(-duration).In(ev.Start.Location())
	to := window.End().In(ev.Start.Location())
	starts := set.Between(from, to, true)
	if len(starts) > maxOccurrencesPerEvent {
		logger.Warn("calendar event truncated", "uid", ev.UID, "occurrences", len(starts))
		starts = starts[:maxOccurrencesPerEvent]
	}

	var out []shared.FeedBlock
	for _, occurrence := range starts {
		// one row per occurrence, keyed by the generated start
		uid := ev.UID + "/" + occurrence.UTC().Format("20060102T150405Z")
		start, end, summary := occurrence, occurrence.Add(duration), ev.Summary
		if o, ok := overrideFor(overrides, occurrence); ok {
			start, end, summary = o.Start, o.End, o.Summary
		}
		out = appendIfInWindow(out, uid, summary, start, end, window)
	}
	return out
}

func overrideFor(overrides []event, start time.Time) (event, bool) {
	for _, o := range overrides {
		if o.Recurrence.Equal(start) {
			return o, true
		}
	}
	return event{}, false
}

func appendIfInWindow(out []shared.FeedBlock, uid, summary string, start, end time.Time, window reservation.Interval) []shared.FeedBlock {
	if !end.After(start) {
		return out
	}
	if !start.Before(window.End()) || !end.After(window.Start()) {
		return out
	}
	return append(out, shared.FeedBlock{
		ExternalUID: uid,
		Start:       start.UTC(),
		End:         end.UTC(),
		Summary:     summary,
	})
}
