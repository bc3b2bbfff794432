// Package pricing turns a listing's weekday rate schedule into the price of a stay.
package pricing

import (
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/pkg/clock"
)

const secondsPerHour = 3600

type PriceCalculator interface {
	ComputePrice(cfg listing.ScheduleConfig, checkIn, checkOut time.Time, addOns []listing.AddOn) listing.Money
}

type ScheduleCalculator struct{}

func NewScheduleCalculator() *ScheduleCalculator {
	return &ScheduleCalculator{}
}

func (ScheduleCalculator) ComputePrice(cfg listing.ScheduleConfig, checkIn, checkOut time.Time, addOns []listing.AddOn) listing.Money {
	return ComputePrice(cfg.PricingModel(), checkIn, checkOut, cfg.Schedule(), addOns, cfg.Location())
}

// ComputePrice prices [checkIn, checkOut) against a weekday schedule.
//
// Every calendar day from the day of checkIn to the day of checkOut (inclusive, in loc) is
// matched to its weekday entry. Hourly pricing charges the overlap with that day's service
// window pro rata; daily pricing charges the full rate when the stay touches the window at all.
// An empty schedule or a non-positive interval yields zero, and days without an entry
// contribute nothing. Add-ons are flat and added once. The total is rounded to whole cents.
func ComputePrice(
	model listing.PricingModel,
	checkIn, checkOut time.Time,
	schedule []listing.ScheduleEntry,
	addOns []listing.AddOn,
	loc *time.Location,
) listing.Money {
	if len(schedule) == 0 || !checkOut.After(checkIn) {
		return listing.NewMoney(0)
	}
	if loc == nil {
		loc = time.UTC
	}

	byWeekday := make(map[time.Weekday]listing.ScheduleEntry, len(schedule))
	for _, e := range schedule {
		byWeekday[e.Weekday()] = e
	}

	// accumulated in cent-seconds so hourly proration rounds once at the end
	var acc int64

	last := clock.StartOfDay(checkOut, loc)
	for day := clock.StartOfDay(checkIn, loc); !day.After(last); day = nextDay(day) {
		entry, ok := byWeekday[day.Weekday()]
		if !ok {
			continue
		}
		serviceStart, serviceEnd := entry.WindowOn(day)
		rate := entry.Rate().Cents()

		switch model {
		case listing.PricingHourly:
			from := later(checkIn, serviceStart)
			to := earlier(checkOut, serviceEnd)
			if to.After(from) {
				acc += int64(to.Sub(from)/time.Second) * rate
			}
		case listing.PricingDaily:
			if checkIn.Before(serviceEnd) && checkOut.After(serviceStart) {
				acc += rate * secondsPerHour
			}
		}
	}

	total := listing.NewMoney(roundDiv(acc, secondsPerHour))
	for _, a := range addOns {
		total = total.Add(a.Price())
	}
	return total
}

// nextDay steps by calendar date so DST transitions never skip or repeat a day.
func nextDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, day.Location())
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// roundDiv divides with half-up rounding; inputs are never negative.
func roundDiv(n, d int64) int64 {
	return (n + d/2) / d
}
