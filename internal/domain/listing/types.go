package listing

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrUnknownPricingModel = errors.New("unknown pricing model")
	ErrUnknownBufferUnit   = errors.New("unknown buffer unit")
	ErrUnknownDurationUnit = errors.New("unknown duration unit")
	ErrUnknownWeekday      = errors.New("unknown weekday")
)

type PricingModel string

const (
	PricingHourly PricingModel = "hourly"
	PricingDaily  PricingModel = "daily"
)

func ParsePricingModel(s string) (PricingModel, error) {
	switch m := PricingModel(strings.ToLower(strings.TrimSpace(s))); m {
	case PricingHourly, PricingDaily:
		return m, nil
	default:
		return "", ErrUnknownPricingModel
	}
}

func (m PricingModel) String() string { return string(m) }

type BufferUnit string

const (
	BufferMinutes BufferUnit = "minutes"
	BufferHours   BufferUnit = "hours"
)

func ParseBufferUnit(s string) (BufferUnit, error) {
	switch u := BufferUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case BufferMinutes, BufferHours:
		return u, nil
	case "":
		return BufferMinutes, nil
	default:
		return "", ErrUnknownBufferUnit
	}
}

func (u BufferUnit) Duration(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	if u == BufferHours {
		return time.Duration(n) * time.Hour
	}
	return time.Duration(n) * time.Minute
}

type DurationUnit string

const (
	DurationMinutes DurationUnit = "minutes"
	DurationHours   DurationUnit = "hours"
	DurationDays    DurationUnit = "days"
)

func ParseDurationUnit(s string) (DurationUnit, error) {
	switch u := DurationUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case DurationMinutes, DurationHours, DurationDays:
		return u, nil
	case "":
		return DurationMinutes, nil
	default:
		return "", ErrUnknownDurationUnit
	}
}

// Minutes converts n units to minutes. Non-positive n means no minimum.
func (u DurationUnit) Minutes(n int) int {
	if n <= 0 {
		return 0
	}
	switch u {
	case DurationHours:
		return n * 60
	case DurationDays:
		return n * 24 * 60
	default:
		return n
	}
}
