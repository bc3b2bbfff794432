package availability

import (
	"context"
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/domain/reservation"

	"github.com/google/uuid"
)

const ReasonBelowMinimumDuration = "below minimum duration"

// Decision is a business outcome, not an error: a rejection carries a reason and,
// for conflicts, the conflicting interval.
type Decision struct {
	Available bool
	Reason    string
	Conflict  *Conflict
}

func accepted() Decision {
	return Decision{Available: true}
}

func rejected(reason string, conflict *Conflict) Decision {
	return Decision{Available: false, Reason: reason, Conflict: conflict}
}

type AvailabilityChecker struct {
	detector *ConflictDetector
}

func NewAvailabilityChecker(detector *ConflictDetector) *AvailabilityChecker {
	return &AvailabilityChecker{detector: detector}
}

// Check validates the minimum duration first, then runs the buffered conflict check
// with the listing's own buffer. It reads but never writes.
func (c *AvailabilityChecker) Check(ctx context.Context, l *listing.Listing, interval reservation.Interval, excludeReservationID *uuid.UUID) (Decision, error) {
	cfg := l.Config()

	if minimum := cfg.MinimumDurationMinutes(); minimum > 0 {
		if int(interval.Duration()/time.Minute) < minimum {
			return rejected(ReasonBelowMinimumDuration, nil), nil
		}
	}

	vendorID := l.VendorID()
	conflict, err := c.detector.Buffered(ctx, Request{
		ListingID:            l.ID(),
		VendorID:             &vendorID,
		Interval:             interval,
		Buffer:               cfg.Buffer(),
		ExcludeReservationID: excludeReservationID,
	})
	if err != nil {
		return Decision{}, err
	}
	if conflict != nil {
		return rejected(conflict.Message(cfg.Location()), conflict), nil
	}

	return accepted(), nil
}
