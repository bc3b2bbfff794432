//go:generate mockgen -source=ports.go -destination=../../../tests/mock/availability/ports_mock.go -package=availabilitymock

package availability

import (
	"context"

	"venuebook/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationFinder returns reservations in a calendar-blocking status whose interval
// intersects the given one.
type ReservationFinder interface {
	FindOverlapping(ctx context.Context, listingID uuid.UUID, interval reservation.Interval) ([]*reservation.Reservation, error)
	FindOverlappingExcluding(ctx context.Context, listingID uuid.UUID, interval reservation.Interval, excludeID uuid.UUID) ([]*reservation.Reservation, error)
	FindOverlappingForListings(ctx context.Context, listingIDs []uuid.UUID, interval reservation.Interval) ([]*reservation.Reservation, error)
}

// BlockFinder returns blocks scoped to the listing or to its vendor.
type BlockFinder interface {
	FindOverlapping(ctx context.Context, listingID uuid.UUID, vendorID *uuid.UUID, interval reservation.Interval) ([]*reservation.Block, error)
	FindOverlappingForScopes(ctx context.Context, listingIDs, vendorIDs []uuid.UUID, interval reservation.Interval) ([]*reservation.Block, error)
}
