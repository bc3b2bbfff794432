package availability

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"venuebook/internal/domain/reservation"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

// Mode selects how existing reservations are compared with a proposed interval.
//
// Search uses ModeStrict; booking creation and extension use ModeBuffered. A listing can
// therefore show up in search and still be refused at booking time when a buffer applies.
type Mode int

const (
	ModeStrict Mode = iota
	ModeBuffered
)

func (m Mode) String() string {
	if m == ModeBuffered {
		return "buffered"
	}
	return "strict"
}

type ConflictKind string

const (
	ConflictReservation ConflictKind = "reservation"
	ConflictBlock       ConflictKind = "block"
)

type Request struct {
	ListingID            uuid.UUID
	VendorID             *uuid.UUID
	Interval             reservation.Interval
	Buffer               time.Duration
	ExcludeReservationID *uuid.UUID
}

type Conflict struct {
	Kind          ConflictKind
	Interval      reservation.Interval
	ReservationID *uuid.UUID
	BlockReason   string
	// NextAvailableAt is the latest end among all conflicting intervals, plus the buffer
	// for reservations.
	NextAvailableAt time.Time
}

func (c *Conflict) Message(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	const layout = "2006-01-02 15:04 MST"
	from := c.Interval.Start().In(loc).Format(layout)
	to := c.Interval.End().In(loc).Format(layout)
	next := c.NextAvailableAt.In(loc).Format(layout)
	if c.Kind == ConflictBlock {
		return fmt.Sprintf("listing is blocked from %s to %s; next available at %s", from, to, next)
	}
	return fmt.Sprintf("conflicts with an existing booking from %s to %s; next available at %s", from, to, next)
}

type Candidate struct {
	ListingID uuid.UUID
	VendorID  *uuid.UUID
}

type ConflictDetector struct {
	reservations ReservationFinder
	blocks       BlockFinder
	logger       *slog.Logger
}

func NewConflictDetector(reservations ReservationFinder, blocks BlockFinder, logger *slog.Logger) *ConflictDetector {
	return &ConflictDetector{
		reservations: reservations,
		blocks:       blocks,
		logger:       logger,
	}
}

// Detect returns nil when req.Interval is free under the given mode.
func (d *ConflictDetector) Detect(ctx context.Context, mode Mode, req Request) (*Conflict, error) {
	buffer := time.Duration(0)
	if mode == ModeBuffered && req.Buffer > 0 {
		buffer = req.Buffer
	}

	// widening the request by the buffer finds exactly the reservations whose widened
	// interval meets the proposed one
	widened := req.Interval.Widen(buffer)

	var (
		existing []*reservation.Reservation
		err      error
	)
	if req.ExcludeReservationID != nil {
		existing, err = d.reservations.FindOverlappingExcluding(ctx, req.ListingID, widened, *req.ExcludeReservationID)
	} else {
		existing, err = d.reservations.FindOverlapping(ctx, req.ListingID, widened)
	}
	if err != nil {
		return nil, errs.Wrap(err, "find overlapping reservations")
	}

	blocks, err := d.blocks.FindOverlapping(ctx, req.ListingID, req.VendorID, req.Interval)
	if err != nil {
		return nil, errs.Wrap(err, "find overlapping blocks")
	}

	conflicts := make([]Conflict, 0, len(existing)+len(blocks))
	for _, r := range existing {
		if !r.BlocksCalendar() {
			continue
		}
		if req.ExcludeReservationID != nil && r.ID() == *req.ExcludeReservationID {
			continue
		}
		if !r.Interval().Widen(buffer).Overlaps(req.Interval) {
			continue
		}
		id := r.ID()
		conflicts = append(conflicts, Conflict{
			Kind:            ConflictReservation,
			Interval:        r.Interval(),
			ReservationID:   &id,
			NextAvailableAt: r.CheckOut().Add(buffer),
		})
	}
	for _, b := range blocks {
		if !b.Interval().Overlaps(req.Interval) {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Kind:            ConflictBlock,
			Interval:        b.Interval(),
			BlockReason:     b.Reason(),
			NextAvailableAt: b.Interval().End(),
		})
	}

	if len(conflicts) == 0 {
		return nil, nil
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		return conflicts[i].Interval.Start().Before(conflicts[j].Interval.Start())
	})
	first := conflicts[0]
	for _, c := range conflicts[1:] {
		if c.NextAvailableAt.After(first.NextAvailableAt) {
			first.NextAvailableAt = c.NextAvailableAt
		}
	}

	d.logger.DebugContext(ctx, "availability conflict detected",
		slog.String("listing_id", req.ListingID.String()),
		slog.String("mode", mode.String()),
		slog.String("kind", string(first.Kind)),
		slog.Int("conflicts", len(conflicts)),
	)
	return &first, nil
}

func (d *ConflictDetector) Strict(ctx context.Context, req Request) (*Conflict, error) {
	return d.Detect(ctx, ModeStrict, req)
}

func (d *ConflictDetector) Buffered(ctx context.Context, req Request) (*Conflict, error) {
	return d.Detect(ctx, ModeBuffered, req)
}

// UnavailableAmong runs the strict check for many listings with one query per store and
// returns the ids of listings that have any conflict.
func (d *ConflictDetector) UnavailableAmong(ctx context.Context, candidates []Candidate, interval reservation.Interval) (map[uuid.UUID]struct{}, error) {
	busy := make(map[uuid.UUID]struct{})
	if len(candidates) == 0 {
		return busy, nil
	}

	listingIDs := make([]uuid.UUID, 0, len(candidates))
	byVendor := make(map[uuid.UUID][]uuid.UUID)
	vendorIDs := make([]uuid.UUID, 0)
	for _, c := range candidates {
		listingIDs = append(listingIDs, c.ListingID)
		if c.VendorID != nil {
			if _, seen := byVendor[*c.VendorID]; !seen {
				vendorIDs = append(vendorIDs, *c.VendorID)
			}
			byVendor[*c.VendorID] = append(byVendor[*c.VendorID], c.ListingID)
		}
	}

	existing, err := d.reservations.FindOverlappingForListings(ctx, listingIDs, interval)
	if err != nil {
		return nil, errs.Wrap(err, "find overlapping reservations for listings")
	}
	for _, r := range existing {
		if r.BlocksCalendar() && r.Interval().Overlaps(interval) {
			busy[r.ListingID()] = struct{}{}
		}
	}

	blocks, err := d.blocks.FindOverlappingForScopes(ctx, listingIDs, vendorIDs, interval)
	if err != nil {
		return nil, errs.Wrap(err, "find overlapping blocks for listings")
	}
	for _, b := range blocks {
		if !b.Interval().Overlaps(interval) {
			continue
		}
		if b.ListingID() != nil {
			busy[*b.ListingID()] = struct{}{}
		}
		if b.VendorID() != nil {
			for _, id := range byVendor[*b.VendorID()] {
				busy[id] = struct{}{}
			}
		}
	}
	return busy, nil
}
