package reservation

import (
	"errors"

	"github.com/google/uuid"
)

var ErrBlockScope = errors.New("block must belong to a listing or a vendor")

type BlockSource string

const (
	BlockSourceManual   BlockSource = "manual"
	BlockSourceCalendar BlockSource = "calendar"
)

// Block is a hard-unavailable interval. It ignores reservation status and buffers.
type Block struct {
	id          uuid.UUID
	listingID   *uuid.UUID
	vendorID    *uuid.UUID
	source      BlockSource
	externalUID string
	interval    Interval
	reason      string
}

func NewBlock(listingID, vendorID *uuid.UUID, source BlockSource, externalUID string, interval Interval, reason string) (*Block, error) {
	if listingID == nil && vendorID == nil {
		return nil, ErrBlockScope
	}
	if interval.IsZero() {
		return nil, ErrInvalidInterval
	}
	return &Block{
		id:          uuid.New(),
		listingID:   listingID,
		vendorID:    vendorID,
		source:      source,
		externalUID: externalUID,
		interval:    interval,
		reason:      reason,
	}, nil
}

func ReconstructBlock(id uuid.UUID, listingID, vendorID *uuid.UUID, source BlockSource, externalUID string, interval Interval, reason string) *Block {
	return &Block{
		id:          id,
		listingID:   listingID,
		vendorID:    vendorID,
		source:      source,
		externalUID: externalUID,
		interval:    interval,
		reason:      reason,
	}
}

func (b *Block) ID() uuid.UUID         { return b.id }
func (b *Block) ListingID() *uuid.UUID { return b.listingID }
func (b *Block) VendorID() *uuid.UUID  { return b.vendorID }
func (b *Block) Source() BlockSource   { return b.source }
func (b *Block) ExternalUID() string   { return b.externalUID }
func (b *Block) Interval() Interval    { return b.interval }
func (b *Block) Reason() string        { return b.reason }
