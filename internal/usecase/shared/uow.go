package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/listing"
	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Listings() ListingRepository
	Blocks() BlockRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are bound to whatever DBTX they were created from. Inside Within they see the
// transaction's own writes and locks.
type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	Reservations() availability.ReservationFinder
	Blocks() availability.BlockFinder
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateWindow(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
}

type ListingRepository interface {
	// LockByID takes a row lock on the listing that lasts until the transaction ends.
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*listing.Listing, error)
}

type BlockRepository interface {
	ReplaceFeed(ctx context.Context, tx db.DBTX, feedName string, blocks []*reservation.Block) (int, error)
}

type IdempotencyRepository interface {
	Save(ctx context.Context, tx db.DBTX, key uuid.UUID, requestHash string, reservationID uuid.UUID) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx db.DBTX, event OutboxEvent) error
}
