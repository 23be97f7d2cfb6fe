package shared

import (
	"context"
	"time"

	"innkeeper/internal/domain/booking"
	"innkeeper/internal/domain/discount"
	"innkeeper/internal/domain/room"

	"github.com/google/uuid"
)

// UnitOfWork scopes every lifecycle operation to one transaction so the
// availability check and the booking write are atomic. Implementations
// must surface storage-level overlap conflicts as repository Conflict
// errors rather than letting two writers both succeed.
type UnitOfWork interface {
	// Within: full read-write transaction with retry on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: direct read access outside a transaction
	Reads() Reads
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Discounts() DiscountRepository
	Outbox() OutboxRepository
	Reads() Reads
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (uuid.UUID, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DiscountRepository interface {
	Create(ctx context.Context, d *discount.Discount) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OutboxRepository appends occupancy-changed events in the same
// transaction as the state change (transactional outbox). The relay
// publishes them after commit, best-effort.
type OutboxRepository interface {
	Append(ctx context.Context, topic string, payload []byte, runAt time.Time) error
}

type Reads interface {
	RoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	RoomByNumber(ctx context.Context, number int) (*room.Room, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// HasActiveOverlap is the canonical availability predicate: any booking
	// on the room in an active status whose interval overlaps iv half-open.
	HasActiveOverlap(ctx context.Context, roomID uuid.UUID, iv booking.Interval) (bool, error)
	// HasActiveBooking reports whether any active-status booking references
	// the room, regardless of interval.
	HasActiveBooking(ctx context.Context, roomID uuid.UUID) (bool, error)
	CurrentDiscount(ctx context.Context, asOf time.Time) (*discount.Discount, error)
}
