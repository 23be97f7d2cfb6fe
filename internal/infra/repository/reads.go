package repository

import (
	"context"
	"time"

	"innkeeper/internal/domain/booking"
	"innkeeper/internal/domain/discount"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `
	id, number, category, bed_type, view, rate_cents, capacity,
	status, amenities, publicly_visible, public_description, images,
	created_at, updated_at`

func scanRoom(row rowScanner) (*room.Room, error) {
	var id pgtype.UUID
	var number, capacity int
	var category, bedType, view, status, publicDescription string
	var rateCents int64
	var amenities, images []string
	var publiclyVisible bool
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&id, &number, &category, &bedType, &view, &rateCents, &capacity,
		&status, &amenities, &publiclyVisible, &publicDescription, &images,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return room.Reconstruct(
		uuid.UUID(id.Bytes),
		number,
		category, bedType, view,
		rateCents,
		capacity,
		room.Status(status),
		amenities,
		publiclyVisible,
		publicDescription,
		images,
		createdAt.Time, updatedAt.Time,
	), nil
}

// Reads answers the lookups lifecycle commands run inside their
// transaction. Bound to a pgx.Tx it sees uncommitted writes; bound to
// the pool it serves the UnitOfWork's non-transactional read path.
type Reads struct {
	db db.DBTX
}

func NewReads(dbtx db.DBTX) *Reads {
	return &Reads{db: dbtx}
}

func (r *Reads) RoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	rm, err := scanRoom(r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rm, nil
}

func (r *Reads) RoomByNumber(ctx context.Context, number int) (*room.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE number = $1`

	rm, err := scanRoom(r.db.QueryRow(ctx, query, number))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rm, nil
}

func (r *Reads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

// claimingPredicate mirrors Booking.ClaimsRoom and the exclusion
// constraint: stays claim while checked_in, reservations while
// reserved. A materialized reservation no longer claims.
const claimingPredicate = `
	((kind = 'stay' AND status = 'checked_in')
	 OR (kind = 'reservation' AND status = 'reserved'))`

// HasActiveOverlap runs the half-open overlap predicate in SQL:
// start_at < $end AND end_at > $start over claiming bookings.
// Open-ended stays participate through their far-future end bound.
func (r *Reads) HasActiveOverlap(ctx context.Context, roomID uuid.UUID, iv booking.Interval) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1
			  AND ` + claimingPredicate + `
			  AND start_at < $3
			  AND end_at > $2
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(roomID),
		pgconv.TimeToPgtype(iv.Start()),
		pgconv.TimeToPgtype(iv.End()),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

func (r *Reads) HasActiveBooking(ctx context.Context, roomID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1 AND ` + claimingPredicate + `
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(roomID)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active bookings", err)
	}
	return exists, nil
}

// CurrentDiscount returns the most recently created discount whose
// closed window contains asOf, or nil when none applies.
func (r *Reads) CurrentDiscount(ctx context.Context, asOf time.Time) (*discount.Discount, error) {
	const query = `
		SELECT id, title, percentage, start_date, end_date, created_at
		FROM discounts
		WHERE start_date <= $1 AND end_date >= $1
		ORDER BY created_at DESC
		LIMIT 1`

	var id pgtype.UUID
	var title string
	var percentage float64
	var startDate, endDate, createdAt pgtype.Timestamptz

	err := r.db.QueryRow(ctx, query, pgconv.TimeToPgtype(asOf)).
		Scan(&id, &title, &percentage, &startDate, &endDate, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find current discount", err)
	}

	return discount.Reconstruct(
		uuid.UUID(id.Bytes), title, percentage,
		startDate.Time, endDate.Time, createdAt.Time,
	), nil
}
