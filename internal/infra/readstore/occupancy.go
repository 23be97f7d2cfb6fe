package readstore

import (
	"context"
	"time"

	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// OccupancyReadStore serves the canonical overlap question for the
// availability engine. Stays and reservations go through the same
// predicate: start_at < range end AND end_at > range start, claiming
// bookings only.
type OccupancyReadStore struct {
	db db.DBTX
}

func NewOccupancyReadStore(dbtx db.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{db: dbtx}
}

func (s *OccupancyReadStore) ActiveRoomIDsOverlapping(ctx context.Context, start, end time.Time) ([]uuid.UUID, error) {
	const query = `
		SELECT DISTINCT room_id
		FROM bookings
		WHERE ((kind = 'stay' AND status = 'checked_in')
		   OR (kind = 'reservation' AND status = 'reserved'))
		  AND start_at < $2
		  AND end_at > $1`

	rows, err := s.db.Query(ctx, query, pgconv.TimeToPgtype(start), pgconv.TimeToPgtype(end))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping bookings", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id pgtype.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room id", err)
		}
		ids = append(ids, uuid.UUID(id.Bytes))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate overlapping bookings", err)
	}
	return ids, nil
}

// TimelineForRoom merges both booking kinds into one chronological view
// of the room. Open-ended stays are clamped to the window end so the
// sentinel never reaches callers.
func (s *OccupancyReadStore) TimelineForRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*queries.TimelineEntry, error) {
	const query = `
		SELECT id, kind, guest_name, start_at, LEAST(end_at, $3) AS end_at, status
		FROM bookings
		WHERE room_id = $1
		  AND ((kind = 'stay' AND status = 'checked_in')
		   OR (kind = 'reservation' AND status = 'reserved'))
		  AND start_at < $3
		  AND end_at > $2
		ORDER BY start_at ASC`

	rows, err := s.db.Query(ctx, query,
		pgconv.UUIDToPgtype(roomID),
		pgconv.TimeToPgtype(from),
		pgconv.TimeToPgtype(to),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query room timeline", err)
	}
	defer rows.Close()

	var entries []*queries.TimelineEntry
	for rows.Next() {
		var e queries.TimelineEntry
		var id pgtype.UUID
		var start, end pgtype.Timestamptz

		if err := rows.Scan(&id, &e.Kind, &e.GuestName, &start, &end, &e.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan timeline entry", err)
		}
		e.BookingID = uuid.UUID(id.Bytes)
		e.Start = start.Time
		e.End = end.Time
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate timeline entries", err)
	}
	return entries, nil
}
