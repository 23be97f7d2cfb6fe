package queries

import (
	"context"
	"time"

	"innkeeper/internal/domain/room"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/errs"

	"github.com/google/uuid"
)

const timelineWindowDays = 30

// OccupancyReadStore answers the one canonical overlap question: which
// rooms hold a booking in an active status whose interval overlaps the
// given half-open range. Open-ended stays carry a far-future end bound
// in storage, so they fall out of the same predicate.
type OccupancyReadStore interface {
	ActiveRoomIDsOverlapping(ctx context.Context, start, end time.Time) ([]uuid.UUID, error)
	TimelineForRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*TimelineEntry, error)
}

type AvailabilityQueries interface {
	// FindAvailable returns rooms free for the whole interval, ascending
	// by room number. Category filtering is optional.
	FindAvailable(ctx context.Context, start, end time.Time, category *string) ([]*RoomView, error)
	RoomTimeline(ctx context.Context, roomID uuid.UUID) ([]*TimelineEntry, error)
}

type availabilityQueriesImpl struct {
	occupancy OccupancyReadStore
	rooms     RoomReadStore
	clock     clock.Clock
}

func NewAvailabilityQueries(occupancy OccupancyReadStore, rooms RoomReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{occupancy: occupancy, rooms: rooms, clock: clk}
}

func (q *availabilityQueriesImpl) FindAvailable(ctx context.Context, start, end time.Time, category *string) ([]*RoomView, error) {
	if !end.After(start) {
		return nil, errs.ErrInvalidInterval
	}

	bookedIDs, err := q.occupancy.ActiveRoomIDsOverlapping(ctx, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	booked := make(map[uuid.UUID]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	all, err := q.rooms.ListRooms(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// ListRooms is already ordered by room number; filtering preserves it.
	available := make([]*RoomView, 0, len(all))
	for _, rv := range all {
		if _, taken := booked[rv.ID]; taken {
			continue
		}
		if rv.Status == room.StatusMaintenance.String() {
			continue
		}
		if category != nil && rv.Category != *category {
			continue
		}
		available = append(available, rv)
	}
	return available, nil
}

func (q *availabilityQueriesImpl) RoomTimeline(ctx context.Context, roomID uuid.UUID) ([]*TimelineEntry, error) {
	from := q.clock.Now().UTC().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, timelineWindowDays)

	entries, err := q.occupancy.TimelineForRoom(ctx, roomID, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entries, nil
}
