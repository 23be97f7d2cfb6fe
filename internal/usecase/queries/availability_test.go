//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"innkeeper/internal/domain/room"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func june(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

type bookedSpan struct {
	roomID     uuid.UUID
	start, end time.Time
}

type fakeOccupancyStore struct {
	spans    []bookedSpan
	timeline []*queries.TimelineEntry

	timelineFrom, timelineTo time.Time
}

func (f *fakeOccupancyStore) ActiveRoomIDsOverlapping(_ context.Context, start, end time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, s := range f.spans {
		if s.start.Before(end) && s.end.After(start) {
			ids = append(ids, s.roomID)
		}
	}
	return ids, nil
}

func (f *fakeOccupancyStore) TimelineForRoom(_ context.Context, _ uuid.UUID, from, to time.Time) ([]*queries.TimelineEntry, error) {
	f.timelineFrom, f.timelineTo = from, to
	return f.timeline, nil
}

type fakeRoomReadStore struct {
	rooms []*queries.RoomView
}

func (f *fakeRoomReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomView, error) {
	for _, rv := range f.rooms {
		if rv.ID == id {
			return rv, nil
		}
	}
	return nil, errs.ErrRoomNotFound
}

func (f *fakeRoomReadStore) FindByNumber(_ context.Context, number int) (*queries.RoomView, error) {
	for _, rv := range f.rooms {
		if rv.Number == number {
			return rv, nil
		}
	}
	return nil, errs.ErrRoomNotFound
}

func (f *fakeRoomReadStore) ListRooms(_ context.Context) ([]*queries.RoomView, error) {
	return f.rooms, nil
}

func roomView(number int, category, status string) *queries.RoomView {
	return &queries.RoomView{
		ID:       uuid.New(),
		Number:   number,
		Category: category,
		Status:   status,
	}
}

func TestAvailabilityQueries_FindAvailable(t *testing.T) {
	ctx := context.Background()
	available := room.StatusAvailable.String()

	newQueries := func(rooms []*queries.RoomView, spans []bookedSpan) queries.AvailabilityQueries {
		occ := &fakeOccupancyStore{spans: spans}
		return queries.NewAvailabilityQueries(occ, &fakeRoomReadStore{rooms: rooms}, clock.NewMockClock(june(1)))
	}

	t.Run("booked rooms drop out, in room-number order", func(t *testing.T) {
		r101 := roomView(101, "deluxe", available)
		r102 := roomView(102, "deluxe", available)
		r103 := roomView(103, "suite", available)
		spans := []bookedSpan{{roomID: r102.ID, start: june(1), end: june(5)}}

		got, err := newQueries([]*queries.RoomView{r101, r102, r103}, spans).FindAvailable(ctx, june(3), june(4), nil)
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, 101, got[0].Number)
		assert.Equal(t, 103, got[1].Number)
	})

	t.Run("a booking ending on the start day does not block", func(t *testing.T) {
		r101 := roomView(101, "deluxe", available)
		spans := []bookedSpan{{roomID: r101.ID, start: june(1), end: june(5)}}

		got, err := newQueries([]*queries.RoomView{r101}, spans).FindAvailable(ctx, june(5), june(6), nil)
		require.NoError(t, err)
		require.Len(t, got, 1, "checkout day frees the room for that night")
	})

	t.Run("rooms under maintenance never show up", func(t *testing.T) {
		r101 := roomView(101, "deluxe", room.StatusMaintenance.String())
		r102 := roomView(102, "deluxe", available)

		got, err := newQueries([]*queries.RoomView{r101, r102}, nil).FindAvailable(ctx, june(1), june(2), nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 102, got[0].Number)
	})

	t.Run("category filter narrows the result", func(t *testing.T) {
		rooms := []*queries.RoomView{
			roomView(101, "deluxe", available),
			roomView(102, "suite", available),
			roomView(103, "deluxe", available),
		}

		category := "deluxe"
		got, err := newQueries(rooms, nil).FindAvailable(ctx, june(1), june(2), &category)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 101, got[0].Number)
		assert.Equal(t, 103, got[1].Number)
	})

	t.Run("error: end not after start", func(t *testing.T) {
		q := newQueries(nil, nil)

		_, err := q.FindAvailable(ctx, june(5), june(5), nil)
		assert.ErrorIs(t, err, errs.ErrInvalidInterval)

		_, err = q.FindAvailable(ctx, june(5), june(3), nil)
		assert.ErrorIs(t, err, errs.ErrInvalidInterval)
	})
}

func TestAvailabilityQueries_RoomTimeline(t *testing.T) {
	ctx := context.Background()
	entries := []*queries.TimelineEntry{
		{BookingID: uuid.New(), Kind: "stay", Start: june(10), End: june(12), Status: "checked_in"},
	}
	occ := &fakeOccupancyStore{timeline: entries}

	// 15:30 on the 10th truncates to midnight for the window start.
	now := june(10).Add(15*time.Hour + 30*time.Minute)
	q := queries.NewAvailabilityQueries(occ, &fakeRoomReadStore{}, clock.NewMockClock(now))

	got, err := q.RoomTimeline(ctx, uuid.New())
	require.NoError(t, err)

	if diff := cmp.Diff(entries, got); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, june(10), occ.timelineFrom)
	assert.Equal(t, june(10).AddDate(0, 0, 30), occ.timelineTo)
}
