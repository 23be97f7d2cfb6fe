//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"innkeeper/internal/domain/booking"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func june(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func reserveParams(number, startDay, endDay int) commands.ReserveParams {
	return commands.ReserveParams{
		RoomNumber:  number,
		Start:       june(startDay),
		End:         june(endDay),
		FullName:    "Ravi Nair",
		Phone:       "+91-9111111111",
		IdentityDoc: "DL-5678",
		Source:      booking.SourceWebsite,
		Payment:     booking.PaymentCard,
	}
}

func TestReservationCommands_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("forward-dated hold leaves the room available", func(t *testing.T) {
		store := newMemStore()
		rm := testRoom(t, 201, 4000)
		store.addRoom(rm)
		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))

		res, err := uc.Reserve(ctx, reserveParams(201, 10, 12), uuid.New())
		require.NoError(t, err)

		assert.Equal(t, booking.KindReservation, res.Kind())
		assert.Equal(t, booking.StatusReserved, res.Status())
		assert.True(t, rm.IsAvailable(), "arrival is days away")
		require.Contains(t, store.bookings, res.ID())
	})

	t.Run("hold covering now flips the room to reserved", func(t *testing.T) {
		store := newMemStore()
		rm := testRoom(t, 201, 4000)
		store.addRoom(rm)
		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))

		_, err := uc.Reserve(ctx, reserveParams(201, 1, 3), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, room.StatusReserved, rm.Status())
	})

	t.Run("error: window overlaps an existing hold", func(t *testing.T) {
		store := newMemStore()
		store.addRoom(testRoom(t, 201, 4000))
		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))

		_, err := uc.Reserve(ctx, reserveParams(201, 10, 15), uuid.New())
		require.NoError(t, err)

		_, err = uc.Reserve(ctx, reserveParams(201, 14, 16), uuid.New())
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("back-to-back windows do not conflict", func(t *testing.T) {
		store := newMemStore()
		store.addRoom(testRoom(t, 201, 4000))
		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))

		_, err := uc.Reserve(ctx, reserveParams(201, 10, 15), uuid.New())
		require.NoError(t, err)

		_, err = uc.Reserve(ctx, reserveParams(201, 15, 18), uuid.New())
		assert.NoError(t, err, "checkout day doubles as the next check-in day")
	})

	t.Run("error: open-ended stay blocks any later window", func(t *testing.T) {
		store := newMemStore()
		store.addRoom(testRoom(t, 201, 4000))
		stays := commands.NewStayCommands(store, clock.NewMockClock(checkInTime))
		_, err := stays.CheckIn(ctx, checkInParams(201, 2), uuid.New())
		require.NoError(t, err)

		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))
		_, err = uc.Reserve(ctx, reserveParams(201, 20, 22), uuid.New())
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("cancelled hold frees its window", func(t *testing.T) {
		store := newMemStore()
		store.addRoom(testRoom(t, 201, 4000))
		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))

		res, err := uc.Reserve(ctx, reserveParams(201, 10, 12), uuid.New())
		require.NoError(t, err)
		_, err = uc.CancelReservation(ctx, res.ID())
		require.NoError(t, err)

		_, err = uc.Reserve(ctx, reserveParams(201, 10, 12), uuid.New())
		assert.NoError(t, err)
	})

	t.Run("error: end before start", func(t *testing.T) {
		uc := commands.NewReservationCommands(newMemStore(), clock.NewMockClock(checkInTime))
		_, err := uc.Reserve(ctx, reserveParams(201, 12, 10), uuid.New())
		assert.ErrorIs(t, err, errs.ErrInvalidInterval)
	})

	t.Run("error: room under maintenance", func(t *testing.T) {
		store := newMemStore()
		rm := testRoom(t, 201, 4000)
		require.NoError(t, rm.EnterMaintenance())
		store.addRoom(rm)
		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))

		_, err := uc.Reserve(ctx, reserveParams(201, 10, 12), uuid.New())
		assert.ErrorIs(t, err, errs.ErrRoomNotAvailable)
	})

	t.Run("error: unknown room", func(t *testing.T) {
		uc := commands.NewReservationCommands(newMemStore(), clock.NewMockClock(checkInTime))
		_, err := uc.Reserve(ctx, reserveParams(404, 10, 12), uuid.New())
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})
}

func TestReservationCommands_CancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelling a current hold releases the room", func(t *testing.T) {
		store := newMemStore()
		rm := testRoom(t, 201, 4000)
		store.addRoom(rm)
		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))

		res, err := uc.Reserve(ctx, reserveParams(201, 1, 3), uuid.New())
		require.NoError(t, err)
		require.Equal(t, room.StatusReserved, rm.Status())

		cancelled, err := uc.CancelReservation(ctx, res.ID())
		require.NoError(t, err)

		assert.Equal(t, booking.StatusCancelled, cancelled.Status())
		assert.True(t, rm.IsAvailable())
	})

	t.Run("cancelling a future hold leaves the room untouched", func(t *testing.T) {
		store := newMemStore()
		rm := testRoom(t, 201, 4000)
		require.NoError(t, rm.MarkOccupied())
		store.addRoom(rm)
		res, err := booking.NewReservation(rm.ID(), validGuest(t), mustInterval(t, june(10), june(12)), booking.SourceCRM, booking.PaymentCash, "", "", uuid.New())
		require.NoError(t, err)
		store.addBooking(res)
		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))

		_, err = uc.CancelReservation(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, room.StatusOccupied, rm.Status())
	})

	t.Run("error: cancel twice", func(t *testing.T) {
		store := newMemStore()
		store.addRoom(testRoom(t, 201, 4000))
		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))

		res, err := uc.Reserve(ctx, reserveParams(201, 10, 12), uuid.New())
		require.NoError(t, err)
		_, err = uc.CancelReservation(ctx, res.ID())
		require.NoError(t, err)

		_, err = uc.CancelReservation(ctx, res.ID())
		assert.ErrorIs(t, err, errs.ErrAlreadyCancelled)
	})

	t.Run("error: a stay cannot be cancelled", func(t *testing.T) {
		store := newMemStore()
		store.addRoom(testRoom(t, 201, 4000))
		stays := commands.NewStayCommands(store, clock.NewMockClock(checkInTime))
		stay, err := stays.CheckIn(ctx, checkInParams(201, 1), uuid.New())
		require.NoError(t, err)

		uc := commands.NewReservationCommands(store, clock.NewMockClock(checkInTime))
		_, err = uc.CancelReservation(ctx, stay.ID())
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestReservationCommands_CheckInReservation(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*memStore, *room.Room, commands.ReservationCommands, *booking.Booking) {
		t.Helper()
		store := newMemStore()
		rm := testRoom(t, 201, 4000)
		store.addRoom(rm)
		uc := commands.NewReservationCommands(store, clock.NewMockClock(june(10)))
		res, err := uc.Reserve(ctx, reserveParams(201, 10, 12), uuid.New())
		require.NoError(t, err)
		return store, rm, uc, res
	}

	t.Run("materializes the hold into a stay", func(t *testing.T) {
		store, rm, uc, res := setup(t)

		stay, err := uc.CheckInReservation(ctx, res.ID(), uuid.New())
		require.NoError(t, err)

		assert.Equal(t, booking.KindStay, stay.Kind())
		assert.Equal(t, booking.StatusCheckedIn, stay.Status())
		assert.Equal(t, 2, stay.StayNights())
		assert.Equal(t, int64(8000), stay.TotalRentCents(), "rate times reserved nights")
		assert.Equal(t, res.Guest(), stay.Guest())

		assert.Equal(t, booking.StatusCheckedIn, res.Status())
		require.NotNil(t, res.StayID())
		assert.Equal(t, stay.ID(), *res.StayID())
		assert.False(t, res.ClaimsRoom(), "claim moved to the stay")

		assert.Equal(t, room.StatusOccupied, rm.Status())
		require.Contains(t, store.bookings, stay.ID())
		require.Len(t, store.events, 1)
	})

	t.Run("error: checking in twice", func(t *testing.T) {
		_, _, uc, res := setup(t)
		_, err := uc.CheckInReservation(ctx, res.ID(), uuid.New())
		require.NoError(t, err)

		_, err = uc.CheckInReservation(ctx, res.ID(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("error: cancelled hold", func(t *testing.T) {
		_, _, uc, res := setup(t)
		_, err := uc.CancelReservation(ctx, res.ID())
		require.NoError(t, err)

		_, err = uc.CheckInReservation(ctx, res.ID(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrBookingConflict)
	})

	t.Run("error: room went into maintenance", func(t *testing.T) {
		store, rm, uc, res := setup(t)
		store.addRoom(room.Reconstruct(
			rm.ID(), rm.Number(), rm.Category(), rm.BedType(), rm.View(),
			rm.RateCents(), rm.Capacity(), room.StatusMaintenance,
			rm.Amenities(), rm.PubliclyVisible(), rm.PublicDescription(),
			rm.Images(), rm.CreatedAt(), rm.UpdatedAt(),
		))

		_, err := uc.CheckInReservation(ctx, res.ID(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrRoomNotAvailable)
	})
}

func validGuest(t *testing.T) booking.GuestInfo {
	t.Helper()
	guest, err := booking.NewGuestInfo("Ravi Nair", "", "+91-9111111111", "DL-5678", "")
	require.NoError(t, err)
	return guest
}

func mustInterval(t *testing.T, start, end time.Time) booking.Interval {
	t.Helper()
	iv, err := booking.NewInterval(start, end)
	require.NoError(t, err)
	return iv
}
