//go:build unit

package room_test

import (
	"testing"

	"innkeeper/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoom(t *testing.T) *room.Room {
	t.Helper()
	r, err := room.NewRoom(101, "deluxe", "queen", "sea", 500000, 2, []string{"wifi"}, true, "Sea-facing deluxe")
	require.NoError(t, err)
	return r
}

func TestNewRoom(t *testing.T) {
	testCases := []struct {
		name     string
		number   int
		category string
		rate     int64
		capacity int
		expected error
	}{
		{"error: zero room number", 0, "deluxe", 1000, 1, room.ErrInvalidRoomNumber},
		{"error: negative room number", -3, "deluxe", 1000, 1, room.ErrInvalidRoomNumber},
		{"error: blank category", 101, "  ", 1000, 1, room.ErrEmptyCategory},
		{"error: negative rate", 101, "deluxe", -1, 1, room.ErrNegativeRate},
		{"error: zero capacity", 101, "deluxe", 1000, 0, room.ErrInvalidCapacity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := room.NewRoom(tc.number, tc.category, "", "", tc.rate, tc.capacity, nil, false, "")
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	t.Run("new rooms start available", func(t *testing.T) {
		r := newRoom(t)
		assert.Equal(t, room.StatusAvailable, r.Status())
		assert.True(t, r.IsAvailable())
	})
}

func TestRoom_StatusTransitions(t *testing.T) {
	t.Run("available to occupied", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.MarkOccupied())
		assert.Equal(t, room.StatusOccupied, r.Status())
	})

	t.Run("reserved to occupied when a hold materializes", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.MarkReserved())
		require.NoError(t, r.MarkOccupied())
		assert.Equal(t, room.StatusOccupied, r.Status())
	})

	t.Run("error: occupy an occupied room", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.MarkOccupied())
		assert.ErrorIs(t, r.MarkOccupied(), room.ErrIllegalTransition)
	})

	t.Run("error: reserve a non-available room", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.MarkOccupied())
		assert.ErrorIs(t, r.MarkReserved(), room.ErrIllegalTransition)
	})

	t.Run("release returns to available", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.MarkOccupied())
		require.NoError(t, r.Release())
		assert.True(t, r.IsAvailable())
	})

	t.Run("error: release never clears maintenance", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.EnterMaintenance())
		assert.ErrorIs(t, r.Release(), room.ErrUnderMaintenance)
	})
}

func TestRoom_Maintenance(t *testing.T) {
	t.Run("only available rooms can enter maintenance", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.MarkOccupied())
		assert.ErrorIs(t, r.EnterMaintenance(), room.ErrIllegalTransition)
	})

	t.Run("leave maintenance restores availability", func(t *testing.T) {
		r := newRoom(t)
		require.NoError(t, r.EnterMaintenance())
		require.NoError(t, r.LeaveMaintenance())
		assert.True(t, r.IsAvailable())
	})

	t.Run("error: leave maintenance on a normal room", func(t *testing.T) {
		r := newRoom(t)
		assert.ErrorIs(t, r.LeaveMaintenance(), room.ErrNotUnderMaintenance)
	})
}
