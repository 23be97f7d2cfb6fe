//go:build unit

package booking_test

import (
	"testing"
	"time"

	"innkeeper/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGuest(t *testing.T) booking.GuestInfo {
	t.Helper()
	guest, err := booking.NewGuestInfo("Asha Verma", "12 Hill Road", "+91-9000000000", "PASS-1234", "asha@example.com")
	require.NoError(t, err)
	return guest
}

func newStay(t *testing.T, checkInAt time.Time, nights int) *booking.Booking {
	t.Helper()
	stay, err := booking.NewStay(uuid.New(), validGuest(t), checkInAt, nights, booking.PaymentCash, 15000, nil, uuid.New())
	require.NoError(t, err)
	return stay
}

func newReservation(t *testing.T, iv booking.Interval) *booking.Booking {
	t.Helper()
	res, err := booking.NewReservation(uuid.New(), validGuest(t), iv, booking.SourceWebsite, booking.PaymentCard, "", "", uuid.New())
	require.NoError(t, err)
	return res
}

func TestNewGuestInfo(t *testing.T) {
	testCases := []struct {
		name        string
		fullName    string
		phone       string
		identityDoc string
		expected    error
	}{
		{"error: empty name", "", "123", "doc", booking.ErrEmptyGuestName},
		{"error: blank name", "   ", "123", "doc", booking.ErrEmptyGuestName},
		{"error: empty phone", "Guest", "", "doc", booking.ErrEmptyGuestPhone},
		{"error: empty identity doc", "Guest", "123", "", booking.ErrEmptyIdentityDoc},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.NewGuestInfo(tc.fullName, "", tc.phone, tc.identityDoc, "")
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	t.Run("email is normalized", func(t *testing.T) {
		guest, err := booking.NewGuestInfo("Guest", "", "123", "doc", "  Guest@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", guest.Email())
	})
}

func TestNewStay(t *testing.T) {
	t.Run("starts open-ended and checked in", func(t *testing.T) {
		checkIn := time.Date(2025, time.June, 1, 14, 0, 0, 0, time.UTC)
		stay := newStay(t, checkIn, 3)

		assert.Equal(t, booking.KindStay, stay.Kind())
		assert.Equal(t, booking.StatusCheckedIn, stay.Status())
		assert.True(t, stay.Interval().IsOpenEnded())
		assert.Equal(t, checkIn, stay.Interval().Start())
		assert.Equal(t, 3, stay.StayNights())
		assert.True(t, stay.ClaimsRoom())
	})

	t.Run("error: zero nights", func(t *testing.T) {
		_, err := booking.NewStay(uuid.New(), validGuest(t), time.Now(), 0, booking.PaymentCash, 0, nil, uuid.New())
		assert.ErrorIs(t, err, booking.ErrInvalidNights)
	})

	t.Run("error: negative rent", func(t *testing.T) {
		_, err := booking.NewStay(uuid.New(), validGuest(t), time.Now(), 1, booking.PaymentCash, -1, nil, uuid.New())
		assert.ErrorIs(t, err, booking.ErrNegativeRent)
	})

	t.Run("error: unknown payment method", func(t *testing.T) {
		_, err := booking.NewStay(uuid.New(), validGuest(t), time.Now(), 1, booking.PaymentMethod("barter"), 0, nil, uuid.New())
		assert.ErrorIs(t, err, booking.ErrInvalidPayment)
	})

	t.Run("discount title marks the stay discounted", func(t *testing.T) {
		title := "Monsoon Special"
		stay, err := booking.NewStay(uuid.New(), validGuest(t), time.Now(), 2, booking.PaymentCash, 8000, &title, uuid.New())
		require.NoError(t, err)
		assert.True(t, stay.DiscountApplied())
		assert.Equal(t, &title, stay.DiscountTitle())
	})
}

func TestBooking_CheckOut(t *testing.T) {
	checkIn := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("closes the interval and recomputes nights", func(t *testing.T) {
		stay := newStay(t, checkIn, 3)
		out := checkIn.Add(72 * time.Hour)

		require.NoError(t, stay.CheckOut(out))

		assert.Equal(t, booking.StatusCheckedOut, stay.Status())
		assert.False(t, stay.Interval().IsOpenEnded())
		assert.Equal(t, out, stay.Interval().End())
		assert.Equal(t, 3, stay.StayNights())
		assert.False(t, stay.ClaimsRoom())
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		stay := newStay(t, checkIn, 1)
		require.NoError(t, stay.CheckOut(checkIn.Add(25*time.Hour)))
		assert.Equal(t, 2, stay.StayNights())
	})

	t.Run("same-day departure still counts one night", func(t *testing.T) {
		stay := newStay(t, checkIn, 1)
		require.NoError(t, stay.CheckOut(checkIn.Add(2*time.Hour)))
		assert.Equal(t, 1, stay.StayNights())
	})

	t.Run("error: second checkout", func(t *testing.T) {
		stay := newStay(t, checkIn, 1)
		require.NoError(t, stay.CheckOut(checkIn.Add(24*time.Hour)))
		assert.ErrorIs(t, stay.CheckOut(checkIn.Add(48*time.Hour)), booking.ErrAlreadyCheckedOut)
	})

	t.Run("error: checkout on a reservation", func(t *testing.T) {
		iv, err := booking.NewInterval(checkIn, checkIn.Add(48*time.Hour))
		require.NoError(t, err)
		res := newReservation(t, iv)
		assert.ErrorIs(t, res.CheckOut(checkIn.Add(24*time.Hour)), booking.ErrNotAStay)
	})
}

func TestBooking_Cancel(t *testing.T) {
	iv, err := booking.NewInterval(day(10), day(12))
	require.NoError(t, err)

	t.Run("releases the hold", func(t *testing.T) {
		res := newReservation(t, iv)
		require.NoError(t, res.Cancel())
		assert.Equal(t, booking.StatusCancelled, res.Status())
		assert.False(t, res.ClaimsRoom())
	})

	t.Run("error: cancel twice", func(t *testing.T) {
		res := newReservation(t, iv)
		require.NoError(t, res.Cancel())
		assert.ErrorIs(t, res.Cancel(), booking.ErrAlreadyCancelled)
	})

	t.Run("error: cancel a stay", func(t *testing.T) {
		stay := newStay(t, day(10), 1)
		assert.ErrorIs(t, stay.Cancel(), booking.ErrNotAReservation)
	})
}

func TestBooking_MarkCheckedIn(t *testing.T) {
	iv, err := booking.NewInterval(day(10), day(12))
	require.NoError(t, err)

	t.Run("links the reservation to its stay and drops the claim", func(t *testing.T) {
		res := newReservation(t, iv)
		stayID := uuid.New()

		require.NoError(t, res.MarkCheckedIn(stayID))

		assert.Equal(t, booking.StatusCheckedIn, res.Status())
		require.NotNil(t, res.StayID())
		assert.Equal(t, stayID, *res.StayID())
		assert.False(t, res.ClaimsRoom(), "claim moves to the stay")
	})

	t.Run("error: already materialized", func(t *testing.T) {
		res := newReservation(t, iv)
		require.NoError(t, res.MarkCheckedIn(uuid.New()))
		assert.ErrorIs(t, res.MarkCheckedIn(uuid.New()), booking.ErrNotReserved)
	})

	t.Run("error: cancelled reservation", func(t *testing.T) {
		res := newReservation(t, iv)
		require.NoError(t, res.Cancel())
		assert.ErrorIs(t, res.MarkCheckedIn(uuid.New()), booking.ErrNotReserved)
	})
}
