package booking

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotAStay          = errors.New("booking is not a stay")
	ErrNotAReservation   = errors.New("booking is not a reservation")
	ErrAlreadyCheckedOut = errors.New("booking is already checked out")
	ErrAlreadyCancelled  = errors.New("reservation is already cancelled")
	ErrNotReserved       = errors.New("reservation is not in reserved status")
	ErrNegativeRent      = errors.New("rent cannot be negative")
	ErrInvalidNights     = errors.New("stay duration must be at least one night")
	ErrInvalidPayment    = errors.New("invalid payment method")
	ErrInvalidSource     = errors.New("invalid reservation source")
)

// Booking is the single polymorphic record behind both booking streams.
// A stay is realized occupancy with an open-ended interval until checkout;
// a reservation is a forward-dated hold with a fixed interval. Both claim
// their room for the interval while the status is active.
type Booking struct {
	id        uuid.UUID
	kind      Kind
	roomID    uuid.UUID
	guest     GuestInfo
	interval  Interval
	status    Status
	payment   PaymentMethod
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time

	// stay variant
	stayNights      int
	discountApplied bool
	discountTitle   *string
	totalRentCents  int64

	// reservation variant
	source         Source
	specialRequest string
	promoCode      string
	stayID         *uuid.UUID
}

// NewStay records a walk-in check-in starting at checkInAt. The interval
// stays open-ended until CheckOut.
func NewStay(
	roomID uuid.UUID,
	guest GuestInfo,
	checkInAt time.Time,
	nights int,
	payment PaymentMethod,
	totalRentCents int64,
	discountTitle *string,
	createdBy uuid.UUID,
) (*Booking, error) {
	if nights < 1 {
		return nil, ErrInvalidNights
	}
	if totalRentCents < 0 {
		return nil, ErrNegativeRent
	}
	if !payment.IsValid() {
		return nil, ErrInvalidPayment
	}

	return &Booking{
		id:              uuid.New(),
		kind:            KindStay,
		roomID:          roomID,
		guest:           guest,
		interval:        NewOpenInterval(checkInAt),
		status:          StatusCheckedIn,
		payment:         payment,
		createdBy:       createdBy,
		stayNights:      nights,
		discountApplied: discountTitle != nil,
		discountTitle:   discountTitle,
		totalRentCents:  totalRentCents,
	}, nil
}

// NewReservation records a forward-dated hold on a room.
func NewReservation(
	roomID uuid.UUID,
	guest GuestInfo,
	interval Interval,
	source Source,
	payment PaymentMethod,
	specialRequest string,
	promoCode string,
	createdBy uuid.UUID,
) (*Booking, error) {
	if interval.IsOpenEnded() {
		return nil, ErrInvalidInterval
	}
	if !source.IsValid() {
		return nil, ErrInvalidSource
	}
	if !payment.IsValid() {
		return nil, ErrInvalidPayment
	}

	return &Booking{
		id:             uuid.New(),
		kind:           KindReservation,
		roomID:         roomID,
		guest:          guest,
		interval:       interval,
		status:         StatusReserved,
		payment:        payment,
		createdBy:      createdBy,
		source:         source,
		specialRequest: specialRequest,
		promoCode:      promoCode,
	}, nil
}

// Reconstruct rebuilds a booking from storage without re-running creation
// validation.
func Reconstruct(
	id uuid.UUID,
	kind Kind,
	roomID uuid.UUID,
	guest GuestInfo,
	interval Interval,
	status Status,
	payment PaymentMethod,
	stayNights int,
	discountApplied bool,
	discountTitle *string,
	totalRentCents int64,
	source Source,
	specialRequest, promoCode string,
	stayID *uuid.UUID,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		kind:            kind,
		roomID:          roomID,
		guest:           guest,
		interval:        interval,
		status:          status,
		payment:         payment,
		createdBy:       createdBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		stayNights:      stayNights,
		discountApplied: discountApplied,
		discountTitle:   discountTitle,
		totalRentCents:  totalRentCents,
		source:          source,
		specialRequest:  specialRequest,
		promoCode:       promoCode,
		stayID:          stayID,
	}
}

// CheckOut closes an open stay: the interval end becomes now and the
// duration is recomputed as whole nights, never below one even when the
// guest leaves the same day.
func (b *Booking) CheckOut(now time.Time) error {
	if b.kind != KindStay {
		return ErrNotAStay
	}
	if b.status == StatusCheckedOut {
		return ErrAlreadyCheckedOut
	}

	closed, err := NewInterval(b.interval.Start(), now)
	if err != nil {
		return err
	}
	b.interval = closed
	b.stayNights = nightsBetween(b.interval.Start(), now)
	b.status = StatusCheckedOut
	return nil
}

// Cancel releases a reservation's hold on the room.
func (b *Booking) Cancel() error {
	if b.kind != KindReservation {
		return ErrNotAReservation
	}
	switch b.status {
	case StatusCheckedOut:
		return ErrAlreadyCheckedOut
	case StatusCancelled:
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

// MarkCheckedIn links a reservation to the stay that materialized it.
func (b *Booking) MarkCheckedIn(stayID uuid.UUID) error {
	if b.kind != KindReservation {
		return ErrNotAReservation
	}
	if b.status != StatusReserved {
		return ErrNotReserved
	}
	b.status = StatusCheckedIn
	b.stayID = &stayID
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

// ClaimsRoom reports whether this booking currently holds the room for
// its interval. A reservation's claim transfers to the stay it
// materializes into, so a checked_in reservation no longer claims.
func (b *Booking) ClaimsRoom() bool {
	if b.kind == KindStay {
		return b.status == StatusCheckedIn
	}
	return b.status == StatusReserved
}

func nightsBetween(in, out time.Time) int {
	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Kind() Kind             { return b.kind }
func (b *Booking) RoomID() uuid.UUID      { return b.roomID }
func (b *Booking) Guest() GuestInfo       { return b.guest }
func (b *Booking) Interval() Interval     { return b.interval }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Payment() PaymentMethod { return b.payment }
func (b *Booking) CreatedBy() uuid.UUID   { return b.createdBy }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
func (b *Booking) StayNights() int        { return b.stayNights }
func (b *Booking) DiscountApplied() bool  { return b.discountApplied }
func (b *Booking) DiscountTitle() *string { return b.discountTitle }
func (b *Booking) TotalRentCents() int64  { return b.totalRentCents }
func (b *Booking) SourceChannel() Source  { return b.source }
func (b *Booking) SpecialRequest() string { return b.specialRequest }
func (b *Booking) PromoCode() string      { return b.promoCode }
func (b *Booking) StayID() *uuid.UUID     { return b.stayID }
