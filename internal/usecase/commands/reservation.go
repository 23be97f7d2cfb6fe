package commands

import (
	"context"
	"errors"
	"time"

	"innkeeper/internal/domain/booking"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReserveParams struct {
	RoomNumber     int
	Start          time.Time
	End            time.Time
	FullName       string
	Address        string
	Phone          string
	IdentityDoc    string
	Email          string
	Source         booking.Source
	Payment        booking.PaymentMethod
	SpecialRequest string
	PromoCode      string
}

type ReservationCommands interface {
	Reserve(ctx context.Context, params ReserveParams, createdBy uuid.UUID) (*booking.Booking, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	CheckInReservation(ctx context.Context, id uuid.UUID, createdBy uuid.UUID) (*booking.Booking, error)
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, clock: clk}
}

// Reserve places a forward-dated hold. The availability check and the
// insert share one transaction; the storage exclusion constraint backs
// the check against concurrent writers.
func (u *reservationCommandsImpl) Reserve(ctx context.Context, params ReserveParams, createdBy uuid.UUID) (*booking.Booking, error) {
	interval, err := booking.NewInterval(params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInterval)
	}
	guest, err := booking.NewGuestInfo(params.FullName, params.Address, params.Phone, params.IdentityDoc, params.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var res *booking.Booking
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Reads().RoomByNumber(ctx, params.RoomNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if rm.Status() == room.StatusMaintenance {
			return errs.ErrRoomNotAvailable
		}

		occupied, err := tx.Reads().HasActiveOverlap(ctx, rm.ID(), interval)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if occupied {
			return errs.ErrBookingConflict
		}

		res, err = booking.NewReservation(rm.ID(), guest, interval, params.Source, params.Payment, params.SpecialRequest, params.PromoCode, createdBy)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if _, err := tx.Bookings().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrBookingConflict
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// Status reflects the nearest-term booking: flip to reserved only
		// when the hold already covers now, otherwise leave available
		// until arrival.
		if interval.Contains(u.clock.Now()) && rm.IsAvailable() {
			if err := rm.MarkReserved(); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.Rooms().Update(ctx, rm); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (u *reservationCommandsImpl) CancelReservation(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var res *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := findReservation(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := b.Cancel(); err != nil {
			switch {
			case errors.Is(err, booking.ErrAlreadyCheckedOut):
				return errs.ErrAlreadyCheckedOut
			case errors.Is(err, booking.ErrAlreadyCancelled):
				return errs.ErrAlreadyCancelled
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// Only the reservation that set the room to reserved releases it.
		if b.Interval().Contains(u.clock.Now()) {
			rm, err := tx.Reads().RoomByID(ctx, b.RoomID())
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if rm.Status() == room.StatusReserved {
				if err := rm.Release(); err != nil {
					return errs.Mark(err, errs.ErrDomainValidation)
				}
				if err := tx.Rooms().Update(ctx, rm); err != nil {
					return errs.Mark(err, errs.ErrDatabaseOperationFailed)
				}
			}
		}
		res = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CheckInReservation materializes a hold into a stay, cross-linking the
// two records. Rent is recomputed from the room rate and the reserved
// interval length.
func (u *reservationCommandsImpl) CheckInReservation(ctx context.Context, id uuid.UUID, createdBy uuid.UUID) (*booking.Booking, error) {
	var stay *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := findReservation(ctx, tx, id)
		if err != nil {
			return err
		}
		if b.Status() != booking.StatusReserved {
			return errs.ErrBookingConflict
		}

		rm, err := tx.Reads().RoomByID(ctx, b.RoomID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if rm.Status() == room.StatusMaintenance || rm.Status() == room.StatusOccupied {
			return errs.ErrRoomNotAvailable
		}

		now := u.clock.Now()
		nights := int(b.Interval().Duration().Hours() / 24)
		if nights < 1 {
			nights = 1
		}

		stay, err = booking.NewStay(rm.ID(), b.Guest(), now, nights, b.Payment(), rm.RateCents()*int64(nights), nil, createdBy)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		// The reservation hands its claim to the stay before the insert,
		// so the storage overlap rule sees a single claimant per room.
		if err := b.MarkCheckedIn(stay.ID()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if _, err := tx.Bookings().Create(ctx, stay); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrBookingConflict
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := rm.MarkOccupied(); err != nil {
			return errs.Mark(err, errs.ErrRoomNotAvailable)
		}
		if err := tx.Rooms().Update(ctx, rm); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return appendOccupancyEvent(ctx, tx.Outbox(), rm.ID(), stay.ID(), OccupancyKindCheckIn, now)
	})
	if err != nil {
		return nil, err
	}
	return stay, nil
}

func findReservation(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Reads().BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if b.Kind() != booking.KindReservation {
		return nil, errs.ErrBookingNotFound
	}
	return b, nil
}
