package commands

import (
	"context"
	"errors"

	"innkeeper/internal/domain/booking"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckInParams struct {
	RoomNumber    int
	FullName      string
	Address       string
	Phone         string
	IdentityDoc   string
	Email         string
	Nights        int
	ApplyDiscount bool
	Payment       booking.PaymentMethod
}

type StayCommands interface {
	CheckIn(ctx context.Context, params CheckInParams, createdBy uuid.UUID) (*booking.Booking, error)
	CheckOut(ctx context.Context, stayID uuid.UUID) (*booking.Booking, error)
	DeleteStay(ctx context.Context, stayID uuid.UUID) error
}

type stayCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewStayCommands(uow shared.UnitOfWork, clk clock.Clock) StayCommands {
	return &stayCommandsImpl{uow: uow, clock: clk}
}

// CheckIn realizes a walk-in occupancy. The room lookup, discount lookup,
// stay insert and room status flip all run in one transaction; the
// occupancy-changed event rides the same transaction through the outbox.
func (u *stayCommandsImpl) CheckIn(ctx context.Context, params CheckInParams, createdBy uuid.UUID) (*booking.Booking, error) {
	guest, err := booking.NewGuestInfo(params.FullName, params.Address, params.Phone, params.IdentityDoc, params.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var stay *booking.Booking
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Reads().RoomByNumber(ctx, params.RoomNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRoomNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !rm.IsAvailable() {
			return errs.ErrRoomNotAvailable
		}

		now := u.clock.Now()
		baseRent := rm.RateCents() * int64(params.Nights)
		totalRent := baseRent
		var discountTitle *string

		if params.ApplyDiscount {
			current, err := tx.Reads().CurrentDiscount(ctx, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if current == nil {
				return errs.ErrNoValidDiscount
			}
			totalRent = current.Apply(baseRent)
			title := current.Title()
			discountTitle = &title
		}

		stay, err = booking.NewStay(rm.ID(), guest, now, params.Nights, params.Payment, totalRent, discountTitle, createdBy)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
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

// CheckOut closes the stay and frees the room. Calling it twice returns
// a conflict the second time; the room is never double-freed.
func (u *stayCommandsImpl) CheckOut(ctx context.Context, stayID uuid.UUID) (*booking.Booking, error) {
	var stay *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := findStay(ctx, tx, stayID)
		if err != nil {
			return err
		}

		now := u.clock.Now()
		if err := b.CheckOut(now); err != nil {
			if errors.Is(err, booking.ErrAlreadyCheckedOut) {
				return errs.ErrAlreadyCheckedOut
			}
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Bookings().Update(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		rm, err := tx.Reads().RoomByID(ctx, b.RoomID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		// A stay is 1:1 with occupancy, so releasing is direct. Maintenance
		// set while the guest was in-house is preserved.
		if rm.Status() != room.StatusMaintenance {
			if err := rm.Release(); err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.Rooms().Update(ctx, rm); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		stay = b
		return appendOccupancyEvent(ctx, tx.Outbox(), b.RoomID(), b.ID(), OccupancyKindCheckOut, now)
	})
	if err != nil {
		return nil, err
	}
	return stay, nil
}

func (u *stayCommandsImpl) DeleteStay(ctx context.Context, stayID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := findStay(ctx, tx, stayID); err != nil {
			return err
		}
		if err := tx.Bookings().Delete(ctx, stayID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func findStay(ctx context.Context, tx shared.Tx, stayID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Reads().BookingByID(ctx, stayID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if b.Kind() != booking.KindStay {
		return nil, errs.ErrBookingNotFound
	}
	return b, nil
}
