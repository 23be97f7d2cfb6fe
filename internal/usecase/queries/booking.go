package queries

import (
	"context"

	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindStayByID(ctx context.Context, id uuid.UUID) (*StayView, error)
	ListStays(ctx context.Context) ([]*StayView, error)
	ListCheckedInByCategory(ctx context.Context, category string) ([]*StayView, error)
	FindReservationByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListReservations(ctx context.Context) ([]*ReservationView, error)
}

type BookingQueries interface {
	GetStay(ctx context.Context, id uuid.UUID) (*StayView, error)
	ListStays(ctx context.Context) ([]*StayView, error)
	// ListCheckedInByCategory lists in-house guests in rooms of one
	// category, most recent check-in first.
	ListCheckedInByCategory(ctx context.Context, category string) ([]*StayView, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListReservations(ctx context.Context) ([]*ReservationView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetStay(ctx context.Context, id uuid.UUID) (*StayView, error) {
	sv, err := q.store.FindStayByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return sv, nil
}

func (q *bookingQueriesImpl) ListStays(ctx context.Context) ([]*StayView, error) {
	stays, err := q.store.ListStays(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return stays, nil
}

func (q *bookingQueriesImpl) ListCheckedInByCategory(ctx context.Context, category string) ([]*StayView, error) {
	stays, err := q.store.ListCheckedInByCategory(ctx, category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return stays, nil
}

func (q *bookingQueriesImpl) GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.store.FindReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rv, nil
}

func (q *bookingQueriesImpl) ListReservations(ctx context.Context) ([]*ReservationView, error) {
	reservations, err := q.store.ListReservations(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return reservations, nil
}
