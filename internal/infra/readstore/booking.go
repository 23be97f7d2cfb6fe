package readstore

import (
	"context"

	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// stayViewColumns exposes end_at as checkout time only once the stay is
// closed; the open-ended sentinel never leaks into a view.
const stayViewColumns = `
	b.id, b.room_id, r.number, b.guest_name, b.guest_phone,
	b.start_at,
	CASE WHEN b.status = 'checked_out' THEN b.end_at END AS check_out_at,
	b.status, b.stay_nights, b.discount_applied, b.discount_title,
	b.total_rent_cents, b.payment_method, b.created_by, b.created_at`

const reservationViewColumns = `
	b.id, b.room_id, r.number, b.guest_name, b.guest_phone,
	b.start_at, b.end_at, b.status, b.source, b.special_request,
	b.promo_code, b.stay_id, b.created_by, b.created_at`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func scanStayView(row rowScanner) (*queries.StayView, error) {
	var sv queries.StayView
	var id, roomID, createdBy pgtype.UUID
	var checkInAt, checkOutAt, createdAt pgtype.Timestamptz
	var discountTitle pgtype.Text

	err := row.Scan(
		&id, &roomID, &sv.RoomNumber, &sv.GuestName, &sv.GuestPhone,
		&checkInAt, &checkOutAt,
		&sv.Status, &sv.StayNights, &sv.DiscountApplied, &discountTitle,
		&sv.TotalRentCents, &sv.PaymentMethod, &createdBy, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	sv.ID = uuid.UUID(id.Bytes)
	sv.RoomID = uuid.UUID(roomID.Bytes)
	sv.CheckInAt = checkInAt.Time
	sv.CheckOutAt = pgconv.TimePtrFromPgtype(checkOutAt)
	sv.DiscountTitle = pgconv.StringPtrFromPgtype(discountTitle)
	sv.CreatedBy = uuid.UUID(createdBy.Bytes)
	sv.CreatedAt = createdAt.Time
	return &sv, nil
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var rv queries.ReservationView
	var id, roomID, stayID, createdBy pgtype.UUID
	var start, end, createdAt pgtype.Timestamptz

	err := row.Scan(
		&id, &roomID, &rv.RoomNumber, &rv.GuestName, &rv.GuestPhone,
		&start, &end, &rv.Status, &rv.Source, &rv.SpecialRequest,
		&rv.PromoCode, &stayID, &createdBy, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	rv.ID = uuid.UUID(id.Bytes)
	rv.RoomID = uuid.UUID(roomID.Bytes)
	rv.Start = start.Time
	rv.End = end.Time
	rv.StayID = pgconv.UUIDPtrFromPgtype(stayID)
	rv.CreatedBy = uuid.UUID(createdBy.Bytes)
	rv.CreatedAt = createdAt.Time
	return &rv, nil
}

func (s *BookingReadStore) FindStayByID(ctx context.Context, id uuid.UUID) (*queries.StayView, error) {
	query := `
		SELECT ` + stayViewColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1 AND b.kind = 'stay'`

	sv, err := scanStayView(s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stay not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find stay", err)
	}
	return sv, nil
}

func (s *BookingReadStore) ListStays(ctx context.Context) ([]*queries.StayView, error) {
	query := `
		SELECT ` + stayViewColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.kind = 'stay'
		ORDER BY b.start_at DESC`

	return s.collectStays(ctx, query)
}

func (s *BookingReadStore) ListCheckedInByCategory(ctx context.Context, category string) ([]*queries.StayView, error) {
	query := `
		SELECT ` + stayViewColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.kind = 'stay' AND b.status = 'checked_in' AND r.category = $1
		ORDER BY b.start_at DESC`

	return s.collectStays(ctx, query, category)
}

func (s *BookingReadStore) collectStays(ctx context.Context, query string, args ...any) ([]*queries.StayView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stays", err)
	}
	defer rows.Close()

	var views []*queries.StayView
	for rows.Next() {
		sv, err := scanStayView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan stay", err)
		}
		views = append(views, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stays", err)
	}
	return views, nil
}

func (s *BookingReadStore) FindReservationByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `
		SELECT ` + reservationViewColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.id = $1 AND b.kind = 'reservation'`

	rv, err := scanReservationView(s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return rv, nil
}

func (s *BookingReadStore) ListReservations(ctx context.Context) ([]*queries.ReservationView, error) {
	query := `
		SELECT ` + reservationViewColumns + `
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.kind = 'reservation'
		ORDER BY b.start_at ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		rv, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}
