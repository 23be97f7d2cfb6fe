package repository

import (
	"context"

	"innkeeper/internal/domain/booking"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// bookingColumns is the canonical select list shared by every booking
// read in this package. Order must match scanBooking.
const bookingColumns = `
	id, kind, room_id,
	guest_name, guest_address, guest_phone, guest_identity_doc, guest_email,
	start_at, end_at, status, payment_method,
	stay_nights, discount_applied, discount_title, total_rent_cents,
	source, special_request, promo_code, stay_id,
	created_by, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var id, roomID, stayID, createdBy pgtype.UUID
	var kind, status, payment, source string
	var guestName, guestAddress, guestPhone, guestIdentity, guestEmail string
	var specialRequest, promoCode string
	var startAt, endAt, createdAt, updatedAt pgtype.Timestamptz
	var discountTitle pgtype.Text
	var stayNights int
	var discountApplied bool
	var totalRentCents int64

	err := row.Scan(
		&id, &kind, &roomID,
		&guestName, &guestAddress, &guestPhone, &guestIdentity, &guestEmail,
		&startAt, &endAt, &status, &payment,
		&stayNights, &discountApplied, &discountTitle, &totalRentCents,
		&source, &specialRequest, &promoCode, &stayID,
		&createdBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		uuid.UUID(id.Bytes),
		booking.Kind(kind),
		uuid.UUID(roomID.Bytes),
		booking.ReconstructGuestInfo(guestName, guestAddress, guestPhone, guestIdentity, guestEmail),
		booking.ReconstructInterval(startAt.Time, endAt.Time),
		booking.Status(status),
		booking.PaymentMethod(payment),
		stayNights,
		discountApplied,
		pgconv.StringPtrFromPgtype(discountTitle),
		totalRentCents,
		booking.Source(source),
		specialRequest, promoCode,
		pgconv.UUIDPtrFromPgtype(stayID),
		uuid.UUID(createdBy.Bytes),
		createdAt.Time, updatedAt.Time,
	), nil
}

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, kind, room_id,
			guest_name, guest_address, guest_phone, guest_identity_doc, guest_email,
			start_at, end_at, status, payment_method,
			stay_nights, discount_applied, discount_title, total_rent_cents,
			source, special_request, promo_code, stay_id,
			created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id`

	guest := b.Guest()
	iv := b.Interval()

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		b.Kind().String(),
		pgconv.UUIDToPgtype(b.RoomID()),
		guest.FullName(),
		guest.Address(),
		guest.Phone(),
		guest.IdentityDoc(),
		guest.Email(),
		pgconv.TimeToPgtype(iv.Start()),
		pgconv.TimeToPgtype(iv.End()),
		b.Status().String(),
		b.Payment().String(),
		b.StayNights(),
		b.DiscountApplied(),
		pgconv.StringPtrToPgtype(b.DiscountTitle()),
		b.TotalRentCents(),
		b.SourceChannel().String(),
		b.SpecialRequest(),
		b.PromoCode(),
		pgconv.UUIDPtrToPgtype(b.StayID()),
		pgconv.UUIDToPgtype(b.CreatedBy()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE bookings SET
			start_at = $2,
			end_at = $3,
			status = $4,
			stay_nights = $5,
			stay_id = $6,
			updated_at = now()
		WHERE id = $1`

	iv := b.Interval()
	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.TimeToPgtype(iv.Start()),
		pgconv.TimeToPgtype(iv.End()),
		b.Status().String(),
		b.StayNights(),
		pgconv.UUIDPtrToPgtype(b.StayID()),
	)
	if err != nil {
		return wrapWriteErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
