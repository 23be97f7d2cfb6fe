package response

import (
	"time"

	"innkeeper/internal/domain/booking"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type StayResponse struct {
	ID              uuid.UUID  `json:"id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomNumber      int        `json:"room_number,omitempty"`
	GuestName       string     `json:"guest_name"`
	GuestPhone      string     `json:"guest_phone"`
	CheckInAt       time.Time  `json:"check_in_at"`
	CheckOutAt      *time.Time `json:"check_out_at,omitempty"`
	Status          string     `json:"status"`
	StayNights      int        `json:"stay_nights"`
	DiscountApplied bool       `json:"discount_applied"`
	DiscountTitle   *string    `json:"discount_title,omitempty"`
	TotalRentCents  int64      `json:"total_rent_cents"`
	PaymentMethod   string     `json:"payment_method"`
	CreatedBy       uuid.UUID  `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
}

// FromStay shapes a freshly written stay entity. The end bound is only
// exposed once the stay is closed.
func FromStay(b *booking.Booking) *StayResponse {
	var checkOutAt *time.Time
	if b.Status() == booking.StatusCheckedOut {
		t := b.Interval().End()
		checkOutAt = &t
	}
	return &StayResponse{
		ID:              b.ID(),
		RoomID:          b.RoomID(),
		GuestName:       b.Guest().FullName(),
		GuestPhone:      b.Guest().Phone(),
		CheckInAt:       b.Interval().Start(),
		CheckOutAt:      checkOutAt,
		Status:          b.Status().String(),
		StayNights:      b.StayNights(),
		DiscountApplied: b.DiscountApplied(),
		DiscountTitle:   b.DiscountTitle(),
		TotalRentCents:  b.TotalRentCents(),
		PaymentMethod:   b.Payment().String(),
		CreatedBy:       b.CreatedBy(),
		CreatedAt:       b.CreatedAt(),
	}
}

func FromStayView(sv *queries.StayView) *StayResponse {
	return &StayResponse{
		ID:              sv.ID,
		RoomID:          sv.RoomID,
		RoomNumber:      sv.RoomNumber,
		GuestName:       sv.GuestName,
		GuestPhone:      sv.GuestPhone,
		CheckInAt:       sv.CheckInAt,
		CheckOutAt:      sv.CheckOutAt,
		Status:          sv.Status,
		StayNights:      sv.StayNights,
		DiscountApplied: sv.DiscountApplied,
		DiscountTitle:   sv.DiscountTitle,
		TotalRentCents:  sv.TotalRentCents,
		PaymentMethod:   sv.PaymentMethod,
		CreatedBy:       sv.CreatedBy,
		CreatedAt:       sv.CreatedAt,
	}
}

func FromStayViews(svs []*queries.StayView) []*StayResponse {
	out := make([]*StayResponse, len(svs))
	for i, sv := range svs {
		out[i] = FromStayView(sv)
	}
	return out
}

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	RoomID         uuid.UUID  `json:"room_id"`
	RoomNumber     int        `json:"room_number,omitempty"`
	GuestName      string     `json:"guest_name"`
	GuestPhone     string     `json:"guest_phone"`
	Start          time.Time  `json:"start"`
	End            time.Time  `json:"end"`
	Status         string     `json:"status"`
	Source         string     `json:"source"`
	SpecialRequest string     `json:"special_request,omitempty"`
	PromoCode      string     `json:"promo_code,omitempty"`
	StayID         *uuid.UUID `json:"stay_id,omitempty"`
	CreatedBy      uuid.UUID  `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromReservation(b *booking.Booking) *ReservationResponse {
	return &ReservationResponse{
		ID:             b.ID(),
		RoomID:         b.RoomID(),
		GuestName:      b.Guest().FullName(),
		GuestPhone:     b.Guest().Phone(),
		Start:          b.Interval().Start(),
		End:            b.Interval().End(),
		Status:         b.Status().String(),
		Source:         b.SourceChannel().String(),
		SpecialRequest: b.SpecialRequest(),
		PromoCode:      b.PromoCode(),
		StayID:         b.StayID(),
		CreatedBy:      b.CreatedBy(),
		CreatedAt:      b.CreatedAt(),
	}
}

func FromReservationView(rv *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:             rv.ID,
		RoomID:         rv.RoomID,
		RoomNumber:     rv.RoomNumber,
		GuestName:      rv.GuestName,
		GuestPhone:     rv.GuestPhone,
		Start:          rv.Start,
		End:            rv.End,
		Status:         rv.Status,
		Source:         rv.Source,
		SpecialRequest: rv.SpecialRequest,
		PromoCode:      rv.PromoCode,
		StayID:         rv.StayID,
		CreatedBy:      rv.CreatedBy,
		CreatedAt:      rv.CreatedAt,
	}
}

func FromReservationViews(rvs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rvs))
	for i, rv := range rvs {
		out[i] = FromReservationView(rv)
	}
	return out
}

type TimelineEntryResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	Kind      string    `json:"kind"`
	GuestName string    `json:"guest_name"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
}

func FromTimeline(entries []*queries.TimelineEntry) []*TimelineEntryResponse {
	out := make([]*TimelineEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = &TimelineEntryResponse{
			BookingID: e.BookingID,
			Kind:      e.Kind,
			GuestName: e.GuestName,
			Start:     e.Start,
			End:       e.End,
			Status:    e.Status,
		}
	}
	return out
}
