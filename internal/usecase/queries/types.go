package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type RoomView struct {
	ID                uuid.UUID `json:"id"`
	Number            int       `json:"number"`
	Category          string    `json:"category"`
	BedType           string    `json:"bed_type"`
	View              string    `json:"view"`
	RateCents         int64     `json:"rate_cents"`
	Capacity          int       `json:"capacity"`
	Status            string    `json:"status"`
	Amenities         []string  `json:"amenities"`
	PubliclyVisible   bool      `json:"publicly_visible"`
	PublicDescription string    `json:"public_description"`
	Images            []string  `json:"images"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type StayView struct {
	ID              uuid.UUID  `json:"id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomNumber      int        `json:"room_number"`
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

type ReservationView struct {
	ID             uuid.UUID  `json:"id"`
	RoomID         uuid.UUID  `json:"room_id"`
	RoomNumber     int        `json:"room_number"`
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

// TimelineEntry is one booked span in a room's merged stay+reservation
// timeline.
type TimelineEntry struct {
	BookingID uuid.UUID `json:"booking_id"`
	Kind      string    `json:"kind"`
	GuestName string    `json:"guest_name"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
}

type DiscountView struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Percentage float64   `json:"percentage"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}
