package response

import (
	"time"

	"innkeeper/internal/domain/room"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
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

func FromRoom(r *room.Room) *RoomResponse {
	return &RoomResponse{
		ID:                r.ID(),
		Number:            r.Number(),
		Category:          r.Category(),
		BedType:           r.BedType(),
		View:              r.View(),
		RateCents:         r.RateCents(),
		Capacity:          r.Capacity(),
		Status:            r.Status().String(),
		Amenities:         r.Amenities(),
		PubliclyVisible:   r.PubliclyVisible(),
		PublicDescription: r.PublicDescription(),
		Images:            r.Images(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	}
}

func FromRoomView(rv *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:                rv.ID,
		Number:            rv.Number,
		Category:          rv.Category,
		BedType:           rv.BedType,
		View:              rv.View,
		RateCents:         rv.RateCents,
		Capacity:          rv.Capacity,
		Status:            rv.Status,
		Amenities:         rv.Amenities,
		PubliclyVisible:   rv.PubliclyVisible,
		PublicDescription: rv.PublicDescription,
		Images:            rv.Images,
		CreatedAt:         rv.CreatedAt,
		UpdatedAt:         rv.UpdatedAt,
	}
}

func FromRoomViews(rvs []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(rvs))
	for i, rv := range rvs {
		out[i] = FromRoomView(rv)
	}
	return out
}
