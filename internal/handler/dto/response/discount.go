package response

import (
	"time"

	"innkeeper/internal/domain/discount"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
)

type DiscountResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Percentage float64   `json:"percentage"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromDiscount(d *discount.Discount) *DiscountResponse {
	return &DiscountResponse{
		ID:         d.ID(),
		Title:      d.Title(),
		Percentage: d.Percentage(),
		StartDate:  d.StartDate(),
		EndDate:    d.EndDate(),
		CreatedAt:  d.CreatedAt(),
	}
}

func FromDiscountView(dv *queries.DiscountView) *DiscountResponse {
	return &DiscountResponse{
		ID:         dv.ID,
		Title:      dv.Title,
		Percentage: dv.Percentage,
		StartDate:  dv.StartDate,
		EndDate:    dv.EndDate,
		CreatedAt:  dv.CreatedAt,
	}
}

func FromDiscountViews(dvs []*queries.DiscountView) []*DiscountResponse {
	out := make([]*DiscountResponse, len(dvs))
	for i, dv := range dvs {
		out[i] = FromDiscountView(dv)
	}
	return out
}
