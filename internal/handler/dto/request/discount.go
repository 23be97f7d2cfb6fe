package request

import (
	"time"

	"innkeeper/internal/usecase/commands"
)

type CreateDiscountRequest struct {
	Title      string    `json:"title" binding:"required"`
	Percentage float64   `json:"percentage" binding:"required,gt=0,lte=100"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
}

func (r *CreateDiscountRequest) ToParams() commands.CreateDiscountParams {
	return commands.CreateDiscountParams{
		Title:      r.Title,
		Percentage: r.Percentage,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}
}
