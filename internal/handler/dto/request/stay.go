package request

import (
	"innkeeper/internal/domain/booking"
	"innkeeper/internal/usecase/commands"
)

type CheckInRequest struct {
	RoomNumber    int    `json:"room_number" binding:"required,gt=0"`
	FullName      string `json:"full_name" binding:"required"`
	Address       string `json:"address"`
	Phone         string `json:"phone" binding:"required"`
	IdentityDoc   string `json:"identity_doc" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Nights        int    `json:"nights" binding:"required,gte=1"`
	ApplyDiscount bool   `json:"apply_discount"`
	Payment       string `json:"payment" binding:"required,oneof=cash card online pay_at_hotel"`
}

func (r *CheckInRequest) ToParams() commands.CheckInParams {
	return commands.CheckInParams{
		RoomNumber:    r.RoomNumber,
		FullName:      r.FullName,
		Address:       r.Address,
		Phone:         r.Phone,
		IdentityDoc:   r.IdentityDoc,
		Email:         r.Email,
		Nights:        r.Nights,
		ApplyDiscount: r.ApplyDiscount,
		Payment:       booking.PaymentMethod(r.Payment),
	}
}
