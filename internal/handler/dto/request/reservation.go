package request

import (
	"time"

	"innkeeper/internal/domain/booking"
	"innkeeper/internal/usecase/commands"
)

type ReserveRequest struct {
	RoomNumber     int       `json:"room_number" binding:"required,gt=0"`
	Start          time.Time `json:"start" binding:"required"`
	End            time.Time `json:"end" binding:"required"`
	FullName       string    `json:"full_name" binding:"required"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone" binding:"required"`
	IdentityDoc    string    `json:"identity_doc" binding:"required"`
	Email          string    `json:"email" binding:"omitempty,email"`
	Source         string    `json:"source" binding:"required,oneof=crm website api"`
	Payment        string    `json:"payment" binding:"required,oneof=cash card online pay_at_hotel"`
	SpecialRequest string    `json:"special_request"`
	PromoCode      string    `json:"promo_code"`
}

func (r *ReserveRequest) ToParams() commands.ReserveParams {
	return commands.ReserveParams{
		RoomNumber:     r.RoomNumber,
		Start:          r.Start,
		End:            r.End,
		FullName:       r.FullName,
		Address:        r.Address,
		Phone:          r.Phone,
		IdentityDoc:    r.IdentityDoc,
		Email:          r.Email,
		Source:         booking.Source(r.Source),
		Payment:        booking.PaymentMethod(r.Payment),
		SpecialRequest: r.SpecialRequest,
		PromoCode:      r.PromoCode,
	}
}
