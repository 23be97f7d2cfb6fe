package httperr

import (
	"errors"
	"net/http"

	"innkeeper/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	sentinel error
	status   int
	message  string
}

// Ordered sentinel-to-status table. Not-found beats conflict beats
// validation; anything unmatched is an internal error.
var mappings = []mapping{
	{errs.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrDiscountNotFound, http.StatusNotFound, "Discount not found"},
	{errs.ErrNoValidDiscount, http.StatusNotFound, "No valid discount available today"},
	{errs.ErrDuplicateRoomNumber, http.StatusConflict, "Room number already exists"},
	{errs.ErrRoomNotAvailable, http.StatusConflict, "Room is not available"},
	{errs.ErrRoomHasBookings, http.StatusConflict, "Room has active bookings"},
	{errs.ErrBookingConflict, http.StatusConflict, "Room is already booked for this period"},
	{errs.ErrAlreadyCheckedOut, http.StatusConflict, "Booking is already checked out"},
	{errs.ErrAlreadyCancelled, http.StatusConflict, "Reservation is already cancelled"},
	{errs.ErrInvalidInterval, http.StatusBadRequest, "Interval end must be after start"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Validation failed"},
}

// AbortWithDomainError translates usecase sentinels into HTTP responses.
func AbortWithDomainError(c *gin.Context, err error) {
	for _, m := range mappings {
		if errors.Is(err, m.sentinel) {
			AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
