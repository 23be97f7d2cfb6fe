package errs

import "errors"

// Sentinel errors shared across the usecase layers. Handlers map these to
// HTTP statuses; nothing below the handler layer knows about transport.
var (
	// Room errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrRoomNotAvailable    = errors.New("room not available")
	ErrRoomHasBookings     = errors.New("room has active bookings")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingConflict   = errors.New("booking conflict")
	ErrAlreadyCheckedOut = errors.New("already checked out")
	ErrAlreadyCancelled  = errors.New("reservation already cancelled")
	ErrInvalidInterval   = errors.New("invalid interval")

	// Discount errors
	ErrDiscountNotFound = errors.New("discount not found")
	ErrNoValidDiscount  = errors.New("no valid discount available today")

	// Validation / operation errors
	ErrDomainValidation        = errors.New("domain validation error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
