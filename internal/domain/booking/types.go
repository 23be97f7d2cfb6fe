package booking

// Kind discriminates the two booking variants sharing one table and one
// overlap query path.
type Kind string

const (
	KindStay        Kind = "stay"
	KindReservation Kind = "reservation"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindStay, KindReservation:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusReserved   Status = "reserved"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReserved, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking is still live, as opposed to
// closed out or cancelled.
func (s Status) IsActive() bool {
	return s == StatusReserved || s == StatusCheckedIn
}

type Source string

const (
	SourceCRM     Source = "crm"
	SourceWebsite Source = "website"
	SourceAPI     Source = "api"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceCRM, SourceWebsite, SourceAPI:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCard       PaymentMethod = "card"
	PaymentOnline     PaymentMethod = "online"
	PaymentPayAtHotel PaymentMethod = "pay_at_hotel"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentOnline, PaymentPayAtHotel:
		return true
	default:
		return false
	}
}
