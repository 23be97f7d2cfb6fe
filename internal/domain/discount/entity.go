package discount

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("discount title cannot be empty")
	ErrInvalidPercentage = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidWindow     = errors.New("discount end date must not precede start date")
)

// Discount is a percentage rebate valid for a closed date window
// [startDate, endDate], inclusive on both ends. Only the discount whose
// window contains "today" is ever applied.
type Discount struct {
	id         uuid.UUID
	title      string
	percentage float64
	startDate  time.Time
	endDate    time.Time
	createdAt  time.Time
}

func NewDiscount(title string, percentage float64, startDate, endDate time.Time) (*Discount, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if percentage <= 0 || percentage > 100 {
		return nil, ErrInvalidPercentage
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidWindow
	}

	return &Discount{
		id:         uuid.New(),
		title:      title,
		percentage: percentage,
		startDate:  startDate,
		endDate:    endDate,
	}, nil
}

func Reconstruct(id uuid.UUID, title string, percentage float64, startDate, endDate, createdAt time.Time) *Discount {
	return &Discount{
		id:         id,
		title:      title,
		percentage: percentage,
		startDate:  startDate,
		endDate:    endDate,
		createdAt:  createdAt,
	}
}

func (d *Discount) ContainsDate(t time.Time) bool {
	return !t.Before(d.startDate) && !t.After(d.endDate)
}

// Apply returns baseRent * (1 - percentage/100). Rounding policy is left
// to the currency presentation layer.
func (d *Discount) Apply(baseRentCents int64) int64 {
	return int64(float64(baseRentCents) * (100.0 - d.percentage) / 100.0)
}

func (d *Discount) ID() uuid.UUID        { return d.id }
func (d *Discount) Title() string        { return d.title }
func (d *Discount) Percentage() float64  { return d.percentage }
func (d *Discount) StartDate() time.Time { return d.startDate }
func (d *Discount) EndDate() time.Time   { return d.endDate }
func (d *Discount) CreatedAt() time.Time { return d.createdAt }
