package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRoomNumber   = errors.New("room number must be positive")
	ErrEmptyCategory       = errors.New("room category cannot be empty")
	ErrNegativeRate        = errors.New("nightly rate cannot be negative")
	ErrInvalidCapacity     = errors.New("capacity must be at least one adult")
	ErrInvalidStatus       = errors.New("invalid room status")
	ErrIllegalTransition   = errors.New("illegal room status transition")
	ErrUnderMaintenance    = errors.New("room is under maintenance")
	ErrNotUnderMaintenance = errors.New("room is not under maintenance")
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved, StatusMaintenance:
		return true
	default:
		return false
	}
}

// Room is the canonical registry entry. Status is denormalized occupancy
// state owned by the lifecycle commands, which update it in the same
// transaction as the booking write; availability queries never trust it
// for interval checks.
type Room struct {
	id                uuid.UUID
	number            int
	category          string
	bedType           string
	view              string
	rateCents         int64
	capacity          int
	status            Status
	amenities         []string
	publiclyVisible   bool
	publicDescription string
	images            []string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRoom(
	number int,
	category, bedType, view string,
	rateCents int64,
	capacity int,
	amenities []string,
	publiclyVisible bool,
	publicDescription string,
) (*Room, error) {
	category = strings.TrimSpace(category)

	if number <= 0 {
		return nil, ErrInvalidRoomNumber
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if rateCents < 0 {
		return nil, ErrNegativeRate
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:                uuid.New(),
		number:            number,
		category:          category,
		bedType:           strings.TrimSpace(bedType),
		view:              strings.TrimSpace(view),
		rateCents:         rateCents,
		capacity:          capacity,
		status:            StatusAvailable,
		amenities:         amenities,
		publiclyVisible:   publiclyVisible,
		publicDescription: strings.TrimSpace(publicDescription),
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	number int,
	category, bedType, view string,
	rateCents int64,
	capacity int,
	status Status,
	amenities []string,
	publiclyVisible bool,
	publicDescription string,
	images []string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:                id,
		number:            number,
		category:          category,
		bedType:           bedType,
		view:              view,
		rateCents:         rateCents,
		capacity:          capacity,
		status:            status,
		amenities:         amenities,
		publiclyVisible:   publiclyVisible,
		publicDescription: publicDescription,
		images:            images,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// MarkOccupied is the edge taken at check-in: from available for walk-ins,
// from reserved when a reservation materializes into a stay.
func (r *Room) MarkOccupied() error {
	if r.status != StatusAvailable && r.status != StatusReserved {
		return ErrIllegalTransition
	}
	r.status = StatusOccupied
	return nil
}

// MarkReserved is the available -> reserved edge, taken only when a
// reservation's interval already contains now.
func (r *Room) MarkReserved() error {
	if r.status != StatusAvailable {
		return ErrIllegalTransition
	}
	r.status = StatusReserved
	return nil
}

// Release returns the room to available after checkout or cancellation.
// Maintenance is never cleared implicitly.
func (r *Room) Release() error {
	if r.status == StatusMaintenance {
		return ErrUnderMaintenance
	}
	r.status = StatusAvailable
	return nil
}

// EnterMaintenance is the administrative override. The caller must have
// verified that no active booking overlaps now.
func (r *Room) EnterMaintenance() error {
	if r.status != StatusAvailable {
		return ErrIllegalTransition
	}
	r.status = StatusMaintenance
	return nil
}

func (r *Room) LeaveMaintenance() error {
	if r.status != StatusMaintenance {
		return ErrNotUnderMaintenance
	}
	r.status = StatusAvailable
	return nil
}

func (r *Room) IsAvailable() bool {
	return r.status == StatusAvailable
}

func (r *Room) SetImages(images []string) {
	r.images = images
}

func (r *Room) ID() uuid.UUID             { return r.id }
func (r *Room) Number() int               { return r.number }
func (r *Room) Category() string          { return r.category }
func (r *Room) BedType() string           { return r.bedType }
func (r *Room) View() string              { return r.view }
func (r *Room) RateCents() int64          { return r.rateCents }
func (r *Room) Capacity() int             { return r.capacity }
func (r *Room) Status() Status            { return r.status }
func (r *Room) Amenities() []string       { return r.amenities }
func (r *Room) PubliclyVisible() bool     { return r.publiclyVisible }
func (r *Room) PublicDescription() string { return r.publicDescription }
func (r *Room) Images() []string          { return r.images }
func (r *Room) CreatedAt() time.Time      { return r.createdAt }
func (r *Room) UpdatedAt() time.Time      { return r.updatedAt }
