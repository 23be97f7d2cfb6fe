package commands

import (
	"context"
	"encoding/json"
	"time"

	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

// TopicOccupancyChanged is the outbox topic consumed by the AMQP relay.
const TopicOccupancyChanged = "occupancy.changed"

const (
	OccupancyKindCheckIn  = "checkin"
	OccupancyKindCheckOut = "checkout"
)

// OccupancyChangedEvent notifies external collaborators of a room's
// booking state transition. It is appended to the outbox in the same
// transaction as the state change and delivered after commit,
// best-effort.
type OccupancyChangedEvent struct {
	RoomID    uuid.UUID `json:"room_id"`
	BookingID uuid.UUID `json:"booking_id"`
	Kind      string    `json:"kind"`
	At        time.Time `json:"at"`
}

func appendOccupancyEvent(ctx context.Context, outbox shared.OutboxRepository, roomID, bookingID uuid.UUID, kind string, at time.Time) error {
	payload, err := json.Marshal(OccupancyChangedEvent{
		RoomID:    roomID,
		BookingID: bookingID,
		Kind:      kind,
		At:        at,
	})
	if err != nil {
		return err
	}
	return outbox.Append(ctx, TopicOccupancyChanged, payload, at)
}
