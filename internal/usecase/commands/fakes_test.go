//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"innkeeper/internal/domain/booking"
	"innkeeper/internal/domain/discount"
	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

type outboxRecord struct {
	topic   string
	payload []byte
	runAt   time.Time
}

// memStore is an in-memory unit of work. Within serializes callers on a
// single mutex, and booking inserts enforce the same room-claim overlap
// rule the storage exclusion constraint does, so conflict paths behave
// as they would against the real database.
type memStore struct {
	mu        sync.Mutex
	rooms     map[uuid.UUID]*room.Room
	bookings  map[uuid.UUID]*booking.Booking
	discounts []*discount.Discount
	events    []outboxRecord
}

func newMemStore() *memStore {
	return &memStore{
		rooms:    make(map[uuid.UUID]*room.Room),
		bookings: make(map[uuid.UUID]*booking.Booking),
	}
}

func (s *memStore) addRoom(r *room.Room)          { s.rooms[r.ID()] = r }
func (s *memStore) addBooking(b *booking.Booking) { s.bookings[b.ID()] = b }

func (s *memStore) addDiscount(d *discount.Discount) {
	s.discounts = append(s.discounts, d)
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, memTx{s})
}

func (s *memStore) Reads() shared.Reads {
	return memReads{s}
}

type memTx struct{ s *memStore }

func (t memTx) Rooms() shared.RoomRepository         { return memRoomRepo{t.s} }
func (t memTx) Bookings() shared.BookingRepository   { return memBookingRepo{t.s} }
func (t memTx) Discounts() shared.DiscountRepository { return memDiscountRepo{t.s} }
func (t memTx) Outbox() shared.OutboxRepository      { return memOutbox{t.s} }
func (t memTx) Reads() shared.Reads                  { return memReads{t.s} }

type memRoomRepo struct{ s *memStore }

func (r memRoomRepo) Create(_ context.Context, rm *room.Room) (uuid.UUID, error) {
	for _, existing := range r.s.rooms {
		if existing.Number() == rm.Number() {
			return uuid.Nil, infra.WrapRepoErr("rooms_number_key", errors.New("duplicate key"), infra.KindDuplicateKey)
		}
	}
	r.s.rooms[rm.ID()] = rm
	return rm.ID(), nil
}

func (r memRoomRepo) Update(_ context.Context, rm *room.Room) error {
	if _, ok := r.s.rooms[rm.ID()]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	r.s.rooms[rm.ID()] = rm
	return nil
}

func (r memRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.rooms[id]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	delete(r.s.rooms, id)
	return nil
}

type memBookingRepo struct{ s *memStore }

func (r memBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	if b.ClaimsRoom() {
		for _, existing := range r.s.bookings {
			if existing.RoomID() == b.RoomID() && existing.ClaimsRoom() && existing.Interval().Overlaps(b.Interval()) {
				return uuid.Nil, infra.WrapRepoErr("bookings_no_claim_overlap", errors.New("exclusion violation"), infra.KindConflict)
			}
		}
	}
	r.s.bookings[b.ID()] = b
	return b.ID(), nil
}

func (r memBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.bookings[b.ID()]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	r.s.bookings[b.ID()] = b
	return nil
}

func (r memBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.bookings[id]; !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	delete(r.s.bookings, id)
	return nil
}

type memDiscountRepo struct{ s *memStore }

func (r memDiscountRepo) Create(_ context.Context, d *discount.Discount) (uuid.UUID, error) {
	r.s.discounts = append(r.s.discounts, d)
	return d.ID(), nil
}

func (r memDiscountRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, d := range r.s.discounts {
		if d.ID() == id {
			r.s.discounts = append(r.s.discounts[:i], r.s.discounts[i+1:]...)
			return nil
		}
	}
	return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
}

type memOutbox struct{ s *memStore }

func (o memOutbox) Append(_ context.Context, topic string, payload []byte, runAt time.Time) error {
	o.s.events = append(o.s.events, outboxRecord{topic: topic, payload: payload, runAt: runAt})
	return nil
}

type memReads struct{ s *memStore }

func (r memReads) RoomByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.s.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return rm, nil
}

func (r memReads) RoomByNumber(_ context.Context, number int) (*room.Room, error) {
	for _, rm := range r.s.rooms {
		if rm.Number() == number {
			return rm, nil
		}
	}
	return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
}

func (r memReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return b, nil
}

func (r memReads) HasActiveOverlap(_ context.Context, roomID uuid.UUID, iv booking.Interval) (bool, error) {
	for _, b := range r.s.bookings {
		if b.RoomID() == roomID && b.ClaimsRoom() && b.Interval().Overlaps(iv) {
			return true, nil
		}
	}
	return false, nil
}

func (r memReads) HasActiveBooking(_ context.Context, roomID uuid.UUID) (bool, error) {
	for _, b := range r.s.bookings {
		if b.RoomID() == roomID && b.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r memReads) CurrentDiscount(_ context.Context, asOf time.Time) (*discount.Discount, error) {
	// Newest matching discount wins, mirroring the created_at DESC query.
	for i := len(r.s.discounts) - 1; i >= 0; i-- {
		if r.s.discounts[i].ContainsDate(asOf) {
			return r.s.discounts[i], nil
		}
	}
	return nil, nil
}

// fakeImageStore records uploads and deletions. Delete can be made to
// fail to exercise the callers' tolerance for image-store outages.
type fakeImageStore struct {
	uploaded  []string
	deleted   []string
	deleteErr error
}

func (f *fakeImageStore) Upload(_ context.Context, _ []byte, name string) (string, error) {
	url := "https://images.test/" + name
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeImageStore) Delete(_ context.Context, url string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, url)
	return nil
}
