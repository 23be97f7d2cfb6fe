package readstore

import (
	"context"

	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomViewColumns = `
	id, number, category, bed_type, view, rate_cents, capacity,
	status, amenities, publicly_visible, public_description, images,
	created_at, updated_at`

type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomView(row rowScanner) (*queries.RoomView, error) {
	var rv queries.RoomView
	var id pgtype.UUID
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(
		&id, &rv.Number, &rv.Category, &rv.BedType, &rv.View,
		&rv.RateCents, &rv.Capacity, &rv.Status, &rv.Amenities,
		&rv.PubliclyVisible, &rv.PublicDescription, &rv.Images,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	rv.ID = uuid.UUID(id.Bytes)
	rv.CreatedAt = createdAt.Time
	rv.UpdatedAt = updatedAt.Time
	return &rv, nil
}

func (s *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	query := `SELECT ` + roomViewColumns + ` FROM rooms WHERE id = $1`

	rv, err := scanRoomView(s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rv, nil
}

func (s *RoomReadStore) FindByNumber(ctx context.Context, number int) (*queries.RoomView, error) {
	query := `SELECT ` + roomViewColumns + ` FROM rooms WHERE number = $1`

	rv, err := scanRoomView(s.db.QueryRow(ctx, query, number))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return rv, nil
}

func (s *RoomReadStore) ListRooms(ctx context.Context) ([]*queries.RoomView, error) {
	query := `SELECT ` + roomViewColumns + ` FROM rooms ORDER BY number ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		rv, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		views = append(views, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return views, nil
}
