package repository

import (
	"context"

	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) (uuid.UUID, error) {
	const query = `
		INSERT INTO rooms (
			id, number, category, bed_type, view, rate_cents, capacity,
			status, amenities, publicly_visible, public_description, images
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(rm.ID()),
		rm.Number(),
		rm.Category(),
		rm.BedType(),
		rm.View(),
		rm.RateCents(),
		rm.Capacity(),
		rm.Status().String(),
		rm.Amenities(),
		rm.PubliclyVisible(),
		rm.PublicDescription(),
		rm.Images(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	const query = `
		UPDATE rooms SET
			number = $2,
			category = $3,
			bed_type = $4,
			view = $5,
			rate_cents = $6,
			capacity = $7,
			status = $8,
			amenities = $9,
			publicly_visible = $10,
			public_description = $11,
			images = $12,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(rm.ID()),
		rm.Number(),
		rm.Category(),
		rm.BedType(),
		rm.View(),
		rm.RateCents(),
		rm.Capacity(),
		rm.Status().String(),
		rm.Amenities(),
		rm.PubliclyVisible(),
		rm.PublicDescription(),
		rm.Images(),
	)
	if err != nil {
		return wrapWriteErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
