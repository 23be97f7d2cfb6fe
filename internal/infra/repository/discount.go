package repository

import (
	"context"

	"innkeeper/internal/domain/discount"
	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DiscountRepository struct {
	db db.DBTX
}

func NewDiscountRepository(dbtx db.DBTX) *DiscountRepository {
	return &DiscountRepository{db: dbtx}
}

func (r *DiscountRepository) Create(ctx context.Context, d *discount.Discount) (uuid.UUID, error) {
	const query = `
		INSERT INTO discounts (id, title, percentage, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(d.ID()),
		d.Title(),
		d.Percentage(),
		pgconv.TimeToPgtype(d.StartDate()),
		pgconv.TimeToPgtype(d.EndDate()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create discount", err)
	}
	return id, nil
}

func (r *DiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM discounts WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}
