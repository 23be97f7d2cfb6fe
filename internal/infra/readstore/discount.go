package readstore

import (
	"context"
	"time"

	"innkeeper/internal/infra"
	"innkeeper/internal/infra/db"
	"innkeeper/internal/pkg/pgconv"
	"innkeeper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const discountViewColumns = `id, title, percentage, start_date, end_date, created_at`

type DiscountReadStore struct {
	db db.DBTX
}

func NewDiscountReadStore(dbtx db.DBTX) *DiscountReadStore {
	return &DiscountReadStore{db: dbtx}
}

func scanDiscountView(row rowScanner) (*queries.DiscountView, error) {
	var dv queries.DiscountView
	var id pgtype.UUID
	var startDate, endDate, createdAt pgtype.Timestamptz

	err := row.Scan(&id, &dv.Title, &dv.Percentage, &startDate, &endDate, &createdAt)
	if err != nil {
		return nil, err
	}
	dv.ID = uuid.UUID(id.Bytes)
	dv.StartDate = startDate.Time
	dv.EndDate = endDate.Time
	dv.CreatedAt = createdAt.Time
	return &dv, nil
}

// FindCurrent matches the closed discount window inclusively on both
// ends, newest first when windows overlap.
func (s *DiscountReadStore) FindCurrent(ctx context.Context, asOf time.Time) (*queries.DiscountView, error) {
	query := `
		SELECT ` + discountViewColumns + `
		FROM discounts
		WHERE start_date <= $1 AND end_date >= $1
		ORDER BY created_at DESC
		LIMIT 1`

	dv, err := scanDiscountView(s.db.QueryRow(ctx, query, pgconv.TimeToPgtype(asOf)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no current discount", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find current discount", err)
	}
	return dv, nil
}

func (s *DiscountReadStore) ListDiscounts(ctx context.Context) ([]*queries.DiscountView, error) {
	query := `SELECT ` + discountViewColumns + ` FROM discounts ORDER BY start_date ASC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discounts", err)
	}
	defer rows.Close()

	var views []*queries.DiscountView
	for rows.Next() {
		dv, err := scanDiscountView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount", err)
		}
		views = append(views, dv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate discounts", err)
	}
	return views, nil
}
