package queries

import (
	"context"
	"time"

	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/clock"
	"innkeeper/internal/pkg/errs"
)

type DiscountReadStore interface {
	// FindCurrent returns the discount whose [startDate, endDate] window
	// contains asOf, inclusive both ends, or a NotFound kind.
	FindCurrent(ctx context.Context, asOf time.Time) (*DiscountView, error)
	ListDiscounts(ctx context.Context) ([]*DiscountView, error)
}

type DiscountQueries interface {
	Current(ctx context.Context) (*DiscountView, error)
	List(ctx context.Context) ([]*DiscountView, error)
}

type discountQueriesImpl struct {
	store DiscountReadStore
	clock clock.Clock
}

func NewDiscountQueries(store DiscountReadStore, clk clock.Clock) DiscountQueries {
	return &discountQueriesImpl{store: store, clock: clk}
}

func (q *discountQueriesImpl) Current(ctx context.Context) (*DiscountView, error) {
	dv, err := q.store.FindCurrent(ctx, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrNoValidDiscount
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return dv, nil
}

func (q *discountQueriesImpl) List(ctx context.Context) ([]*DiscountView, error) {
	discounts, err := q.store.ListDiscounts(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return discounts, nil
}
