package commands

import (
	"context"
	"time"

	"innkeeper/internal/domain/discount"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateDiscountParams struct {
	Title      string
	Percentage float64
	StartDate  time.Time
	EndDate    time.Time
}

type DiscountCommands interface {
	CreateDiscount(ctx context.Context, params CreateDiscountParams, createdBy uuid.UUID) (*discount.Discount, error)
	DeleteDiscount(ctx context.Context, id uuid.UUID) error
}

type discountCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewDiscountCommands(uow shared.UnitOfWork) DiscountCommands {
	return &discountCommandsImpl{uow: uow}
}

func (u *discountCommandsImpl) CreateDiscount(ctx context.Context, params CreateDiscountParams, _ uuid.UUID) (*discount.Discount, error) {
	d, err := discount.NewDiscount(params.Title, params.Percentage, params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Discounts().Create(ctx, d); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (u *discountCommandsImpl) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Discounts().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrDiscountNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
