//go:build unit

package commands_test

import (
	"context"
	"testing"

	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("create then delete", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewDiscountCommands(store)

		d, err := uc.CreateDiscount(ctx, commands.CreateDiscountParams{
			Title:      "Monsoon Special",
			Percentage: 15,
			StartDate:  june(1),
			EndDate:    june(30),
		}, uuid.New())
		require.NoError(t, err)
		require.Len(t, store.discounts, 1)

		require.NoError(t, uc.DeleteDiscount(ctx, d.ID()))
		assert.Empty(t, store.discounts)
	})

	t.Run("error: percentage out of range", func(t *testing.T) {
		uc := commands.NewDiscountCommands(newMemStore())
		_, err := uc.CreateDiscount(ctx, commands.CreateDiscountParams{
			Title:      "Broken",
			Percentage: 120,
			StartDate:  june(1),
			EndDate:    june(30),
		}, uuid.New())
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("error: delete unknown discount", func(t *testing.T) {
		uc := commands.NewDiscountCommands(newMemStore())
		assert.ErrorIs(t, uc.DeleteDiscount(ctx, uuid.New()), errs.ErrDiscountNotFound)
	})
}
