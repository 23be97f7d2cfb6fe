//go:build unit

package discount_test

import (
	"testing"
	"time"

	"innkeeper/internal/domain/discount"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDiscount(t *testing.T) {
	testCases := []struct {
		name       string
		title      string
		percentage float64
		start, end time.Time
		expected   error
	}{
		{"error: blank title", "  ", 10, date(1), date(5), discount.ErrEmptyTitle},
		{"error: zero percentage", "Sale", 0, date(1), date(5), discount.ErrInvalidPercentage},
		{"error: over 100 percent", "Sale", 101, date(1), date(5), discount.ErrInvalidPercentage},
		{"error: window ends before it starts", "Sale", 10, date(5), date(1), discount.ErrInvalidWindow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := discount.NewDiscount(tc.title, tc.percentage, tc.start, tc.end)
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	t.Run("single-day window is valid", func(t *testing.T) {
		_, err := discount.NewDiscount("Flash Sale", 15, date(3), date(3))
		assert.NoError(t, err)
	})
}

func TestDiscount_ContainsDate(t *testing.T) {
	d, err := discount.NewDiscount("June Week", 20, date(10), date(17))
	require.NoError(t, err)

	assert.True(t, d.ContainsDate(date(10)), "start day is inside")
	assert.True(t, d.ContainsDate(date(17)), "end day is inside, window is closed")
	assert.True(t, d.ContainsDate(date(13)))
	assert.False(t, d.ContainsDate(date(9)))
	assert.False(t, d.ContainsDate(date(18)))
}

func TestDiscount_Apply(t *testing.T) {
	testCases := []struct {
		name       string
		percentage float64
		base       int64
		expected   int64
	}{
		{"twenty percent off", 20, 1000, 800},
		{"full discount", 100, 1000, 0},
		{"fractional percentage truncates", 12.5, 1000, 875},
		{"zero base", 20, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := discount.NewDiscount("Test", tc.percentage, date(1), date(30))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d.Apply(tc.base))
		})
	}
}
