//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"golfclub-backend/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDay(t *testing.T) {
	for _, valid := range []string{"00:00", "06:30", "23:59"} {
		_, err := pricing.NewTimeOfDay(valid)
		assert.NoError(t, err, valid)
	}
	for _, invalid := range []string{"24:00", "7:30", "12:60", "noonish", ""} {
		_, err := pricing.NewTimeOfDay(invalid)
		assert.ErrorIs(t, err, pricing.ErrInvalidTimeOfDay, invalid)
	}
}

func TestTimeWindow(t *testing.T) {
	_, err := pricing.NewTimeWindow("14:00", "10:00")
	require.ErrorIs(t, err, pricing.ErrInvalidTimeWindow)

	w, err := pricing.NewTimeWindow("10:00", "10:00")
	require.NoError(t, err)
	assert.True(t, w.Contains("10:00"))
	assert.False(t, w.Contains("10:01"))
}

func TestDowMask(t *testing.T) {
	weekend := pricing.NewDowMask(time.Saturday, time.Sunday)
	assert.True(t, weekend.Has(time.Saturday))
	assert.True(t, weekend.Has(time.Sunday))
	assert.False(t, weekend.Has(time.Monday))
	assert.True(t, weekend.IsRestricted())

	assert.False(t, pricing.DowMaskAll.IsRestricted())
	assert.True(t, pricing.DowMask(0).IsZero())

	assert.Error(t, pricing.DowMask(0xFF).Validate())
	assert.NoError(t, pricing.DowMaskAll.Validate())
}

func TestPromotionInScopeOn(t *testing.T) {
	promo := pricing.Promotion{
		ID:        1,
		Code:      "HIGHSEASON",
		Name:      "High Season",
		StartDate: time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, time.February, 28, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
		Priority:  10,
		Stacking:  pricing.StackingExclusive,
	}
	require.NoError(t, promo.Validate())

	assert.True(t, promo.InScopeOn(time.Date(2026, time.November, 1, 15, 0, 0, 0, time.UTC)))
	assert.True(t, promo.InScopeOn(time.Date(2027, time.February, 28, 23, 59, 0, 0, time.UTC)))
	assert.False(t, promo.InScopeOn(time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, promo.InScopeOn(time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)))

	inactive := promo
	inactive.IsActive = false
	assert.False(t, inactive.InScopeOn(time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)))

	inverted := promo
	inverted.StartDate, inverted.EndDate = inverted.EndDate, inverted.StartDate
	assert.ErrorIs(t, inverted.Validate(), pricing.ErrInvalidDateRange)
}
