//go:build unit

package pricing_test

import (
	"io"
	"log/slog"
	"testing"

	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver() *pricing.Resolver {
	return pricing.NewResolver(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestResolveNoCandidates(t *testing.T) {
	base := decimal.NewFromInt(2300)

	result := newResolver().Resolve(defaultRequest(), base, nil)

	assert.Equal(t, pricing.SourceBase, result.Source)
	assertDecimalEqual(t, "2300", result.FinalPrice)
	assertDecimalEqual(t, "2300", result.BasePrice)
	assert.Nil(t, result.PromotionID)
	assert.True(t, result.IncludesGreenFee)
	assert.True(t, result.IncludesCaddy)
	assert.True(t, result.IncludesCart)
}

func TestResolveNoMatchFallsBackToBase(t *testing.T) {
	base := decimal.NewFromInt(2300)
	candidates := []pricing.CandidateBand{
		builder.NewCandidateBandBuilder().WithDayGroup(pricing.DayGroupWeekend).Build(),
	}

	req := defaultRequest()
	req.TeeDate = tuesday
	result := newResolver().Resolve(req, base, candidates)

	assert.Equal(t, pricing.SourceBase, result.Source)
	assertDecimalEqual(t, "2300", result.FinalPrice)
}

func TestResolveFixedPriceReplacesBase(t *testing.T) {
	candidates := []pricing.CandidateBand{
		builder.NewCandidateBandBuilder().WithAction(pricing.ActionFixedPrice, "999").Build(),
	}

	for _, base := range []string{"0", "1500", "99999"} {
		result := newResolver().Resolve(defaultRequest(), decimal.RequireFromString(base), candidates)
		require.Equal(t, pricing.SourcePromotion, result.Source, "base=%s", base)
		assertDecimalEqual(t, "999", result.FinalPrice)
	}
}

func TestResolveDiscountsNeverGoNegative(t *testing.T) {
	base := decimal.NewFromInt(300)

	t.Run("absolute discount larger than base", func(t *testing.T) {
		candidates := []pricing.CandidateBand{
			builder.NewCandidateBandBuilder().WithAction(pricing.ActionDiscountTHB, "500").Build(),
		}
		result := newResolver().Resolve(defaultRequest(), base, candidates)
		assertDecimalEqual(t, "0", result.FinalPrice)
	})

	t.Run("full percent discount", func(t *testing.T) {
		candidates := []pricing.CandidateBand{
			builder.NewCandidateBandBuilder().WithAction(pricing.ActionDiscountPercent, "100").Build(),
		}
		result := newResolver().Resolve(defaultRequest(), base, candidates)
		assertDecimalEqual(t, "0", result.FinalPrice)
	})
}

func TestResolvePriorityOrdering(t *testing.T) {
	loser := builder.NewCandidateBandBuilder().WithID(1).WithPriority(20).
		WithAction(pricing.ActionFixedPrice, "2000").Build()
	winner := builder.NewCandidateBandBuilder().WithID(2).WithPriority(10).
		WithAction(pricing.ActionFixedPrice, "1000").Build()

	base := decimal.NewFromInt(2300)
	for name, candidates := range map[string][]pricing.CandidateBand{
		"winner first": {winner, loser},
		"winner last":  {loser, winner},
	} {
		t.Run(name, func(t *testing.T) {
			result := newResolver().Resolve(defaultRequest(), base, candidates)
			assertDecimalEqual(t, "1000", result.FinalPrice)
		})
	}
}

func TestResolveTieBreaks(t *testing.T) {
	base := decimal.NewFromInt(2300)

	t.Run("specificity beats insertion order", func(t *testing.T) {
		generic := builder.NewCandidateBandBuilder().WithID(1).WithPriority(10).
			WithAction(pricing.ActionFixedPrice, "2000").Build()
		specific := builder.NewCandidateBandBuilder().WithID(2).WithPriority(10).
			WithCourse(1).WithSegment(pricing.SegmentThai).
			WithAction(pricing.ActionFixedPrice, "1000").Build()

		result := newResolver().Resolve(defaultRequest(), base, []pricing.CandidateBand{generic, specific})
		assertDecimalEqual(t, "1000", result.FinalPrice)
	})

	t.Run("lowest band id wins a full tie", func(t *testing.T) {
		a := builder.NewCandidateBandBuilder().WithID(5).WithPriority(10).
			WithAction(pricing.ActionFixedPrice, "1000").Build()
		b := builder.NewCandidateBandBuilder().WithID(9).WithPriority(10).
			WithAction(pricing.ActionFixedPrice, "2000").Build()

		for name, candidates := range map[string][]pricing.CandidateBand{
			"ascending":  {a, b},
			"descending": {b, a},
		} {
			t.Run(name, func(t *testing.T) {
				result := newResolver().Resolve(defaultRequest(), base, candidates)
				assertDecimalEqual(t, "1000", result.FinalPrice)
			})
		}
	})
}

func TestResolveSkipsMalformedBands(t *testing.T) {
	malformed := builder.NewCandidateBandBuilder().WithID(1).WithPriority(1).
		WithWindow("18:00", "06:00").Build()
	healthy := builder.NewCandidateBandBuilder().WithID(2).WithPriority(50).
		WithAction(pricing.ActionFixedPrice, "1200").Build()

	result := newResolver().Resolve(defaultRequest(), decimal.NewFromInt(2300), []pricing.CandidateBand{malformed, healthy})

	require.Equal(t, pricing.SourcePromotion, result.Source)
	assertDecimalEqual(t, "1200", result.FinalPrice)
	require.NotNil(t, result.PromotionID)
}

// Weekend early-bird scenario: 20% off base 2300 before 10:00 on weekends.
func TestResolveWeekendEarlyBird(t *testing.T) {
	base := decimal.NewFromInt(2300)
	candidates := []pricing.CandidateBand{
		builder.NewCandidateBandBuilder().
			WithPriority(50).
			WithDayGroup(pricing.DayGroupWeekend).
			WithWindow("06:00", "10:00").
			WithAction(pricing.ActionDiscountPercent, "20").
			WithIncludes(true, true, false).
			Build(),
	}

	t.Run("saturday morning gets the discount", func(t *testing.T) {
		req := defaultRequest()
		req.TeeDate = saturday
		req.TeeTime = "07:30"
		req.NumPlayers = 2

		result := newResolver().Resolve(req, base, candidates)

		require.Equal(t, pricing.SourcePromotion, result.Source)
		assertDecimalEqual(t, "1840", result.FinalPrice)
		assertDecimalEqual(t, "2300", result.BasePrice)
		assert.True(t, result.IncludesGreenFee)
		assert.True(t, result.IncludesCaddy)
		assert.False(t, result.IncludesCart)
		require.NotNil(t, result.PromotionCode)
		assert.Equal(t, "EARLYBIRD", *result.PromotionCode)
	})

	t.Run("tuesday morning pays base price", func(t *testing.T) {
		req := defaultRequest()
		req.TeeDate = tuesday
		req.TeeTime = "07:30"

		result := newResolver().Resolve(req, base, candidates)

		assert.Equal(t, pricing.SourceBase, result.Source)
		assertDecimalEqual(t, "2300", result.FinalPrice)
		assert.True(t, result.IncludesCart)
	})
}
