//go:build unit

package booking_test

import (
	"testing"
	"time"

	"golfclub-backend/internal/domain/booking"
	"golfclub-backend/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	now := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)
	quote := pricing.BaseResult(decimal.NewFromInt(2300))
	b, err := booking.NewBooking("M-1042", pricing.SegmentThai, 1,
		now.AddDate(0, 0, 3), "07:30", 2, quote, now)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	b := newTestBooking(t)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusBooked, b.Status())
	assert.True(t, decimal.NewFromInt(2300).Equal(b.FinalPrice()))
	assert.Equal(t, pricing.SourceBase, b.PriceSource())
	assert.True(t, b.IncludesGreenFee())
}

func TestNewBookingValidation(t *testing.T) {
	now := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)
	quote := pricing.BaseResult(decimal.NewFromInt(2300))

	cases := []struct {
		name   string
		build  func() (*booking.Booking, error)
		errIs  error
	}{
		{
			name: "empty member number",
			build: func() (*booking.Booking, error) {
				return booking.NewBooking("", pricing.SegmentThai, 1, now.AddDate(0, 0, 1), "07:30", 2, quote, now)
			},
			errIs: booking.ErrInvalidMemberNumber,
		},
		{
			name: "zero players",
			build: func() (*booking.Booking, error) {
				return booking.NewBooking("M-1", pricing.SegmentThai, 1, now.AddDate(0, 0, 1), "07:30", 0, quote, now)
			},
			errIs: booking.ErrInvalidPartySize,
		},
		{
			name: "oversized flight",
			build: func() (*booking.Booking, error) {
				return booking.NewBooking("M-1", pricing.SegmentThai, 1, now.AddDate(0, 0, 1), "07:30", 6, quote, now)
			},
			errIs: booking.ErrInvalidPartySize,
		},
		{
			name: "tee date in the past",
			build: func() (*booking.Booking, error) {
				return booking.NewBooking("M-1", pricing.SegmentThai, 1, now.AddDate(0, 0, -2), "07:30", 2, quote, now)
			},
			errIs: booking.ErrTeeDateInPast,
		},
		{
			name: "malformed tee time",
			build: func() (*booking.Booking, error) {
				return booking.NewBooking("M-1", pricing.SegmentThai, 1, now.AddDate(0, 0, 1), "7:30", 2, quote, now)
			},
			errIs: pricing.ErrInvalidTimeOfDay,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBookingTransitions(t *testing.T) {
	t.Run("booked can check in, cancel, complete or no-show", func(t *testing.T) {
		for _, next := range []booking.Status{
			booking.StatusCheckedIn, booking.StatusCancelled,
			booking.StatusCompleted, booking.StatusNoShow,
		} {
			b := newTestBooking(t)
			require.NoError(t, b.TransitionTo(next))
			assert.Equal(t, next, b.Status())
		}
	})

	t.Run("checked in can only complete", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.TransitionTo(booking.StatusCheckedIn))

		require.ErrorIs(t, b.TransitionTo(booking.StatusCancelled), booking.ErrIllegalTransition)
		require.NoError(t, b.TransitionTo(booking.StatusCompleted))
	})

	t.Run("terminal states reject everything", func(t *testing.T) {
		for _, terminal := range []booking.Status{
			booking.StatusCancelled, booking.StatusCompleted, booking.StatusNoShow,
		} {
			b := newTestBooking(t)
			require.NoError(t, b.TransitionTo(terminal))
			assert.ErrorIs(t, b.TransitionTo(booking.StatusBooked), booking.ErrIllegalTransition)
			assert.ErrorIs(t, b.TransitionTo(booking.StatusCheckedIn), booking.ErrIllegalTransition)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		b := newTestBooking(t)
		assert.ErrorIs(t, b.TransitionTo("TELEPORTED"), booking.ErrInvalidStatus)
	})
}
