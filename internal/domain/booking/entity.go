package booking

import (
	"errors"
	"time"

	"golfclub-backend/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPartySize    = errors.New("party size must be between 1 and 5")
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrIllegalTransition   = errors.New("illegal booking status transition")
	ErrTeeDateInPast       = errors.New("tee date cannot be in the past")
	ErrInvalidMemberNumber = errors.New("member number cannot be empty")
)

const maxPartySize = 5

// Booking records an agreed tee time and the price resolved for it. The
// quoted price and inclusion flags are frozen at creation; later catalog
// edits never reprice an existing booking.
type Booking struct {
	id           uuid.UUID
	memberNumber string
	segment      pricing.PlayerSegment
	courseID     int64
	teeDate      time.Time
	teeTime      pricing.TimeOfDay
	numPlayers   int32
	status       Status

	finalPrice       decimal.Decimal
	basePrice        decimal.Decimal
	priceSource      pricing.PriceSource
	promotionID      *int64
	includesGreenFee bool
	includesCaddy    bool
	includesCart     bool

	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(
	memberNumber string,
	segment pricing.PlayerSegment,
	courseID int64,
	teeDate time.Time,
	teeTime pricing.TimeOfDay,
	numPlayers int32,
	quote pricing.BestPriceResult,
	now time.Time,
) (*Booking, error) {
	if memberNumber == "" {
		return nil, ErrInvalidMemberNumber
	}
	if numPlayers < 1 || numPlayers > maxPartySize {
		return nil, ErrInvalidPartySize
	}
	if teeDate.Before(now.Truncate(24 * time.Hour)) {
		return nil, ErrTeeDateInPast
	}
	if !teeTime.IsValid() {
		return nil, pricing.ErrInvalidTimeOfDay
	}

	return &Booking{
		id:               uuid.New(),
		memberNumber:     memberNumber,
		segment:          segment,
		courseID:         courseID,
		teeDate:          teeDate,
		teeTime:          teeTime,
		numPlayers:       numPlayers,
		status:           StatusBooked,
		finalPrice:       quote.FinalPrice,
		basePrice:        quote.BasePrice,
		priceSource:      quote.Source,
		promotionID:      quote.PromotionID,
		includesGreenFee: quote.IncludesGreenFee,
		includesCaddy:    quote.IncludesCaddy,
		includesCart:     quote.IncludesCart,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	memberNumber string,
	segment pricing.PlayerSegment,
	courseID int64,
	teeDate time.Time,
	teeTime pricing.TimeOfDay,
	numPlayers int32,
	status Status,
	finalPrice, basePrice decimal.Decimal,
	priceSource pricing.PriceSource,
	promotionID *int64,
	includesGreenFee, includesCaddy, includesCart bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		memberNumber:     memberNumber,
		segment:          segment,
		courseID:         courseID,
		teeDate:          teeDate,
		teeTime:          teeTime,
		numPlayers:       numPlayers,
		status:           status,
		finalPrice:       finalPrice,
		basePrice:        basePrice,
		priceSource:      priceSource,
		promotionID:      promotionID,
		includesGreenFee: includesGreenFee,
		includesCaddy:    includesCaddy,
		includesCart:     includesCart,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// TransitionTo moves the booking to the next lifecycle state.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	b.status = next
	return nil
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) MemberNumber() string           { return b.memberNumber }
func (b *Booking) Segment() pricing.PlayerSegment { return b.segment }
func (b *Booking) CourseID() int64                { return b.courseID }
func (b *Booking) TeeDate() time.Time             { return b.teeDate }
func (b *Booking) TeeTime() pricing.TimeOfDay     { return b.teeTime }
func (b *Booking) NumPlayers() int32              { return b.numPlayers }
func (b *Booking) Status() Status                 { return b.status }
func (b *Booking) FinalPrice() decimal.Decimal    { return b.finalPrice }
func (b *Booking) BasePrice() decimal.Decimal     { return b.basePrice }
func (b *Booking) PriceSource() pricing.PriceSource { return b.priceSource }
func (b *Booking) PromotionID() *int64            { return b.promotionID }
func (b *Booking) IncludesGreenFee() bool         { return b.includesGreenFee }
func (b *Booking) IncludesCaddy() bool            { return b.includesCaddy }
func (b *Booking) IncludesCart() bool             { return b.includesCart }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }
