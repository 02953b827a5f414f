package pricing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPlayerBounds  = errors.New("min players must not exceed max players")
	ErrInvalidActionType    = errors.New("invalid band action type")
	ErrInvalidPercentValue  = errors.New("percent discount must be between 0 and 100")
	ErrNegativeActionValue  = errors.New("action value cannot be negative")
	ErrInvalidPlayerSegment = errors.New("invalid player segment")
)

var percentCeiling = decimal.NewFromInt(100)

// Band is a single scoped pricing rule owned by a promotion. Nil scope fields
// are wildcards; a request matches a band only when every populated scope
// field accepts it.
type Band struct {
	ID          int64
	PromotionID int64

	DayGroup DayGroup
	// DowMask is authoritative when non-zero; DayGroup is only consulted for
	// bands persisted without a mask.
	DowMask DowMask
	Window  TimeWindow

	CourseID    *int64
	Segment     *PlayerSegment
	MinLeadDays *int32
	MinPlayers  *int32
	MaxPlayers  *int32

	ActionType  ActionType
	ActionValue decimal.Decimal

	IncludesGreenFee bool
	IncludesCaddy    bool
	IncludesCart     bool

	ExtraConditions *string
	// ExtraMeta is opaque structured data carried through untouched.
	ExtraMeta []byte
}

// Validate rejects malformed bands. The resolver treats a band that fails
// validation as non-matching instead of aborting the whole resolution.
func (b Band) Validate() error {
	if err := b.Window.Validate(); err != nil {
		return err
	}
	if err := b.DowMask.Validate(); err != nil {
		return err
	}
	if b.DowMask.IsZero() && !b.DayGroup.IsValid() {
		return ErrInvalidDowMask
	}
	if b.MinPlayers != nil && b.MaxPlayers != nil && *b.MinPlayers > *b.MaxPlayers {
		return ErrInvalidPlayerBounds
	}
	if b.Segment != nil && !b.Segment.IsValid() {
		return ErrInvalidPlayerSegment
	}
	if !b.ActionType.IsValid() {
		return ErrInvalidActionType
	}
	if b.ActionValue.IsNegative() {
		return ErrNegativeActionValue
	}
	if b.ActionType == ActionDiscountPercent && b.ActionValue.GreaterThan(percentCeiling) {
		return ErrInvalidPercentValue
	}
	return nil
}

// Request is the pricing context a band is matched against.
type Request struct {
	TeeDate    time.Time
	TeeTime    TimeOfDay
	CourseID   int64
	Segment    PlayerSegment
	NumPlayers int32
	// BookedAt anchors the lead-time predicate. A zero value means no
	// reliable reference date is available and the predicate is skipped.
	BookedAt time.Time
}

// Matches applies every scope predicate. The caller is expected to have
// validated the band first.
func (b Band) Matches(req Request) bool {
	if !b.matchesDay(req.TeeDate.Weekday()) {
		return false
	}
	if !b.Window.Contains(req.TeeTime) {
		return false
	}
	if b.CourseID != nil && *b.CourseID != req.CourseID {
		return false
	}
	if b.Segment != nil && *b.Segment != SegmentAll && *b.Segment != req.Segment {
		return false
	}
	if b.MinPlayers != nil && req.NumPlayers < *b.MinPlayers {
		return false
	}
	if b.MaxPlayers != nil && req.NumPlayers > *b.MaxPlayers {
		return false
	}
	if b.MinLeadDays != nil && !req.BookedAt.IsZero() {
		if daysBetween(req.BookedAt, req.TeeDate) < *b.MinLeadDays {
			return false
		}
	}
	return true
}

func (b Band) matchesDay(d time.Weekday) bool {
	if !b.DowMask.IsZero() {
		return b.DowMask.Has(d)
	}
	switch b.DayGroup {
	case DayGroupWeekday:
		return d >= time.Monday && d <= time.Friday
	case DayGroupWeekend:
		return d == time.Saturday || d == time.Sunday
	default:
		return true
	}
}

// Specificity counts the non-wildcard scope fields. More specific bands
// beat less specific ones when priorities tie.
func (b Band) Specificity() int {
	score := 0
	if b.CourseID != nil {
		score++
	}
	if b.Segment != nil && *b.Segment != SegmentAll {
		score++
	}
	if b.MinPlayers != nil {
		score++
	}
	if b.MaxPlayers != nil {
		score++
	}
	if b.DowMask.IsRestricted() || (b.DowMask.IsZero() && b.DayGroup != DayGroupAll) {
		score++
	}
	return score
}

// Apply transforms the base price per the band's action. Discounts clamp at
// zero; a fixed price replaces the base entirely.
func (b Band) Apply(base decimal.Decimal) decimal.Decimal {
	switch b.ActionType {
	case ActionFixedPrice:
		return b.ActionValue
	case ActionDiscountTHB:
		result := base.Sub(b.ActionValue)
		if result.IsNegative() {
			return decimal.Zero
		}
		return result
	case ActionDiscountPercent:
		result := base.Mul(percentCeiling.Sub(b.ActionValue)).Div(percentCeiling)
		if result.IsNegative() {
			return decimal.Zero
		}
		return result
	default:
		return base
	}
}

func daysBetween(from, to time.Time) int32 {
	diff := dateOnly(to).Sub(dateOnly(from.In(to.Location())))
	return int32(diff.Hours() / 24)
}
