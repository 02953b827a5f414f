//go:build unit || e2e

package builder

import (
	"time"

	"golfclub-backend/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// CandidateBandBuilder produces pricing.CandidateBand values for tests. The
// default candidate matches any request: all days, full-day window, no course,
// segment or party-size scope, a 100 THB discount.
type CandidateBandBuilder struct {
	ID            int64
	PromotionID   int64
	PromotionCode string
	PromotionName string
	Priority      int32
	Stacking      pricing.Stacking

	DayGroup    pricing.DayGroup
	DowMask     pricing.DowMask
	TimeFrom    string
	TimeTo      string
	CourseID    *int64
	Segment     *pricing.PlayerSegment
	MinLeadDays *int32
	MinPlayers  *int32
	MaxPlayers  *int32

	ActionType  pricing.ActionType
	ActionValue decimal.Decimal

	IncludesGreenFee bool
	IncludesCaddy    bool
	IncludesCart     bool
}

func NewCandidateBandBuilder() *CandidateBandBuilder {
	return &CandidateBandBuilder{
		ID:               1,
		PromotionID:      10,
		PromotionCode:    "EARLYBIRD",
		PromotionName:    "Early Bird",
		Priority:         50,
		Stacking:         pricing.StackingExclusive,
		DayGroup:         pricing.DayGroupAll,
		TimeFrom:         "00:00",
		TimeTo:           "23:59",
		ActionType:       pricing.ActionDiscountTHB,
		ActionValue:      decimal.NewFromInt(100),
		IncludesGreenFee: true,
		IncludesCaddy:    true,
		IncludesCart:     true,
	}
}

func (b *CandidateBandBuilder) With(mutate func(*CandidateBandBuilder)) *CandidateBandBuilder {
	mutate(b)
	return b
}

func (b *CandidateBandBuilder) WithID(id int64) *CandidateBandBuilder {
	b.ID = id
	return b
}

func (b *CandidateBandBuilder) WithPriority(p int32) *CandidateBandBuilder {
	b.Priority = p
	return b
}

func (b *CandidateBandBuilder) WithDayGroup(g pricing.DayGroup) *CandidateBandBuilder {
	b.DayGroup = g
	return b
}

func (b *CandidateBandBuilder) WithDowMask(days ...time.Weekday) *CandidateBandBuilder {
	b.DowMask = pricing.NewDowMask(days...)
	return b
}

func (b *CandidateBandBuilder) WithWindow(from, to string) *CandidateBandBuilder {
	b.TimeFrom = from
	b.TimeTo = to
	return b
}

func (b *CandidateBandBuilder) WithCourse(id int64) *CandidateBandBuilder {
	b.CourseID = &id
	return b
}

func (b *CandidateBandBuilder) WithSegment(s pricing.PlayerSegment) *CandidateBandBuilder {
	b.Segment = &s
	return b
}

func (b *CandidateBandBuilder) WithPlayers(min, max int32) *CandidateBandBuilder {
	b.MinPlayers = &min
	b.MaxPlayers = &max
	return b
}

func (b *CandidateBandBuilder) WithMinLeadDays(days int32) *CandidateBandBuilder {
	b.MinLeadDays = &days
	return b
}

func (b *CandidateBandBuilder) WithAction(t pricing.ActionType, value string) *CandidateBandBuilder {
	b.ActionType = t
	b.ActionValue = decimal.RequireFromString(value)
	return b
}

func (b *CandidateBandBuilder) WithIncludes(greenFee, caddy, cart bool) *CandidateBandBuilder {
	b.IncludesGreenFee = greenFee
	b.IncludesCaddy = caddy
	b.IncludesCart = cart
	return b
}

func (b *CandidateBandBuilder) Build() pricing.CandidateBand {
	return pricing.CandidateBand{
		Band: pricing.Band{
			ID:               b.ID,
			PromotionID:      b.PromotionID,
			DayGroup:         b.DayGroup,
			DowMask:          b.DowMask,
			Window:           pricing.TimeWindow{From: pricing.TimeOfDay(b.TimeFrom), To: pricing.TimeOfDay(b.TimeTo)},
			CourseID:         b.CourseID,
			Segment:          b.Segment,
			MinLeadDays:      b.MinLeadDays,
			MinPlayers:       b.MinPlayers,
			MaxPlayers:       b.MaxPlayers,
			ActionType:       b.ActionType,
			ActionValue:      b.ActionValue,
			IncludesGreenFee: b.IncludesGreenFee,
			IncludesCaddy:    b.IncludesCaddy,
			IncludesCart:     b.IncludesCart,
		},
		PromotionCode: b.PromotionCode,
		PromotionName: b.PromotionName,
		Priority:      b.Priority,
		Stacking:      b.Stacking,
	}
}

// PriceItemBuilder produces catalog items for tests.
type PriceItemBuilder struct {
	ID        int64
	Code      string
	Name      string
	UnitPrice decimal.Decimal
	Category  pricing.ItemCategory
	IsActive  bool
}

func NewPriceItemBuilder() *PriceItemBuilder {
	return &PriceItemBuilder{
		ID:        1,
		Code:      "GF-STD",
		Name:      "Green Fee (18 holes)",
		UnitPrice: decimal.NewFromInt(1500),
		Category:  pricing.CategoryGreenFee,
		IsActive:  true,
	}
}

func (b *PriceItemBuilder) WithID(id int64) *PriceItemBuilder {
	b.ID = id
	return b
}

func (b *PriceItemBuilder) WithCode(code string) *PriceItemBuilder {
	b.Code = code
	return b
}

func (b *PriceItemBuilder) WithCategory(c pricing.ItemCategory) *PriceItemBuilder {
	b.Category = c
	return b
}

func (b *PriceItemBuilder) WithUnitPrice(price string) *PriceItemBuilder {
	b.UnitPrice = decimal.RequireFromString(price)
	return b
}

func (b *PriceItemBuilder) Inactive() *PriceItemBuilder {
	b.IsActive = false
	return b
}

func (b *PriceItemBuilder) Build() pricing.PriceItem {
	return pricing.PriceItem{
		ID:        b.ID,
		Code:      b.Code,
		Name:      b.Name,
		UnitPrice: b.UnitPrice,
		Currency:  "THB",
		Category:  b.Category,
		IsActive:  b.IsActive,
	}
}
