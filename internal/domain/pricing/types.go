package pricing

// ItemCategory classifies a price catalog line item.
type ItemCategory string

const (
	CategoryGreenFee ItemCategory = "GREEN_FEE"
	CategoryCart     ItemCategory = "CART"
	CategoryCaddy    ItemCategory = "CADDY"
	CategoryOther    ItemCategory = "OTHER"
)

func (c ItemCategory) String() string {
	return string(c)
}

func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryGreenFee, CategoryCart, CategoryCaddy, CategoryOther:
		return true
	default:
		return false
	}
}

// ActionType describes how a winning band transforms the base price.
type ActionType string

const (
	ActionFixedPrice      ActionType = "FIXED_PRICE"
	ActionDiscountTHB     ActionType = "DISCOUNT_THB"
	ActionDiscountPercent ActionType = "DISCOUNT_PERCENT"
)

func (a ActionType) String() string {
	return string(a)
}

func (a ActionType) IsValid() bool {
	switch a {
	case ActionFixedPrice, ActionDiscountTHB, ActionDiscountPercent:
		return true
	default:
		return false
	}
}

// DayGroup is a convenience label for a band's day scope. The day-of-week
// mask is authoritative when set; the group is only consulted without one.
type DayGroup string

const (
	DayGroupAll     DayGroup = "ALL"
	DayGroupWeekday DayGroup = "WEEKDAY"
	DayGroupWeekend DayGroup = "WEEKEND"
)

func (g DayGroup) String() string {
	return string(g)
}

func (g DayGroup) IsValid() bool {
	switch g {
	case DayGroupAll, DayGroupWeekday, DayGroupWeekend:
		return true
	default:
		return false
	}
}

// PlayerSegment is the member rate classification used to scope bands.
type PlayerSegment string

const (
	SegmentThai         PlayerSegment = "THAI"
	SegmentForeignWP    PlayerSegment = "FOREIGN_WP"
	SegmentForeignOther PlayerSegment = "FOREIGN_OTHER"
	SegmentAll          PlayerSegment = "ALL"
)

func (s PlayerSegment) String() string {
	return string(s)
}

func (s PlayerSegment) IsValid() bool {
	switch s {
	case SegmentThai, SegmentForeignWP, SegmentForeignOther, SegmentAll:
		return true
	default:
		return false
	}
}

// Stacking controls whether a promotion may combine with others. Only
// EXCLUSIVE is exercised today: at most one band wins per resolution.
type Stacking string

const (
	StackingExclusive Stacking = "EXCLUSIVE"
	StackingStackable Stacking = "STACKABLE"
)

func (s Stacking) String() string {
	return string(s)
}

func (s Stacking) IsValid() bool {
	switch s {
	case StackingExclusive, StackingStackable:
		return true
	default:
		return false
	}
}

// PriceSource reports where the final price came from.
type PriceSource string

const (
	SourceBase      PriceSource = "BASE"
	SourcePromotion PriceSource = "PROMOTION"
)

func (s PriceSource) String() string {
	return string(s)
}
