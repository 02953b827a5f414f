package queries

import (
	"time"

	"golfclub-backend/internal/domain/booking"
	"golfclub-backend/internal/domain/pricing"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type QuoteView struct {
	FinalPrice       string  `json:"final_price"`
	BasePrice        string  `json:"base_price"`
	Currency         string  `json:"currency"`
	Source           string  `json:"source"`
	PromotionID      *int64  `json:"promotion_id,omitempty"`
	PromotionCode    *string `json:"promotion_code,omitempty"`
	PromotionName    *string `json:"promotion_name,omitempty"`
	IncludesGreenFee bool    `json:"includes_green_fee"`
	IncludesCaddy    bool    `json:"includes_caddy"`
	IncludesCart     bool    `json:"includes_cart"`
}

func NewQuoteView(result pricing.BestPriceResult) *QuoteView {
	return &QuoteView{
		FinalPrice:       result.FinalPrice.StringFixed(2),
		BasePrice:        result.BasePrice.StringFixed(2),
		Currency:         "THB",
		Source:           result.Source.String(),
		PromotionID:      result.PromotionID,
		PromotionCode:    result.PromotionCode,
		PromotionName:    result.PromotionName,
		IncludesGreenFee: result.IncludesGreenFee,
		IncludesCaddy:    result.IncludesCaddy,
		IncludesCart:     result.IncludesCart,
	}
}

type PriceItemView struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Currency  string `json:"currency"`
	Category  string `json:"category"`
	IsActive  bool   `json:"is_active"`
}

func NewPriceItemView(item pricing.PriceItem) *PriceItemView {
	return &PriceItemView{
		ID:        item.ID,
		Code:      item.Code,
		Name:      item.Name,
		UnitPrice: item.UnitPrice.StringFixed(2),
		Currency:  item.Currency,
		Category:  item.Category.String(),
		IsActive:  item.IsActive,
	}
}

type BandView struct {
	ID               int64   `json:"id"`
	DayGroup         string  `json:"day_group"`
	DowMask          uint8   `json:"dow_mask"`
	TimeFrom         string  `json:"time_from"`
	TimeTo           string  `json:"time_to"`
	CourseID         *int64  `json:"course_id,omitempty"`
	PlayerSegment    *string `json:"player_segment,omitempty"`
	MinLeadDays      *int32  `json:"min_lead_days,omitempty"`
	MinPlayers       *int32  `json:"min_players,omitempty"`
	MaxPlayers       *int32  `json:"max_players,omitempty"`
	ActionType       string  `json:"action_type"`
	ActionValue      string  `json:"action_value"`
	IncludesGreenFee bool    `json:"includes_green_fee"`
	IncludesCaddy    bool    `json:"includes_caddy"`
	IncludesCart     bool    `json:"includes_cart"`
}

func NewBandView(b pricing.Band) *BandView {
	var segment *string
	if b.Segment != nil {
		s := b.Segment.String()
		segment = &s
	}
	return &BandView{
		ID:               b.ID,
		DayGroup:         b.DayGroup.String(),
		DowMask:          uint8(b.DowMask),
		TimeFrom:         b.Window.From.String(),
		TimeTo:           b.Window.To.String(),
		CourseID:         b.CourseID,
		PlayerSegment:    segment,
		MinLeadDays:      b.MinLeadDays,
		MinPlayers:       b.MinPlayers,
		MaxPlayers:       b.MaxPlayers,
		ActionType:       b.ActionType.String(),
		ActionValue:      b.ActionValue.StringFixed(2),
		IncludesGreenFee: b.IncludesGreenFee,
		IncludesCaddy:    b.IncludesCaddy,
		IncludesCart:     b.IncludesCart,
	}
}

type PromotionView struct {
	ID          int64       `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	IsActive    bool        `json:"is_active"`
	Priority    int32       `json:"priority"`
	Stacking    string      `json:"stacking"`
	Bands       []*BandView `json:"bands"`
}

func NewPromotionView(p pricing.Promotion, bands []pricing.Band) *PromotionView {
	bandViews := make([]*BandView, len(bands))
	for i, b := range bands {
		bandViews[i] = NewBandView(b)
	}
	return &PromotionView{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate.Format(time.DateOnly),
		EndDate:     p.EndDate.Format(time.DateOnly),
		IsActive:    p.IsActive,
		Priority:    p.Priority,
		Stacking:    p.Stacking.String(),
		Bands:       bandViews,
	}
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	MemberNumber     string    `json:"member_number"`
	Segment          string    `json:"segment"`
	CourseID         int64     `json:"course_id"`
	TeeDate          string    `json:"tee_date"`
	TeeTime          string    `json:"tee_time"`
	NumPlayers       int32     `json:"num_players"`
	Status           string    `json:"status"`
	FinalPrice       string    `json:"final_price"`
	BasePrice        string    `json:"base_price"`
	PriceSource      string    `json:"price_source"`
	PromotionID      *int64    `json:"promotion_id,omitempty"`
	IncludesGreenFee bool      `json:"includes_green_fee"`
	IncludesCaddy    bool      `json:"includes_caddy"`
	IncludesCart     bool      `json:"includes_cart"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:               b.ID(),
		MemberNumber:     b.MemberNumber(),
		Segment:          b.Segment().String(),
		CourseID:         b.CourseID(),
		TeeDate:          b.TeeDate().Format(time.DateOnly),
		TeeTime:          b.TeeTime().String(),
		NumPlayers:       b.NumPlayers(),
		Status:           b.Status().String(),
		FinalPrice:       b.FinalPrice().StringFixed(2),
		BasePrice:        b.BasePrice().StringFixed(2),
		PriceSource:      b.PriceSource().String(),
		PromotionID:      b.PromotionID(),
		IncludesGreenFee: b.IncludesGreenFee(),
		IncludesCaddy:    b.IncludesCaddy(),
		IncludesCart:     b.IncludesCart(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
