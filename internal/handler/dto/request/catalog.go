package request

import (
	"time"

	"golfclub-backend/internal/usecase/commands"
)

type CreatePriceItemRequest struct {
	Code      string `json:"code" binding:"required"`
	Name      string `json:"name" binding:"required"`
	UnitPrice string `json:"unit_price" binding:"required"`
	Currency  string `json:"currency"`
	Category  string `json:"category" binding:"required"`
	IsActive  bool   `json:"is_active"`
}

func (r CreatePriceItemRequest) ToParams() commands.CreatePriceItemParams {
	return commands.CreatePriceItemParams{
		Code:      r.Code,
		Name:      r.Name,
		UnitPrice: r.UnitPrice,
		Currency:  r.Currency,
		Category:  r.Category,
		IsActive:  r.IsActive,
	}
}

type UpdatePriceItemRequest struct {
	Name      *string `json:"name,omitempty"`
	UnitPrice *string `json:"unit_price,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (r UpdatePriceItemRequest) ToParams() commands.UpdatePriceItemParams {
	return commands.UpdatePriceItemParams{
		Name:      r.Name,
		UnitPrice: r.UnitPrice,
		IsActive:  r.IsActive,
	}
}

type BandRequest struct {
	DayGroup         string  `json:"day_group"`
	DowMask          uint8   `json:"dow_mask"`
	TimeFrom         string  `json:"time_from" binding:"required"`
	TimeTo           string  `json:"time_to" binding:"required"`
	CourseID         *int64  `json:"course_id,omitempty"`
	PlayerSegment    *string `json:"player_segment,omitempty"`
	MinLeadDays      *int32  `json:"min_lead_days,omitempty"`
	MinPlayers       *int32  `json:"min_players,omitempty"`
	MaxPlayers       *int32  `json:"max_players,omitempty"`
	ActionType       string  `json:"action_type" binding:"required"`
	ActionValue      string  `json:"action_value" binding:"required"`
	IncludesGreenFee bool    `json:"includes_green_fee"`
	IncludesCaddy    bool    `json:"includes_caddy"`
	IncludesCart     bool    `json:"includes_cart"`
	ExtraConditions  *string `json:"extra_conditions,omitempty"`
	ExtraMeta        []byte  `json:"extra_meta,omitempty"`
}

type CreatePromotionRequest struct {
	Code        string        `json:"code" binding:"required"`
	Name        string        `json:"name" binding:"required"`
	Description *string       `json:"description,omitempty"`
	StartDate   string        `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string        `json:"end_date" binding:"required,datetime=2006-01-02"`
	IsActive    bool          `json:"is_active"`
	Priority    int32         `json:"priority"`
	Stacking    string        `json:"stacking" binding:"required"`
	Bands       []BandRequest `json:"bands" binding:"required,min=1,dive"`
}

func (r CreatePromotionRequest) ToParams() (commands.CreatePromotionParams, error) {
	startDate, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return commands.CreatePromotionParams{}, err
	}
	endDate, err := time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return commands.CreatePromotionParams{}, err
	}

	bands := make([]commands.BandParams, len(r.Bands))
	for i, b := range r.Bands {
		bands[i] = commands.BandParams{
			DayGroup:         b.DayGroup,
			DowMask:          b.DowMask,
			TimeFrom:         b.TimeFrom,
			TimeTo:           b.TimeTo,
			CourseID:         b.CourseID,
			PlayerSegment:    b.PlayerSegment,
			MinLeadDays:      b.MinLeadDays,
			MinPlayers:       b.MinPlayers,
			MaxPlayers:       b.MaxPlayers,
			ActionType:       b.ActionType,
			ActionValue:      b.ActionValue,
			IncludesGreenFee: b.IncludesGreenFee,
			IncludesCaddy:    b.IncludesCaddy,
			IncludesCart:     b.IncludesCart,
			ExtraConditions:  b.ExtraConditions,
			ExtraMeta:        b.ExtraMeta,
		}
	}

	return commands.CreatePromotionParams{
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    r.IsActive,
		Priority:    r.Priority,
		Stacking:    r.Stacking,
		Bands:       bands,
	}, nil
}
