package commands

import (
	"context"
	"time"

	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/errs"
	"golfclub-backend/internal/pkg/patch"
	"golfclub-backend/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

var (
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
	ErrPriceItemNotFound       = errs.New("price item not found")
	ErrDuplicateActiveItem     = errs.New("category already has an active item")
	ErrDuplicateCode           = errs.New("code already in use")
	ErrPromotionNotFound       = errs.New("promotion not found")
	ErrPromotionNeedsBands     = errs.New("promotion requires at least one band")
)

type CreatePriceItemParams struct {
	Code      string
	Name      string
	UnitPrice string
	Currency  string
	Category  string
	IsActive  bool
}

type UpdatePriceItemParams struct {
	Name      *string
	UnitPrice *string
	IsActive  *bool
}

type BandParams struct {
	DayGroup         string
	DowMask          uint8
	TimeFrom         string
	TimeTo           string
	CourseID         *int64
	PlayerSegment    *string
	MinLeadDays      *int32
	MinPlayers       *int32
	MaxPlayers       *int32
	ActionType       string
	ActionValue      string
	IncludesGreenFee bool
	IncludesCaddy    bool
	IncludesCart     bool
	ExtraConditions  *string
	ExtraMeta        []byte
}

type CreatePromotionParams struct {
	Code        string
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
	Priority    int32
	Stacking    string
	Bands       []BandParams
}

type CatalogCommands interface {
	CreatePriceItem(ctx context.Context, params CreatePriceItemParams) (*queries.PriceItemView, error)
	UpdatePriceItem(ctx context.Context, id int64, params UpdatePriceItemParams) (*queries.PriceItemView, error)
	CreatePromotion(ctx context.Context, params CreatePromotionParams) (int64, error)
	DeletePromotion(ctx context.Context, id int64) error
}

type catalogCommandsImpl struct {
	priceItemRepo PriceItemRepository
	promotionRepo PromotionRepository
}

func NewCatalogCommands(priceItemRepo PriceItemRepository, promotionRepo PromotionRepository) CatalogCommands {
	return &catalogCommandsImpl{
		priceItemRepo: priceItemRepo,
		promotionRepo: promotionRepo,
	}
}

func (c *catalogCommandsImpl) CreatePriceItem(ctx context.Context, params CreatePriceItemParams) (*queries.PriceItemView, error) {
	unitPrice, err := decimal.NewFromString(params.UnitPrice)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid unit price"), ErrDomainValidation)
	}

	currency := params.Currency
	if currency == "" {
		currency = "THB"
	}

	item := pricing.PriceItem{
		Code:      params.Code,
		Name:      params.Name,
		UnitPrice: unitPrice,
		Currency:  currency,
		Category:  pricing.ItemCategory(params.Category),
		IsActive:  params.IsActive,
	}
	if err := item.Validate(); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if item.IsActive {
		if err := c.ensureCategoryFree(ctx, item.Category, 0); err != nil {
			return nil, err
		}
	}

	id, err := c.priceItemRepo.Create(ctx, item)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateCode)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	item.ID = id

	return queries.NewPriceItemView(item), nil
}

func (c *catalogCommandsImpl) UpdatePriceItem(ctx context.Context, id int64, params UpdatePriceItemParams) (*queries.PriceItemView, error) {
	item, err := c.priceItemRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPriceItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	item.Name = patch.Coalesce(params.Name, item.Name)
	if params.UnitPrice != nil {
		unitPrice, parseErr := decimal.NewFromString(*params.UnitPrice)
		if parseErr != nil {
			return nil, errs.Mark(errs.Wrap(parseErr, "invalid unit price"), ErrDomainValidation)
		}
		item.UnitPrice = unitPrice
	}
	item.IsActive = patch.Coalesce(params.IsActive, item.IsActive)

	if err := item.Validate(); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if item.IsActive {
		if err := c.ensureCategoryFree(ctx, item.Category, item.ID); err != nil {
			return nil, err
		}
	}

	if err := c.priceItemRepo.Update(ctx, *item); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return queries.NewPriceItemView(*item), nil
}

func (c *catalogCommandsImpl) ensureCategoryFree(ctx context.Context, category pricing.ItemCategory, excludeID int64) error {
	exists, err := c.priceItemRepo.ActiveExistsInCategory(ctx, category, excludeID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return ErrDuplicateActiveItem
	}
	return nil
}

func (c *catalogCommandsImpl) CreatePromotion(ctx context.Context, params CreatePromotionParams) (int64, error) {
	if len(params.Bands) == 0 {
		return 0, ErrPromotionNeedsBands
	}

	promo := pricing.Promotion{
		Code:        params.Code,
		Name:        params.Name,
		Description: params.Description,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		IsActive:    params.IsActive,
		Priority:    params.Priority,
		Stacking:    pricing.Stacking(params.Stacking),
	}
	if err := promo.Validate(); err != nil {
		return 0, errs.Mark(err, ErrDomainValidation)
	}

	bands := make([]pricing.Band, len(params.Bands))
	for i, bp := range params.Bands {
		band, err := toBand(bp)
		if err != nil {
			return 0, errs.Mark(err, ErrDomainValidation)
		}
		bands[i] = band
	}

	id, err := c.promotionRepo.CreateWithBands(ctx, promo, bands)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, errs.Mark(err, ErrDuplicateCode)
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *catalogCommandsImpl) DeletePromotion(ctx context.Context, id int64) error {
	if err := c.promotionRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPromotionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func toBand(params BandParams) (pricing.Band, error) {
	actionValue, err := decimal.NewFromString(params.ActionValue)
	if err != nil {
		return pricing.Band{}, errs.Wrap(err, "invalid action value")
	}

	var segment *pricing.PlayerSegment
	if params.PlayerSegment != nil {
		s := pricing.PlayerSegment(*params.PlayerSegment)
		segment = &s
	}

	dayGroup := pricing.DayGroup(params.DayGroup)
	if params.DayGroup == "" {
		dayGroup = pricing.DayGroupAll
	}

	band := pricing.Band{
		DayGroup:         dayGroup,
		DowMask:          pricing.DowMask(params.DowMask),
		Window:           pricing.TimeWindow{From: pricing.TimeOfDay(params.TimeFrom), To: pricing.TimeOfDay(params.TimeTo)},
		CourseID:         params.CourseID,
		Segment:          segment,
		MinLeadDays:      params.MinLeadDays,
		MinPlayers:       params.MinPlayers,
		MaxPlayers:       params.MaxPlayers,
		ActionType:       pricing.ActionType(params.ActionType),
		ActionValue:      actionValue,
		IncludesGreenFee: params.IncludesGreenFee,
		IncludesCaddy:    params.IncludesCaddy,
		IncludesCart:     params.IncludesCart,
		ExtraConditions:  params.ExtraConditions,
		ExtraMeta:        params.ExtraMeta,
	}
	if err := band.Validate(); err != nil {
		return pricing.Band{}, err
	}
	return band, nil
}
