package queries

import (
	"context"

	"golfclub-backend/internal/domain/pricing"
)

type CatalogQueries interface {
	ListPriceItems(ctx context.Context) ([]*PriceItemView, error)
	ListPromotions(ctx context.Context) ([]*PromotionView, error)
}

// Admin-facing read surfaces; unlike the quote path they return inactive
// rows too.

type PriceItemAdminReadStore interface {
	ListItems(ctx context.Context) ([]pricing.PriceItem, error)
}

type PromotionAdminReadStore interface {
	ListPromotionsWithBands(ctx context.Context) ([]pricing.Promotion, map[int64][]pricing.Band, error)
}

type catalogQueriesImpl struct {
	items      PriceItemAdminReadStore
	promotions PromotionAdminReadStore
}

func NewCatalogQueries(items PriceItemAdminReadStore, promotions PromotionAdminReadStore) CatalogQueries {
	return &catalogQueriesImpl{items: items, promotions: promotions}
}

func (q *catalogQueriesImpl) ListPriceItems(ctx context.Context) ([]*PriceItemView, error) {
	items, err := q.items.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*PriceItemView, len(items))
	for i, item := range items {
		views[i] = NewPriceItemView(item)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListPromotions(ctx context.Context) ([]*PromotionView, error) {
	promotions, bandsByPromotion, err := q.promotions.ListPromotionsWithBands(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*PromotionView, len(promotions))
	for i, p := range promotions {
		views[i] = NewPromotionView(p, bandsByPromotion[p.ID])
	}
	return views, nil
}
