package queries

import (
	"context"
	"log/slog"
	"time"

	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/pkg/clock"
	"golfclub-backend/internal/pkg/errs"
)

var ErrInvalidQuoteRequest = errs.New("invalid quote request")

// QuoteParams is the caller-supplied pricing context.
type QuoteParams struct {
	TeeDate    time.Time
	TeeTime    string
	CourseID   int64
	Segment    string
	NumPlayers int32
}

type PriceCatalogReadStore interface {
	ListActiveItems(ctx context.Context) ([]pricing.PriceItem, error)
}

type PromotionCatalogReadStore interface {
	// ListCandidateBands returns the bands of every active promotion whose
	// date range contains date, joined with promotion priority and identity.
	ListCandidateBands(ctx context.Context, date time.Time) ([]pricing.CandidateBand, error)
}

type QuoteQueries interface {
	// BestPrice returns a priced quote. It fails only on malformed input;
	// catalog read failures degrade to a BASE-priced result because pricing
	// must never block a booking attempt.
	BestPrice(ctx context.Context, params QuoteParams) (*QuoteView, error)

	// ResolveBestPrice is BestPrice without the view conversion, for callers
	// that record the decision (booking creation).
	ResolveBestPrice(ctx context.Context, params QuoteParams) (pricing.BestPriceResult, error)
}

type quoteQueriesImpl struct {
	priceCatalog     PriceCatalogReadStore
	promotionCatalog PromotionCatalogReadStore
	resolver         *pricing.Resolver
	clock            clock.Clock
	logger           *slog.Logger
}

func NewQuoteQueries(
	priceCatalog PriceCatalogReadStore,
	promotionCatalog PromotionCatalogReadStore,
	resolver *pricing.Resolver,
	clock clock.Clock,
	logger *slog.Logger,
) QuoteQueries {
	return &quoteQueriesImpl{
		priceCatalog:     priceCatalog,
		promotionCatalog: promotionCatalog,
		resolver:         resolver,
		clock:            clock,
		logger:           logger,
	}
}

func (q *quoteQueriesImpl) BestPrice(ctx context.Context, params QuoteParams) (*QuoteView, error) {
	result, err := q.ResolveBestPrice(ctx, params)
	if err != nil {
		return nil, err
	}
	return NewQuoteView(result), nil
}

func (q *quoteQueriesImpl) ResolveBestPrice(ctx context.Context, params QuoteParams) (pricing.BestPriceResult, error) {
	req, err := q.toRequest(params)
	if err != nil {
		return pricing.BestPriceResult{}, errs.Mark(err, ErrInvalidQuoteRequest)
	}

	// Catalog failures degrade instead of propagating: worst case the member
	// sees the base (or zero) price with no promotion applied.
	items, err := q.priceCatalog.ListActiveItems(ctx)
	if err != nil {
		q.logger.Warn("price catalog unavailable, quoting from partial data", "error", err.Error())
		items = nil
	}
	basePrice := pricing.ComputeBasePrice(items)

	candidates, err := q.promotionCatalog.ListCandidateBands(ctx, params.TeeDate)
	if err != nil {
		q.logger.Warn("promotion catalog unavailable, quoting base price", "error", err.Error())
		return pricing.BaseResult(basePrice), nil
	}

	return q.resolver.Resolve(req, basePrice, candidates), nil
}

func (q *quoteQueriesImpl) toRequest(params QuoteParams) (pricing.Request, error) {
	teeTime, err := pricing.NewTimeOfDay(params.TeeTime)
	if err != nil {
		return pricing.Request{}, err
	}
	segment := pricing.PlayerSegment(params.Segment)
	if !segment.IsValid() {
		return pricing.Request{}, pricing.ErrInvalidPlayerSegment
	}
	if params.NumPlayers < 1 {
		return pricing.Request{}, errs.New("number of players must be positive")
	}
	if params.TeeDate.IsZero() {
		return pricing.Request{}, errs.New("tee date is required")
	}

	return pricing.Request{
		TeeDate:    params.TeeDate,
		TeeTime:    teeTime,
		CourseID:   params.CourseID,
		Segment:    segment,
		NumPlayers: params.NumPlayers,
		BookedAt:   q.clock.Now(),
	}, nil
}
