package pricing

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// CandidateBand is a band joined with the attributes of its owning promotion
// that the resolver needs for ranking and result assembly.
type CandidateBand struct {
	Band
	PromotionCode string
	PromotionName string
	Priority      int32
	Stacking      Stacking
}

// BestPriceResult is the outcome of one resolution. It is computed fresh per
// request and never persisted.
type BestPriceResult struct {
	FinalPrice       decimal.Decimal
	BasePrice        decimal.Decimal
	Source           PriceSource
	PromotionID      *int64
	PromotionCode    *string
	PromotionName    *string
	IncludesGreenFee bool
	IncludesCaddy    bool
	IncludesCart     bool
}

// BaseResult is the fallback used when nothing matches or the catalogs are
// unreadable. The base price is assumed to cover green fee, caddy and cart.
func BaseResult(basePrice decimal.Decimal) BestPriceResult {
	return BestPriceResult{
		FinalPrice:       basePrice,
		BasePrice:        basePrice,
		Source:           SourceBase,
		IncludesGreenFee: true,
		IncludesCaddy:    true,
		IncludesCart:     true,
	}
}

// Resolver selects the single best-matching band for a request and applies
// its price action. It holds no state beyond a logger and is safe for
// concurrent use.
type Resolver struct {
	logger *slog.Logger
}

func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve filters candidates to those whose scope matches the request, ranks
// survivors by promotion priority ascending, then band specificity
// descending, then band ID ascending, and applies the winner's action.
// Malformed bands are skipped, not fatal. Exactly one band can win; with no
// survivors the unmodified base price is returned.
func (r *Resolver) Resolve(req Request, basePrice decimal.Decimal, candidates []CandidateBand) BestPriceResult {
	var best *CandidateBand
	for i := range candidates {
		c := &candidates[i]
		if err := c.Validate(); err != nil {
			r.logger.Warn("skipping malformed promotion band",
				slog.Int64("band_id", c.ID),
				slog.Int64("promotion_id", c.PromotionID),
				slog.String("reason", err.Error()),
			)
			continue
		}
		if !c.Matches(req) {
			continue
		}
		if best == nil || beats(c, best) {
			best = c
		}
	}

	if best == nil {
		return BaseResult(basePrice)
	}

	promotionID := best.PromotionID
	promotionCode := best.PromotionCode
	promotionName := best.PromotionName
	return BestPriceResult{
		FinalPrice:       best.Apply(basePrice),
		BasePrice:        basePrice,
		Source:           SourcePromotion,
		PromotionID:      &promotionID,
		PromotionCode:    &promotionCode,
		PromotionName:    &promotionName,
		IncludesGreenFee: best.IncludesGreenFee,
		IncludesCaddy:    best.IncludesCaddy,
		IncludesCart:     best.IncludesCart,
	}
}

// beats reports whether a should win over b. The ordering is total over
// distinct band IDs, so the winner does not depend on candidate order.
func beats(a, b *CandidateBand) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if sa, sb := a.Specificity(), b.Specificity(); sa != sb {
		return sa > sb
	}
	return a.ID < b.ID
}
