package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeUnitPrice   = errors.New("unit price cannot be negative")
	ErrInvalidItemCategory = errors.New("invalid price item category")
)

// PriceItem is an active unit-priced line in the price catalog. The current
// price is read only at charge-creation time; historical charges keep the
// price they were created with.
type PriceItem struct {
	ID        int64
	Code      string
	Name      string
	UnitPrice decimal.Decimal
	Currency  string
	Category  ItemCategory
	IsActive  bool
}

func (p PriceItem) Validate() error {
	if !p.Category.IsValid() {
		return ErrInvalidItemCategory
	}
	if p.UnitPrice.IsNegative() {
		return ErrNegativeUnitPrice
	}
	return nil
}

// baseCategories are the components that make up the standard tee-time price.
var baseCategories = []ItemCategory{CategoryGreenFee, CategoryCaddy, CategoryCart}

// ComputeBasePrice sums the unit price of the single active item in each of
// the green fee, caddy and cart categories. A category with no active item
// contributes zero. If a category somehow carries more than one active item
// (the write side rejects this), the lowest ID wins so the result stays
// deterministic.
func ComputeBasePrice(items []PriceItem) decimal.Decimal {
	picked := make(map[ItemCategory]PriceItem, len(baseCategories))
	for _, item := range items {
		if !item.IsActive {
			continue
		}
		current, ok := picked[item.Category]
		if !ok || item.ID < current.ID {
			picked[item.Category] = item
		}
	}

	total := decimal.Zero
	for _, cat := range baseCategories {
		if item, ok := picked[cat]; ok {
			total = total.Add(item.UnitPrice)
		}
	}
	return total
}
