package commands

import (
	"context"

	"golfclub-backend/internal/domain/booking"
	"golfclub-backend/internal/domain/pricing"

	"github.com/google/uuid"
)

// Write-side repository ports. Implementations live in internal/infra.

type PriceItemRepository interface {
	Create(ctx context.Context, item pricing.PriceItem) (int64, error)
	Update(ctx context.Context, item pricing.PriceItem) error
	FindByID(ctx context.Context, id int64) (*pricing.PriceItem, error)
	// ActiveExistsInCategory reports whether another active item already
	// occupies the category. The base price is defined over one active item
	// per category, so the write side keeps the catalog unambiguous.
	ActiveExistsInCategory(ctx context.Context, category pricing.ItemCategory, excludeID int64) (bool, error)
}

type PromotionRepository interface {
	// CreateWithBands persists the promotion and its bands in one
	// transaction and returns the promotion ID.
	CreateWithBands(ctx context.Context, promo pricing.Promotion, bands []pricing.Band) (int64, error)
	// Delete removes the promotion; bands go with it (cascade).
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
