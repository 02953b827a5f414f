package repository

import (
	"context"

	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PriceItemRepository struct {
	pool *pgxpool.Pool
}

func NewPriceItemRepository(pool *pgxpool.Pool) *PriceItemRepository {
	return &PriceItemRepository{pool: pool}
}

func (r *PriceItemRepository) Create(ctx context.Context, item pricing.PriceItem) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO price_items (code, name, unit_price, currency, category, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		item.Code, item.Name, pgconv.NumericFromDecimal(item.UnitPrice),
		item.Currency, item.Category.String(), item.IsActive).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, infra.WrapRepoErr("price item code already exists", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create price item", err)
	}
	return id, nil
}

func (r *PriceItemRepository) Update(ctx context.Context, item pricing.PriceItem) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE price_items
		SET code = $2, name = $3, unit_price = $4, currency = $5, category = $6, is_active = $7,
		    updated_at = now()
		WHERE id = $1`,
		item.ID, item.Code, item.Name, pgconv.NumericFromDecimal(item.UnitPrice),
		item.Currency, item.Category.String(), item.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("price item code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update price item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("price item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PriceItemRepository) FindByID(ctx context.Context, id int64) (*pricing.PriceItem, error) {
	var (
		item      pricing.PriceItem
		unitPrice pgtype.Numeric
		category  string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, code, name, unit_price, currency, category, is_active
		FROM price_items WHERE id = $1`, id).
		Scan(&item.ID, &item.Code, &item.Name, &unitPrice, &item.Currency, &category, &item.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("price item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find price item", err)
	}

	price, err := pgconv.DecimalFromNumeric(unitPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert price item row", err)
	}
	item.UnitPrice = price
	item.Category = pricing.ItemCategory(category)
	return &item, nil
}

func (r *PriceItemRepository) ActiveExistsInCategory(ctx context.Context, category pricing.ItemCategory, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM price_items
			WHERE category = $1 AND is_active AND id <> $2
		)`, category.String(), excludeID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active items in category", err)
	}
	return exists, nil
}
