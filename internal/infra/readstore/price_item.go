package readstore

import (
	"context"

	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const priceItemColumns = `id, code, name, unit_price, currency, category, is_active`

type PriceItemReadStore struct {
	pool *pgxpool.Pool
}

func NewPriceItemReadStore(pool *pgxpool.Pool) *PriceItemReadStore {
	return &PriceItemReadStore{pool: pool}
}

func (r *PriceItemReadStore) ListActiveItems(ctx context.Context) ([]pricing.PriceItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+priceItemColumns+` FROM price_items WHERE is_active ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active price items", err)
	}
	defer rows.Close()

	return scanPriceItems(rows)
}

func (r *PriceItemReadStore) ListItems(ctx context.Context) ([]pricing.PriceItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+priceItemColumns+` FROM price_items ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list price items", err)
	}
	defer rows.Close()

	return scanPriceItems(rows)
}

func scanPriceItems(rows pgx.Rows) ([]pricing.PriceItem, error) {
	var items []pricing.PriceItem
	for rows.Next() {
		item, err := scanPriceItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan price item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate price item rows", err)
	}
	return items, nil
}

func scanPriceItem(row pgx.Row) (pricing.PriceItem, error) {
	var (
		item      pricing.PriceItem
		unitPrice pgtype.Numeric
		category  string
	)
	if err := row.Scan(&item.ID, &item.Code, &item.Name, &unitPrice, &item.Currency, &category, &item.IsActive); err != nil {
		return pricing.PriceItem{}, err
	}

	price, err := pgconv.DecimalFromNumeric(unitPrice)
	if err != nil {
		return pricing.PriceItem{}, err
	}
	item.UnitPrice = price
	item.Category = pricing.ItemCategory(category)
	return item, nil
}
