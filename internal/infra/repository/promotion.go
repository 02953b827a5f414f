package repository

import (
	"context"

	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/errs"
	"golfclub-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PromotionRepository struct {
	pool *pgxpool.Pool
}

func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{pool: pool}
}

// CreateWithBands inserts the promotion and all of its bands in one
// transaction so a promotion is never visible half-populated.
func (r *PromotionRepository) CreateWithBands(ctx context.Context, promo pricing.Promotion, bands []pricing.Band) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var promotionID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO promotions (code, name, description, start_date, end_date, is_active, priority, stacking)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		promo.Code, promo.Name, pgconv.StringPtrToPgtype(promo.Description),
		promo.StartDate, promo.EndDate, promo.IsActive, promo.Priority, promo.Stacking.String()).
		Scan(&promotionID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, infra.WrapRepoErr("promotion code already exists", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create promotion", err)
	}

	for _, band := range bands {
		var segment *string
		if band.Segment != nil {
			s := band.Segment.String()
			segment = &s
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO promotion_bands (promotion_id, day_group, dow_mask, time_from, time_to,
				course_id, player_segment, min_lead_days, min_players, max_players,
				action_type, action_value, includes_green_fee, includes_caddy, includes_cart,
				extra_conditions, extra_meta)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			promotionID, band.DayGroup.String(), int16(band.DowMask),
			band.Window.From.String(), band.Window.To.String(),
			pgconv.Int64PtrToPgtype(band.CourseID), pgconv.StringPtrToPgtype(segment),
			pgconv.Int32PtrToPgtype(band.MinLeadDays), pgconv.Int32PtrToPgtype(band.MinPlayers),
			pgconv.Int32PtrToPgtype(band.MaxPlayers),
			band.ActionType.String(), pgconv.NumericFromDecimal(band.ActionValue),
			band.IncludesGreenFee, band.IncludesCaddy, band.IncludesCart,
			pgconv.StringPtrToPgtype(band.ExtraConditions), band.ExtraMeta)
		if err != nil {
			if isForeignKeyViolation(err) {
				return 0, infra.WrapRepoErr("band references unknown course", err, infra.KindForeignKeyViolated)
			}
			return 0, infra.WrapRepoErr("failed to create promotion band", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, infra.WrapRepoErr("failed to commit promotion", err)
	}
	return promotionID, nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete promotion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("promotion not found", errs.New("no rows deleted"), infra.KindNotFound)
	}
	return nil
}
