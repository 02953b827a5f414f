package readstore

import (
	"context"
	"time"

	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bandColumns = `b.id, b.promotion_id, b.day_group, b.dow_mask, b.time_from, b.time_to,
	b.course_id, b.player_segment, b.min_lead_days, b.min_players, b.max_players,
	b.action_type, b.action_value, b.includes_green_fee, b.includes_caddy, b.includes_cart,
	b.extra_conditions, b.extra_meta`

type PromotionReadStore struct {
	pool *pgxpool.Pool
}

func NewPromotionReadStore(pool *pgxpool.Pool) *PromotionReadStore {
	return &PromotionReadStore{pool: pool}
}

// ListCandidateBands is the single query the resolver path issues: every band
// of an active promotion whose inclusive date range contains date, joined
// with the owning promotion's ranking attributes.
func (r *PromotionReadStore) ListCandidateBands(ctx context.Context, date time.Time) ([]pricing.CandidateBand, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bandColumns+`, p.code, p.name, p.priority, p.stacking
		FROM promotion_bands b
		JOIN promotions p ON p.id = b.promotion_id
		WHERE p.is_active AND p.start_date <= $1 AND p.end_date >= $1
		ORDER BY b.id`,
		pgconv.TimeToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list candidate bands", err)
	}
	defer rows.Close()

	var candidates []pricing.CandidateBand
	for rows.Next() {
		candidate, err := scanCandidateBand(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate band row", err)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate candidate band rows", err)
	}
	return candidates, nil
}

func (r *PromotionReadStore) ListPromotionsWithBands(ctx context.Context) ([]pricing.Promotion, map[int64][]pricing.Band, error) {
	promoRows, err := r.pool.Query(ctx, `
		SELECT id, code, name, description, start_date, end_date, is_active, priority, stacking
		FROM promotions ORDER BY priority, id`)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list promotions", err)
	}
	defer promoRows.Close()

	var promotions []pricing.Promotion
	for promoRows.Next() {
		var (
			p           pricing.Promotion
			description pgtype.Text
			stacking    string
		)
		if err := promoRows.Scan(&p.ID, &p.Code, &p.Name, &description,
			&p.StartDate, &p.EndDate, &p.IsActive, &p.Priority, &stacking); err != nil {
			return nil, nil, infra.WrapRepoErr("failed to scan promotion row", err)
		}
		p.Description = pgconv.StringPtrFromPgtype(description)
		p.Stacking = pricing.Stacking(stacking)
		promotions = append(promotions, p)
	}
	if err := promoRows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to iterate promotion rows", err)
	}

	bandRows, err := r.pool.Query(ctx, `
		SELECT `+bandColumns+` FROM promotion_bands b ORDER BY b.promotion_id, b.id`)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list promotion bands", err)
	}
	defer bandRows.Close()

	bandsByPromotion := make(map[int64][]pricing.Band)
	for bandRows.Next() {
		band, err := scanBand(bandRows)
		if err != nil {
			return nil, nil, infra.WrapRepoErr("failed to scan promotion band row", err)
		}
		bandsByPromotion[band.PromotionID] = append(bandsByPromotion[band.PromotionID], band)
	}
	if err := bandRows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to iterate promotion band rows", err)
	}

	return promotions, bandsByPromotion, nil
}

func scanBand(row pgx.Row) (pricing.Band, error) {
	var (
		band            pricing.Band
		dayGroup        string
		dowMask         int16
		timeFrom        string
		timeTo          string
		courseID        pgtype.Int8
		playerSegment   pgtype.Text
		minLeadDays     pgtype.Int4
		minPlayers      pgtype.Int4
		maxPlayers      pgtype.Int4
		actionType      string
		actionValue     pgtype.Numeric
		extraConditions pgtype.Text
	)
	if err := row.Scan(&band.ID, &band.PromotionID, &dayGroup, &dowMask, &timeFrom, &timeTo,
		&courseID, &playerSegment, &minLeadDays, &minPlayers, &maxPlayers,
		&actionType, &actionValue, &band.IncludesGreenFee, &band.IncludesCaddy, &band.IncludesCart,
		&extraConditions, &band.ExtraMeta); err != nil {
		return pricing.Band{}, err
	}

	value, err := pgconv.DecimalFromNumeric(actionValue)
	if err != nil {
		return pricing.Band{}, err
	}

	band.DayGroup = pricing.DayGroup(dayGroup)
	band.DowMask = pricing.DowMask(dowMask)
	band.Window = pricing.TimeWindow{From: pricing.TimeOfDay(timeFrom), To: pricing.TimeOfDay(timeTo)}
	band.CourseID = pgconv.Int64PtrFromPgtype(courseID)
	if segment := pgconv.StringPtrFromPgtype(playerSegment); segment != nil {
		s := pricing.PlayerSegment(*segment)
		band.Segment = &s
	}
	band.MinLeadDays = pgconv.Int32PtrFromPgtype(minLeadDays)
	band.MinPlayers = pgconv.Int32PtrFromPgtype(minPlayers)
	band.MaxPlayers = pgconv.Int32PtrFromPgtype(maxPlayers)
	band.ActionType = pricing.ActionType(actionType)
	band.ActionValue = value
	band.ExtraConditions = pgconv.StringPtrFromPgtype(extraConditions)
	return band, nil
}

func scanCandidateBand(row pgx.Row) (pricing.CandidateBand, error) {
	var (
		band            pricing.Band
		dayGroup        string
		dowMask         int16
		timeFrom        string
		timeTo          string
		courseID        pgtype.Int8
		playerSegment   pgtype.Text
		minLeadDays     pgtype.Int4
		minPlayers      pgtype.Int4
		maxPlayers      pgtype.Int4
		actionType      string
		actionValue     pgtype.Numeric
		extraConditions pgtype.Text
		promotionCode   string
		promotionName   string
		priority        int32
		stacking        string
	)
	if err := row.Scan(&band.ID, &band.PromotionID, &dayGroup, &dowMask, &timeFrom, &timeTo,
		&courseID, &playerSegment, &minLeadDays, &minPlayers, &maxPlayers,
		&actionType, &actionValue, &band.IncludesGreenFee, &band.IncludesCaddy, &band.IncludesCart,
		&extraConditions, &band.ExtraMeta,
		&promotionCode, &promotionName, &priority, &stacking); err != nil {
		return pricing.CandidateBand{}, err
	}

	value, err := pgconv.DecimalFromNumeric(actionValue)
	if err != nil {
		return pricing.CandidateBand{}, err
	}

	band.DayGroup = pricing.DayGroup(dayGroup)
	band.DowMask = pricing.DowMask(dowMask)
	band.Window = pricing.TimeWindow{From: pricing.TimeOfDay(timeFrom), To: pricing.TimeOfDay(timeTo)}
	band.CourseID = pgconv.Int64PtrFromPgtype(courseID)
	if segment := pgconv.StringPtrFromPgtype(playerSegment); segment != nil {
		s := pricing.PlayerSegment(*segment)
		band.Segment = &s
	}
	band.MinLeadDays = pgconv.Int32PtrFromPgtype(minLeadDays)
	band.MinPlayers = pgconv.Int32PtrFromPgtype(minPlayers)
	band.MaxPlayers = pgconv.Int32PtrFromPgtype(maxPlayers)
	band.ActionType = pricing.ActionType(actionType)
	band.ActionValue = value
	band.ExtraConditions = pgconv.StringPtrFromPgtype(extraConditions)

	return pricing.CandidateBand{
		Band:          band,
		PromotionCode: promotionCode,
		PromotionName: promotionName,
		Priority:      priority,
		Stacking:      pricing.Stacking(stacking),
	}, nil
}
