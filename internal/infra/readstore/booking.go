package readstore

import (
	"context"

	"golfclub-backend/internal/domain/booking"
	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, member_number, segment, course_id, tee_date, tee_time, num_players, status,
	final_price, base_price, price_source, promotion_id,
	includes_green_fee, includes_caddy, includes_cart, created_at, updated_at`

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`,
		pgconv.UUIDToPgtype(id))

	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingReadStore) FindByMemberNumber(ctx context.Context, memberNumber string) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE member_number = $1 ORDER BY tee_date DESC, tee_time DESC`,
		memberNumber)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by member", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return bookings, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id           pgtype.UUID
		memberNumber string
		segment      string
		courseID     int64
		teeDate      pgtype.Date
		teeTime      string
		numPlayers   int32
		status       string
		finalPrice   pgtype.Numeric
		basePrice    pgtype.Numeric
		priceSource  string
		promotionID  pgtype.Int8
		includesGF   bool
		includesCad  bool
		includesCart bool
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &memberNumber, &segment, &courseID, &teeDate, &teeTime,
		&numPlayers, &status, &finalPrice, &basePrice, &priceSource, &promotionID,
		&includesGF, &includesCad, &includesCart, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	final, err := pgconv.DecimalFromNumeric(finalPrice)
	if err != nil {
		return nil, err
	}
	base, err := pgconv.DecimalFromNumeric(basePrice)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		uuid.UUID(id.Bytes),
		memberNumber,
		pricing.PlayerSegment(segment),
		courseID,
		teeDate.Time,
		pricing.TimeOfDay(teeTime),
		numPlayers,
		booking.Status(status),
		final, base,
		pricing.PriceSource(priceSource),
		pgconv.Int64PtrFromPgtype(promotionID),
		includesGF, includesCad, includesCart,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
