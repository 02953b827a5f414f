package repository

import (
	"context"

	"golfclub-backend/internal/domain/booking"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/errs"
	"golfclub-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool      *pgxpool.Pool
	readStore BookingFinder
}

// BookingFinder resolves the current persisted state before a status
// transition. The read store already knows how to hydrate a booking.
type BookingFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

func NewBookingRepository(pool *pgxpool.Pool, readStore BookingFinder) *BookingRepository {
	return &BookingRepository{pool: pool, readStore: readStore}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings (id, member_number, segment, course_id, tee_date, tee_time, num_players,
			status, final_price, base_price, price_source, promotion_id,
			includes_green_fee, includes_caddy, includes_cart)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		pgconv.UUIDToPgtype(b.ID()), b.MemberNumber(), b.Segment().String(), b.CourseID(),
		b.TeeDate(), b.TeeTime().String(), b.NumPlayers(), b.Status().String(),
		pgconv.NumericFromDecimal(b.FinalPrice()), pgconv.NumericFromDecimal(b.BasePrice()),
		b.PriceSource().String(), pgconv.Int64PtrToPgtype(b.PromotionID()),
		b.IncludesGreenFee(), b.IncludesCaddy(), b.IncludesCart())
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("booking references unknown course", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.readStore.FindByID(ctx, id)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", errs.New("no rows updated"), infra.KindNotFound)
	}
	return nil
}
