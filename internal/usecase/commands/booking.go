package commands

import (
	"context"
	"time"

	"golfclub-backend/internal/domain/booking"
	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/clock"
	"golfclub-backend/internal/pkg/errs"
	"golfclub-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrIllegalTransition = errs.New("illegal status transition")
)

type CreateBookingParams struct {
	MemberNumber string
	Segment      string
	CourseID     int64
	TeeDate      time.Time
	TeeTime      string
	NumPlayers   int32
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo BookingRepository
	quoter      queries.QuoteQueries
	clock       clock.Clock
}

func NewBookingCommands(bookingRepo BookingRepository, quoter queries.QuoteQueries, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo: bookingRepo,
		quoter:      quoter,
		clock:       clock,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	// The quote is resolved server-side so the recorded price is always the
	// one the engine produced, never a client-supplied figure.
	quote, err := c.quoter.ResolveBestPrice(ctx, queries.QuoteParams{
		TeeDate:    params.TeeDate,
		TeeTime:    params.TeeTime,
		CourseID:   params.CourseID,
		Segment:    params.Segment,
		NumPlayers: params.NumPlayers,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	b, err := booking.NewBooking(
		params.MemberNumber,
		pricing.PlayerSegment(params.Segment),
		params.CourseID,
		params.TeeDate,
		pricing.TimeOfDay(params.TeeTime),
		params.NumPlayers,
		quote,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.bookingRepo.Create(ctx, b); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return queries.NewBookingView(b), nil
}

func (c *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error) {
	b, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := b.TransitionTo(booking.Status(status)); err != nil {
		return nil, errs.Mark(err, ErrIllegalTransition)
	}

	if err := c.bookingRepo.UpdateStatus(ctx, id, b.Status()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return queries.NewBookingView(b), nil
}
