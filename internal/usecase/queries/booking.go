package queries

import (
	"context"

	"golfclub-backend/internal/domain/booking"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByMember(ctx context.Context, memberNumber string) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByMemberNumber(ctx context.Context, memberNumber string) ([]*booking.Booking, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return NewBookingView(b), nil
}

func (q *bookingQueriesImpl) ListByMember(ctx context.Context, memberNumber string) ([]*BookingView, error) {
	bookings, err := q.readStore.FindByMemberNumber(ctx, memberNumber)
	if err != nil {
		return nil, err
	}
	views := make([]*BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = NewBookingView(b)
	}
	return views, nil
}
