//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"golfclub-backend/internal/domain/booking"
	"golfclub-backend/internal/domain/pricing"
	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/clock"
	"golfclub-backend/internal/pkg/errs"
	"golfclub-backend/internal/usecase/commands"
	"golfclub-backend/internal/usecase/queries"
	commandsmock "golfclub-backend/tests/mock/commands"
	queriesmock "golfclub-backend/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	bookingRepo *commandsmock.MockBookingRepository
	quoter      *queriesmock.MockQuoteQueries
	bookings    commands.BookingCommands
	now         time.Time
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.quoter = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.now = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	s.bookings = commands.NewBookingCommands(s.bookingRepo, s.quoter, clock.NewMockClock(s.now))
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func validCreateBookingParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		MemberNumber: "M-1042",
		Segment:      "THAI",
		CourseID:     1,
		TeeDate:      time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		TeeTime:      "07:30",
		NumPlayers:   4,
	}
}

func promotionQuote() pricing.BestPriceResult {
	promotionID := int64(10)
	code := "WEEKEND20"
	name := "Weekend Early Bird"
	return pricing.BestPriceResult{
		FinalPrice:       decimal.NewFromInt(1840),
		BasePrice:        decimal.NewFromInt(2300),
		Source:           pricing.SourcePromotion,
		PromotionID:      &promotionID,
		PromotionCode:    &code,
		PromotionName:    &name,
		IncludesGreenFee: true,
		IncludesCaddy:    true,
		IncludesCart:     true,
	}
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("success: freezes the server-side quote into the booking", func() {
		params := validCreateBookingParams()

		s.quoter.EXPECT().ResolveBestPrice(gomock.Any(), queries.QuoteParams{
			TeeDate:    params.TeeDate,
			TeeTime:    params.TeeTime,
			CourseID:   params.CourseID,
			Segment:    params.Segment,
			NumPlayers: params.NumPlayers,
		}).Return(promotionQuote(), nil)

		var persisted *booking.Booking
		s.bookingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				persisted = b
				return nil
			})

		view, err := s.bookings.CreateBooking(context.Background(), params)
		s.Require().NoError(err)
		s.Equal("1840.00", view.FinalPrice)
		s.Equal("2300.00", view.BasePrice)
		s.Equal("PROMOTION", view.PriceSource)
		s.Equal("BOOKED", view.Status)
		s.Require().NotNil(persisted)
		s.Equal(booking.StatusBooked, persisted.Status())
	})

	s.Run("error: quote rejection propagates as domain validation", func() {
		params := validCreateBookingParams()
		params.TeeTime = "7:30"

		s.quoter.EXPECT().ResolveBestPrice(gomock.Any(), gomock.Any()).
			Return(pricing.BestPriceResult{}, queries.ErrInvalidQuoteRequest)

		_, err := s.bookings.CreateBooking(context.Background(), params)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("error: party size above the limit never reaches the repository", func() {
		params := validCreateBookingParams()
		params.NumPlayers = 6

		s.quoter.EXPECT().ResolveBestPrice(gomock.Any(), gomock.Any()).
			Return(promotionQuote(), nil)

		_, err := s.bookings.CreateBooking(context.Background(), params)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})
}

func (s *BookingCommandsTestSuite) existingBooking(status booking.Status) *booking.Booking {
	return booking.ReconstructBooking(
		uuid.New(),
		"M-1042",
		pricing.SegmentThai,
		1,
		time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		"07:30",
		4,
		status,
		decimal.NewFromInt(1840), decimal.NewFromInt(2300),
		pricing.SourcePromotion,
		nil,
		true, true, true,
		s.now, s.now,
	)
}

func (s *BookingCommandsTestSuite) TestUpdateStatus() {
	s.Run("success: booked check-in", func() {
		b := s.existingBooking(booking.StatusBooked)

		s.bookingRepo.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)
		s.bookingRepo.EXPECT().UpdateStatus(gomock.Any(), b.ID(), booking.StatusCheckedIn).Return(nil)

		view, err := s.bookings.UpdateStatus(context.Background(), b.ID(), "CHECKED_IN")
		s.Require().NoError(err)
		s.Equal("CHECKED_IN", view.Status)
	})

	s.Run("error: cancelled booking is terminal", func() {
		b := s.existingBooking(booking.StatusCancelled)

		s.bookingRepo.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)

		_, err := s.bookings.UpdateStatus(context.Background(), b.ID(), "CHECKED_IN")
		s.ErrorIs(err, commands.ErrIllegalTransition)
	})

	s.Run("error: unknown booking", func() {
		id := uuid.New()
		s.bookingRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound))

		_, err := s.bookings.UpdateStatus(context.Background(), id, "CHECKED_IN")
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})
}
