//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"golfclub-backend/internal/handler/api"
	"golfclub-backend/internal/usecase/commands"
	"golfclub-backend/internal/usecase/queries"
	"golfclub-backend/tests/common/httptest"
	commandsmock "golfclub-backend/tests/mock/commands"
	queriesmock "golfclub-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.PATCH("/bookings/:id/status", s.handler.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func createBookingBody() map[string]any {
	return map[string]any{
		"member_number": "M-1042",
		"segment":       "THAI",
		"course_id":     1,
		"tee_date":      "2026-08-29",
		"tee_time":      "07:30",
		"num_players":   4,
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	s.Run("success: returns 201 with the frozen price", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(&queries.BookingView{
				ID:         uuid.New(),
				Status:     "BOOKED",
				FinalPrice: "1840.00",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", createBookingBody(), "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("BOOKED", response.Status)
		s.Equal("1840.00", response.FinalPrice)
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", createBookingBody(), "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 400 on malformed tee date", func() {
		body := createBookingBody()
		body["tee_date"] = "tomorrow"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(&queries.BookingView{ID: id, Status: "BOOKED"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: 404 for unknown booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 for a non-UUID id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/42", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	body := map[string]any{"status": "CHECKED_IN"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "CHECKED_IN").
			Return(&queries.BookingView{ID: id, Status: "CHECKED_IN"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+id.String()+"/status", body, "")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CHECKED_IN", response.Status)
	})

	s.Run("error: 409 on illegal transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, "CHECKED_IN").
			Return(nil, commands.ErrIllegalTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+id.String()+"/status", body, "")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
