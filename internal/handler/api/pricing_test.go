//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"golfclub-backend/internal/handler/api"
	"golfclub-backend/internal/usecase/queries"
	"golfclub-backend/tests/common/httptest"
	"golfclub-backend/tests/common/testutil"
	queriesmock "golfclub-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockQuote *queriesmock.MockQuoteQueries
	handler   *api.PricingHandler
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQuote = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewPricingHandler(s.mockQuote)

	s.router.POST("/pricing/quote", s.handler.Quote)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func quoteRequestBody() map[string]any {
	return map[string]any{
		"tee_date":    "2026-08-29",
		"tee_time":    "07:30",
		"course_id":   1,
		"segment":     "THAI",
		"num_players": 4,
	}
}

func (s *PricingHandlerTestSuite) TestQuote() {
	url := "/pricing/quote"

	s.Run("success: returns 200 with the priced quote", func() {
		promotionID := int64(10)
		s.mockQuote.EXPECT().BestPrice(gomock.Any(), gomock.Any()).
			Return(&queries.QuoteView{
				FinalPrice:       "1840.00",
				BasePrice:        "2300.00",
				Currency:         "THB",
				Source:           "PROMOTION",
				PromotionID:      &promotionID,
				IncludesGreenFee: true,
				IncludesCaddy:    true,
				IncludesCart:     true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, quoteRequestBody(), "")

		var response queries.QuoteView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("1840.00", response.FinalPrice)
		s.Equal("PROMOTION", response.Source)
	})

	s.Run("error: 400 on malformed body", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing tee_date", mutate: testutil.Field("tee_date", nil)},
			{name: "bad tee_date format", mutate: testutil.Field("tee_date", "29-08-2026")},
			{name: "zero players", mutate: testutil.Field("num_players", 0)},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := quoteRequestBody()
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 400 when the engine rejects the request", func() {
		s.mockQuote.EXPECT().BestPrice(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidQuoteRequest).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, quoteRequestBody(), "")
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Invalid quote request")
	})
}
