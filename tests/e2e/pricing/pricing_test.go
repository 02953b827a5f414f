//go:build e2e

package pricing_test

import (
	"net/http"
	"strconv"
	"testing"

	"golfclub-backend/internal/handler/dto/request"
	"golfclub-backend/internal/handler/dto/response"
	"golfclub-backend/internal/pkg/ptr"
	"golfclub-backend/internal/usecase/queries"
	"golfclub-backend/tests/common/authtest"
	"golfclub-backend/tests/common/httptest"
	"golfclub-backend/tests/e2e"

	"github.com/stretchr/testify/suite"
)

// Saturday / Tuesday far enough out that lead-time conditions always pass.
const (
	weekendTeeDate = "2030-08-03"
	weekdayTeeDate = "2030-08-06"
)

type PricingE2ETestSuite struct {
	e2e.SharedSuite
}

func TestPricingE2ESuite(t *testing.T) {
	suite.Run(t, new(PricingE2ETestSuite))
}

func quoteRequest(teeDate string) request.QuoteRequest {
	return request.QuoteRequest{
		TeeDate:    teeDate,
		TeeTime:    "07:30",
		CourseID:   1,
		Segment:    "THAI",
		NumPlayers: 4,
	}
}

func weekendPromotion() request.CreatePromotionRequest {
	return request.CreatePromotionRequest{
		Code:        "WEEKEND20",
		Name:        "Weekend Morning 20% Off",
		Description: ptr.To("20% off green fee bundles on weekend mornings"),
		StartDate:   "2030-01-01",
		EndDate:     "2030-12-31",
		IsActive:    true,
		Priority:    10,
		Stacking:    "EXCLUSIVE",
		Bands: []request.BandRequest{
			{
				DayGroup:         "WEEKEND",
				TimeFrom:         "06:00",
				TimeTo:           "11:59",
				ActionType:       "DISCOUNT_PERCENT",
				ActionValue:      "20",
				IncludesGreenFee: true,
				IncludesCaddy:    true,
				IncludesCart:     true,
			},
		},
	}
}

func (s *PricingE2ETestSuite) createPromotion(token string, req request.CreatePromotionRequest) int64 {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/promotions", req, token)

	var created response.CreatePromotionResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return created.ID
}

func (s *PricingE2ETestSuite) TestQuote() {
	s.Run("base price when no promotion applies", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/pricing/quote",
			quoteRequest(weekendTeeDate), "")

		var view queries.QuoteView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.Equal("2300.00", view.FinalPrice)
		s.Equal("2300.00", view.BasePrice)
		s.Equal("BASE", view.Source)
		s.Nil(view.PromotionCode)
	})

	s.Run("weekend promotion discounts a Saturday round", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
		s.createPromotion(token, weekendPromotion())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/pricing/quote",
			quoteRequest(weekendTeeDate), "")

		var view queries.QuoteView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.Equal("1840.00", view.FinalPrice)
		s.Equal("2300.00", view.BasePrice)
		s.Equal("PROMOTION", view.Source)
		if s.NotNil(view.PromotionCode) {
			s.Equal("WEEKEND20", *view.PromotionCode)
		}
	})

	s.Run("weekend promotion leaves a Tuesday round at base", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
		s.createPromotion(token, weekendPromotion())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/pricing/quote",
			quoteRequest(weekdayTeeDate), "")

		var view queries.QuoteView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.Equal("2300.00", view.FinalPrice)
		s.Equal("BASE", view.Source)
	})

	s.Run("deleting the promotion restores the base price", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
		promotionID := s.createPromotion(token, weekendPromotion())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/admin/promotions/"+itoa(promotionID), nil, token)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/pricing/quote",
			quoteRequest(weekendTeeDate), "")

		var view queries.QuoteView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.Equal("2300.00", view.FinalPrice)
		s.Equal("BASE", view.Source)
	})

	s.Run("error: malformed tee date is rejected", func() {
		req := quoteRequest(weekendTeeDate)
		req.TeeDate = "03-08-2030"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/pricing/quote", req, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *PricingE2ETestSuite) TestPromotionAdministration() {
	s.Run("error: duplicate promotion code conflicts", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
		s.createPromotion(token, weekendPromotion())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/promotions",
			weekendPromotion(), token)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("error: promotion without bands is rejected", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
		req := weekendPromotion()
		req.Bands = nil

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/promotions", req, token)
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("created promotion appears in the listing with its bands", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", "admin")
		s.createPromotion(token, weekendPromotion())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/promotions", nil, token)

		var views []*queries.PromotionView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &views)
		if s.Len(views, 1) {
			s.Equal("WEEKEND20", views[0].Code)
			s.Len(views[0].Bands, 1)
		}
	})
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
