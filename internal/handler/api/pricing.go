package api

import (
	"errors"
	"net/http"

	reqdto "golfclub-backend/internal/handler/dto/request"
	"golfclub-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewPricingHandler(quoteQueries queries.QuoteQueries) *PricingHandler {
	return &PricingHandler{
		quoteQueries: quoteQueries,
	}
}

// Quote prices a prospective tee time. Catalog outages never surface here;
// the engine degrades to the base price instead.
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tee date format",
		})
		return
	}

	quote, err := h.quoteQueries.BestPrice(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidQuoteRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid quote request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, quote)
}
