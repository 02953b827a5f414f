package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "golfclub-backend/internal/handler/dto/request"
	resdto "golfclub-backend/internal/handler/dto/response"
	"golfclub-backend/internal/usecase/commands"
	"golfclub-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

func (h *CatalogHandler) ListPriceItems(c *gin.Context) {
	items, err := h.catalogQueries.ListPriceItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CatalogHandler) CreatePriceItem(c *gin.Context) {
	var req reqdto.CreatePriceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	item, err := h.catalogCommands.CreatePriceItem(c.Request.Context(), req.ToParams())
	if err != nil {
		h.renderCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CatalogHandler) UpdatePriceItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid price item ID format",
		})
		return
	}

	var req reqdto.UpdatePriceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	item, err := h.catalogCommands.UpdatePriceItem(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.renderCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.catalogQueries.ListPromotions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, promotions)
}

func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	id, err := h.catalogCommands.CreatePromotion(c.Request.Context(), params)
	if err != nil {
		h.renderCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatePromotionResponse{ID: id})
}

func (h *CatalogHandler) DeletePromotion(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID format",
		})
		return
	}

	if err := h.catalogCommands.DeletePromotion(c.Request.Context(), id); err != nil {
		h.renderCatalogError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) renderCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPriceItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Price item not found",
		})
	case errors.Is(err, commands.ErrPromotionNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Promotion not found",
		})
	case errors.Is(err, commands.ErrDuplicateActiveItem):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Category already has an active item",
		})
	case errors.Is(err, commands.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Code already in use",
		})
	case errors.Is(err, commands.ErrPromotionNeedsBands):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Promotion requires at least one band",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
