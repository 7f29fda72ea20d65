package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/services/stock"
)

type StockHandler struct {
	Service stock.StockService
}

func NewStockHandler(svc stock.StockService) *StockHandler {
	return &StockHandler{Service: svc}
}

// ListItemsHandler handles GET /api/stock.
func (h *StockHandler) ListItemsHandler(c *gin.Context) {
	items := h.Service.ListItems(c.Request.Context())
	if items == nil {
		items = []models.StockItem{}
	}
	c.JSON(http.StatusOK, items)
}

// CreateItemHandler handles POST /api/stock.
func (h *StockHandler) CreateItemHandler(c *gin.Context) {
	var payload models.StockItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created := h.Service.CreateItem(c.Request.Context(), payload)
	if created == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create stock item"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateItemHandler handles PUT /api/stock/:id.
func (h *StockHandler) UpdateItemHandler(c *gin.Context) {
	var payload models.StockItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.ID = c.Param("id")

	updated := h.Service.UpdateItem(c.Request.Context(), payload)
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not update stock item"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteItemHandler handles DELETE /api/stock/:id.
func (h *StockHandler) DeleteItemHandler(c *gin.Context) {
	if !h.Service.DeleteItem(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not delete stock item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock item deleted"})
}

// RecordMovementHandler handles POST /api/stock/:id/movements.
func (h *StockHandler) RecordMovementHandler(c *gin.Context) {
	var payload models.StockMovement
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.ItemID = c.Param("id")

	created := h.Service.RecordMovement(c.Request.Context(), payload)
	if created == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Movement rejected"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListMovementsHandler handles GET /api/stock/:id/movements.
func (h *StockHandler) ListMovementsHandler(c *gin.Context) {
	movs := h.Service.ListMovements(c.Request.Context(), c.Param("id"))
	if movs == nil {
		movs = []models.StockMovement{}
	}
	c.JSON(http.StatusOK, movs)
}
