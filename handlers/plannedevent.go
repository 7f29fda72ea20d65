package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/services/plannedevent"
)

type PlannedEventHandler struct {
	Service plannedevent.PlannedEventService
}

func NewPlannedEventHandler(svc plannedevent.PlannedEventService) *PlannedEventHandler {
	return &PlannedEventHandler{Service: svc}
}

// ListPlannedEventsHandler handles GET /api/planned-events. Requires from/to
// query params bounding the date range.
func (h *PlannedEventHandler) ListPlannedEventsHandler(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query params are required"})
		return
	}
	events := h.Service.ListByDateRange(c.Request.Context(), from, to)
	if events == nil {
		events = []models.PlannedEvent{}
	}
	c.JSON(http.StatusOK, events)
}

// CreatePlannedEventHandler handles POST /api/planned-events.
func (h *PlannedEventHandler) CreatePlannedEventHandler(c *gin.Context) {
	var payload models.PlannedEvent
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created := h.Service.Create(c.Request.Context(), payload)
	if created == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create planned event"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePlannedEventHandler handles PUT /api/planned-events/:id.
func (h *PlannedEventHandler) UpdatePlannedEventHandler(c *gin.Context) {
	var payload models.PlannedEvent
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.ID = c.Param("id")

	updated := h.Service.Update(c.Request.Context(), payload)
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not update planned event"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePlannedEventHandler handles DELETE /api/planned-events/:id.
func (h *PlannedEventHandler) DeletePlannedEventHandler(c *gin.Context) {
	if !h.Service.Delete(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not delete planned event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Planned event deleted"})
}
