package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MazaSebastian/crop-crm-sub000/services/calendar"
	"github.com/MazaSebastian/crop-crm-sub000/services/plannedevent"
)

type CalendarHandler struct {
	Events plannedevent.PlannedEventService
}

func NewCalendarHandler(events plannedevent.PlannedEventService) *CalendarHandler {
	return &CalendarHandler{Events: events}
}

// MonthGridHandler handles GET /api/calendar/:year/:month. The month path
// param is human 1-12; the grid builder takes it zero-based.
func (h *CalendarHandler) MonthGridHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > 2200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	cells := calendar.BuildMonthGrid(year, month-1)

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	from := first.Format("2006-01-02")
	to := first.AddDate(0, 1, -1).Format("2006-01-02")

	events := h.Events.ListByDateRange(c.Request.Context(), from, to)
	calendar.ApplyStatuses(cells, calendar.BuildStatusSets(events))

	c.JSON(http.StatusOK, gin.H{
		"month": fmt.Sprintf("%04d-%02d", year, month),
		"cells": cells,
	})
}
