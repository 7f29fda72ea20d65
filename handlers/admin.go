package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/services/coordination"
)

// AdminHandler covers the partner-facing coordination administration: issuing
// event codes and reviewing completed questionnaires.
type AdminHandler struct {
	Coordination coordination.CoordinationService
}

func NewAdminHandler(svc coordination.CoordinationService) *AdminHandler {
	return &AdminHandler{Coordination: svc}
}

type createEventCodeRequest struct {
	Code       string           `json:"code" binding:"required"`
	ClientName string           `json:"clientName" binding:"required"`
	EventType  models.EventType `json:"eventType" binding:"required"`
	EventDate  string           `json:"eventDate" binding:"required"`
	EventTime  string           `json:"eventTime"`
	GuestCount int              `json:"guestCount"`
	Venue      string           `json:"venue"`
}

// CreateEventCodeHandler handles POST /api/admin/event-codes.
func (h *AdminHandler) CreateEventCodeHandler(c *gin.Context) {
	var req createEventCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info := models.EventInfo{
		Code:       req.Code,
		ClientName: req.ClientName,
		EventType:  req.EventType,
		EventDate:  req.EventDate,
		EventTime:  req.EventTime,
		GuestCount: req.GuestCount,
		Venue:      req.Venue,
	}
	if err := h.Coordination.CreateEventCode(c.Request.Context(), info); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, info)
}

// ListSessionsHandler handles GET /api/admin/coordination-sessions.
func (h *AdminHandler) ListSessionsHandler(c *gin.Context) {
	sessions, err := h.Coordination.ListSessions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not list sessions"})
		return
	}
	if sessions == nil {
		sessions = []models.CoordinationSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSessionHandler handles GET /api/admin/coordination-sessions/:code.
func (h *AdminHandler) GetSessionHandler(c *gin.Context) {
	session, err := h.Coordination.SessionForEvent(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No session for that event code"})
		return
	}
	c.JSON(http.StatusOK, session)
}
