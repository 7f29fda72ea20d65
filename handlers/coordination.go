package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MazaSebastian/crop-crm-sub000/services/coordination"
)

type CoordinationHandler struct {
	Service coordination.CoordinationService
}

func NewCoordinationHandler(svc coordination.CoordinationService) *CoordinationHandler {
	return &CoordinationHandler{Service: svc}
}

type verifyRequest struct {
	Code string `json:"code" binding:"required"`
}

// VerifyHandler handles POST /api/coordination/verify. A valid code opens a
// session and returns its handle; an invalid one returns 404 with the state
// carrying the client-facing message.
func (h *CoordinationHandler) VerifyHandler(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	handle, state, err := h.Service.VerifyEventCode(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": coordination.VerifyErrorMessage,
			"state": state,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": handle, "state": state})
}

// StartHandler handles POST /api/coordination/:session/start.
func (h *CoordinationHandler) StartHandler(c *gin.Context) {
	state, err := h.Service.StartCoordination(c.Request.Context(), c.Param("session"))
	if err != nil {
		h.renderError(c, err, state)
		return
	}
	c.JSON(http.StatusOK, state)
}

type answerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Value      any    `json:"value" binding:"required"`
}

// AnswerHandler handles POST /api/coordination/:session/answer.
func (h *CoordinationHandler) AnswerHandler(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.Service.AnswerQuestion(c.Request.Context(), c.Param("session"), req.QuestionID, req.Value)
	if err != nil {
		h.renderError(c, err, state)
		return
	}
	c.JSON(http.StatusOK, state)
}

// NextHandler handles POST /api/coordination/:session/next.
func (h *CoordinationHandler) NextHandler(c *gin.Context) {
	state, err := h.Service.NextQuestion(c.Request.Context(), c.Param("session"))
	if err != nil {
		h.renderError(c, err, state)
		return
	}
	c.JSON(http.StatusOK, state)
}

// PreviousHandler handles POST /api/coordination/:session/previous.
func (h *CoordinationHandler) PreviousHandler(c *gin.Context) {
	state, err := h.Service.PreviousQuestion(c.Request.Context(), c.Param("session"))
	if err != nil {
		h.renderError(c, err, state)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CompleteHandler handles POST /api/coordination/:session/complete.
func (h *CoordinationHandler) CompleteHandler(c *gin.Context) {
	state, err := h.Service.CompleteSession(c.Request.Context(), c.Param("session"))
	if err != nil {
		h.renderError(c, err, state)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ResetHandler handles POST /api/coordination/:session/reset.
func (h *CoordinationHandler) ResetHandler(c *gin.Context) {
	if err := h.Service.ResetSession(c.Request.Context(), c.Param("session")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session reset"})
}

// StateHandler handles GET /api/coordination/:session.
func (h *CoordinationHandler) StateHandler(c *gin.Context) {
	state, err := h.Service.Snapshot(c.Request.Context(), c.Param("session"))
	if err != nil {
		h.renderError(c, err, state)
		return
	}
	c.JSON(http.StatusOK, state)
}

// CurrentQuestionHandler handles GET /api/coordination/:session/question.
func (h *CoordinationHandler) CurrentQuestionHandler(c *gin.Context) {
	state, err := h.Service.Snapshot(c.Request.Context(), c.Param("session"))
	if err != nil {
		h.renderError(c, err, state)
		return
	}
	q := state.CurrentQuestion()
	if q == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No active question"})
		return
	}
	c.JSON(http.StatusOK, q)
}

// ProgressHandler handles GET /api/coordination/:session/progress.
func (h *CoordinationHandler) ProgressHandler(c *gin.Context) {
	state, err := h.Service.Snapshot(c.Request.Context(), c.Param("session"))
	if err != nil {
		h.renderError(c, err, state)
		return
	}
	c.JSON(http.StatusOK, state.Progress())
}

func (h *CoordinationHandler) renderError(c *gin.Context, err error, state coordination.State) {
	switch {
	case errors.Is(err, coordination.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, coordination.ErrNoSession), errors.Is(err, coordination.ErrNotVerified):
		c.JSON(http.StatusConflict, gin.H{"error": "Session not in a valid state", "state": state})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Coordination operation failed"})
	}
}
