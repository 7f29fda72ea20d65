package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/services/crop"
)

type CropHandler struct {
	Service crop.CropService
}

func NewCropHandler(svc crop.CropService) *CropHandler {
	return &CropHandler{Service: svc}
}

// ListCropsHandler handles GET /api/crops.
func (h *CropHandler) ListCropsHandler(c *gin.Context) {
	ownerID := c.GetString("userID")
	crops := h.Service.ListCrops(c.Request.Context(), ownerID)
	if crops == nil {
		crops = []models.Crop{}
	}
	c.JSON(http.StatusOK, crops)
}

// GetCropHandler handles GET /api/crops/:id.
func (h *CropHandler) GetCropHandler(c *gin.Context) {
	cropID := c.Param("id")
	result := h.Service.GetCrop(c.Request.Context(), cropID)
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crop not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateCropHandler handles POST /api/crops.
func (h *CropHandler) CreateCropHandler(c *gin.Context) {
	var payload models.Crop
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.OwnerID = c.GetString("userID")

	created := h.Service.CreateCrop(c.Request.Context(), payload)
	if created == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create crop"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCropHandler handles PUT /api/crops/:id.
func (h *CropHandler) UpdateCropHandler(c *gin.Context) {
	var payload models.Crop
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.ID = c.Param("id")

	updated := h.Service.UpdateCrop(c.Request.Context(), payload)
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not update crop"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCropHandler handles DELETE /api/crops/:id.
func (h *CropHandler) DeleteCropHandler(c *gin.Context) {
	if !h.Service.DeleteCrop(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not delete crop"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Crop deleted"})
}

// ListTasksHandler handles GET /api/crops/:id/tasks.
func (h *CropHandler) ListTasksHandler(c *gin.Context) {
	tasks := h.Service.ListTasks(c.Request.Context(), c.Param("id"))
	if tasks == nil {
		tasks = []models.CropTask{}
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTaskHandler handles POST /api/crops/:id/tasks.
func (h *CropHandler) CreateTaskHandler(c *gin.Context) {
	var payload models.CropTask
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.CropID = c.Param("id")

	created := h.Service.CreateTask(c.Request.Context(), payload)
	if created == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create task"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

type taskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTaskStatusHandler handles PATCH /api/tasks/:id.
func (h *CropHandler) UpdateTaskStatusHandler(c *gin.Context) {
	var req taskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.Service.UpdateTaskStatus(c.Request.Context(), c.Param("id"), req.Status) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not update task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated"})
}

// DeleteTaskHandler handles DELETE /api/tasks/:id.
func (h *CropHandler) DeleteTaskHandler(c *gin.Context) {
	if !h.Service.DeleteTask(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// ListLogEntriesHandler handles GET /api/crops/:id/logs.
func (h *CropHandler) ListLogEntriesHandler(c *gin.Context) {
	entries := h.Service.ListLogEntries(c.Request.Context(), c.Param("id"))
	if entries == nil {
		entries = []models.DailyLog{}
	}
	c.JSON(http.StatusOK, entries)
}

// CreateLogEntryHandler handles POST /api/crops/:id/logs.
func (h *CropHandler) CreateLogEntryHandler(c *gin.Context) {
	var payload models.DailyLog
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.CropID = c.Param("id")

	created := h.Service.CreateLogEntry(c.Request.Context(), payload)
	if created == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create log entry"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteLogEntryHandler handles DELETE /api/logs/:id.
func (h *CropHandler) DeleteLogEntryHandler(c *gin.Context) {
	if !h.Service.DeleteLogEntry(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not delete log entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Log entry deleted"})
}
