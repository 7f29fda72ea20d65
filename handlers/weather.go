package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/services/weather"
)

type WeatherHandler struct {
	Service weather.WeatherService
}

func NewWeatherHandler(svc weather.WeatherService) *WeatherHandler {
	return &WeatherHandler{Service: svc}
}

// ForecastHandler handles GET /api/weather/forecast. Upstream failures
// degrade to an empty list so the dashboard keeps rendering.
func (h *WeatherHandler) ForecastHandler(c *gin.Context) {
	days := h.Service.GetForecast(c.Request.Context())
	if days == nil {
		days = []models.WeatherDay{}
	}
	c.JSON(http.StatusOK, days)
}
