package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/MazaSebastian/crop-crm-sub000/config"
	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

// WeatherService fetches the daily forecast for the configured station.
// Failures return nil; the caller shows nothing.
type WeatherService interface {
	GetForecast(ctx context.Context) []models.WeatherDay
}

// DefaultWeatherService queries an Open-Meteo compatible endpoint and caches
// the decoded forecast in Redis.
type DefaultWeatherService struct {
	Client *http.Client
	Cache  *redis.Client
}

func NewDefaultWeatherService(cache *redis.Client) *DefaultWeatherService {
	return &DefaultWeatherService{
		Client: &http.Client{Timeout: 10 * time.Second},
		Cache:  cache,
	}
}

type forecastResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		TempMax          []float64 `json:"temperature_2m_max"`
		TempMin          []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		WeatherCode      []int     `json:"weather_code"`
	} `json:"daily"`
}

func (s *DefaultWeatherService) GetForecast(ctx context.Context) []models.WeatherDay {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, utils.WeatherCacheKey).Result(); err == nil {
			var days []models.WeatherDay
			if json.Unmarshal([]byte(raw), &days) == nil {
				return days
			}
		}
	}

	days := s.fetch(ctx)
	if days == nil {
		return nil
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(days); err == nil {
			if err := s.Cache.Set(ctx, utils.WeatherCacheKey, raw, utils.WeatherCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache forecast", zap.Error(err))
			}
		}
	}
	return days
}

func (s *DefaultWeatherService) fetch(ctx context.Context) []models.WeatherDay {
	logger := utils.GetLogger()

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", config.AppConfig.WeatherLatitude))
	q.Set("longitude", fmt.Sprintf("%.4f", config.AppConfig.WeatherLongitude))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		config.AppConfig.WeatherBaseURL+"?"+q.Encode(), nil)
	if err != nil {
		logger.Error("failed to build forecast request", zap.Error(err))
		return nil
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		logger.Warn("forecast request failed", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("forecast request returned non-200", zap.Int("status", resp.StatusCode))
		return nil
	}

	var decoded forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		logger.Warn("failed to decode forecast", zap.Error(err))
		return nil
	}

	days := make([]models.WeatherDay, 0, len(decoded.Daily.Time))
	for i, date := range decoded.Daily.Time {
		day := models.WeatherDay{Date: date}
		if i < len(decoded.Daily.TempMax) {
			day.TempMax = decoded.Daily.TempMax[i]
		}
		if i < len(decoded.Daily.TempMin) {
			day.TempMin = decoded.Daily.TempMin[i]
		}
		if i < len(decoded.Daily.PrecipitationSum) {
			day.PrecipitationMM = decoded.Daily.PrecipitationSum[i]
		}
		if i < len(decoded.Daily.WeatherCode) {
			day.WeatherCode = decoded.Daily.WeatherCode[i]
		}
		days = append(days, day)
	}
	return days
}
