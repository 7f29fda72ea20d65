package models

// WeatherDay is one day of forecast data from the weather collaborator.
type WeatherDay struct {
	Date            string  `json:"date"`
	TempMax         float64 `json:"tempMax"`
	TempMin         float64 `json:"tempMin"`
	PrecipitationMM float64 `json:"precipitationMm"`
	WeatherCode     int     `json:"weatherCode"`
}
