package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/recommend"
)

var ErrLocationNotFound = fmt.Errorf("location not found")

// WeatherReport is a current-conditions reading with the derived categories
// scoring consumes.
type WeatherReport struct {
	Temperature         float64                    `json:"temperature"`
	TemperatureCategory models.TemperatureCategory `json:"temperature_category"`
	Humidity            float64                    `json:"humidity"`
	HumidityCategory    models.HumidityCategory    `json:"humidity_category"`
	Condition           string                     `json:"condition"`
	Location            string                     `json:"location"`
}

// WeatherService fetches current conditions from Open-Meteo. Readings are
// cached in Redis for a short window since weather changes slowly relative to
// ritual frequency.
type WeatherService struct {
	forecastURL string
	geocodeURL  string
	config      recommend.Config
	client      *http.Client
	redis       *redis.Client
}

func NewWeatherService(forecastURL, geocodeURL string, config recommend.Config, redisClient *redis.Client) *WeatherService {
	return &WeatherService{
		forecastURL: forecastURL,
		geocodeURL:  geocodeURL,
		config:      config,
		client:      &http.Client{Timeout: 10 * time.Second},
		redis:       redisClient,
	}
}

// ByCoords fetches current conditions for a coordinate pair.
func (s *WeatherService) ByCoords(ctx context.Context, lat, lon float64) (*WeatherReport, error) {
	cacheKey := fmt.Sprintf("weather:%.2f:%.2f", lat, lon)
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached WeatherReport
			if json.Unmarshal(data, &cached) == nil {
				return &cached, nil
			}
		}
	}

	reqURL := fmt.Sprintf("%s?latitude=%f&longitude=%f&current=temperature_2m,relative_humidity_2m,weather_code&temperature_unit=celsius",
		s.forecastURL, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	report := &WeatherReport{
		Temperature:         payload.Current.Temperature,
		TemperatureCategory: s.config.CategorizeTemperature(payload.Current.Temperature),
		Humidity:            payload.Current.Humidity,
		HumidityCategory:    s.config.CategorizeHumidity(payload.Current.Humidity),
		Condition:           conditionFromCode(payload.Current.WeatherCode),
		Location:            "Current location",
	}

	if s.redis != nil {
		if data, err := json.Marshal(report); err == nil {
			s.redis.Set(ctx, cacheKey, data, 15*time.Minute)
		}
	}
	return report, nil
}

// ByCity geocodes a city name and fetches conditions for the result.
func (s *WeatherService) ByCity(ctx context.Context, city string) (*WeatherReport, error) {
	reqURL := fmt.Sprintf("%s?name=%s&count=1&language=en&format=json", s.geocodeURL, url.QueryEscape(city))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Name      string  `json:"name"`
			Country   string  `json:"country"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, ErrLocationNotFound
	}

	place := payload.Results[0]
	report, err := s.ByCoords(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return nil, err
	}
	report.Location = fmt.Sprintf("%s, %s", place.Name, place.Country)
	return report, nil
}

// conditionFromCode maps Open-Meteo weather codes to readable conditions.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code <= 3:
		return "Partly cloudy"
	case code <= 48:
		return "Foggy"
	case code <= 57:
		return "Drizzle"
	case code <= 67:
		return "Rainy"
	case code <= 77:
		return "Snowy"
	case code <= 82:
		return "Showers"
	case code <= 86:
		return "Snow showers"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Cloudy"
	}
}
