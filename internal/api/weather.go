package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aureapp/aure-backend/internal/service"
)

type WeatherHandler struct {
	weatherService *service.WeatherService
}

func NewWeatherHandler(weatherService *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

func (h *WeatherHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/weather", h.GetWeather)
}

// GetWeather returns current conditions either for ?lat=..&lon=.. or ?city=..
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	if city := c.Query("city"); city != "" {
		report, err := h.weatherService.ByCity(c.Request.Context(), city)
		if err != nil {
			if errors.Is(err, service.ErrLocationNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "weather lookup failed"})
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city or lat/lon required"})
		return
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat"})
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lon"})
		return
	}

	report, err := h.weatherService.ByCoords(c.Request.Context(), lat, lon)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather lookup failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}
