package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aureapp/aure-backend/internal/service"
	"github.com/aureapp/aure-backend/internal/types"
)

type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	prefs := router.Group("/preferences")
	{
		prefs.GET("", h.GetPreferences)
		prefs.PUT("", h.UpsertPreferences)
		prefs.POST("/weather-context/toggle", h.ToggleWeatherContext)
	}
}

func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	prefs, err := h.preferenceService.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) UpsertPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpsertPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	prefs, err := h.preferenceService.Upsert(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) ToggleWeatherContext(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	prefs, err := h.preferenceService.ToggleWeatherContext(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle weather context"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
