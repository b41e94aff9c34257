package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aureapp/aure-backend/internal/service"
	"github.com/aureapp/aure-backend/internal/types"
)

type VibeHandler struct {
	vibeService *service.VibeService
}

func NewVibeHandler(vibeService *service.VibeService) *VibeHandler {
	return &VibeHandler{vibeService: vibeService}
}

func (h *VibeHandler) RegisterRoutes(router *gin.RouterGroup) {
	vibes := router.Group("/vibes")
	{
		vibes.POST("", h.SaveVibe)
		vibes.GET("", h.ListVibes)
		vibes.GET("/:id", h.GetVibe)
		vibes.DELETE("/:id", h.DeleteVibe)
	}
}

func (h *VibeHandler) SaveVibe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.SaveVibeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	vibe, err := h.vibeService.Save(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		case errors.Is(err, service.ErrSessionNotComplete):
			c.JSON(http.StatusConflict, gin.H{"error": "session has no recommendation to save"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save vibe"})
		}
		return
	}

	c.JSON(http.StatusCreated, vibe)
}

func (h *VibeHandler) ListVibes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	vibes, err := h.vibeService.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vibes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vibes": vibes})
}

func (h *VibeHandler) GetVibe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	vibeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	vibe, err := h.vibeService.Get(c.Request.Context(), userID, vibeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vibe not found"})
		return
	}

	c.JSON(http.StatusOK, vibe)
}

func (h *VibeHandler) DeleteVibe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	vibeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.vibeService.Delete(c.Request.Context(), userID, vibeID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vibe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
