package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aureapp/aure-backend/internal/service"
	"github.com/aureapp/aure-backend/internal/types"
)

type WearLogHandler struct {
	wearLogService *service.WearLogService
}

func NewWearLogHandler(wearLogService *service.WearLogService) *WearLogHandler {
	return &WearLogHandler{wearLogService: wearLogService}
}

func (h *WearLogHandler) RegisterRoutes(router *gin.RouterGroup) {
	wear := router.Group("/wear-log")
	{
		wear.POST("", h.LogWear)
		wear.GET("", h.History)
		wear.GET("/stats", h.Stats)
	}
}

func (h *WearLogHandler) LogWear(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.LogWearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.wearLogService.LogWear(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log wear"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *WearLogHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	entries, err := h.wearLogService.History(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch wear history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *WearLogHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.wearLogService.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
