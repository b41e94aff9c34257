package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aureapp/aure-backend/internal/service"
	"github.com/aureapp/aure-backend/internal/types"
)

type SessionHandler struct {
	sessionService *service.SessionService
}

func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup, limiter gin.HandlerFunc) {
	sessions := router.Group("/sessions")
	{
		if limiter != nil {
			sessions.POST("", limiter, h.CreateSession)
		} else {
			sessions.POST("", h.CreateSession)
		}
		sessions.GET("", h.History)
		sessions.GET("/today", h.Today)
		sessions.GET("/:id", h.GetSession)
	}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.ScentDirections) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one scent direction is required"})
		return
	}

	detail, err := h.sessionService.CreateWithRecommendation(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, detail)
}

func (h *SessionHandler) History(c *gin.Context) {
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

	sessions, err := h.sessionService.History(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *SessionHandler) Today(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := h.sessionService.TodaySession(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch session"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusOK, gin.H{"session": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": detail})
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	detail, err := h.sessionService.GetSession(c.Request.Context(), userID, sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
