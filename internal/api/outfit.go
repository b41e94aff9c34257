package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aureapp/aure-backend/internal/service"
	"github.com/aureapp/aure-backend/internal/types"
)

type OutfitHandler struct {
	outfitService *service.OutfitService
	store         service.ObjectStore
}

func NewOutfitHandler(outfitService *service.OutfitService, store service.ObjectStore) *OutfitHandler {
	return &OutfitHandler{outfitService: outfitService, store: store}
}

func (h *OutfitHandler) RegisterRoutes(router *gin.RouterGroup, limiter gin.HandlerFunc) {
	outfit := router.Group("/outfit")
	{
		if limiter != nil {
			outfit.POST("/analyze", limiter, h.Analyze)
		} else {
			outfit.POST("/analyze", h.Analyze)
		}
		outfit.POST("/upload-url", h.UploadURL)
	}
}

// Analyze reads an outfit from either a photo or a text description.
func (h *OutfitHandler) Analyze(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req types.AnalyzeOutfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var (
		analysis *service.OutfitAnalysis
		err      error
	)
	switch {
	case req.ImageBase64 != "":
		if req.MimeType == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mime_type required with image"})
			return
		}
		analysis, err = h.outfitService.AnalyzeImage(c.Request.Context(), req.ImageBase64, req.MimeType)
	case req.Description != "":
		analysis, err = h.outfitService.AnalyzeText(c.Request.Context(), req.Description)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_base64 or description required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "outfit analysis unavailable"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// UploadURL hands the client a presigned URL for a direct outfit-photo upload.
func (h *OutfitHandler) UploadURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	key := fmt.Sprintf("outfits/%s/%s", userID, uuid.New())
	url, err := h.store.PresignUpload(c.Request.Context(), key, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "key": key})
}
