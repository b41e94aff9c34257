package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aureapp/aure-backend/internal/service"
	"github.com/aureapp/aure-backend/internal/types"
)

type CollectionHandler struct {
	collectionService *service.CollectionService
}

func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func (h *CollectionHandler) RegisterRoutes(router *gin.RouterGroup) {
	collection := router.Group("/collection")
	{
		collection.GET("", h.GetCollection)
		collection.GET("/favorites", h.GetFavorites)
		collection.GET("/:id", h.GetEntry)
		collection.POST("", h.Add)
		collection.POST("/by-name", h.AddByName)
		collection.PATCH("/:id", h.Update)
		collection.POST("/:id/favorite", h.ToggleFavorite)
		collection.POST("/:id/worn", h.MarkWorn)
		collection.DELETE("/:id", h.Remove)
	}
}

func (h *CollectionHandler) GetCollection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.collectionService.GetCollection(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"collection": entries})
}

func (h *CollectionHandler) GetFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.collectionService.GetFavorites(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": entries})
}

func (h *CollectionHandler) GetEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	entry, err := h.collectionService.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *CollectionHandler) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AddToCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.collectionService.Add(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyInCollection) {
			c.JSON(http.StatusConflict, gin.H{"error": "perfume already in collection"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to collection"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *CollectionHandler) AddByName(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AddByNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.collectionService.AddByName(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyInCollection) {
			c.JSON(http.StatusConflict, gin.H{"error": "perfume already in collection"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to collection"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *CollectionHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateCollectionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.collectionService.Update(c.Request.Context(), userID, entryID, req)
	if err != nil {
		if errors.Is(err, service.ErrNotInCollection) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update entry"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *CollectionHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	entry, err := h.collectionService.ToggleFavorite(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrNotInCollection) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle favorite"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *CollectionHandler) MarkWorn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.collectionService.MarkWorn(c.Request.Context(), userID, entryID, timeNow()); err != nil {
		if errors.Is(err, service.ErrNotInCollection) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark worn"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "worn"})
}

func (h *CollectionHandler) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.collectionService.Remove(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, service.ErrNotInCollection) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
