package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/service"
)

type PerfumeHandler struct {
	perfumeService *service.PerfumeService
}

func NewPerfumeHandler(perfumeService *service.PerfumeService) *PerfumeHandler {
	return &PerfumeHandler{perfumeService: perfumeService}
}

func (h *PerfumeHandler) RegisterRoutes(router *gin.RouterGroup) {
	perfumes := router.Group("/perfumes")
	{
		perfumes.GET("", h.ListPerfumes)
		perfumes.GET("/search", h.SearchPerfumes)
		perfumes.GET("/:id", h.GetPerfume)
		perfumes.POST("", h.CreatePerfume)
	}
}

func (h *PerfumeHandler) ListPerfumes(c *gin.Context) {
	filter := service.PerfumeFilter{
		ScentFamily: models.ScentFamily(c.Query("family")),
		Performance: models.Performance(c.Query("performance")),
	}

	perfumes, err := h.perfumeService.ListPerfumes(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch perfumes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"perfumes": perfumes})
}

func (h *PerfumeHandler) SearchPerfumes(c *gin.Context) {
	perfumes, err := h.perfumeService.SearchPerfumes(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"perfumes": perfumes})
}

func (h *PerfumeHandler) GetPerfume(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	perfume, err := h.perfumeService.GetPerfume(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "perfume not found"})
		return
	}

	c.JSON(http.StatusOK, perfume)
}

func (h *PerfumeHandler) CreatePerfume(c *gin.Context) {
	var perfume models.Perfume
	if err := c.ShouldBindJSON(&perfume); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if perfume.Name == "" || perfume.House == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and house are required"})
		return
	}
	perfume.ScentFamily = models.ParseScentFamily(string(perfume.ScentFamily))
	if perfume.Performance == "" {
		perfume.Performance = models.PerformanceBalanced
	}

	created, err := h.perfumeService.CreatePerfume(c.Request.Context(), &perfume)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create perfume"})
		return
	}

	c.JSON(http.StatusCreated, created)
}
