package handler

import (
	"net/http"

	"portfolio_api/internal/model"
	"portfolio_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ExperienceHandler serves education and work history
type ExperienceHandler struct {
	service service.ExperienceService
}

// NewExperienceHandler creates a new ExperienceHandler
func NewExperienceHandler(s service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{service: s}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve experience")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req model.CreateExperienceRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create experience entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete experience entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// RegisterExperienceRoutes registers experience routes
func (h *ExperienceHandler) RegisterExperienceRoutes(rg *gin.RouterGroup, authMW, writeMW gin.HandlerFunc) {
	experience := rg.Group("/experience")
	{
		experience.GET("", h.List)
		experience.POST("", authMW, writeMW, h.Create)
		experience.DELETE("/:id", authMW, writeMW, h.Delete)
	}
}
