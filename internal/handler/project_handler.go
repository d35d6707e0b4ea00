package handler

import (
	"net/http"

	"portfolio_api/internal/model"
	"portfolio_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves portfolio projects
type ProjectHandler struct {
	service service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: s}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req model.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// RegisterProjectRoutes registers project routes. Writes go through authMW
// and writeMW.
func (h *ProjectHandler) RegisterProjectRoutes(rg *gin.RouterGroup, authMW, writeMW gin.HandlerFunc) {
	projects := rg.Group("/projects")
	{
		projects.GET("", h.List)
		projects.POST("", authMW, writeMW, h.Create)
		projects.DELETE("/:id", authMW, writeMW, h.Delete)
	}
}
