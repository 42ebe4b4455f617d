package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenderlink_backend/internal/middleware"
	"tenderlink_backend/internal/models"
	"tenderlink_backend/internal/services"
	"tenderlink_backend/internal/services/dto"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	{
		projects.GET("", h.ListProjects)

		// Only tender accounts may post projects.
		projects.POST("",
			middleware.AuthMiddleware(),
			middleware.RequireUserType(models.UserTypeTender),
			h.CreateProject,
		)
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var query dto.ListProjectsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	response, err := h.projectService.ListProjects(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := h.RequireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.projectService.CreateProject(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
