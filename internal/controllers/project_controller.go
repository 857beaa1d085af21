package controllers

import (
	"net/http"

	"crayon-server/internal/logics"

	"github.com/labstack/echo/v4"
)

// ProjectController handles project-related HTTP requests.
type ProjectController struct {
	projectService *logics.ProjectService
}

// NewProjectController creates a new instance of ProjectController.
func NewProjectController(projectService *logics.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// CreateProject creates a project under a team.
func (pc *ProjectController) CreateProject(c echo.Context) error {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	entity, err := pc.projectService.CreateProject(c.Request().Context(), req.Title, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, entity)
}

// ViewProjects lists a team's projects.
func (pc *ProjectController) ViewProjects(c echo.Context) error {
	entities, err := pc.projectService.ViewProjects(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entities)
}

// DeleteProject removes a project.
func (pc *ProjectController) DeleteProject(c echo.Context) error {
	entity, err := pc.projectService.DeleteProject(c.Request().Context(), c.Param("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}
