package controllers

import (
	"net/http"

	"crayon-server/internal/logics"
	"crayon-server/internal/middlewares"
	"crayon-server/internal/models"

	"github.com/labstack/echo/v4"
)

// TeamController handles team-related HTTP requests.
type TeamController struct {
	teamService *logics.TeamService
}

// NewTeamController creates a new instance of TeamController.
func NewTeamController(teamService *logics.TeamService) *TeamController {
	return &TeamController{teamService: teamService}
}

// CreateTeam creates a team owned by the authenticated user.
func (tc *TeamController) CreateTeam(c echo.Context) error {
	var input models.TeamInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	entity, err := tc.teamService.CreateTeam(c.Request().Context(), input, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, entity)
}

// ViewTeams lists the teams the authenticated user belongs to.
func (tc *TeamController) ViewTeams(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	entities, err := tc.teamService.ViewTeams(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entities)
}

// ViewTeam retrieves one team by id.
func (tc *TeamController) ViewTeam(c echo.Context) error {
	entity, err := tc.teamService.ViewTeam(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

// UpdateTeam updates a team; only its creator may do so.
func (tc *TeamController) UpdateTeam(c echo.Context) error {
	var input models.TeamInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	entity, err := tc.teamService.UpdateTeam(c.Request().Context(), input, c.Param("id"), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

// DeleteTeam deletes a team and returns its final snapshot.
func (tc *TeamController) DeleteTeam(c echo.Context) error {
	entity, err := tc.teamService.DeleteTeam(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

// JoinTeam adds the authenticated user to a team.
func (tc *TeamController) JoinTeam(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	entity, err := tc.teamService.JoinTeam(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

// LeaveTeam removes the authenticated user from a team.
func (tc *TeamController) LeaveTeam(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	entity, err := tc.teamService.LeaveTeam(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

// TeamMembers lists a team's members.
func (tc *TeamController) TeamMembers(c echo.Context) error {
	entities, err := tc.teamService.TeamMembers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entities)
}

// AddTeamMembers adds a batch of users to a team on the creator's
// behalf.
func (tc *TeamController) AddTeamMembers(c echo.Context) error {
	var req struct {
		UserIDs []string `json:"user_ids"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	entities, err := tc.teamService.AddTeamMembers(c.Request().Context(), c.Param("id"), userID, req.UserIDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entities)
}
