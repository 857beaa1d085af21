package controllers

import (
	"net/http"

	"crayon-server/internal/logics"
	"crayon-server/internal/middlewares"
	"crayon-server/internal/models"

	"github.com/labstack/echo/v4"
)

// ProfileController handles profile-related HTTP requests.
type ProfileController struct {
	userService *logics.UserService
}

// NewProfileController creates a new instance of ProfileController.
func NewProfileController(userService *logics.UserService) *ProfileController {
	return &ProfileController{userService: userService}
}

// GetProfile returns the authenticated user's profile.
func (pc *ProfileController) GetProfile(c echo.Context) error {
	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	entity, err := pc.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}

// UpdateProfile applies a partial update to the authenticated user's
// profile.
func (pc *ProfileController) UpdateProfile(c echo.Context) error {
	var update models.UserUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	userID, err := middlewares.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}

	entity, err := pc.userService.UpdateUser(c.Request().Context(), update, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}
