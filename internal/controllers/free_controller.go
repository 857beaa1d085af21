package controllers

import (
	"net/http"

	"crayon-server/internal/logics"
	"crayon-server/internal/models"

	"github.com/labstack/echo/v4"
)

// FreeController handles the anonymous generation endpoint.
type FreeController struct {
	freeService *logics.FreeService
}

// NewFreeController creates a new instance of FreeController.
func NewFreeController(freeService *logics.FreeService) *FreeController {
	return &FreeController{freeService: freeService}
}

// FreeChat generates an image for an anonymous prompt.
func (fc *FreeController) FreeChat(c echo.Context) error {
	var input models.Free
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	entity, err := fc.freeService.FreeChat(c.Request().Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entity)
}
