package controllers

import (
	"net/http"

	"crayon-server/configs"
	"crayon-server/internal/failures"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// respondError maps a service failure onto its HTTP status. Unknown
// errors are logged and hidden behind a generic 500 so internals never
// leak to clients.
func respondError(c echo.Context, err error) error {
	switch failures.KindOf(err) {
	case failures.KindNotFound:
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case failures.KindAuthorization:
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case failures.KindConflict:
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case failures.KindInvalidRequest, failures.KindUnsupportedModel:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case failures.KindGeneration:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		configs.Logger.Error("Unhandled error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
