package server

import (
	"errors"
	"log/slog"

	"vibestudio/internal/middleware"
	"vibestudio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondError writes err with the status its code maps to.
func respondError(c *fiber.Ctx, err error) error {
	status := models.StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return models.RespondWithError(c, status, err)
}

// writeFailure answers a failed mutation with {success:false, error:"Failed to <action>"}.
// Client-side causes are echoed in details; server-side ones are only logged.
func writeFailure(c *fiber.Ctx, action string, err error) error {
	status := models.StatusFor(err)
	body := fiber.Map{
		"success": false,
		"error":   "Failed to " + action,
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		body["code"] = appErr.Code
		if status < fiber.StatusInternalServerError {
			body["details"] = appErr.Message
		}
	}

	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "write failed",
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
	}
	return c.Status(status).JSON(body)
}
