package http

import (
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-console/internal/authz"
	apperrors "github.com/spec-kit/hr-console/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger) {
	app.Use(errorHandlingMiddleware(logger))
	app.Use(requestLogger(logger))
}

// errorHandlingMiddleware renders classified gateway errors for the view
// layer. An expired session redirects to login; everything else becomes a
// JSON error body so a form or table can stay on screen and show it inline.
func errorHandlingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewAPIError(apperrors.KindServerError, http.StatusInternalServerError, "internal error", nil)
			}
			if err != nil {
				var fiberErr *fiber.Error
				if errors.As(err, &fiberErr) {
					c.Status(fiberErr.Code)
					_ = c.JSON(fiber.Map{"error": fiber.Map{
						"code":    http.StatusText(fiberErr.Code),
						"message": fiberErr.Message,
					}})
					err = nil
					return
				}
				apiErr := apperrors.ToAPIError(err)
				if apiErr.Kind == apperrors.KindAuthExpired {
					err = c.Redirect(authz.LoginPath, fiber.StatusFound)
					return
				}
				c.Status(viewStatus(apiErr))
				_ = c.JSON(fiber.Map{"error": fiber.Map{
					"code":    string(apiErr.Kind),
					"message": apiErr.Message,
				}})
				err = nil
			}
		}()
		return c.Next()
	}
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()
		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(started)),
		)
		return err
	}
}

// viewStatus maps gateway error kinds to the status the console itself
// answers with.
func viewStatus(err *apperrors.APIError) int {
	switch err.Kind {
	case apperrors.KindValidation:
		if err.Status != 0 {
			return err.Status
		}
		return http.StatusBadRequest
	case apperrors.KindTimeout:
		return http.StatusGatewayTimeout
	case apperrors.KindServerError, apperrors.KindNetwork, apperrors.KindParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
