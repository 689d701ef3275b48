package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/shutterpost/internal/apperr"
	"github.com/maheshrc27/shutterpost/pkg/logging"
	"go.uber.org/zap"
)

const msgInternal = "Internal server error"

// statusFor maps an error kind to its HTTP status.
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindInvalidInput:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Server-side failures are
// logged; only apperr messages reach the caller.
func respondError(c *fiber.Ctx, err error) error {
	var e *apperr.Error
	if !errors.As(err, &e) {
		logging.WithComponent("api").Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternal})
	}

	status := statusFor(e.Kind)
	if status >= fiber.StatusInternalServerError {
		logging.WithComponent("api").Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Stringer("kind", e.Kind),
			zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": e.Message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// parseBody decodes a JSON body into dst when one was sent, leaving
// pre-filled defaults in place otherwise.
func parseBody(c *fiber.Ctx, dst any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(dst)
}

// ErrorHandler is the fiber fallback for errors no handler turned into a response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	return respondError(c, err)
}
