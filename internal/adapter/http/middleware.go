package http

import (
	"errors"
	"strings"

	"cv-builder/pkg/apperror"
	"cv-builder/pkg/auth"
	"cv-builder/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const localsOwnerID = "owner_id"

// AuthMiddleware requires a valid bearer token and stores its owner id in
// the request locals.
func AuthMiddleware(jwtSvc *auth.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperror.NewUnauthorized("Authorization header required", nil)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return apperror.NewUnauthorized("Invalid token format", nil)
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			return apperror.NewUnauthorized("Invalid or expired token", err)
		}

		c.Locals(localsOwnerID, claims.OwnerID)
		return c.Next()
	}
}

func ownerFrom(c *fiber.Ctx) (uuid.UUID, error) {
	owner, ok := c.Locals(localsOwnerID).(uuid.UUID)
	if !ok || owner == uuid.Nil {
		return uuid.Nil, apperror.NewUnauthorized("missing owner", nil)
	}
	return owner, nil
}

// ErrorHandler writes every error as {"error": ..., "message": ...}.
func ErrorHandler(log logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= fiber.StatusInternalServerError {
				log.Error("request failed", err, zap.String("method", c.Method()), zap.String("path", c.Path()))
			}
			return c.Status(status).JSON(appErr.ToJSON())
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		log.Error("unhandled error", err, zap.String("method", c.Method()), zap.String("path", c.Path()))
		return c.Status(fiber.StatusInternalServerError).JSON(apperror.NewInternal("", err).ToJSON())
	}
}
