package middleware

import (
	"strings"

	"elearning/internal/domain"
	"elearning/internal/logger"
	"elearning/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	PrincipalKey        = "principal" // Key for storing the domain.Principal in fiber.Ctx locals
)

// Protected requires a valid bearer token issued by the identity service and
// stores the caller's domain.Principal in the request locals.
func Protected(tokenService service.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return unauthorized(c, "Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return unauthorized(c, "Token is empty")
		}

		principal, err := tokenService.ValidateToken(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("Bearer token rejected", zap.Error(err), zap.String("path", c.Path()))
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(PrincipalKey, principal)
		return c.Next()
	}
}

// RequireRole rejects callers whose principal does not carry role.
// It must run after Protected.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return unauthorized(c, "Authentication required")
		}
		if principal.Role != role {
			return domain.NewPermissionDeniedError("This action requires the " + string(role) + " role")
		}
		return c.Next()
	}
}

// RequireTeacher limits a route group to teachers.
func RequireTeacher() fiber.Handler {
	return RequireRole(domain.RoleTeacher)
}

// GetPrincipal returns the authenticated caller stored by Protected.
func GetPrincipal(c *fiber.Ctx) (domain.Principal, bool) {
	principal, ok := c.Locals(PrincipalKey).(domain.Principal)
	if !ok || principal.UserID == "" {
		return domain.Principal{}, false
	}
	return principal, true
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Code:    string(domain.CodeUnauthorized),
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}
