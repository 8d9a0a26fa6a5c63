package middleware

import (
	"elearning/internal/domain"
	"elearning/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	if v == nil {
		v = validation.NewValidator()
	}
	return &ValidationMiddleware{validator: v}
}

// ValidateParams checks that each named path parameter is a well-formed ID.
func (vm *ValidationMiddleware) ValidateParams(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs domain.ValidationErrors
		for _, name := range names {
			errs = append(errs, vm.validator.ValidateID(name, c.Params(name))...)
		}
		if len(errs) > 0 {
			return errs // This will be handled by ErrorHandler
		}
		return c.Next()
	}
}

// ValidateCourseQuery requires a well-formed course_id query parameter and
// stores it in locals as "validated_course_id".
func (vm *ValidationMiddleware) ValidateCourseQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := c.Query("course_id")
		if errs := vm.validator.ValidateID("course_id", courseID); len(errs) > 0 {
			return errs
		}
		c.Locals("validated_course_id", courseID)
		return c.Next()
	}
}
