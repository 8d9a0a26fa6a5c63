package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"elearning/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDomainErrorToHTTPStatus(t *testing.T) {
	tests := []struct {
		code     domain.ErrorCode
		expected int
	}{
		{domain.CodePermissionDenied, http.StatusForbidden},
		{domain.CodeQuizNotPublished, http.StatusConflict},
		{domain.CodeQuizNotStarted, http.StatusConflict},
		{domain.CodeQuizEnded, http.StatusConflict},
		{domain.CodeAlreadyCompleted, http.StatusConflict},
		{domain.CodeAttemptInProgress, http.StatusConflict},
		{domain.CodeQuizNotFound, http.StatusNotFound},
		{domain.CodeAttemptNotFound, http.StatusNotFound},
		{domain.CodeCourseNotFound, http.StatusNotFound},
		{domain.CodeAssignmentNotFound, http.StatusNotFound},
		{domain.CodeSubmissionNotFound, http.StatusNotFound},
		{domain.CodeAssignmentNotPublished, http.StatusConflict},
		{domain.CodeAlreadySubmitted, http.StatusConflict},
		{domain.CodeValidation, http.StatusBadRequest},
		{domain.CodeInvalidInput, http.StatusBadRequest},
		{domain.CodeUnauthorized, http.StatusUnauthorized},
		{domain.CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, mapDomainErrorToHTTPStatus(domain.NewError(tt.code, "x", nil)))
		})
	}
}

func errorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error { return err })
	return app
}

func TestErrorHandler_DomainError(t *testing.T) {
	err := fmt.Errorf("submit: %w", domain.NewAlreadyCompletedError("attempt-1"))
	resp, testErr := errorApp(err).Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, testErr)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ALREADY_COMPLETED", body.Code)
	assert.Equal(t, http.StatusConflict, body.Status)
	assert.Equal(t, "attempt-1", body.Details["attempt_id"])
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	err := domain.ValidationErrors{
		domain.NewFieldError("title", "is required"),
		domain.NewInvalidFormatError("course_id", "nope"),
	}
	resp, testErr := errorApp(err).Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, testErr)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "course_id", body.Errors[1].Field)
}

func TestErrorHandler_FiberAndUnknownErrors(t *testing.T) {
	resp, err := errorApp(fiber.ErrMethodNotAllowed).Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = errorApp(errors.New("boom")).Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestValidationMiddleware(t *testing.T) {
	vm := NewValidationMiddleware(nil)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/quizzes/:quizID", vm.ValidateParams("quizID"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})
	app.Get("/quizzes", vm.ValidateCourseQuery(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("validated_course_id").(string))
	})

	tests := []struct {
		target string
		status int
	}{
		{"/quizzes/01HZX3Q4J5K6M7N8P9R0S1T2V3", http.StatusNoContent},
		{"/quizzes/not-an-id", http.StatusBadRequest},
		{"/quizzes?course_id=01HZX3Q4J5K6M7N8P9R0S1T2C0", http.StatusOK},
		{"/quizzes", http.StatusBadRequest},
		{"/quizzes?course_id=abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequestLogger_RendersHandlerErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger())
	app.Get("/missing", func(c *fiber.Ctx) error {
		return domain.NewQuizNotFoundError("q1")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
