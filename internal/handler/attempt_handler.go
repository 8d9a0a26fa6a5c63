package handler

import (
	"elearning/internal/domain"
	"elearning/internal/dto"
	"elearning/internal/logger"
	"elearning/internal/middleware"
	"elearning/internal/service"
	"elearning/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AttemptHandler serves the student surface: quiz pages, attempts and results.
type AttemptHandler struct {
	service   service.AttemptService
	validator *validation.Validator
}

// NewAttemptHandler creates a new AttemptHandler instance
func NewAttemptHandler(service service.AttemptService, validator *validation.Validator) *AttemptHandler {
	return &AttemptHandler{
		service:   service,
		validator: validator,
	}
}

// ListQuizzes godoc
// @Summary List quizzes of a course
// @Description Returns the published quizzes of a course with their availability and the caller's attempt state
// @Tags quizzes
// @Security ApiKeyAuth
// @Produce json
// @Param course_id query string true "Course ID"
// @Success 200 {object} dto.QuizListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *AttemptHandler) ListQuizzes(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.ListCourseQuizzes(c.UserContext(), principal, c.Query("course_id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Get a quiz
// @Description Returns the quiz summary with availability and the caller's attempt state
// @Tags quizzes
// @Security ApiKeyAuth
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.QuizSummaryResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{quizID} [get]
func (h *AttemptHandler) GetQuiz(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetQuiz(c.UserContext(), principal, c.Params("quizID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// StartAttempt godoc
// @Summary Start or resume an attempt
// @Description Creates the caller's attempt, or resumes the one in progress. An attempt whose time ran out is auto-submitted.
// @Tags attempts
// @Security ApiKeyAuth
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.AttemptOutcomeResponse "Resumed or auto-submitted"
// @Success 201 {object} dto.AttemptOutcomeResponse "Started"
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Not available or already completed"
// @Router /quizzes/{quizID}/start [post]
func (h *AttemptHandler) StartAttempt(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.StartAttempt(c.UserContext(), principal, c.Params("quizID"))
	if err != nil {
		return err
	}
	if resp.Outcome == dto.OutcomeStarted {
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
	return c.JSON(resp)
}

// GetAttempt godoc
// @Summary Get the attempt page
// @Description Returns questions, choices without correctness, current selections and remaining time
// @Tags attempts
// @Security ApiKeyAuth
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Param attemptID path string true "Attempt ID"
// @Success 200 {object} dto.AttemptOutcomeResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quizzes/{quizID}/attempts/{attemptID} [get]
func (h *AttemptHandler) GetAttempt(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetAttempt(c.UserContext(), principal, c.Params("quizID"), c.Params("attemptID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SaveAnswers godoc
// @Summary Save answer selections
// @Description Records the selected choice per question; later selections replace earlier ones
// @Tags attempts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Param attemptID path string true "Attempt ID"
// @Param request body dto.AnswersRequest true "Selections"
// @Success 200 {object} dto.AttemptOutcomeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quizzes/{quizID}/attempts/{attemptID}/answers [put]
func (h *AttemptHandler) SaveAnswers(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	req, err := h.parseAnswers(c, true)
	if err != nil {
		return err
	}
	resp, err := h.service.SaveAnswers(c.UserContext(), principal, c.Params("quizID"), c.Params("attemptID"), req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitAttempt godoc
// @Summary Submit an attempt
// @Description Applies the final selections, grades the attempt and returns the result. The body is optional.
// @Tags attempts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Param attemptID path string true "Attempt ID"
// @Param request body dto.AnswersRequest false "Final selections"
// @Success 200 {object} dto.AttemptOutcomeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quizzes/{quizID}/attempts/{attemptID}/submit [post]
func (h *AttemptHandler) SubmitAttempt(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	req, err := h.parseAnswers(c, false)
	if err != nil {
		return err
	}
	resp, err := h.service.SubmitAttempt(c.UserContext(), principal, c.Params("quizID"), c.Params("attemptID"), req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetResult godoc
// @Summary Get an attempt result
// @Description Returns the score and per-question correctness. Available to the attempt owner and the course instructor.
// @Tags attempts
// @Security ApiKeyAuth
// @Produce json
// @Param attemptID path string true "Attempt ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Attempt still in progress"
// @Router /attempts/{attemptID}/result [get]
func (h *AttemptHandler) GetResult(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetResult(c.UserContext(), principal, c.Params("attemptID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *AttemptHandler) parseAnswers(c *fiber.Ctx, required bool) (*dto.AnswersRequest, error) {
	req := &dto.AnswersRequest{}
	if len(c.Body()) == 0 {
		if required {
			return nil, domain.ValidationErrors{domain.NewFieldError("answers", "is required")}
		}
		return req, nil
	}
	if err := c.BodyParser(req); err != nil {
		return nil, domain.NewInvalidInputError("Request body is not valid JSON")
	}
	if errs := h.validator.ValidateAnswersRequest(req); len(errs) > 0 {
		return nil, errs
	}
	return req, nil
}

func principalFrom(c *fiber.Ctx) (domain.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		logger.Get().Warn("Principal not found in context", zap.String("path", c.Path()))
		return domain.Principal{}, domain.NewError(domain.CodeUnauthorized, "Authentication required", nil)
	}
	return principal, nil
}
