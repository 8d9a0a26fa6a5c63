package handler

import (
	"elearning/internal/domain"
	"elearning/internal/dto"
	"elearning/internal/logger"
	"elearning/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler serves quiz management for course instructors.
type CatalogHandler struct {
	service service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListQuizzes godoc
// @Summary List managed quizzes
// @Description Returns every quiz of a course, published or not, for its instructor
// @Tags manage
// @Security ApiKeyAuth
// @Produce json
// @Param course_id query string true "Course ID"
// @Success 200 {object} dto.QuizListResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/quizzes [get]
func (h *CatalogHandler) ListQuizzes(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.ListManagedQuizzes(c.UserContext(), principal, c.Query("course_id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Get a managed quiz
// @Description Returns the quiz with its questions and answer keys
// @Tags manage
// @Security ApiKeyAuth
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.ManagedQuizResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/quizzes/{quizID} [get]
func (h *CatalogHandler) GetQuiz(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetManagedQuiz(c.UserContext(), principal, c.Params("quizID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Description Creates an unpublished quiz with exactly five questions of four choices, one correct each
// @Tags manage
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz"
// @Success 201 {object} dto.ManagedQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/quizzes [post]
func (h *CatalogHandler) CreateQuiz(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	resp, err := h.service.CreateQuiz(c.UserContext(), principal, &req)
	if err != nil {
		return err
	}
	logger.Get().Info("Quiz created", zap.String("quiz_id", resp.ID), zap.String("course_id", resp.CourseID))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Description Replaces quiz fields and question/choice texts in place; identifiers are kept
// @Tags manage
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Param request body dto.QuizRequest true "Quiz"
// @Success 200 {object} dto.ManagedQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/quizzes/{quizID} [put]
func (h *CatalogHandler) UpdateQuiz(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	resp, err := h.service.UpdateQuiz(c.UserContext(), principal, c.Params("quizID"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PublishQuiz godoc
// @Summary Publish or unpublish a quiz
// @Tags manage
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Param request body dto.PublishRequest true "Publication flag"
// @Success 200 {object} dto.QuizSummaryResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/quizzes/{quizID}/publish [post]
func (h *CatalogHandler) PublishQuiz(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.PublishRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	resp, err := h.service.SetPublished(c.UserContext(), principal, c.Params("quizID"), req.Published)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Removes the quiz with its questions, choices, attempts and answers
// @Tags manage
// @Security ApiKeyAuth
// @Param quizID path string true "Quiz ID"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/quizzes/{quizID} [delete]
func (h *CatalogHandler) DeleteQuiz(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteQuiz(c.UserContext(), principal, c.Params("quizID")); err != nil {
		return err
	}
	logger.Get().Info("Quiz deleted", zap.String("quiz_id", c.Params("quizID")))
	return c.SendStatus(fiber.StatusNoContent)
}

// ListAttempts godoc
// @Summary List attempts of a quiz
// @Tags manage
// @Security ApiKeyAuth
// @Produce json
// @Param quizID path string true "Quiz ID"
// @Success 200 {object} dto.AttemptListResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/quizzes/{quizID}/attempts [get]
func (h *CatalogHandler) ListAttempts(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.ListAttempts(c.UserContext(), principal, c.Params("quizID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
