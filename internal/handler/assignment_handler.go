package handler

import (
	"elearning/internal/domain"
	"elearning/internal/dto"
	"elearning/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AssignmentHandler serves course assignments to students and instructors.
type AssignmentHandler struct {
	service service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler instance
func NewAssignmentHandler(service service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

// ListAssignments godoc
// @Summary List assignments of a course
// @Description Returns the published assignments of a course; students see their own submission on each
// @Tags assignments
// @Security ApiKeyAuth
// @Produce json
// @Param course_id query string true "Course ID"
// @Success 200 {object} dto.AssignmentListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.ListAssignments(c.UserContext(), principal, c.Query("course_id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetAssignment godoc
// @Summary Get an assignment
// @Tags assignments
// @Security ApiKeyAuth
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /assignments/{assignmentID} [get]
func (h *AssignmentHandler) GetAssignment(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetAssignment(c.UserContext(), principal, c.Params("assignmentID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Submit godoc
// @Summary Submit an assignment
// @Description Stores the student's text. Late work is accepted and flagged; a second submission is only accepted after the instructor returned the first
// @Tags assignments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Param request body dto.SubmissionRequest true "Submission"
// @Success 201 {object} dto.SubmissionResponse "Submitted"
// @Success 200 {object} dto.SubmissionResponse "Resubmitted"
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /assignments/{assignmentID}/submission [post]
func (h *AssignmentHandler) Submit(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.SubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	resp, created, err := h.service.Submit(c.UserContext(), principal, c.Params("assignmentID"), &req)
	if err != nil {
		return err
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
	return c.JSON(resp)
}

// ListManagedAssignments godoc
// @Summary List managed assignments
// @Description Returns every assignment of a course, published or not, for its instructor
// @Tags manage
// @Security ApiKeyAuth
// @Produce json
// @Param course_id query string true "Course ID"
// @Success 200 {object} dto.AssignmentListResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/assignments [get]
func (h *AssignmentHandler) ListManagedAssignments(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.ListManagedAssignments(c.UserContext(), principal, c.Query("course_id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateAssignment godoc
// @Summary Create an assignment
// @Description Creates an unpublished assignment; total_points defaults to 100
// @Tags manage
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.AssignmentRequest true "Assignment"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	resp, err := h.service.CreateAssignment(c.UserContext(), principal, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateAssignment godoc
// @Summary Update an assignment
// @Tags manage
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Param request body dto.AssignmentRequest true "Assignment"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/assignments/{assignmentID} [put]
func (h *AssignmentHandler) UpdateAssignment(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	resp, err := h.service.UpdateAssignment(c.UserContext(), principal, c.Params("assignmentID"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PublishAssignment godoc
// @Summary Publish or unpublish an assignment
// @Tags manage
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Param request body dto.PublishRequest true "Publication flag"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/assignments/{assignmentID}/publish [post]
func (h *AssignmentHandler) PublishAssignment(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.PublishRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	resp, err := h.service.SetPublished(c.UserContext(), principal, c.Params("assignmentID"), req.Published)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Description Removes the assignment with its submissions
// @Tags manage
// @Security ApiKeyAuth
// @Param assignmentID path string true "Assignment ID"
// @Success 204
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/assignments/{assignmentID} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteAssignment(c.UserContext(), principal, c.Params("assignmentID")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSubmissions godoc
// @Summary List submissions of an assignment
// @Tags manage
// @Security ApiKeyAuth
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {object} dto.SubmissionListResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/assignments/{assignmentID}/submissions [get]
func (h *AssignmentHandler) ListSubmissions(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	resp, err := h.service.ListSubmissions(c.UserContext(), principal, c.Params("assignmentID"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GradeSubmission godoc
// @Summary Grade a submission
// @Description Records score and feedback; status returned lets the student resubmit
// @Tags manage
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Param submissionID path string true "Submission ID"
// @Param request body dto.GradeRequest true "Grade"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /manage/assignments/{assignmentID}/submissions/{submissionID}/grade [put]
func (h *AssignmentHandler) GradeSubmission(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}
	resp, err := h.service.GradeSubmission(c.UserContext(), principal,
		c.Params("assignmentID"), c.Params("submissionID"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
