package handler

import (
	"elearning/internal/middleware"
	"elearning/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Routes bundles what SetupRoutes mounts.
type Routes struct {
	Attempts     *AttemptHandler
	Assignments  *AssignmentHandler
	Catalog      *CatalogHandler
	Health       *HealthHandler
	TokenService service.TokenService
	Validation   *middleware.ValidationMiddleware
}

// SetupRoutes mounts the API under router (usually the /api group).
func SetupRoutes(router fiber.Router, r Routes) {
	if r.Health != nil {
		router.Get("/health", r.Health.Health)
	}

	protected := middleware.Protected(r.TokenService)
	quizParam := r.Validation.ValidateParams("quizID")
	attemptParams := r.Validation.ValidateParams("quizID", "attemptID")

	// Student surface
	quizzes := router.Group("/quizzes", protected)
	quizzes.Get("/", r.Validation.ValidateCourseQuery(), r.Attempts.ListQuizzes)
	quizzes.Get("/:quizID", quizParam, r.Attempts.GetQuiz)
	quizzes.Post("/:quizID/start", quizParam, r.Attempts.StartAttempt)
	quizzes.Get("/:quizID/attempts/:attemptID", attemptParams, r.Attempts.GetAttempt)
	quizzes.Put("/:quizID/attempts/:attemptID/answers", attemptParams, r.Attempts.SaveAnswers)
	quizzes.Post("/:quizID/attempts/:attemptID/submit", attemptParams, r.Attempts.SubmitAttempt)

	router.Get("/attempts/:attemptID/result", protected, r.Validation.ValidateParams("attemptID"), r.Attempts.GetResult)

	// Instructor surface
	manage := router.Group("/manage/quizzes", protected, middleware.RequireTeacher())
	manage.Get("/", r.Validation.ValidateCourseQuery(), r.Catalog.ListQuizzes)
	manage.Post("/", r.Catalog.CreateQuiz)
	manage.Get("/:quizID", quizParam, r.Catalog.GetQuiz)
	manage.Put("/:quizID", quizParam, r.Catalog.UpdateQuiz)
	manage.Delete("/:quizID", quizParam, r.Catalog.DeleteQuiz)
	manage.Post("/:quizID/publish", quizParam, r.Catalog.PublishQuiz)
	manage.Get("/:quizID/attempts", quizParam, r.Catalog.ListAttempts)

	if r.Assignments != nil {
		mountAssignments(router, r, protected)
	}
}

func mountAssignments(router fiber.Router, r Routes, protected fiber.Handler) {
	assignmentParam := r.Validation.ValidateParams("assignmentID")

	assignments := router.Group("/assignments", protected)
	assignments.Get("/", r.Validation.ValidateCourseQuery(), r.Assignments.ListAssignments)
	assignments.Get("/:assignmentID", assignmentParam, r.Assignments.GetAssignment)
	assignments.Post("/:assignmentID/submission", assignmentParam, r.Assignments.Submit)

	manage := router.Group("/manage/assignments", protected, middleware.RequireTeacher())
	manage.Get("/", r.Validation.ValidateCourseQuery(), r.Assignments.ListManagedAssignments)
	manage.Post("/", r.Assignments.CreateAssignment)
	manage.Put("/:assignmentID", assignmentParam, r.Assignments.UpdateAssignment)
	manage.Delete("/:assignmentID", assignmentParam, r.Assignments.DeleteAssignment)
	manage.Post("/:assignmentID/publish", assignmentParam, r.Assignments.PublishAssignment)
	manage.Get("/:assignmentID/submissions", assignmentParam, r.Assignments.ListSubmissions)
	manage.Put("/:assignmentID/submissions/:submissionID/grade",
		r.Validation.ValidateParams("assignmentID", "submissionID"), r.Assignments.GradeSubmission)
}
