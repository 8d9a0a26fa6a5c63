package service

import (
	"context"
	"time"

	"elearning/internal/domain"
	"elearning/internal/dto"
	"elearning/internal/logger"
	"elearning/internal/validation"

	"go.uber.org/zap"
)

// CatalogService is the instructor side of the quiz catalog.
type CatalogService interface {
	ListManagedQuizzes(ctx context.Context, principal domain.Principal, courseID string) (*dto.QuizListResponse, error)
	GetManagedQuiz(ctx context.Context, principal domain.Principal, quizID string) (*dto.ManagedQuizResponse, error)
	CreateQuiz(ctx context.Context, principal domain.Principal, req *dto.QuizRequest) (*dto.ManagedQuizResponse, error)
	UpdateQuiz(ctx context.Context, principal domain.Principal, quizID string, req *dto.QuizRequest) (*dto.ManagedQuizResponse, error)
	SetPublished(ctx context.Context, principal domain.Principal, quizID string, published bool) (*dto.QuizSummaryResponse, error)
	DeleteQuiz(ctx context.Context, principal domain.Principal, quizID string) error
	ListAttempts(ctx context.Context, principal domain.Principal, quizID string) (*dto.AttemptListResponse, error)
	// SaveCourse creates or updates a course; used by catalog imports.
	SaveCourse(ctx context.Context, course *domain.Course) error
}

type catalogService struct {
	repo      domain.QuizRepository
	courses   domain.CourseRepository
	attempts  domain.AttemptRepository
	quizCache QuizCacheService
	validator *validation.Validator
	now       domain.Clock
}

// NewCatalogService creates a CatalogService. A nil clock means time.Now.
// Times read from the clock are stored in UTC.
func NewCatalogService(
	repo domain.QuizRepository,
	courses domain.CourseRepository,
	attempts domain.AttemptRepository,
	quizCache QuizCacheService,
	validator *validation.Validator,
	clock domain.Clock,
) CatalogService {
	if clock == nil {
		clock = time.Now
	}
	now := func() time.Time { return clock().UTC() }
	return &catalogService{
		repo:      repo,
		courses:   courses,
		attempts:  attempts,
		quizCache: quizCache,
		validator: validator,
		now:       now,
	}
}

// ListManagedQuizzes implements CatalogService
func (s *catalogService) ListManagedQuizzes(ctx context.Context, principal domain.Principal, courseID string) (*dto.QuizListResponse, error) {
	if _, err := s.authorizeCourse(ctx, principal, courseID); err != nil {
		return nil, err
	}
	quizzes, err := s.repo.ListByCourse(ctx, courseID, false)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	now := s.now()
	resp := &dto.QuizListResponse{Quizzes: make([]dto.QuizSummaryResponse, 0, len(quizzes))}
	for _, quiz := range quizzes {
		resp.Quizzes = append(resp.Quizzes, toQuizSummary(quiz, now))
	}
	return resp, nil
}

// GetManagedQuiz implements CatalogService
func (s *catalogService) GetManagedQuiz(ctx context.Context, principal domain.Principal, quizID string) (*dto.ManagedQuizResponse, error) {
	quiz, err := s.authorizeQuiz(ctx, principal, quizID)
	if err != nil {
		return nil, err
	}
	full, err := s.repo.GetQuizWithQuestions(ctx, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if full == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	return toManagedQuiz(full, s.now()), nil
}

// CreateQuiz implements CatalogService. New quizzes start unpublished.
func (s *catalogService) CreateQuiz(ctx context.Context, principal domain.Principal, req *dto.QuizRequest) (*dto.ManagedQuizResponse, error) {
	if errs := s.validator.ValidateQuizRequest(req); errs != nil {
		return nil, errs
	}
	if _, err := s.authorizeCourse(ctx, principal, req.CourseID); err != nil {
		return nil, err
	}

	quiz := fromQuizRequest(req)
	quiz.CreatedAt = s.now().UTC()
	if err := s.repo.CreateQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to create quiz", err)
	}
	s.quizCache.Invalidate(ctx, quiz.ID, quiz.CourseID)

	logger.Get().Info("Quiz created",
		zap.String("quizID", quiz.ID),
		zap.String("courseID", quiz.CourseID),
		zap.String("instructorID", principal.UserID))
	return toManagedQuiz(quiz, s.now()), nil
}

// UpdateQuiz implements CatalogService. Questions and choices keep their IDs,
// so answers already given stay attached.
func (s *catalogService) UpdateQuiz(ctx context.Context, principal domain.Principal, quizID string, req *dto.QuizRequest) (*dto.ManagedQuizResponse, error) {
	if errs := s.validator.ValidateQuizRequest(req); errs != nil {
		return nil, errs
	}
	existing, err := s.authorizeQuiz(ctx, principal, quizID)
	if err != nil {
		return nil, err
	}
	if req.CourseID != existing.CourseID {
		return nil, domain.ValidationErrors{domain.NewFieldError("course_id", "cannot move a quiz to another course")}
	}

	quiz := fromQuizRequest(req)
	quiz.ID = existing.ID
	quiz.IsPublished = existing.IsPublished
	if err := s.repo.UpdateQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to update quiz", err)
	}
	s.quizCache.Invalidate(ctx, quiz.ID, quiz.CourseID)

	updated, err := s.repo.GetQuizWithQuestions(ctx, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to reload quiz", err)
	}
	if updated == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	logger.Get().Info("Quiz updated", zap.String("quizID", quiz.ID))
	return toManagedQuiz(updated, s.now()), nil
}

// SetPublished implements CatalogService
func (s *catalogService) SetPublished(ctx context.Context, principal domain.Principal, quizID string, published bool) (*dto.QuizSummaryResponse, error) {
	quiz, err := s.authorizeQuiz(ctx, principal, quizID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	found, err := s.repo.SetPublished(ctx, quiz.ID, published, now)
	if err != nil {
		return nil, domain.NewInternalError("Failed to publish quiz", err)
	}
	if !found {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	s.quizCache.Invalidate(ctx, quiz.ID, quiz.CourseID)

	quiz.IsPublished = published
	quiz.UpdatedAt = now
	logger.Get().Info("Quiz publication changed",
		zap.String("quizID", quiz.ID),
		zap.Bool("published", published))
	summary := toQuizSummary(quiz, now)
	return &summary, nil
}

// DeleteQuiz implements CatalogService
func (s *catalogService) DeleteQuiz(ctx context.Context, principal domain.Principal, quizID string) error {
	quiz, err := s.authorizeQuiz(ctx, principal, quizID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteQuiz(ctx, quiz.ID); err != nil {
		return domain.NewInternalError("Failed to delete quiz", err)
	}
	s.quizCache.Invalidate(ctx, quiz.ID, quiz.CourseID)

	logger.Get().Info("Quiz deleted",
		zap.String("quizID", quiz.ID),
		zap.String("instructorID", principal.UserID))
	return nil
}

// ListAttempts implements CatalogService
func (s *catalogService) ListAttempts(ctx context.Context, principal domain.Principal, quizID string) (*dto.AttemptListResponse, error) {
	quiz, err := s.authorizeQuiz(ctx, principal, quizID)
	if err != nil {
		return nil, err
	}
	attempts, err := s.attempts.ListByQuiz(ctx, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list attempts", err)
	}

	resp := &dto.AttemptListResponse{QuizID: quiz.ID, Attempts: make([]dto.AttemptSummaryResponse, 0, len(attempts))}
	for _, a := range attempts {
		resp.Attempts = append(resp.Attempts, toAttemptSummary(a))
	}
	return resp, nil
}

// SaveCourse implements CatalogService
func (s *catalogService) SaveCourse(ctx context.Context, course *domain.Course) error {
	var errs domain.ValidationErrors
	if course.Title == "" {
		errs = append(errs, domain.NewFieldError("title", "is required"))
	}
	if course.InstructorID == "" {
		errs = append(errs, domain.NewFieldError("instructor_id", "is required"))
	}
	if errs != nil {
		return errs
	}
	if err := s.courses.SaveCourse(ctx, course); err != nil {
		return domain.NewInternalError("Failed to save course", err)
	}
	return nil
}

// authorizeCourse loads the course and checks that principal teaches it.
func (s *catalogService) authorizeCourse(ctx context.Context, principal domain.Principal, courseID string) (*domain.Course, error) {
	return authorizeInstructor(ctx, s.courses, principal, courseID, "Only teachers can manage quizzes")
}

// authorizeInstructor loads the course and checks that principal is a
// teacher and its instructor. notTeacher is the message for other roles.
func authorizeInstructor(ctx context.Context, courses domain.CourseRepository, principal domain.Principal, courseID, notTeacher string) (*domain.Course, error) {
	if !principal.IsTeacher() {
		return nil, domain.NewPermissionDeniedError(notTeacher)
	}
	course, err := courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(courseID)
	}
	if !course.IsInstructor(principal) {
		return nil, domain.NewPermissionDeniedError("You are not the instructor of this course")
	}
	return course, nil
}

// authorizeQuiz loads the quiz without questions and checks course ownership.
func (s *catalogService) authorizeQuiz(ctx context.Context, principal domain.Principal, quizID string) (*domain.Quiz, error) {
	if !principal.IsTeacher() {
		return nil, domain.NewPermissionDeniedError("Only teachers can manage quizzes")
	}
	quiz, err := s.repo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	if _, err := s.authorizeCourse(ctx, principal, quiz.CourseID); err != nil {
		return nil, err
	}
	return quiz, nil
}
