package service

import (
	"context"
	"errors"
	"time"

	"elearning/internal/domain"
	"elearning/internal/dto"
	"elearning/internal/logger"
	"elearning/internal/validation"

	"go.uber.org/zap"
)

// AssignmentService covers course assignments: students submit text work
// once per assignment, the course instructor publishes and grades.
type AssignmentService interface {
	ListAssignments(ctx context.Context, principal domain.Principal, courseID string) (*dto.AssignmentListResponse, error)
	GetAssignment(ctx context.Context, principal domain.Principal, assignmentID string) (*dto.AssignmentResponse, error)
	// Submit stores the caller's work. created is false when a returned
	// submission was replaced.
	Submit(ctx context.Context, principal domain.Principal, assignmentID string, req *dto.SubmissionRequest) (resp *dto.SubmissionResponse, created bool, err error)

	ListManagedAssignments(ctx context.Context, principal domain.Principal, courseID string) (*dto.AssignmentListResponse, error)
	CreateAssignment(ctx context.Context, principal domain.Principal, req *dto.AssignmentRequest) (*dto.AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, principal domain.Principal, assignmentID string, req *dto.AssignmentRequest) (*dto.AssignmentResponse, error)
	SetPublished(ctx context.Context, principal domain.Principal, assignmentID string, published bool) (*dto.AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, principal domain.Principal, assignmentID string) error
	ListSubmissions(ctx context.Context, principal domain.Principal, assignmentID string) (*dto.SubmissionListResponse, error)
	GradeSubmission(ctx context.Context, principal domain.Principal, assignmentID, submissionID string, req *dto.GradeRequest) (*dto.SubmissionResponse, error)
}

type assignmentService struct {
	assignments domain.AssignmentRepository
	submissions domain.SubmissionRepository
	courses     domain.CourseRepository
	tx          domain.TransactionManager
	validator   *validation.Validator
	now         domain.Clock
}

// NewAssignmentService creates an AssignmentService. A nil clock means time.Now.
func NewAssignmentService(
	assignments domain.AssignmentRepository,
	submissions domain.SubmissionRepository,
	courses domain.CourseRepository,
	tx domain.TransactionManager,
	validator *validation.Validator,
	clock domain.Clock,
) AssignmentService {
	if clock == nil {
		clock = time.Now
	}
	return &assignmentService{
		assignments: assignments,
		submissions: submissions,
		courses:     courses,
		tx:          tx,
		validator:   validator,
		now:         func() time.Time { return clock().UTC() },
	}
}

// ListAssignments implements AssignmentService. Only published assignments
// are listed; students see their own submission on each.
func (s *assignmentService) ListAssignments(ctx context.Context, principal domain.Principal, courseID string) (*dto.AssignmentListResponse, error) {
	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(courseID)
	}
	assignments, err := s.assignments.ListAssignmentsByCourse(ctx, courseID, true)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list assignments", err)
	}

	now := s.now()
	resp := &dto.AssignmentListResponse{Assignments: make([]dto.AssignmentResponse, 0, len(assignments))}
	for _, a := range assignments {
		item := toAssignmentResponse(a, now)
		if principal.IsStudent() {
			if item.Submission, err = s.ownSubmission(ctx, a, principal.UserID); err != nil {
				return nil, err
			}
		}
		resp.Assignments = append(resp.Assignments, item)
	}
	return resp, nil
}

// GetAssignment implements AssignmentService. Unpublished assignments are
// visible to the course instructor only.
func (s *assignmentService) GetAssignment(ctx context.Context, principal domain.Principal, assignmentID string) (*dto.AssignmentResponse, error) {
	a, err := s.loadAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if !a.IsPublished {
		course, err := s.courses.GetCourseByID(ctx, a.CourseID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get course", err)
		}
		if course == nil || !course.IsInstructor(principal) {
			return nil, domain.NewAssignmentNotFoundError(assignmentID)
		}
	}

	resp := toAssignmentResponse(a, s.now())
	if principal.IsStudent() {
		if resp.Submission, err = s.ownSubmission(ctx, a, principal.UserID); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Submit implements AssignmentService. Work after the due date is accepted
// and flagged late. A second submission is refused unless the instructor
// returned the first one.
func (s *assignmentService) Submit(ctx context.Context, principal domain.Principal, assignmentID string, req *dto.SubmissionRequest) (*dto.SubmissionResponse, bool, error) {
	if !principal.IsStudent() {
		return nil, false, domain.NewPermissionDeniedError("Only students can submit assignments")
	}
	if errs := s.validator.ValidateStruct(req); len(errs) > 0 {
		return nil, false, errs
	}

	var (
		resp    *dto.SubmissionResponse
		created bool
	)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		a, err := s.loadAssignment(ctx, assignmentID)
		if err != nil {
			return err
		}
		if !a.IsPublished {
			return domain.NewAssignmentNotPublishedError(assignmentID)
		}
		now := s.now()

		existing, err := s.submissions.GetByAssignmentAndStudent(ctx, a.ID, principal.UserID)
		if err != nil {
			return domain.NewInternalError("Failed to get submission", err)
		}
		if existing == nil {
			sub := &domain.Submission{
				AssignmentID: a.ID,
				StudentID:    principal.UserID,
				Text:         req.Text,
				SubmittedAt:  now,
				Status:       domain.SubmissionStatusSubmitted,
			}
			if err := s.submissions.CreateSubmission(ctx, sub); err != nil {
				if errors.Is(err, domain.ErrSubmissionExists) {
					return domain.NewAlreadySubmittedError(a.ID)
				}
				return domain.NewInternalError("Failed to create submission", err)
			}
			out := toSubmissionResponse(sub, a)
			resp, created = &out, true
			logger.Get().Info("Assignment submitted",
				zap.String("submissionID", sub.ID),
				zap.String("assignmentID", a.ID),
				zap.String("studentID", principal.UserID),
				zap.Bool("late", sub.IsLate(a)))
			return nil
		}

		locked, err := s.submissions.GetSubmissionForUpdate(ctx, existing.ID)
		if err != nil {
			return domain.NewInternalError("Failed to lock submission", err)
		}
		if locked == nil {
			return domain.NewSubmissionNotFoundError(existing.ID)
		}
		if !locked.CanResubmit() {
			return domain.NewAlreadySubmittedError(a.ID)
		}
		locked.Resubmit(req.Text, now)
		if err := s.submissions.UpdateSubmission(ctx, locked); err != nil {
			return domain.NewInternalError("Failed to update submission", err)
		}
		out := toSubmissionResponse(locked, a)
		resp = &out
		logger.Get().Info("Assignment resubmitted",
			zap.String("submissionID", locked.ID),
			zap.String("studentID", principal.UserID))
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return resp, created, nil
}

// ListManagedAssignments implements AssignmentService
func (s *assignmentService) ListManagedAssignments(ctx context.Context, principal domain.Principal, courseID string) (*dto.AssignmentListResponse, error) {
	if _, err := s.authorizeCourse(ctx, principal, courseID); err != nil {
		return nil, err
	}
	assignments, err := s.assignments.ListAssignmentsByCourse(ctx, courseID, false)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list assignments", err)
	}
	now := s.now()
	resp := &dto.AssignmentListResponse{Assignments: make([]dto.AssignmentResponse, 0, len(assignments))}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, toAssignmentResponse(a, now))
	}
	return resp, nil
}

// CreateAssignment implements AssignmentService. New assignments start unpublished.
func (s *assignmentService) CreateAssignment(ctx context.Context, principal domain.Principal, req *dto.AssignmentRequest) (*dto.AssignmentResponse, error) {
	if errs := s.validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errs
	}
	if _, err := s.authorizeCourse(ctx, principal, req.CourseID); err != nil {
		return nil, err
	}

	now := s.now()
	a := fromAssignmentRequest(req)
	a.CreatedAt = now
	a.UpdatedAt = now
	if err := s.assignments.CreateAssignment(ctx, a); err != nil {
		return nil, domain.NewInternalError("Failed to create assignment", err)
	}
	logger.Get().Info("Assignment created",
		zap.String("assignmentID", a.ID),
		zap.String("courseID", a.CourseID),
		zap.String("instructorID", principal.UserID))
	resp := toAssignmentResponse(a, now)
	return &resp, nil
}

// UpdateAssignment implements AssignmentService. Publication is kept.
func (s *assignmentService) UpdateAssignment(ctx context.Context, principal domain.Principal, assignmentID string, req *dto.AssignmentRequest) (*dto.AssignmentResponse, error) {
	if errs := s.validator.ValidateStruct(req); len(errs) > 0 {
		return nil, errs
	}
	existing, err := s.authorizeAssignment(ctx, principal, assignmentID)
	if err != nil {
		return nil, err
	}
	if req.CourseID != existing.CourseID {
		return nil, domain.ValidationErrors{domain.NewFieldError("course_id", "cannot move an assignment to another course")}
	}

	now := s.now()
	a := fromAssignmentRequest(req)
	a.ID = existing.ID
	a.IsPublished = existing.IsPublished
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = now
	if err := s.assignments.UpdateAssignment(ctx, a); err != nil {
		return nil, domain.NewInternalError("Failed to update assignment", err)
	}
	logger.Get().Info("Assignment updated", zap.String("assignmentID", a.ID))
	resp := toAssignmentResponse(a, now)
	return &resp, nil
}

// SetPublished implements AssignmentService
func (s *assignmentService) SetPublished(ctx context.Context, principal domain.Principal, assignmentID string, published bool) (*dto.AssignmentResponse, error) {
	a, err := s.authorizeAssignment(ctx, principal, assignmentID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	a.IsPublished = published
	a.UpdatedAt = now
	if err := s.assignments.UpdateAssignment(ctx, a); err != nil {
		return nil, domain.NewInternalError("Failed to publish assignment", err)
	}
	logger.Get().Info("Assignment publication changed",
		zap.String("assignmentID", a.ID),
		zap.Bool("published", published))
	resp := toAssignmentResponse(a, now)
	return &resp, nil
}

// DeleteAssignment implements AssignmentService. Submissions are removed with it.
func (s *assignmentService) DeleteAssignment(ctx context.Context, principal domain.Principal, assignmentID string) error {
	a, err := s.authorizeAssignment(ctx, principal, assignmentID)
	if err != nil {
		return err
	}
	if err := s.assignments.DeleteAssignment(ctx, a.ID); err != nil {
		return domain.NewInternalError("Failed to delete assignment", err)
	}
	logger.Get().Info("Assignment deleted",
		zap.String("assignmentID", a.ID),
		zap.String("instructorID", principal.UserID))
	return nil
}

// ListSubmissions implements AssignmentService
func (s *assignmentService) ListSubmissions(ctx context.Context, principal domain.Principal, assignmentID string) (*dto.SubmissionListResponse, error) {
	a, err := s.authorizeAssignment(ctx, principal, assignmentID)
	if err != nil {
		return nil, err
	}
	submissions, err := s.submissions.ListByAssignment(ctx, a.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list submissions", err)
	}
	resp := &dto.SubmissionListResponse{AssignmentID: a.ID, Submissions: make([]dto.SubmissionResponse, 0, len(submissions))}
	for _, sub := range submissions {
		resp.Submissions = append(resp.Submissions, toSubmissionResponse(sub, a))
	}
	return resp, nil
}

// GradeSubmission implements AssignmentService. The status defaults to graded;
// returned lets the student resubmit.
func (s *assignmentService) GradeSubmission(ctx context.Context, principal domain.Principal, assignmentID, submissionID string, req *dto.GradeRequest) (*dto.SubmissionResponse, error) {
	a, err := s.authorizeAssignment(ctx, principal, assignmentID)
	if err != nil {
		return nil, err
	}
	if errs := s.validator.ValidateGradeRequest(req, a.TotalPoints); len(errs) > 0 {
		return nil, errs
	}
	status := domain.SubmissionStatus(req.Status)
	if status == "" {
		status = domain.SubmissionStatusGraded
	}

	var resp *dto.SubmissionResponse
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		sub, err := s.submissions.GetSubmissionForUpdate(ctx, submissionID)
		if err != nil {
			return domain.NewInternalError("Failed to lock submission", err)
		}
		if sub == nil || sub.AssignmentID != a.ID {
			return domain.NewSubmissionNotFoundError(submissionID)
		}
		sub.Grade(*req.Score, req.Feedback, status, s.now())
		if err := s.submissions.UpdateSubmission(ctx, sub); err != nil {
			return domain.NewInternalError("Failed to grade submission", err)
		}
		out := toSubmissionResponse(sub, a)
		resp = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Submission graded",
		zap.String("submissionID", submissionID),
		zap.Int("score", *req.Score),
		zap.String("status", string(status)),
		zap.String("instructorID", principal.UserID))
	return resp, nil
}

func (s *assignmentService) loadAssignment(ctx context.Context, assignmentID string) (*domain.Assignment, error) {
	a, err := s.assignments.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get assignment", err)
	}
	if a == nil {
		return nil, domain.NewAssignmentNotFoundError(assignmentID)
	}
	return a, nil
}

func (s *assignmentService) ownSubmission(ctx context.Context, a *domain.Assignment, studentID string) (*dto.SubmissionResponse, error) {
	sub, err := s.submissions.GetByAssignmentAndStudent(ctx, a.ID, studentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get submission", err)
	}
	if sub == nil {
		return nil, nil
	}
	out := toSubmissionResponse(sub, a)
	return &out, nil
}

func (s *assignmentService) authorizeCourse(ctx context.Context, principal domain.Principal, courseID string) (*domain.Course, error) {
	return authorizeInstructor(ctx, s.courses, principal, courseID, "Only teachers can manage assignments")
}

// authorizeAssignment loads the assignment and checks course ownership.
func (s *assignmentService) authorizeAssignment(ctx context.Context, principal domain.Principal, assignmentID string) (*domain.Assignment, error) {
	if !principal.IsTeacher() {
		return nil, domain.NewPermissionDeniedError("Only teachers can manage assignments")
	}
	a, err := s.loadAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.authorizeCourse(ctx, principal, a.CourseID); err != nil {
		return nil, err
	}
	return a, nil
}
