package handler_test

import (
	"context"
	"errors"
	"time"

	"elearning/internal/domain"
	"elearning/internal/dto"
)

// --- Manual Mocks ---

// MockAttemptService
type MockAttemptService struct {
	ListCourseQuizzesFunc func(ctx context.Context, principal domain.Principal, courseID string) (*dto.QuizListResponse, error)
	GetQuizFunc           func(ctx context.Context, principal domain.Principal, quizID string) (*dto.QuizSummaryResponse, error)
	StartAttemptFunc      func(ctx context.Context, principal domain.Principal, quizID string) (*dto.AttemptOutcomeResponse, error)
	GetAttemptFunc        func(ctx context.Context, principal domain.Principal, quizID, attemptID string) (*dto.AttemptOutcomeResponse, error)
	SaveAnswersFunc       func(ctx context.Context, principal domain.Principal, quizID, attemptID string, answers map[string]string) (*dto.AttemptOutcomeResponse, error)
	SubmitAttemptFunc     func(ctx context.Context, principal domain.Principal, quizID, attemptID string, answers map[string]string) (*dto.AttemptOutcomeResponse, error)
	GetResultFunc         func(ctx context.Context, principal domain.Principal, attemptID string) (*dto.ResultResponse, error)
}

func (m *MockAttemptService) ListCourseQuizzes(ctx context.Context, principal domain.Principal, courseID string) (*dto.QuizListResponse, error) {
	if m.ListCourseQuizzesFunc != nil {
		return m.ListCourseQuizzesFunc(ctx, principal, courseID)
	}
	panic("MockAttemptService.ListCourseQuizzesFunc not implemented")
}
func (m *MockAttemptService) GetQuiz(ctx context.Context, principal domain.Principal, quizID string) (*dto.QuizSummaryResponse, error) {
	if m.GetQuizFunc != nil {
		return m.GetQuizFunc(ctx, principal, quizID)
	}
	panic("MockAttemptService.GetQuizFunc not implemented")
}
func (m *MockAttemptService) StartAttempt(ctx context.Context, principal domain.Principal, quizID string) (*dto.AttemptOutcomeResponse, error) {
	if m.StartAttemptFunc != nil {
		return m.StartAttemptFunc(ctx, principal, quizID)
	}
	panic("MockAttemptService.StartAttemptFunc not implemented")
}
func (m *MockAttemptService) GetAttempt(ctx context.Context, principal domain.Principal, quizID, attemptID string) (*dto.AttemptOutcomeResponse, error) {
	if m.GetAttemptFunc != nil {
		return m.GetAttemptFunc(ctx, principal, quizID, attemptID)
	}
	panic("MockAttemptService.GetAttemptFunc not implemented")
}
func (m *MockAttemptService) SaveAnswers(ctx context.Context, principal domain.Principal, quizID, attemptID string, answers map[string]string) (*dto.AttemptOutcomeResponse, error) {
	if m.SaveAnswersFunc != nil {
		return m.SaveAnswersFunc(ctx, principal, quizID, attemptID, answers)
	}
	panic("MockAttemptService.SaveAnswersFunc not implemented")
}
func (m *MockAttemptService) SubmitAttempt(ctx context.Context, principal domain.Principal, quizID, attemptID string, answers map[string]string) (*dto.AttemptOutcomeResponse, error) {
	if m.SubmitAttemptFunc != nil {
		return m.SubmitAttemptFunc(ctx, principal, quizID, attemptID, answers)
	}
	panic("MockAttemptService.SubmitAttemptFunc not implemented")
}
func (m *MockAttemptService) GetResult(ctx context.Context, principal domain.Principal, attemptID string) (*dto.ResultResponse, error) {
	if m.GetResultFunc != nil {
		return m.GetResultFunc(ctx, principal, attemptID)
	}
	panic("MockAttemptService.GetResultFunc not implemented")
}
func (m *MockAttemptService) RegradeAttempt(ctx context.Context, attemptID string) (*dto.ResultResponse, error) {
	panic("not implemented in mock")
}

// MockCatalogService
type MockCatalogService struct {
	ListManagedQuizzesFunc func(ctx context.Context, principal domain.Principal, courseID string) (*dto.QuizListResponse, error)
	GetManagedQuizFunc     func(ctx context.Context, principal domain.Principal, quizID string) (*dto.ManagedQuizResponse, error)
	CreateQuizFunc         func(ctx context.Context, principal domain.Principal, req *dto.QuizRequest) (*dto.ManagedQuizResponse, error)
	UpdateQuizFunc         func(ctx context.Context, principal domain.Principal, quizID string, req *dto.QuizRequest) (*dto.ManagedQuizResponse, error)
	SetPublishedFunc       func(ctx context.Context, principal domain.Principal, quizID string, published bool) (*dto.QuizSummaryResponse, error)
	DeleteQuizFunc         func(ctx context.Context, principal domain.Principal, quizID string) error
	ListAttemptsFunc       func(ctx context.Context, principal domain.Principal, quizID string) (*dto.AttemptListResponse, error)
}

func (m *MockCatalogService) ListManagedQuizzes(ctx context.Context, principal domain.Principal, courseID string) (*dto.QuizListResponse, error) {
	if m.ListManagedQuizzesFunc != nil {
		return m.ListManagedQuizzesFunc(ctx, principal, courseID)
	}
	panic("MockCatalogService.ListManagedQuizzesFunc not implemented")
}
func (m *MockCatalogService) GetManagedQuiz(ctx context.Context, principal domain.Principal, quizID string) (*dto.ManagedQuizResponse, error) {
	if m.GetManagedQuizFunc != nil {
		return m.GetManagedQuizFunc(ctx, principal, quizID)
	}
	panic("MockCatalogService.GetManagedQuizFunc not implemented")
}
func (m *MockCatalogService) CreateQuiz(ctx context.Context, principal domain.Principal, req *dto.QuizRequest) (*dto.ManagedQuizResponse, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, principal, req)
	}
	panic("MockCatalogService.CreateQuizFunc not implemented")
}
func (m *MockCatalogService) UpdateQuiz(ctx context.Context, principal domain.Principal, quizID string, req *dto.QuizRequest) (*dto.ManagedQuizResponse, error) {
	if m.UpdateQuizFunc != nil {
		return m.UpdateQuizFunc(ctx, principal, quizID, req)
	}
	panic("MockCatalogService.UpdateQuizFunc not implemented")
}
func (m *MockCatalogService) SetPublished(ctx context.Context, principal domain.Principal, quizID string, published bool) (*dto.QuizSummaryResponse, error) {
	if m.SetPublishedFunc != nil {
		return m.SetPublishedFunc(ctx, principal, quizID, published)
	}
	panic("MockCatalogService.SetPublishedFunc not implemented")
}
func (m *MockCatalogService) DeleteQuiz(ctx context.Context, principal domain.Principal, quizID string) error {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, principal, quizID)
	}
	panic("MockCatalogService.DeleteQuizFunc not implemented")
}
func (m *MockCatalogService) ListAttempts(ctx context.Context, principal domain.Principal, quizID string) (*dto.AttemptListResponse, error) {
	if m.ListAttemptsFunc != nil {
		return m.ListAttemptsFunc(ctx, principal, quizID)
	}
	panic("MockCatalogService.ListAttemptsFunc not implemented")
}
func (m *MockCatalogService) SaveCourse(ctx context.Context, course *domain.Course) error {
	panic("not implemented in mock")
}

// MockTokenService resolves bearer tokens from a fixed table.
type MockTokenService struct {
	Principals map[string]domain.Principal
}

func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (domain.Principal, error) {
	if p, ok := m.Principals[tokenString]; ok {
		return p, nil
	}
	return domain.Principal{}, errors.New("unknown token")
}

func (m *MockTokenService) IssueToken(ctx context.Context, principal domain.Principal, ttl time.Duration) (string, error) {
	panic("not implemented in mock")
}

// MockAssignmentService
type MockAssignmentService struct {
	ListAssignmentsFunc        func(ctx context.Context, principal domain.Principal, courseID string) (*dto.AssignmentListResponse, error)
	GetAssignmentFunc          func(ctx context.Context, principal domain.Principal, assignmentID string) (*dto.AssignmentResponse, error)
	SubmitFunc                 func(ctx context.Context, principal domain.Principal, assignmentID string, req *dto.SubmissionRequest) (*dto.SubmissionResponse, bool, error)
	ListManagedAssignmentsFunc func(ctx context.Context, principal domain.Principal, courseID string) (*dto.AssignmentListResponse, error)
	CreateAssignmentFunc       func(ctx context.Context, principal domain.Principal, req *dto.AssignmentRequest) (*dto.AssignmentResponse, error)
	UpdateAssignmentFunc       func(ctx context.Context, principal domain.Principal, assignmentID string, req *dto.AssignmentRequest) (*dto.AssignmentResponse, error)
	SetPublishedFunc           func(ctx context.Context, principal domain.Principal, assignmentID string, published bool) (*dto.AssignmentResponse, error)
	DeleteAssignmentFunc       func(ctx context.Context, principal domain.Principal, assignmentID string) error
	ListSubmissionsFunc        func(ctx context.Context, principal domain.Principal, assignmentID string) (*dto.SubmissionListResponse, error)
	GradeSubmissionFunc        func(ctx context.Context, principal domain.Principal, assignmentID, submissionID string, req *dto.GradeRequest) (*dto.SubmissionResponse, error)
}

func (m *MockAssignmentService) ListAssignments(ctx context.Context, principal domain.Principal, courseID string) (*dto.AssignmentListResponse, error) {
	if m.ListAssignmentsFunc != nil {
		return m.ListAssignmentsFunc(ctx, principal, courseID)
	}
	panic("MockAssignmentService.ListAssignmentsFunc not implemented")
}
func (m *MockAssignmentService) GetAssignment(ctx context.Context, principal domain.Principal, assignmentID string) (*dto.AssignmentResponse, error) {
	if m.GetAssignmentFunc != nil {
		return m.GetAssignmentFunc(ctx, principal, assignmentID)
	}
	panic("MockAssignmentService.GetAssignmentFunc not implemented")
}
func (m *MockAssignmentService) Submit(ctx context.Context, principal domain.Principal, assignmentID string, req *dto.SubmissionRequest) (*dto.SubmissionResponse, bool, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, principal, assignmentID, req)
	}
	panic("MockAssignmentService.SubmitFunc not implemented")
}
func (m *MockAssignmentService) ListManagedAssignments(ctx context.Context, principal domain.Principal, courseID string) (*dto.AssignmentListResponse, error) {
	if m.ListManagedAssignmentsFunc != nil {
		return m.ListManagedAssignmentsFunc(ctx, principal, courseID)
	}
	panic("MockAssignmentService.ListManagedAssignmentsFunc not implemented")
}
func (m *MockAssignmentService) CreateAssignment(ctx context.Context, principal domain.Principal, req *dto.AssignmentRequest) (*dto.AssignmentResponse, error) {
	if m.CreateAssignmentFunc != nil {
		return m.CreateAssignmentFunc(ctx, principal, req)
	}
	panic("MockAssignmentService.CreateAssignmentFunc not implemented")
}
func (m *MockAssignmentService) UpdateAssignment(ctx context.Context, principal domain.Principal, assignmentID string, req *dto.AssignmentRequest) (*dto.AssignmentResponse, error) {
	if m.UpdateAssignmentFunc != nil {
		return m.UpdateAssignmentFunc(ctx, principal, assignmentID, req)
	}
	panic("MockAssignmentService.UpdateAssignmentFunc not implemented")
}
func (m *MockAssignmentService) SetPublished(ctx context.Context, principal domain.Principal, assignmentID string, published bool) (*dto.AssignmentResponse, error) {
	if m.SetPublishedFunc != nil {
		return m.SetPublishedFunc(ctx, principal, assignmentID, published)
	}
	panic("MockAssignmentService.SetPublishedFunc not implemented")
}
func (m *MockAssignmentService) DeleteAssignment(ctx context.Context, principal domain.Principal, assignmentID string) error {
	if m.DeleteAssignmentFunc != nil {
		return m.DeleteAssignmentFunc(ctx, principal, assignmentID)
	}
	panic("MockAssignmentService.DeleteAssignmentFunc not implemented")
}
func (m *MockAssignmentService) ListSubmissions(ctx context.Context, principal domain.Principal, assignmentID string) (*dto.SubmissionListResponse, error) {
	if m.ListSubmissionsFunc != nil {
		return m.ListSubmissionsFunc(ctx, principal, assignmentID)
	}
	panic("MockAssignmentService.ListSubmissionsFunc not implemented")
}
func (m *MockAssignmentService) GradeSubmission(ctx context.Context, principal domain.Principal, assignmentID, submissionID string, req *dto.GradeRequest) (*dto.SubmissionResponse, error) {
	if m.GradeSubmissionFunc != nil {
		return m.GradeSubmissionFunc(ctx, principal, assignmentID, submissionID, req)
	}
	panic("MockAssignmentService.GradeSubmissionFunc not implemented")
}
