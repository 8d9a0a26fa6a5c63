package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Access
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Lookup
	CodeQuizNotFound    ErrorCode = "QUIZ_NOT_FOUND"
	CodeAttemptNotFound ErrorCode = "ATTEMPT_NOT_FOUND"
	CodeCourseNotFound  ErrorCode = "COURSE_NOT_FOUND"

	CodeAssignmentNotFound ErrorCode = "ASSIGNMENT_NOT_FOUND"
	CodeSubmissionNotFound ErrorCode = "SUBMISSION_NOT_FOUND"

	// Availability gate
	CodeQuizNotPublished ErrorCode = "QUIZ_NOT_PUBLISHED"
	CodeQuizNotStarted   ErrorCode = "QUIZ_NOT_STARTED"
	CodeQuizEnded        ErrorCode = "QUIZ_ENDED"

	// Attempt lifecycle
	CodeAlreadyCompleted  ErrorCode = "ALREADY_COMPLETED"
	CodeAttemptInProgress ErrorCode = "ATTEMPT_IN_PROGRESS"

	// Assignments
	CodeAssignmentNotPublished ErrorCode = "ASSIGNMENT_NOT_PUBLISHED"
	CodeAlreadySubmitted       ErrorCode = "ALREADY_SUBMITTED"
)

// ErrAttemptExists is returned by AttemptRepository.CreateAttempt when the
// (quiz, student) pair already holds an attempt.
var ErrAttemptExists = errors.New("attempt already exists for quiz and student")

// ErrSubmissionExists is returned by SubmissionRepository.CreateSubmission when
// the student already submitted the assignment.
var ErrSubmissionExists = errors.New("submission already exists for assignment and student")

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// WithContext attaches a key/value pair rendered as error details.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewPermissionDeniedError(message string) *DomainError {
	return NewError(CodePermissionDenied, message, nil)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil).
		WithContext("quiz_id", quizID)
}

func NewAttemptNotFoundError(attemptID string) *DomainError {
	return NewError(CodeAttemptNotFound, fmt.Sprintf("Attempt not found with ID: %s", attemptID), nil).
		WithContext("attempt_id", attemptID)
}

func NewCourseNotFoundError(courseID string) *DomainError {
	return NewError(CodeCourseNotFound, fmt.Sprintf("Course not found with ID: %s", courseID), nil).
		WithContext("course_id", courseID)
}

func NewAlreadyCompletedError(attemptID string) *DomainError {
	return NewError(CodeAlreadyCompleted, "You have already completed this quiz", nil).
		WithContext("attempt_id", attemptID)
}

func NewAttemptInProgressError(attemptID string) *DomainError {
	return NewError(CodeAttemptInProgress, "The attempt has not been submitted yet", nil).
		WithContext("attempt_id", attemptID)
}

func NewAssignmentNotFoundError(assignmentID string) *DomainError {
	return NewError(CodeAssignmentNotFound, fmt.Sprintf("Assignment not found with ID: %s", assignmentID), nil).
		WithContext("assignment_id", assignmentID)
}

func NewSubmissionNotFoundError(submissionID string) *DomainError {
	return NewError(CodeSubmissionNotFound, fmt.Sprintf("Submission not found with ID: %s", submissionID), nil).
		WithContext("submission_id", submissionID)
}

func NewAssignmentNotPublishedError(assignmentID string) *DomainError {
	return NewError(CodeAssignmentNotPublished, "This assignment is not published", nil).
		WithContext("assignment_id", assignmentID)
}

func NewAlreadySubmittedError(assignmentID string) *DomainError {
	return NewError(CodeAlreadySubmitted, "You have already submitted this assignment", nil).
		WithContext("assignment_id", assignmentID)
}

// NewNotAvailableError converts a gate verdict into the error returned to the caller.
// It returns nil for AvailabilityAvailable.
func NewNotAvailableError(quizID string, availability Availability) *DomainError {
	var err *DomainError
	switch availability {
	case AvailabilityNotPublished:
		err = NewError(CodeQuizNotPublished, "This quiz is not published", nil)
	case AvailabilityNotStarted:
		err = NewError(CodeQuizNotStarted, "This quiz has not started yet", nil)
	case AvailabilityEnded:
		err = NewError(CodeQuizEnded, "This quiz has ended", nil)
	default:
		return nil
	}
	return err.WithContext("quiz_id", quizID)
}

// ValidationError describes one invalid field of a request.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors is returned as a whole so handlers can render every problem at once.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewFieldError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: "invalid format", Value: value}
}
