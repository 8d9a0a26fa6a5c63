package domain

import (
	"context"
	"time"
)

// QuizRepository persists the quiz catalog (quizzes, questions and choices).
type QuizRepository interface {
	// GetQuizByID returns the quiz without questions, or nil when missing.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// GetQuizWithQuestions returns the quiz with its ordered questions and choices, or nil when missing.
	GetQuizWithQuestions(ctx context.Context, id string) (*Quiz, error)

	// ListByCourse returns every quiz of a course ordered by creation time.
	// onlyPublished restricts the result to published quizzes.
	ListByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*Quiz, error)

	// CreateQuiz inserts the quiz with all its questions and choices.
	CreateQuiz(ctx context.Context, quiz *Quiz) error

	// UpdateQuiz rewrites quiz fields and question/choice texts matched by number.
	UpdateQuiz(ctx context.Context, quiz *Quiz) error

	// SetPublished toggles publication and returns false when the quiz does not exist.
	SetPublished(ctx context.Context, quizID string, published bool, at time.Time) (bool, error)

	// DeleteQuiz removes the quiz and everything that depends on it.
	DeleteQuiz(ctx context.Context, quizID string) error
}

// CourseRepository reads the courses that own quizzes.
type CourseRepository interface {
	GetCourseByID(ctx context.Context, id string) (*Course, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]*Course, error)
	SaveCourse(ctx context.Context, course *Course) error
}

// AttemptRepository persists quiz attempts.
type AttemptRepository interface {
	// CreateAttempt inserts attempt. It returns ErrAttemptExists when the
	// (quiz, student) pair already has one.
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error

	// GetByQuizAndStudent returns the attempt of the pair, or nil.
	GetByQuizAndStudent(ctx context.Context, quizID, studentID string) (*QuizAttempt, error)

	// GetByID returns the attempt, or nil.
	GetByID(ctx context.Context, id string) (*QuizAttempt, error)

	// GetByIDForUpdate is GetByID with a row lock; it must run inside a transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*QuizAttempt, error)

	// CompleteAttempt marks an in-progress attempt completed with its score.
	// It returns false when the attempt was already completed.
	CompleteAttempt(ctx context.Context, attempt *QuizAttempt) (bool, error)

	// UpdateScore rewrites the score of a completed attempt.
	UpdateScore(ctx context.Context, attemptID string, score float64) error

	// ListByQuiz returns all attempts of a quiz, newest first.
	ListByQuiz(ctx context.Context, quizID string) ([]*QuizAttempt, error)
}

// AnswerRepository persists the selected choices of attempts.
type AnswerRepository interface {
	// UpsertAnswer records the selection for (attempt, question), replacing any previous one.
	UpsertAnswer(ctx context.Context, answer *StudentAnswer) error

	// ListByAttempt returns the answers of an attempt.
	ListByAttempt(ctx context.Context, attemptID string) ([]StudentAnswer, error)
}

// AssignmentRepository persists course assignments.
type AssignmentRepository interface {
	// GetAssignment returns the assignment, or nil.
	GetAssignment(ctx context.Context, id string) (*Assignment, error)

	// ListAssignmentsByCourse returns the assignments of a course, latest due date first.
	ListAssignmentsByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*Assignment, error)

	CreateAssignment(ctx context.Context, assignment *Assignment) error

	// UpdateAssignment rewrites every editable field including publication.
	UpdateAssignment(ctx context.Context, assignment *Assignment) error

	// DeleteAssignment removes the assignment and its submissions.
	DeleteAssignment(ctx context.Context, id string) error
}

// SubmissionRepository persists assignment submissions.
type SubmissionRepository interface {
	// CreateSubmission inserts submission. It returns ErrSubmissionExists when
	// the (assignment, student) pair already has one.
	CreateSubmission(ctx context.Context, submission *Submission) error

	// GetSubmission returns the submission, or nil.
	GetSubmission(ctx context.Context, id string) (*Submission, error)

	// GetSubmissionForUpdate is GetSubmission with a row lock; it must run inside a transaction.
	GetSubmissionForUpdate(ctx context.Context, id string) (*Submission, error)

	// GetByAssignmentAndStudent returns the submission of the pair, or nil.
	GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*Submission, error)

	// UpdateSubmission rewrites text, status and grading fields.
	UpdateSubmission(ctx context.Context, submission *Submission) error

	// ListByAssignment returns the submissions of an assignment, oldest first.
	ListByAssignment(ctx context.Context, assignmentID string) ([]*Submission, error)
}

// TransactionManager runs fn inside one database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock returns the current time. Services take one so tests can pin time.
type Clock func() time.Time
