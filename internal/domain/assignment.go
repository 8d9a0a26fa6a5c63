package domain

import "time"

// DefaultTotalPoints is used when an assignment is created without a maximum score.
const DefaultTotalPoints = 100

// SubmissionStatus is the grading state of a submission.
type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "submitted"
	SubmissionStatusGraded    SubmissionStatus = "graded"
	// SubmissionStatusReturned sends the work back for revision; the student may resubmit.
	SubmissionStatusReturned SubmissionStatus = "returned"
)

// Assignment is a free-text task of a course with a due date, graded by the
// course instructor.
type Assignment struct {
	ID          string
	CourseID    string
	Title       string
	Description string
	DueDate     time.Time
	TotalPoints int
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Submission is a student's work for an assignment. A student holds at most
// one submission per assignment.
type Submission struct {
	ID           string
	AssignmentID string
	StudentID    string
	Text         string
	SubmittedAt  time.Time
	Status       SubmissionStatus
	Score        *int
	Feedback     string
	GradedAt     *time.Time
}

// IsLate reports whether s arrived after the due date of a.
// Late work is accepted and flagged.
func (s *Submission) IsLate(a *Assignment) bool {
	return s.SubmittedAt.After(a.DueDate)
}

// CanResubmit reports whether the student may replace the submission.
func (s *Submission) CanResubmit() bool {
	return s.Status == SubmissionStatusReturned
}

// Resubmit replaces the text and puts the submission back in the grading
// queue. The previous feedback stays visible.
func (s *Submission) Resubmit(text string, at time.Time) {
	s.Text = text
	s.SubmittedAt = at
	s.Status = SubmissionStatusSubmitted
	s.Score = nil
	s.GradedAt = nil
}

// Grade records the instructor's verdict. status is graded or returned.
func (s *Submission) Grade(score int, feedback string, status SubmissionStatus, at time.Time) {
	gradedAt := at
	s.Score = &score
	s.Feedback = feedback
	s.Status = status
	s.GradedAt = &gradedAt
}
