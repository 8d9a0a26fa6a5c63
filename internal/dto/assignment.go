package dto

import "time"

// AssignmentRequest represents the body for creating or replacing an assignment
// @Description Assignment with a due date; total_points defaults to 100
type AssignmentRequest struct {
	CourseID    string    `json:"course_id" validate:"required,max=26"`
	Title       string    `json:"title" validate:"required,notblank,max=200"`
	Description string    `json:"description,omitempty" validate:"max=4000"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	TotalPoints int       `json:"total_points,omitempty" validate:"gte=0,lte=10000"`
}

// SubmissionRequest carries a student's text submission
type SubmissionRequest struct {
	Text string `json:"text" validate:"required,notblank,max=20000"`
}

// GradeRequest is the instructor's verdict on a submission
// @Description Score between 0 and the assignment's total points; status graded (default) or returned
type GradeRequest struct {
	Score    *int   `json:"score" validate:"required,gte=0"`
	Feedback string `json:"feedback,omitempty" validate:"max=4000"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=graded returned"`
}

// SubmissionResponse is a submission as shown to its author and to the instructor
type SubmissionResponse struct {
	ID           string     `json:"id"`
	AssignmentID string     `json:"assignment_id"`
	StudentID    string     `json:"student_id"`
	Text         string     `json:"text"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	Status       string     `json:"status"`
	IsLate       bool       `json:"is_late"`
	Score        *int       `json:"score,omitempty"`
	Feedback     string     `json:"feedback,omitempty"`
	GradedAt     *time.Time `json:"graded_at,omitempty"`
}

// AssignmentResponse represents an assignment; Submission is the caller's own work, if any
// @Description Assignment with its due state and the student's submission
type AssignmentResponse struct {
	ID          string              `json:"id"`
	CourseID    string              `json:"course_id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	DueDate     time.Time           `json:"due_date"`
	TotalPoints int                 `json:"total_points"`
	IsPublished bool                `json:"is_published"`
	IsPastDue   bool                `json:"is_past_due"`
	Submission  *SubmissionResponse `json:"submission,omitempty"`
}

// AssignmentListResponse wraps a list of assignments
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
}

// SubmissionListResponse lists the submissions of one assignment
type SubmissionListResponse struct {
	AssignmentID string               `json:"assignment_id"`
	Submissions  []SubmissionResponse `json:"submissions"`
}
