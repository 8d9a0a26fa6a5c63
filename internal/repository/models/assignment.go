package models

import (
	"database/sql"
	"time"
)

// Assignment represents the ASSIGNMENTS table
type Assignment struct {
	ID          string         `db:"ID"`
	CourseID    string         `db:"COURSE_ID"`
	Title       string         `db:"TITLE"`
	Description sql.NullString `db:"DESCRIPTION"`
	DueDate     time.Time      `db:"DUE_DATE"`
	TotalPoints int            `db:"TOTAL_POINTS"`
	IsPublished OracleBool     `db:"IS_PUBLISHED"`
	CreatedAt   time.Time      `db:"CREATED_AT"`
	UpdatedAt   time.Time      `db:"UPDATED_AT"`
}

// Submission represents the SUBMISSIONS table
type Submission struct {
	ID             string         `db:"ID"`
	AssignmentID   string         `db:"ASSIGNMENT_ID"`
	StudentID      string         `db:"STUDENT_ID"`
	SubmissionText sql.NullString `db:"SUBMISSION_TEXT"`
	SubmittedAt    time.Time      `db:"SUBMITTED_AT"`
	Status         string         `db:"STATUS"`
	Score          sql.NullInt64  `db:"SCORE"`
	Feedback       sql.NullString `db:"FEEDBACK"`
	GradedAt       sql.NullTime   `db:"GRADED_AT"`
}
