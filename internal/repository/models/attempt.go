package models

import (
	"database/sql"
	"time"
)

// QuizAttempt represents the QUIZ_ATTEMPTS table
type QuizAttempt struct {
	ID          string         `db:"ID"`
	QuizID      string         `db:"QUIZ_ID"`
	StudentID   string         `db:"STUDENT_ID"`
	Score       float64        `db:"SCORE"`
	StartedAt   time.Time      `db:"STARTED_AT"`
	CompletedAt sql.NullTime   `db:"COMPLETED_AT"`
	IsCompleted OracleBool     `db:"IS_COMPLETED"`
	EndReason   sql.NullString `db:"END_REASON"`
}

// StudentAnswer represents the STUDENT_ANSWERS table
type StudentAnswer struct {
	ID               string    `db:"ID"`
	AttemptID        string    `db:"ATTEMPT_ID"`
	QuestionID       string    `db:"QUESTION_ID"`
	SelectedChoiceID string    `db:"SELECTED_CHOICE_ID"`
	AnsweredAt       time.Time `db:"ANSWERED_AT"`
}
