package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

const (
	testQuizID    = "01HZX3Q4J5K6M7N8P9R0S1T2V3"
	testCourseID  = "01HZX3Q4J5K6M7N8P9R0S1T2C0"
	testAttemptID = "01HZX3Q4J5K6M7N8P9R0S1T2A0"
	testStudentID = "student-42"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var quizColumnNames = []string{
	"ID", "COURSE_ID", "LESSON_ID", "TITLE", "DESCRIPTION", "TIME_LIMIT_MINUTES",
	"START_TIME", "END_TIME", "IS_PUBLISHED", "CREATED_AT", "UPDATED_AT",
}

var attemptColumnNames = []string{
	"ID", "QUIZ_ID", "STUDENT_ID", "SCORE", "STARTED_AT", "COMPLETED_AT", "IS_COMPLETED", "END_REASON",
}

const (
	testAssignmentID = "01HZX3Q4J5K6M7N8P9R0S1T2AS"
	testSubmissionID = "01HZX3Q4J5K6M7N8P9R0S1T2SB"
)

var assignmentColumnNames = []string{
	"ID", "COURSE_ID", "TITLE", "DESCRIPTION", "DUE_DATE", "TOTAL_POINTS", "IS_PUBLISHED", "CREATED_AT", "UPDATED_AT",
}

var submissionColumnNames = []string{
	"ID", "ASSIGNMENT_ID", "STUDENT_ID", "SUBMISSION_TEXT", "SUBMITTED_AT", "STATUS", "SCORE", "FEEDBACK", "GRADED_AT",
}
