package models

import (
	"database/sql"
	"time"
)

// Course represents the COURSES table
type Course struct {
	ID           string    `db:"ID"`
	Title        string    `db:"TITLE"`
	InstructorID string    `db:"INSTRUCTOR_ID"`
	CreatedAt    time.Time `db:"CREATED_AT"`
}

// Quiz represents the QUIZZES table
type Quiz struct {
	ID               string         `db:"ID"`
	CourseID         string         `db:"COURSE_ID"`
	LessonID         sql.NullString `db:"LESSON_ID"`
	Title            string         `db:"TITLE"`
	Description      sql.NullString `db:"DESCRIPTION"`
	TimeLimitMinutes int            `db:"TIME_LIMIT_MINUTES"`
	StartTime        sql.NullTime   `db:"START_TIME"`
	EndTime          sql.NullTime   `db:"END_TIME"`
	IsPublished      OracleBool     `db:"IS_PUBLISHED"`
	CreatedAt        time.Time      `db:"CREATED_AT"`
	UpdatedAt        time.Time      `db:"UPDATED_AT"`
}

// Question represents the QUESTIONS table
type Question struct {
	ID             string `db:"ID"`
	QuizID         string `db:"QUIZ_ID"`
	QuestionText   string `db:"QUESTION_TEXT"`
	QuestionNumber int    `db:"QUESTION_NUMBER"`
}

// Choice represents the CHOICES table
type Choice struct {
	ID           string     `db:"ID"`
	QuestionID   string     `db:"QUESTION_ID"`
	ChoiceText   string     `db:"CHOICE_TEXT"`
	ChoiceNumber int        `db:"CHOICE_NUMBER"`
	IsCorrect    OracleBool `db:"IS_CORRECT"`
}
