package dto

import "time"

// ChoiceRequest is one answer option when authoring a question.
// Choices are numbered by their position in the request.
type ChoiceRequest struct {
	Text      string `json:"text" validate:"required,notblank,max=500"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionRequest is one question when authoring a quiz.
type QuestionRequest struct {
	Text    string          `json:"text" validate:"required,notblank,max=2000"`
	Choices []ChoiceRequest `json:"choices" validate:"len=4,dive"`
}

// QuizRequest represents the body for creating or replacing a quiz
// @Description Quiz with exactly five questions of four choices each
type QuizRequest struct {
	CourseID         string            `json:"course_id" validate:"required,max=26"`
	LessonID         string            `json:"lesson_id,omitempty" validate:"omitempty,max=26"`
	Title            string            `json:"title" validate:"required,notblank,max=200"`
	Description      string            `json:"description,omitempty" validate:"max=4000"`
	TimeLimitMinutes int               `json:"time_limit_minutes" validate:"gte=0,lte=1440"`
	StartTime        *time.Time        `json:"start_time,omitempty"`
	EndTime          *time.Time        `json:"end_time,omitempty"`
	Questions        []QuestionRequest `json:"questions" validate:"len=5,dive"`
}

// PublishRequest toggles quiz publication
type PublishRequest struct {
	Published bool `json:"published"`
}

// ChoiceResponse is an answer option as shown to students; correctness is never included.
type ChoiceResponse struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// ManagedChoiceResponse is an answer option as shown to the instructor.
type ManagedChoiceResponse struct {
	ChoiceResponse
	IsCorrect bool `json:"is_correct"`
}

// ManagedQuestionResponse is a question as shown to the instructor.
type ManagedQuestionResponse struct {
	ID      string                  `json:"id"`
	Number  int                     `json:"number"`
	Text    string                  `json:"text"`
	Choices []ManagedChoiceResponse `json:"choices"`
}

// QuizSummaryResponse represents a quiz in listings and on the quiz page
// @Description Quiz information with availability and the caller's attempt state
type QuizSummaryResponse struct {
	ID               string     `json:"id"`
	CourseID         string     `json:"course_id"`
	LessonID         string     `json:"lesson_id,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	TimeLimitMinutes int        `json:"time_limit_minutes"`
	StartTime        *time.Time `json:"start_time,omitempty"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	IsPublished      bool       `json:"is_published"`
	Availability     string     `json:"availability"`
	AttemptStatus    string     `json:"attempt_status,omitempty"`
	AttemptID        string     `json:"attempt_id,omitempty"`
	Score            *float64   `json:"score,omitempty"`
}

// QuizListResponse wraps a list of quizzes
type QuizListResponse struct {
	Quizzes []QuizSummaryResponse `json:"quizzes"`
}

// ManagedQuizResponse is the full quiz including answer keys, for the course instructor
type ManagedQuizResponse struct {
	QuizSummaryResponse
	Questions []ManagedQuestionResponse `json:"questions"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
}
