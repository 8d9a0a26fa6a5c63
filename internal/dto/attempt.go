package dto

import "time"

// Outcome values returned by attempt operations.
const (
	OutcomeStarted       = "started"
	OutcomeResumed       = "resumed"
	OutcomeSaved         = "saved"
	OutcomeSubmitted     = "submitted"
	OutcomeAutoSubmitted = "auto_submitted"
	OutcomeInProgress    = "in_progress"
)

// AnswersRequest maps question IDs to the selected choice IDs
// @Description Selected choice per question
type AnswersRequest struct {
	Answers map[string]string `json:"answers" validate:"max=100"`
}

// AttemptQuestionResponse is a question on the attempt page with the student's current selection.
type AttemptQuestionResponse struct {
	ID               string           `json:"id"`
	Number           int              `json:"number"`
	Text             string           `json:"text"`
	Choices          []ChoiceResponse `json:"choices"`
	SelectedChoiceID string           `json:"selected_choice_id,omitempty"`
}

// AttemptResponse is the in-progress attempt page
// @Description Attempt with questions, current selections and remaining time
type AttemptResponse struct {
	AttemptID        string                    `json:"attempt_id"`
	QuizID           string                    `json:"quiz_id"`
	QuizTitle        string                    `json:"quiz_title"`
	StartedAt        time.Time                 `json:"started_at"`
	Deadline         *time.Time                `json:"deadline,omitempty"`
	RemainingSeconds *int64                    `json:"remaining_seconds,omitempty"`
	Questions        []AttemptQuestionResponse `json:"questions"`
}

// QuestionResultResponse is the graded outcome of one question
type QuestionResultResponse struct {
	QuestionID       string `json:"question_id"`
	Number           int    `json:"number"`
	Text             string `json:"text"`
	SelectedChoiceID string `json:"selected_choice_id,omitempty"`
	CorrectChoiceID  string `json:"correct_choice_id"`
	IsCorrect        bool   `json:"is_correct"`
}

// ResultResponse is the graded result of a completed attempt
// @Description Score and per-question correctness
type ResultResponse struct {
	AttemptID      string                   `json:"attempt_id"`
	QuizID         string                   `json:"quiz_id"`
	QuizTitle      string                   `json:"quiz_title"`
	StudentID      string                   `json:"student_id"`
	Score          float64                  `json:"score"`
	CorrectCount   int                      `json:"correct_count"`
	TotalQuestions int                      `json:"total_questions"`
	StartedAt      time.Time                `json:"started_at"`
	CompletedAt    *time.Time               `json:"completed_at,omitempty"`
	EndReason      string                   `json:"end_reason,omitempty"`
	Questions      []QuestionResultResponse `json:"questions"`
}

// AttemptOutcomeResponse is returned by start, view, save and submit.
// Exactly one of Attempt (in progress) or Result (completed) is set.
type AttemptOutcomeResponse struct {
	Outcome            string           `json:"outcome"`
	Attempt            *AttemptResponse `json:"attempt,omitempty"`
	Result             *ResultResponse  `json:"result,omitempty"`
	SkippedQuestionIDs []string         `json:"skipped_question_ids,omitempty"`
}

// AttemptSummaryResponse is one row of the instructor's attempt overview
type AttemptSummaryResponse struct {
	AttemptID   string     `json:"attempt_id"`
	StudentID   string     `json:"student_id"`
	Score       float64    `json:"score"`
	IsCompleted bool       `json:"is_completed"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	EndReason   string     `json:"end_reason,omitempty"`
}

// AttemptListResponse wraps the attempts of a quiz
type AttemptListResponse struct {
	QuizID   string                   `json:"quiz_id"`
	Attempts []AttemptSummaryResponse `json:"attempts"`
}
