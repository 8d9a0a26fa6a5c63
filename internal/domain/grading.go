package domain

// QuestionResult is the graded outcome of one question.
type QuestionResult struct {
	QuestionID       string
	QuestionNumber   int
	SelectedChoiceID string // empty when unanswered
	CorrectChoiceID  string
	IsCorrect        bool
}

// Grade is the full grading outcome of an attempt.
type Grade struct {
	Score          float64
	CorrectCount   int
	TotalQuestions int
	Results        []QuestionResult
}

// CalculateScore returns the percentage of the quiz's questions answered correctly.
// Unanswered questions count as wrong; a quiz without questions scores 0.
func CalculateScore(quiz *Quiz, answers []StudentAnswer) float64 {
	return GradeAttempt(quiz, answers).Score
}

// GradeAttempt grades answers against quiz. Answers referring to questions
// outside the quiz, or choices outside their question, are never counted.
func GradeAttempt(quiz *Quiz, answers []StudentAnswer) Grade {
	selected := make(map[string]string, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedChoiceID
	}

	grade := Grade{
		TotalQuestions: len(quiz.Questions),
		Results:        make([]QuestionResult, 0, len(quiz.Questions)),
	}
	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		result := QuestionResult{
			QuestionID:       question.ID,
			QuestionNumber:   question.Number,
			SelectedChoiceID: selected[question.ID],
		}
		if correct := question.CorrectChoice(); correct != nil {
			result.CorrectChoiceID = correct.ID
			result.IsCorrect = result.SelectedChoiceID != "" && result.SelectedChoiceID == correct.ID
		}
		if result.IsCorrect {
			grade.CorrectCount++
		}
		grade.Results = append(grade.Results, result)
	}

	if grade.TotalQuestions == 0 {
		return grade
	}
	grade.Score = float64(grade.CorrectCount) * 100 / float64(grade.TotalQuestions)
	return grade
}
