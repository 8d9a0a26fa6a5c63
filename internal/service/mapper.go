package service

import (
	"time"

	"elearning/internal/domain"
	"elearning/internal/dto"
)

func toQuizSummary(quiz *domain.Quiz, now time.Time) dto.QuizSummaryResponse {
	return dto.QuizSummaryResponse{
		ID:               quiz.ID,
		CourseID:         quiz.CourseID,
		LessonID:         quiz.LessonID,
		Title:            quiz.Title,
		Description:      quiz.Description,
		TimeLimitMinutes: quiz.TimeLimitMinutes,
		StartTime:        quiz.StartTime,
		EndTime:          quiz.EndTime,
		IsPublished:      quiz.IsPublished,
		Availability:     string(domain.CheckAvailability(quiz, now)),
	}
}

// withAttemptState fills the caller's attempt columns of a summary.
func withAttemptState(summary dto.QuizSummaryResponse, attempt *domain.QuizAttempt) dto.QuizSummaryResponse {
	summary.AttemptStatus = string(attempt.Status())
	if attempt == nil {
		return summary
	}
	summary.AttemptID = attempt.ID
	if attempt.IsCompleted {
		score := attempt.Score
		summary.Score = &score
	}
	return summary
}

func toManagedQuiz(quiz *domain.Quiz, now time.Time) *dto.ManagedQuizResponse {
	resp := &dto.ManagedQuizResponse{
		QuizSummaryResponse: toQuizSummary(quiz, now),
		Questions:           make([]dto.ManagedQuestionResponse, 0, len(quiz.Questions)),
		CreatedAt:           quiz.CreatedAt,
		UpdatedAt:           quiz.UpdatedAt,
	}
	for _, q := range quiz.Questions {
		question := dto.ManagedQuestionResponse{
			ID:      q.ID,
			Number:  q.Number,
			Text:    q.Text,
			Choices: make([]dto.ManagedChoiceResponse, 0, len(q.Choices)),
		}
		for _, c := range q.Choices {
			question.Choices = append(question.Choices, dto.ManagedChoiceResponse{
				ChoiceResponse: dto.ChoiceResponse{ID: c.ID, Number: c.Number, Text: c.Text},
				IsCorrect:      c.IsCorrect,
			})
		}
		resp.Questions = append(resp.Questions, question)
	}
	return resp
}

// toAttemptView renders the attempt page. Choice correctness is never exposed here.
func toAttemptView(quiz *domain.Quiz, attempt *domain.QuizAttempt, answers []domain.StudentAnswer, now time.Time) *dto.AttemptResponse {
	selected := make(map[string]string, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedChoiceID
	}

	view := &dto.AttemptResponse{
		AttemptID: attempt.ID,
		QuizID:    quiz.ID,
		QuizTitle: quiz.Title,
		StartedAt: attempt.StartedAt,
		Questions: make([]dto.AttemptQuestionResponse, 0, len(quiz.Questions)),
	}
	if deadline, ok := attempt.Deadline(quiz.TimeLimit()); ok {
		view.Deadline = &deadline
		left, _ := attempt.Remaining(quiz.TimeLimit(), now)
		seconds := int64(left / time.Second)
		view.RemainingSeconds = &seconds
	}

	for _, q := range quiz.Questions {
		question := dto.AttemptQuestionResponse{
			ID:               q.ID,
			Number:           q.Number,
			Text:             q.Text,
			Choices:          make([]dto.ChoiceResponse, 0, len(q.Choices)),
			SelectedChoiceID: selected[q.ID],
		}
		for _, c := range q.Choices {
			question.Choices = append(question.Choices, dto.ChoiceResponse{ID: c.ID, Number: c.Number, Text: c.Text})
		}
		view.Questions = append(view.Questions, question)
	}
	return view
}

// toResult renders a completed attempt. The score is the persisted one; the
// breakdown comes from grading the stored answers.
func toResult(quiz *domain.Quiz, attempt *domain.QuizAttempt, grade domain.Grade) *dto.ResultResponse {
	texts := make(map[string]string, len(quiz.Questions))
	for _, q := range quiz.Questions {
		texts[q.ID] = q.Text
	}

	resp := &dto.ResultResponse{
		AttemptID:      attempt.ID,
		QuizID:         quiz.ID,
		QuizTitle:      quiz.Title,
		StudentID:      attempt.StudentID,
		Score:          attempt.Score,
		CorrectCount:   grade.CorrectCount,
		TotalQuestions: grade.TotalQuestions,
		StartedAt:      attempt.StartedAt,
		CompletedAt:    attempt.CompletedAt,
		EndReason:      string(attempt.EndReason),
		Questions:      make([]dto.QuestionResultResponse, 0, len(grade.Results)),
	}
	for _, r := range grade.Results {
		resp.Questions = append(resp.Questions, dto.QuestionResultResponse{
			QuestionID:       r.QuestionID,
			Number:           r.QuestionNumber,
			Text:             texts[r.QuestionID],
			SelectedChoiceID: r.SelectedChoiceID,
			CorrectChoiceID:  r.CorrectChoiceID,
			IsCorrect:        r.IsCorrect,
		})
	}
	return resp
}

func toAttemptSummary(a *domain.QuizAttempt) dto.AttemptSummaryResponse {
	return dto.AttemptSummaryResponse{
		AttemptID:   a.ID,
		StudentID:   a.StudentID,
		Score:       a.Score,
		IsCompleted: a.IsCompleted,
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
		EndReason:   string(a.EndReason),
	}
}

// fromQuizRequest builds the catalog entity; questions and choices are
// numbered by their position in the request.
func fromQuizRequest(req *dto.QuizRequest) *domain.Quiz {
	quiz := &domain.Quiz{
		CourseID:         req.CourseID,
		LessonID:         req.LessonID,
		Title:            req.Title,
		Description:      req.Description,
		TimeLimitMinutes: req.TimeLimitMinutes,
		StartTime:        utcPtr(req.StartTime),
		EndTime:          utcPtr(req.EndTime),
		Questions:        make([]domain.Question, 0, len(req.Questions)),
	}
	for qi, q := range req.Questions {
		question := domain.Question{
			Text:    q.Text,
			Number:  qi + 1,
			Choices: make([]domain.Choice, 0, len(q.Choices)),
		}
		for ci, c := range q.Choices {
			question.Choices = append(question.Choices, domain.Choice{
				Text:      c.Text,
				Number:    ci + 1,
				IsCorrect: c.IsCorrect,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz
}

// utcPtr drops the client's offset; the window columns carry no time zone.
func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func toAssignmentResponse(a *domain.Assignment, now time.Time) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:          a.ID,
		CourseID:    a.CourseID,
		Title:       a.Title,
		Description: a.Description,
		DueDate:     a.DueDate,
		TotalPoints: a.TotalPoints,
		IsPublished: a.IsPublished,
		IsPastDue:   now.After(a.DueDate),
	}
}

func toSubmissionResponse(sub *domain.Submission, a *domain.Assignment) dto.SubmissionResponse {
	return dto.SubmissionResponse{
		ID:           sub.ID,
		AssignmentID: sub.AssignmentID,
		StudentID:    sub.StudentID,
		Text:         sub.Text,
		SubmittedAt:  sub.SubmittedAt,
		Status:       string(sub.Status),
		IsLate:       sub.IsLate(a),
		Score:        sub.Score,
		Feedback:     sub.Feedback,
		GradedAt:     sub.GradedAt,
	}
}

// fromAssignmentRequest builds the assignment; a zero total falls back to
// domain.DefaultTotalPoints.
func fromAssignmentRequest(req *dto.AssignmentRequest) *domain.Assignment {
	total := req.TotalPoints
	if total == 0 {
		total = domain.DefaultTotalPoints
	}
	return &domain.Assignment{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate.UTC(),
		TotalPoints: total,
	}
}
