package domain

import "time"

// EndReason records how an attempt reached the completed state.
type EndReason string

const (
	EndReasonSubmitted   EndReason = "submitted"
	EndReasonTimeExpired EndReason = "time_expired"
)

// AttemptStatus is the lifecycle state of a (quiz, student) pair.
type AttemptStatus string

const (
	AttemptStatusNone       AttemptStatus = "none"
	AttemptStatusInProgress AttemptStatus = "in_progress"
	AttemptStatusCompleted  AttemptStatus = "completed"
)

// QuizAttempt is the single attempt a student may make at a quiz.
// Once IsCompleted is true the attempt never changes again.
type QuizAttempt struct {
	ID          string
	QuizID      string
	StudentID   string
	Score       float64
	StartedAt   time.Time
	CompletedAt *time.Time
	IsCompleted bool
	EndReason   EndReason
}

// StudentAnswer is the selected choice for one question of an attempt.
type StudentAnswer struct {
	ID               string
	AttemptID        string
	QuestionID       string
	SelectedChoiceID string
	AnsweredAt       time.Time
}

// Status maps an attempt (possibly nil) to its lifecycle state.
func (a *QuizAttempt) Status() AttemptStatus {
	switch {
	case a == nil:
		return AttemptStatusNone
	case a.IsCompleted:
		return AttemptStatusCompleted
	default:
		return AttemptStatusInProgress
	}
}

// Deadline returns started_at + limit and false when the limit is zero.
func (a *QuizAttempt) Deadline(limit time.Duration) (time.Time, bool) {
	if limit <= 0 {
		return time.Time{}, false
	}
	return a.StartedAt.Add(limit), true
}

// IsExpired reports whether an in-progress attempt ran past its deadline at now.
// The deadline instant itself is still inside the limit.
func (a *QuizAttempt) IsExpired(limit time.Duration, now time.Time) bool {
	if a.IsCompleted {
		return false
	}
	deadline, ok := a.Deadline(limit)
	if !ok {
		return false
	}
	return now.After(deadline)
}

// Remaining returns the time left before the deadline, clamped at zero.
// The second value is false for unlimited quizzes.
func (a *QuizAttempt) Remaining(limit time.Duration, now time.Time) (time.Duration, bool) {
	deadline, ok := a.Deadline(limit)
	if !ok {
		return 0, false
	}
	left := deadline.Sub(now)
	if left < 0 {
		left = 0
	}
	return left, true
}

// Complete moves the attempt to its terminal state.
func (a *QuizAttempt) Complete(at time.Time, score float64, reason EndReason) {
	completedAt := at
	a.CompletedAt = &completedAt
	a.IsCompleted = true
	a.Score = score
	a.EndReason = reason
}
