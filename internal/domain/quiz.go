package domain

import "time"

const (
	// QuestionsPerQuiz and ChoicesPerQuestion describe the fixed quiz shape
	// enforced when a quiz is authored.
	QuestionsPerQuiz   = 5
	ChoicesPerQuestion = 4
)

// Quiz is a timed multiple-choice assessment belonging to a course.
type Quiz struct {
	ID               string
	CourseID         string
	LessonID         string // optional
	Title            string
	Description      string
	TimeLimitMinutes int // 0 means unlimited
	StartTime        *time.Time
	EndTime          *time.Time
	IsPublished      bool
	Questions        []Question
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Question is one item of a quiz, ordered by Number (1-based).
type Question struct {
	ID      string
	QuizID  string
	Text    string
	Number  int
	Choices []Choice
}

// Choice is one option of a question, ordered by Number (1-based).
type Choice struct {
	ID         string
	QuestionID string
	Text       string
	Number     int
	IsCorrect  bool
}

// TimeLimit returns the attempt duration, zero when unlimited.
func (q *Quiz) TimeLimit() time.Duration {
	if q.TimeLimitMinutes <= 0 {
		return 0
	}
	return time.Duration(q.TimeLimitMinutes) * time.Minute
}

// Clone returns a copy of q that shares no questions or choices with it.
func (q *Quiz) Clone() *Quiz {
	cp := *q
	if q.Questions != nil {
		cp.Questions = make([]Question, len(q.Questions))
		for i, question := range q.Questions {
			question.Choices = append([]Choice(nil), question.Choices...)
			cp.Questions[i] = question
		}
	}
	return &cp
}

// FindQuestion returns the question with the given ID, or nil.
func (q *Quiz) FindQuestion(questionID string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == questionID {
			return &q.Questions[i]
		}
	}
	return nil
}

// FindChoice returns the choice with the given ID, or nil.
func (q *Question) FindChoice(choiceID string) *Choice {
	for i := range q.Choices {
		if q.Choices[i].ID == choiceID {
			return &q.Choices[i]
		}
	}
	return nil
}

// CorrectChoice returns the choice marked correct, or nil for malformed data.
func (q *Question) CorrectChoice() *Choice {
	for i := range q.Choices {
		if q.Choices[i].IsCorrect {
			return &q.Choices[i]
		}
	}
	return nil
}

// Availability is the verdict of the availability gate.
type Availability string

const (
	AvailabilityNotPublished Availability = "not_published"
	AvailabilityNotStarted   Availability = "not_started"
	AvailabilityEnded        Availability = "ended"
	AvailabilityAvailable    Availability = "available"
)

// CheckAvailability decides whether quiz can be shown and attempted at now.
// Both window bounds are inclusive and an unset bound is open.
func CheckAvailability(quiz *Quiz, now time.Time) Availability {
	if !quiz.IsPublished {
		return AvailabilityNotPublished
	}
	if quiz.StartTime != nil && now.Before(*quiz.StartTime) {
		return AvailabilityNotStarted
	}
	if quiz.EndTime != nil && now.After(*quiz.EndTime) {
		return AvailabilityEnded
	}
	return AvailabilityAvailable
}

// IsAvailable is shorthand for CheckAvailability(quiz, now) == AvailabilityAvailable.
func (q *Quiz) IsAvailable(now time.Time) bool {
	return CheckAvailability(q, now) == AvailabilityAvailable
}
