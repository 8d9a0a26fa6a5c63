package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"elearning/internal/domain"
	"elearning/internal/util"

	"github.com/stretchr/testify/mock"
)

// memoryStore is an in-memory catalog and attempt ledger. It enforces the
// same uniqueness rules as the database schema.
type memoryStore struct {
	mu       sync.Mutex
	quizzes  map[string]*domain.Quiz
	courses  map[string]*domain.Course
	attempts map[string]*domain.QuizAttempt
	answers  map[string]map[string]domain.StudentAnswer // attemptID -> questionID -> answer
	creates  int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		quizzes:  make(map[string]*domain.Quiz),
		courses:  make(map[string]*domain.Course),
		attempts: make(map[string]*domain.QuizAttempt),
		answers:  make(map[string]map[string]domain.StudentAnswer),
	}
}

func copyQuiz(q *domain.Quiz) *domain.Quiz {
	cp := *q
	cp.Questions = make([]domain.Question, len(q.Questions))
	for i, question := range q.Questions {
		question.Choices = append([]domain.Choice(nil), question.Choices...)
		cp.Questions[i] = question
	}
	return &cp
}

func copyAttempt(a *domain.QuizAttempt) *domain.QuizAttempt {
	cp := *a
	if a.CompletedAt != nil {
		at := *a.CompletedAt
		cp.CompletedAt = &at
	}
	return &cp
}

// --- domain.QuizRepository ---

func (m *memoryStore) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quizzes[id]
	if !ok {
		return nil, nil
	}
	cp := copyQuiz(q)
	cp.Questions = nil
	return cp, nil
}

func (m *memoryStore) GetQuizWithQuestions(ctx context.Context, id string) (*domain.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quizzes[id]
	if !ok {
		return nil, nil
	}
	return copyQuiz(q), nil
}

func (m *memoryStore) ListByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*domain.Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Quiz
	for _, q := range m.quizzes {
		if q.CourseID != courseID || (onlyPublished && !q.IsPublished) {
			continue
		}
		cp := copyQuiz(q)
		cp.Questions = nil
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryStore) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	for qi := range quiz.Questions {
		question := &quiz.Questions[qi]
		if question.ID == "" {
			question.ID = util.NewULID()
		}
		question.QuizID = quiz.ID
		for ci := range question.Choices {
			if question.Choices[ci].ID == "" {
				question.Choices[ci].ID = util.NewULID()
			}
			question.Choices[ci].QuestionID = question.ID
		}
	}
	quiz.UpdatedAt = quiz.CreatedAt
	m.quizzes[quiz.ID] = copyQuiz(quiz)
	return nil
}

func (m *memoryStore) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.quizzes[quiz.ID]
	if !ok {
		return domain.NewQuizNotFoundError(quiz.ID)
	}
	stored.Title, stored.Description, stored.LessonID = quiz.Title, quiz.Description, quiz.LessonID
	stored.TimeLimitMinutes, stored.StartTime, stored.EndTime = quiz.TimeLimitMinutes, quiz.StartTime, quiz.EndTime
	for _, q := range quiz.Questions {
		for si := range stored.Questions {
			if stored.Questions[si].Number != q.Number {
				continue
			}
			stored.Questions[si].Text = q.Text
			for _, c := range q.Choices {
				for ci := range stored.Questions[si].Choices {
					if stored.Questions[si].Choices[ci].Number == c.Number {
						stored.Questions[si].Choices[ci].Text = c.Text
						stored.Questions[si].Choices[ci].IsCorrect = c.IsCorrect
					}
				}
			}
		}
	}
	return nil
}

func (m *memoryStore) SetPublished(ctx context.Context, quizID string, published bool, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quizzes[quizID]
	if !ok {
		return false, nil
	}
	q.IsPublished = published
	q.UpdatedAt = at
	return true, nil
}

func (m *memoryStore) DeleteQuiz(ctx context.Context, quizID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, a := range m.attempts {
		if a.QuizID == quizID {
			delete(m.answers, id)
			delete(m.attempts, id)
		}
	}
	delete(m.quizzes, quizID)
	return nil
}

// --- domain.CourseRepository ---

func (m *memoryStore) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.courses[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memoryStore) ListByInstructor(ctx context.Context, instructorID string) ([]*domain.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Course
	for _, c := range m.courses {
		if c.InstructorID == instructorID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryStore) SaveCourse(ctx context.Context, course *domain.Course) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if course.ID == "" {
		course.ID = util.NewULID()
	}
	cp := *course
	m.courses[course.ID] = &cp
	return nil
}

// --- domain.AttemptRepository ---

func (m *memoryStore) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.attempts {
		if a.QuizID == attempt.QuizID && a.StudentID == attempt.StudentID {
			return domain.ErrAttemptExists
		}
	}
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	m.attempts[attempt.ID] = copyAttempt(attempt)
	m.creates++
	return nil
}

func (m *memoryStore) GetByQuizAndStudent(ctx context.Context, quizID, studentID string) (*domain.QuizAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.attempts {
		if a.QuizID == quizID && a.StudentID == studentID {
			return copyAttempt(a), nil
		}
	}
	return nil, nil
}

func (m *memoryStore) GetByID(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[id]
	if !ok {
		return nil, nil
	}
	return copyAttempt(a), nil
}

func (m *memoryStore) GetByIDForUpdate(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	return m.GetByID(ctx, id)
}

func (m *memoryStore) CompleteAttempt(ctx context.Context, attempt *domain.QuizAttempt) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.attempts[attempt.ID]
	if !ok || stored.IsCompleted {
		return false, nil
	}
	m.attempts[attempt.ID] = copyAttempt(attempt)
	return true, nil
}

func (m *memoryStore) UpdateScore(ctx context.Context, attemptID string, score float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.attempts[attemptID]; ok && a.IsCompleted {
		a.Score = score
	}
	return nil
}

func (m *memoryStore) ListByQuiz(ctx context.Context, quizID string) ([]*domain.QuizAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.QuizAttempt
	for _, a := range m.attempts {
		if a.QuizID == quizID {
			out = append(out, copyAttempt(a))
		}
	}
	return out, nil
}

// --- domain.AnswerRepository ---

func (m *memoryStore) UpsertAnswer(ctx context.Context, answer *domain.StudentAnswer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	byQuestion, ok := m.answers[answer.AttemptID]
	if !ok {
		byQuestion = make(map[string]domain.StudentAnswer)
		m.answers[answer.AttemptID] = byQuestion
	}
	if existing, ok := byQuestion[answer.QuestionID]; ok {
		answer.ID = existing.ID
	} else if answer.ID == "" {
		answer.ID = util.NewULID()
	}
	byQuestion[answer.QuestionID] = *answer
	return nil
}

func (m *memoryStore) ListByAttempt(ctx context.Context, attemptID string) ([]domain.StudentAnswer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.StudentAnswer, 0, len(m.answers[attemptID]))
	for _, a := range m.answers[attemptID] {
		out = append(out, a)
	}
	return out, nil
}

// memoryTx serializes transactions, which is what the row lock gives the real store.
type memoryTx struct {
	mu sync.Mutex
}

func (t *memoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memoryTxKey{}) != nil {
		return fn(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(context.WithValue(ctx, memoryTxKey{}, true))
}

type memoryTxKey struct{}

// fakeClock is a settable domain.Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// passthroughQuizCache reads straight from the repository.
type passthroughQuizCache struct {
	repo domain.QuizRepository
}

func (p passthroughQuizCache) GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	return p.repo.GetQuizWithQuestions(ctx, quizID)
}

func (p passthroughQuizCache) GetQuizUncached(ctx context.Context, quizID string) (*domain.Quiz, error) {
	return p.repo.GetQuizWithQuestions(ctx, quizID)
}

func (p passthroughQuizCache) ListByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*domain.Quiz, error) {
	return p.repo.ListByCourse(ctx, courseID, onlyPublished)
}

func (p passthroughQuizCache) Invalidate(ctx context.Context, quizID, courseID string) {}

// MockQuizCacheService records invalidations.
type MockQuizCacheService struct {
	mock.Mock
}

func (m *MockQuizCacheService) GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizCacheService) GetQuizUncached(ctx context.Context, quizID string) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizCacheService) ListByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*domain.Quiz, error) {
	args := m.Called(ctx, courseID, onlyPublished)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizCacheService) Invalidate(ctx context.Context, quizID, courseID string) {
	m.Called(ctx, quizID, courseID)
}

// MockQuizRepository is a testify mock of domain.QuizRepository.
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetQuizWithQuestions(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*domain.Quiz, error) {
	args := m.Called(ctx, courseID, onlyPublished)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	return m.Called(ctx, quiz).Error(0)
}

func (m *MockQuizRepository) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	return m.Called(ctx, quiz).Error(0)
}

func (m *MockQuizRepository) SetPublished(ctx context.Context, quizID string, published bool, at time.Time) (bool, error) {
	args := m.Called(ctx, quizID, published, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuizRepository) DeleteQuiz(ctx context.Context, quizID string) error {
	return m.Called(ctx, quizID).Error(0)
}

var (
	_ domain.QuizRepository    = (*memoryStore)(nil)
	_ domain.CourseRepository  = (*memoryStore)(nil)
	_ domain.AttemptRepository = (*memoryStore)(nil)
	_ domain.AnswerRepository  = (*memoryStore)(nil)
	_ domain.QuizRepository    = (*MockQuizRepository)(nil)
	_ QuizCacheService         = (*MockQuizCacheService)(nil)
)

// memoryCoursework holds assignments and submissions, with the
// UNIQUE (assignment_id, student_id) rule of the schema.
type memoryCoursework struct {
	mu          sync.Mutex
	assignments map[string]*domain.Assignment
	submissions map[string]*domain.Submission
}

func newMemoryCoursework() *memoryCoursework {
	return &memoryCoursework{
		assignments: make(map[string]*domain.Assignment),
		submissions: make(map[string]*domain.Submission),
	}
}

func copySubmission(s *domain.Submission) *domain.Submission {
	cp := *s
	if s.Score != nil {
		score := *s.Score
		cp.Score = &score
	}
	if s.GradedAt != nil {
		at := *s.GradedAt
		cp.GradedAt = &at
	}
	return &cp
}

// --- domain.AssignmentRepository ---

func (m *memoryCoursework) GetAssignment(ctx context.Context, id string) (*domain.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assignments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memoryCoursework) ListAssignmentsByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*domain.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Assignment
	for _, a := range m.assignments {
		if a.CourseID == courseID && (!onlyPublished || a.IsPublished) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.After(out[j].DueDate) })
	return out, nil
}

func (m *memoryCoursework) CreateAssignment(ctx context.Context, assignment *domain.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if assignment.ID == "" {
		assignment.ID = util.NewULID()
	}
	cp := *assignment
	m.assignments[cp.ID] = &cp
	return nil
}

func (m *memoryCoursework) UpdateAssignment(ctx context.Context, assignment *domain.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assignments[assignment.ID]; !ok {
		return errors.New("assignment not found")
	}
	cp := *assignment
	m.assignments[cp.ID] = &cp
	return nil
}

func (m *memoryCoursework) DeleteAssignment(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for subID, s := range m.submissions {
		if s.AssignmentID == id {
			delete(m.submissions, subID)
		}
	}
	delete(m.assignments, id)
	return nil
}

// --- domain.SubmissionRepository ---

func (m *memoryCoursework) CreateSubmission(ctx context.Context, submission *domain.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.submissions {
		if s.AssignmentID == submission.AssignmentID && s.StudentID == submission.StudentID {
			return domain.ErrSubmissionExists
		}
	}
	if submission.ID == "" {
		submission.ID = util.NewULID()
	}
	m.submissions[submission.ID] = copySubmission(submission)
	return nil
}

func (m *memoryCoursework) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.submissions[id]
	if !ok {
		return nil, nil
	}
	return copySubmission(s), nil
}

func (m *memoryCoursework) GetSubmissionForUpdate(ctx context.Context, id string) (*domain.Submission, error) {
	if ctx.Value(memoryTxKey{}) == nil {
		return nil, errors.New("GetSubmissionForUpdate requires a transaction")
	}
	return m.GetSubmission(ctx, id)
}

func (m *memoryCoursework) GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.submissions {
		if s.AssignmentID == assignmentID && s.StudentID == studentID {
			return copySubmission(s), nil
		}
	}
	return nil, nil
}

func (m *memoryCoursework) UpdateSubmission(ctx context.Context, submission *domain.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.submissions[submission.ID]; !ok {
		return errors.New("submission not found")
	}
	m.submissions[submission.ID] = copySubmission(submission)
	return nil
}

func (m *memoryCoursework) ListByAssignment(ctx context.Context, assignmentID string) ([]*domain.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Submission
	for _, s := range m.submissions {
		if s.AssignmentID == assignmentID {
			out = append(out, copySubmission(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}
