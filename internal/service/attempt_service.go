package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"elearning/internal/domain"
	"elearning/internal/dto"
	"elearning/internal/logger"

	"go.uber.org/zap"
)

// AttemptService runs the student side of quizzes: the availability gate,
// the attempt lifecycle, time-limit enforcement and grading.
type AttemptService interface {
	ListCourseQuizzes(ctx context.Context, principal domain.Principal, courseID string) (*dto.QuizListResponse, error)
	GetQuiz(ctx context.Context, principal domain.Principal, quizID string) (*dto.QuizSummaryResponse, error)
	StartAttempt(ctx context.Context, principal domain.Principal, quizID string) (*dto.AttemptOutcomeResponse, error)
	GetAttempt(ctx context.Context, principal domain.Principal, quizID, attemptID string) (*dto.AttemptOutcomeResponse, error)
	SaveAnswers(ctx context.Context, principal domain.Principal, quizID, attemptID string, answers map[string]string) (*dto.AttemptOutcomeResponse, error)
	SubmitAttempt(ctx context.Context, principal domain.Principal, quizID, attemptID string, answers map[string]string) (*dto.AttemptOutcomeResponse, error)
	GetResult(ctx context.Context, principal domain.Principal, attemptID string) (*dto.ResultResponse, error)
	// RegradeAttempt recomputes the score of a completed attempt from its stored answers.
	RegradeAttempt(ctx context.Context, attemptID string) (*dto.ResultResponse, error)
}

type attemptService struct {
	quizzes  QuizCacheService
	courses  domain.CourseRepository
	attempts domain.AttemptRepository
	answers  domain.AnswerRepository
	tx       domain.TransactionManager
	now      domain.Clock
}

// NewAttemptService creates an AttemptService. A nil clock means time.Now.
// Times read from the clock are stored in UTC.
func NewAttemptService(
	quizzes QuizCacheService,
	courses domain.CourseRepository,
	attempts domain.AttemptRepository,
	answers domain.AnswerRepository,
	tx domain.TransactionManager,
	clock domain.Clock,
) AttemptService {
	if clock == nil {
		clock = time.Now
	}
	now := func() time.Time { return clock().UTC() }
	return &attemptService{
		quizzes:  quizzes,
		courses:  courses,
		attempts: attempts,
		answers:  answers,
		tx:       tx,
		now:      now,
	}
}

// ListCourseQuizzes implements AttemptService. Only published quizzes are
// listed; each carries its availability and, for students, their attempt state.
func (s *attemptService) ListCourseQuizzes(ctx context.Context, principal domain.Principal, courseID string) (*dto.QuizListResponse, error) {
	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(courseID)
	}

	quizzes, err := s.quizzes.ListByCourse(ctx, courseID, true)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	resp := &dto.QuizListResponse{Quizzes: make([]dto.QuizSummaryResponse, 0, len(quizzes))}
	for _, quiz := range quizzes {
		summary := toQuizSummary(quiz, s.now())
		if principal.IsStudent() {
			attempt, err := s.currentAttempt(ctx, quiz.ID, principal.UserID)
			if err != nil {
				return nil, err
			}
			summary = withAttemptState(summary, attempt)
		}
		resp.Quizzes = append(resp.Quizzes, summary)
	}
	return resp, nil
}

// GetQuiz implements AttemptService. Unpublished quizzes are hidden from
// everyone but the course instructor.
func (s *attemptService) GetQuiz(ctx context.Context, principal domain.Principal, quizID string) (*dto.QuizSummaryResponse, error) {
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.IsPublished {
		course, err := s.courses.GetCourseByID(ctx, quiz.CourseID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get course", err)
		}
		if course == nil || !course.IsInstructor(principal) {
			return nil, domain.NewQuizNotFoundError(quizID)
		}
	}

	summary := toQuizSummary(quiz, s.now())
	if principal.IsStudent() {
		attempt, err := s.currentAttempt(ctx, quiz.ID, principal.UserID)
		if err != nil {
			return nil, err
		}
		summary = withAttemptState(summary, attempt)
	}
	return &summary, nil
}

// StartAttempt implements AttemptService. The insert comes first and the
// UNIQUE (quiz_id, student_id) constraint decides between concurrent starts,
// so a student never ends up with two attempts.
func (s *attemptService) StartAttempt(ctx context.Context, principal domain.Principal, quizID string) (*dto.AttemptOutcomeResponse, error) {
	if !principal.IsStudent() {
		return nil, domain.NewPermissionDeniedError("Only students can take quizzes")
	}
	quiz, err := s.loadCurrentQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if availability := domain.CheckAvailability(quiz, now); availability != domain.AvailabilityAvailable {
		return nil, domain.NewNotAvailableError(quizID, availability)
	}

	attempt := &domain.QuizAttempt{QuizID: quiz.ID, StudentID: principal.UserID, StartedAt: now}
	err = s.attempts.CreateAttempt(ctx, attempt)
	if err == nil {
		logger.Get().Info("Quiz attempt started",
			zap.String("attemptID", attempt.ID),
			zap.String("quizID", quiz.ID),
			zap.String("studentID", principal.UserID))
		return &dto.AttemptOutcomeResponse{
			Outcome: dto.OutcomeStarted,
			Attempt: toAttemptView(quiz, attempt, nil, now),
		}, nil
	}
	if !errors.Is(err, domain.ErrAttemptExists) {
		return nil, domain.NewInternalError("Failed to create attempt", err)
	}

	existing, err := s.attempts.GetByQuizAndStudent(ctx, quiz.ID, principal.UserID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get attempt", err)
	}
	if existing == nil {
		return nil, domain.NewInternalError("Attempt vanished after unique violation", nil)
	}
	if existing.IsCompleted {
		return nil, domain.NewAlreadyCompletedError(existing.ID)
	}

	return s.withLockedAttempt(ctx, principal, quiz.ID, existing.ID,
		func(ctx context.Context, quiz *domain.Quiz, attempt *domain.QuizAttempt) (*dto.AttemptOutcomeResponse, error) {
			answers, err := s.answers.ListByAttempt(ctx, attempt.ID)
			if err != nil {
				return nil, domain.NewInternalError("Failed to list answers", err)
			}
			logger.Get().Info("Quiz attempt resumed",
				zap.String("attemptID", attempt.ID),
				zap.String("studentID", principal.UserID))
			return &dto.AttemptOutcomeResponse{
				Outcome: dto.OutcomeResumed,
				Attempt: toAttemptView(quiz, attempt, answers, s.now()),
			}, nil
		})
}

// GetAttempt implements AttemptService
func (s *attemptService) GetAttempt(ctx context.Context, principal domain.Principal, quizID, attemptID string) (*dto.AttemptOutcomeResponse, error) {
	return s.withLockedAttempt(ctx, principal, quizID, attemptID,
		func(ctx context.Context, quiz *domain.Quiz, attempt *domain.QuizAttempt) (*dto.AttemptOutcomeResponse, error) {
			answers, err := s.answers.ListByAttempt(ctx, attempt.ID)
			if err != nil {
				return nil, domain.NewInternalError("Failed to list answers", err)
			}
			return &dto.AttemptOutcomeResponse{
				Outcome: dto.OutcomeInProgress,
				Attempt: toAttemptView(quiz, attempt, answers, s.now()),
			}, nil
		})
}

// SaveAnswers implements AttemptService
func (s *attemptService) SaveAnswers(ctx context.Context, principal domain.Principal, quizID, attemptID string, answers map[string]string) (*dto.AttemptOutcomeResponse, error) {
	return s.withLockedAttempt(ctx, principal, quizID, attemptID,
		func(ctx context.Context, quiz *domain.Quiz, attempt *domain.QuizAttempt) (*dto.AttemptOutcomeResponse, error) {
			now := s.now()
			skipped, err := s.applyAnswers(ctx, quiz, attempt, answers, now)
			if err != nil {
				return nil, err
			}
			stored, err := s.answers.ListByAttempt(ctx, attempt.ID)
			if err != nil {
				return nil, domain.NewInternalError("Failed to list answers", err)
			}
			return &dto.AttemptOutcomeResponse{
				Outcome:            dto.OutcomeSaved,
				Attempt:            toAttemptView(quiz, attempt, stored, now),
				SkippedQuestionIDs: skipped,
			}, nil
		})
}

// SubmitAttempt implements AttemptService. Answers, completion and score
// commit in one transaction.
func (s *attemptService) SubmitAttempt(ctx context.Context, principal domain.Principal, quizID, attemptID string, answers map[string]string) (*dto.AttemptOutcomeResponse, error) {
	return s.withLockedAttempt(ctx, principal, quizID, attemptID,
		func(ctx context.Context, quiz *domain.Quiz, attempt *domain.QuizAttempt) (*dto.AttemptOutcomeResponse, error) {
			now := s.now()
			skipped, err := s.applyAnswers(ctx, quiz, attempt, answers, now)
			if err != nil {
				return nil, err
			}
			grade, err := s.complete(ctx, quiz, attempt, now, domain.EndReasonSubmitted)
			if err != nil {
				return nil, err
			}
			logger.Get().Info("Quiz attempt submitted",
				zap.String("attemptID", attempt.ID),
				zap.Float64("score", attempt.Score))
			return &dto.AttemptOutcomeResponse{
				Outcome:            dto.OutcomeSubmitted,
				Result:             toResult(quiz, attempt, grade),
				SkippedQuestionIDs: skipped,
			}, nil
		})
}

// GetResult implements AttemptService. The owning student and the course
// instructor may see the result.
func (s *attemptService) GetResult(ctx context.Context, principal domain.Principal, attemptID string) (*dto.ResultResponse, error) {
	attempt, err := s.attempts.GetByID(ctx, attemptID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get attempt", err)
	}
	if attempt == nil {
		return nil, domain.NewAttemptNotFoundError(attemptID)
	}
	quiz, err := s.loadCurrentQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}

	if attempt.StudentID != principal.UserID {
		course, err := s.courses.GetCourseByID(ctx, quiz.CourseID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to get course", err)
		}
		if course == nil || !course.IsInstructor(principal) {
			return nil, domain.NewPermissionDeniedError("You may not view this result")
		}
	}

	if !attempt.IsCompleted {
		if !attempt.IsExpired(quiz.TimeLimit(), s.now()) {
			return nil, domain.NewAttemptInProgressError(attempt.ID)
		}
		if attempt, err = s.settleExpired(ctx, attempt.ID); err != nil {
			return nil, err
		}
	}

	answers, err := s.answers.ListByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list answers", err)
	}
	return toResult(quiz, attempt, domain.GradeAttempt(quiz, answers)), nil
}

// RegradeAttempt implements AttemptService
func (s *attemptService) RegradeAttempt(ctx context.Context, attemptID string) (*dto.ResultResponse, error) {
	var result *dto.ResultResponse
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		attempt, err := s.attempts.GetByIDForUpdate(ctx, attemptID)
		if err != nil {
			return domain.NewInternalError("Failed to lock attempt", err)
		}
		if attempt == nil {
			return domain.NewAttemptNotFoundError(attemptID)
		}
		if !attempt.IsCompleted {
			return domain.NewAttemptInProgressError(attemptID)
		}
		quiz, err := s.loadCurrentQuiz(ctx, attempt.QuizID)
		if err != nil {
			return err
		}
		answers, err := s.answers.ListByAttempt(ctx, attempt.ID)
		if err != nil {
			return domain.NewInternalError("Failed to list answers", err)
		}

		grade := domain.GradeAttempt(quiz, answers)
		if grade.Score != attempt.Score {
			if err := s.attempts.UpdateScore(ctx, attempt.ID, grade.Score); err != nil {
				return domain.NewInternalError("Failed to update score", err)
			}
			logger.Get().Info("Attempt regraded",
				zap.String("attemptID", attempt.ID),
				zap.Float64("oldScore", attempt.Score),
				zap.Float64("newScore", grade.Score))
			attempt.Score = grade.Score
		}
		result = toResult(quiz, attempt, grade)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// withLockedAttempt locks the attempt row and checks ownership and state
// before running fn in the same transaction. An attempt past its deadline is
// completed instead and fn never runs, so late answers are never stored.
// The quiz is read from the database, never from the cache.
func (s *attemptService) withLockedAttempt(
	ctx context.Context,
	principal domain.Principal,
	quizID, attemptID string,
	fn func(ctx context.Context, quiz *domain.Quiz, attempt *domain.QuizAttempt) (*dto.AttemptOutcomeResponse, error),
) (*dto.AttemptOutcomeResponse, error) {
	var resp *dto.AttemptOutcomeResponse
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		attempt, err := s.attempts.GetByIDForUpdate(ctx, attemptID)
		if err != nil {
			return domain.NewInternalError("Failed to lock attempt", err)
		}
		if attempt == nil || attempt.QuizID != quizID {
			return domain.NewAttemptNotFoundError(attemptID)
		}
		if attempt.StudentID != principal.UserID {
			return domain.NewPermissionDeniedError("This attempt belongs to another student")
		}
		if attempt.IsCompleted {
			return domain.NewAlreadyCompletedError(attempt.ID)
		}

		quiz, err := s.loadCurrentQuiz(ctx, attempt.QuizID)
		if err != nil {
			return err
		}

		if attempt.IsExpired(quiz.TimeLimit(), s.now()) {
			grade, err := s.expire(ctx, quiz, attempt)
			if err != nil {
				return err
			}
			resp = &dto.AttemptOutcomeResponse{
				Outcome: dto.OutcomeAutoSubmitted,
				Result:  toResult(quiz, attempt, grade),
			}
			return nil
		}

		resp, err = fn(ctx, quiz, attempt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// currentAttempt returns the student's attempt at quiz, completing it first
// when its time ran out.
func (s *attemptService) currentAttempt(ctx context.Context, quizID, studentID string) (*domain.QuizAttempt, error) {
	attempt, err := s.attempts.GetByQuizAndStudent(ctx, quizID, studentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get attempt", err)
	}
	if attempt == nil || attempt.IsCompleted {
		return attempt, nil
	}
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !attempt.IsExpired(quiz.TimeLimit(), s.now()) {
		return attempt, nil
	}
	return s.settleExpired(ctx, attempt.ID)
}

// settleExpired completes an expired attempt under its row lock. It returns
// the attempt as stored afterwards, also when another request completed it first.
func (s *attemptService) settleExpired(ctx context.Context, attemptID string) (*domain.QuizAttempt, error) {
	var settled *domain.QuizAttempt
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		attempt, err := s.attempts.GetByIDForUpdate(ctx, attemptID)
		if err != nil {
			return domain.NewInternalError("Failed to lock attempt", err)
		}
		if attempt == nil {
			return domain.NewAttemptNotFoundError(attemptID)
		}
		quiz, err := s.loadCurrentQuiz(ctx, attempt.QuizID)
		if err != nil {
			return err
		}
		if attempt.IsExpired(quiz.TimeLimit(), s.now()) {
			if _, err := s.expire(ctx, quiz, attempt); err != nil {
				return err
			}
		}
		settled = attempt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settled, nil
}

// expire completes attempt at its deadline with the answers stored so far.
func (s *attemptService) expire(ctx context.Context, quiz *domain.Quiz, attempt *domain.QuizAttempt) (domain.Grade, error) {
	deadline, _ := attempt.Deadline(quiz.TimeLimit())
	grade, err := s.complete(ctx, quiz, attempt, deadline, domain.EndReasonTimeExpired)
	if err != nil {
		return domain.Grade{}, err
	}
	logger.Get().Info("Quiz attempt auto-submitted after time limit",
		zap.String("attemptID", attempt.ID),
		zap.Time("deadline", deadline),
		zap.Float64("score", attempt.Score))
	return grade, nil
}

// complete grades the stored answers and persists the terminal state.
// It must run inside the transaction holding the attempt's row lock.
func (s *attemptService) complete(ctx context.Context, quiz *domain.Quiz, attempt *domain.QuizAttempt, at time.Time, reason domain.EndReason) (domain.Grade, error) {
	answers, err := s.answers.ListByAttempt(ctx, attempt.ID)
	if err != nil {
		return domain.Grade{}, domain.NewInternalError("Failed to list answers", err)
	}
	grade := domain.GradeAttempt(quiz, answers)
	attempt.Complete(at, grade.Score, reason)

	ok, err := s.attempts.CompleteAttempt(ctx, attempt)
	if err != nil {
		return domain.Grade{}, domain.NewInternalError("Failed to complete attempt", err)
	}
	if !ok {
		return domain.Grade{}, domain.NewAlreadyCompletedError(attempt.ID)
	}
	return grade, nil
}

// applyAnswers upserts every pair that references a question of the quiz and
// one of that question's choices. The IDs of skipped questions are returned.
func (s *attemptService) applyAnswers(ctx context.Context, quiz *domain.Quiz, attempt *domain.QuizAttempt, answers map[string]string, at time.Time) ([]string, error) {
	questionIDs := make([]string, 0, len(answers))
	for questionID := range answers {
		questionIDs = append(questionIDs, questionID)
	}
	sort.Strings(questionIDs)

	var skipped []string
	for _, questionID := range questionIDs {
		choiceID := answers[questionID]
		question := quiz.FindQuestion(questionID)
		if question == nil || question.FindChoice(choiceID) == nil {
			skipped = append(skipped, questionID)
			continue
		}
		if err := s.answers.UpsertAnswer(ctx, &domain.StudentAnswer{
			AttemptID:        attempt.ID,
			QuestionID:       questionID,
			SelectedChoiceID: choiceID,
			AnsweredAt:       at,
		}); err != nil {
			return nil, domain.NewInternalError("Failed to save answer", err)
		}
	}

	if len(skipped) > 0 {
		logger.Get().Warn("Skipped answers that do not belong to the quiz",
			zap.String("attemptID", attempt.ID),
			zap.Strings("questionIDs", skipped))
	}
	return skipped, nil
}

// loadQuiz reads the quiz through the cache; only listings and quiz pages use it.
func (s *attemptService) loadQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	return s.getQuiz(ctx, quizID, s.quizzes.GetQuiz)
}

// loadCurrentQuiz reads the quiz from the database. Availability and grading
// decisions use it so an edit is honoured as soon as it commits.
func (s *attemptService) loadCurrentQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	return s.getQuiz(ctx, quizID, s.quizzes.GetQuizUncached)
}

func (s *attemptService) getQuiz(ctx context.Context, quizID string, get func(context.Context, string) (*domain.Quiz, error)) (*domain.Quiz, error) {
	quiz, err := get(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	return quiz, nil
}
