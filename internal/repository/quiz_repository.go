package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"elearning/internal/domain"
	"elearning/internal/repository/models"
	"elearning/internal/util"

	"github.com/jmoiron/sqlx"
)

const quizColumns = `id, course_id, lesson_id, title, description, time_limit_minutes,
		start_time, end_time, is_published, created_at, updated_at`

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
	tx domain.TransactionManager
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db, tx: NewTransactionManagerAdapter(db)}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	return &domain.Quiz{
		ID:               m.ID,
		CourseID:         m.CourseID,
		LessonID:         m.LessonID.String,
		Title:            m.Title,
		Description:      m.Description.String,
		TimeLimitMinutes: m.TimeLimitMinutes,
		StartTime:        util.NullTimeToPtr(m.StartTime),
		EndTime:          util.NullTimeToPtr(m.EndTime),
		IsPublished:      bool(m.IsPublished),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromDomainQuiz(q *domain.Quiz) *models.Quiz {
	if q == nil {
		return nil
	}
	return &models.Quiz{
		ID:               q.ID,
		CourseID:         q.CourseID,
		LessonID:         util.StringToNullString(q.LessonID),
		Title:            q.Title,
		Description:      util.StringToNullString(q.Description),
		TimeLimitMinutes: q.TimeLimitMinutes,
		StartTime:        util.TimePtrToNullTime(q.StartTime),
		EndTime:          util.TimePtrToNullTime(q.EndTime),
		IsPublished:      models.OracleBool(q.IsPublished),
		CreatedAt:        q.CreatedAt.UTC(),
		UpdatedAt:        q.UpdatedAt.UTC(),
	}
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var m models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = :1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz %s: %w", id, err)
	}
	return toDomainQuiz(&m), nil
}

// GetQuizWithQuestions implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizWithQuestions(ctx context.Context, id string) (*domain.Quiz, error) {
	quiz, err := a.GetQuizByID(ctx, id)
	if err != nil || quiz == nil {
		return quiz, err
	}

	exec := GetExecutor(ctx, a.db)

	var questions []models.Question
	if err := exec.SelectContext(ctx, &questions,
		`SELECT id, quiz_id, question_text, question_number
		FROM questions WHERE quiz_id = :1 ORDER BY question_number`, id); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %s: %w", id, err)
	}

	var choices []models.Choice
	if err := exec.SelectContext(ctx, &choices,
		`SELECT c.id, c.question_id, c.choice_text, c.choice_number, c.is_correct
		FROM choices c JOIN questions q ON c.question_id = q.id
		WHERE q.quiz_id = :1
		ORDER BY q.question_number, c.choice_number`, id); err != nil {
		return nil, fmt.Errorf("failed to get choices for quiz %s: %w", id, err)
	}

	byQuestion := make(map[string][]domain.Choice, len(questions))
	for _, c := range choices {
		byQuestion[c.QuestionID] = append(byQuestion[c.QuestionID], domain.Choice{
			ID:         c.ID,
			QuestionID: c.QuestionID,
			Text:       c.ChoiceText,
			Number:     c.ChoiceNumber,
			IsCorrect:  bool(c.IsCorrect),
		})
	}

	quiz.Questions = make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		quiz.Questions = append(quiz.Questions, domain.Question{
			ID:      q.ID,
			QuizID:  q.QuizID,
			Text:    q.QuestionText,
			Number:  q.QuestionNumber,
			Choices: byQuestion[q.ID],
		})
	}
	return quiz, nil
}

// ListByCourse implements domain.QuizRepository
func (a *QuizDatabaseAdapter) ListByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*domain.Quiz, error) {
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE course_id = :1`
	if onlyPublished {
		query += ` AND is_published = 1`
	}
	query += ` ORDER BY created_at, id`

	var rows []models.Quiz
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to list quizzes for course %s: %w", courseID, err)
	}

	quizzes := make([]*domain.Quiz, 0, len(rows))
	for i := range rows {
		quizzes = append(quizzes, toDomainQuiz(&rows[i]))
	}
	return quizzes, nil
}

// CreateQuiz implements domain.QuizRepository. Missing IDs are generated.
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	now := time.Now().UTC()
	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = now
	}
	quiz.UpdatedAt = quiz.CreatedAt

	return a.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)
		m := fromDomainQuiz(quiz)

		_, err := exec.ExecContext(ctx,
			`INSERT INTO quizzes (id, course_id, lesson_id, title, description, time_limit_minutes,
				start_time, end_time, is_published, created_at, updated_at)
			VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11)`,
			m.ID, m.CourseID, m.LessonID, m.Title, m.Description, m.TimeLimitMinutes,
			m.StartTime, m.EndTime, m.IsPublished, m.CreatedAt, m.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert quiz: %w", err)
		}

		for qi := range quiz.Questions {
			question := &quiz.Questions[qi]
			if question.ID == "" {
				question.ID = util.NewULID()
			}
			question.QuizID = quiz.ID
			if _, err := exec.ExecContext(ctx,
				`INSERT INTO questions (id, quiz_id, question_text, question_number) VALUES (:1, :2, :3, :4)`,
				question.ID, question.QuizID, question.Text, question.Number,
			); err != nil {
				return fmt.Errorf("failed to insert question %d: %w", question.Number, err)
			}

			for ci := range question.Choices {
				choice := &question.Choices[ci]
				if choice.ID == "" {
					choice.ID = util.NewULID()
				}
				choice.QuestionID = question.ID
				if _, err := exec.ExecContext(ctx,
					`INSERT INTO choices (id, question_id, choice_text, choice_number, is_correct) VALUES (:1, :2, :3, :4, :5)`,
					choice.ID, choice.QuestionID, choice.Text, choice.Number, models.OracleBool(choice.IsCorrect),
				); err != nil {
					return fmt.Errorf("failed to insert choice %d of question %d: %w", choice.Number, question.Number, err)
				}
			}
		}
		return nil
	})
}

// UpdateQuiz implements domain.QuizRepository. Questions and choices are
// matched by number so their IDs, and the answers pointing at them, survive.
func (a *QuizDatabaseAdapter) UpdateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	quiz.UpdatedAt = time.Now().UTC()

	return a.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)
		m := fromDomainQuiz(quiz)

		res, err := exec.ExecContext(ctx,
			`UPDATE quizzes SET lesson_id = :1, title = :2, description = :3, time_limit_minutes = :4,
				start_time = :5, end_time = :6, updated_at = :7
			WHERE id = :8`,
			m.LessonID, m.Title, m.Description, m.TimeLimitMinutes,
			m.StartTime, m.EndTime, m.UpdatedAt, m.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update quiz %s: %w", quiz.ID, err)
		}
		if err := expectRows(res, "quiz "+quiz.ID); err != nil {
			return err
		}

		for _, question := range quiz.Questions {
			res, err := exec.ExecContext(ctx,
				`UPDATE questions SET question_text = :1 WHERE quiz_id = :2 AND question_number = :3`,
				question.Text, quiz.ID, question.Number,
			)
			if err != nil {
				return fmt.Errorf("failed to update question %d: %w", question.Number, err)
			}
			if err := expectRows(res, fmt.Sprintf("question %d", question.Number)); err != nil {
				return err
			}

			for _, choice := range question.Choices {
				res, err := exec.ExecContext(ctx,
					`UPDATE choices SET choice_text = :1, is_correct = :2
					WHERE choice_number = :3
					AND question_id = (SELECT id FROM questions WHERE quiz_id = :4 AND question_number = :5)`,
					choice.Text, models.OracleBool(choice.IsCorrect), choice.Number, quiz.ID, question.Number,
				)
				if err != nil {
					return fmt.Errorf("failed to update choice %d of question %d: %w", choice.Number, question.Number, err)
				}
				if err := expectRows(res, fmt.Sprintf("choice %d of question %d", choice.Number, question.Number)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// SetPublished implements domain.QuizRepository
func (a *QuizDatabaseAdapter) SetPublished(ctx context.Context, quizID string, published bool, at time.Time) (bool, error) {
	res, err := GetExecutor(ctx, a.db).ExecContext(ctx,
		`UPDATE quizzes SET is_published = :1, updated_at = :2 WHERE id = :3`,
		models.OracleBool(published), at, quizID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to set published on quiz %s: %w", quizID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// DeleteQuiz implements domain.QuizRepository. Rows are removed children
// first inside one transaction.
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, quizID string) error {
	steps := []struct {
		name  string
		query string
	}{
		{"answers", `DELETE FROM student_answers WHERE attempt_id IN (SELECT id FROM quiz_attempts WHERE quiz_id = :1)`},
		{"attempts", `DELETE FROM quiz_attempts WHERE quiz_id = :1`},
		{"choices", `DELETE FROM choices WHERE question_id IN (SELECT id FROM questions WHERE quiz_id = :1)`},
		{"questions", `DELETE FROM questions WHERE quiz_id = :1`},
		{"quiz", `DELETE FROM quizzes WHERE id = :1`},
	}

	return a.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)
		for _, step := range steps {
			if _, err := exec.ExecContext(ctx, step.query, quizID); err != nil {
				return fmt.Errorf("failed to delete %s of quiz %s: %w", step.name, quizID, err)
			}
		}
		return nil
	})
}

func expectRows(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for %s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s not found", what)
	}
	return nil
}
