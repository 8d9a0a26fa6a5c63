package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"elearning/internal/domain"
	"elearning/internal/repository/models"
	"elearning/internal/util"

	"github.com/jmoiron/sqlx"
)

const attemptColumns = `id, quiz_id, student_id, score, started_at, completed_at, is_completed, end_reason`

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainAttempt(m *models.QuizAttempt) *domain.QuizAttempt {
	if m == nil {
		return nil
	}
	return &domain.QuizAttempt{
		ID:          m.ID,
		QuizID:      m.QuizID,
		StudentID:   m.StudentID,
		Score:       m.Score,
		StartedAt:   m.StartedAt,
		CompletedAt: util.NullTimeToPtr(m.CompletedAt),
		IsCompleted: bool(m.IsCompleted),
		EndReason:   domain.EndReason(m.EndReason.String),
	}
}

func fromDomainAttempt(a *domain.QuizAttempt) *models.QuizAttempt {
	if a == nil {
		return nil
	}
	return &models.QuizAttempt{
		ID:          a.ID,
		QuizID:      a.QuizID,
		StudentID:   a.StudentID,
		Score:       a.Score,
		StartedAt:   a.StartedAt.UTC(),
		CompletedAt: util.TimePtrToNullTime(a.CompletedAt),
		IsCompleted: models.OracleBool(a.IsCompleted),
		EndReason:   util.StringToNullString(string(a.EndReason)),
	}
}

// CreateAttempt inserts a new attempt. The UNIQUE (quiz_id, student_id)
// constraint decides concurrent starts; the loser gets domain.ErrAttemptExists.
func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	m := fromDomainAttempt(attempt)

	_, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`INSERT INTO quiz_attempts (id, quiz_id, student_id, score, started_at, completed_at, is_completed, end_reason)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`,
		m.ID, m.QuizID, m.StudentID, m.Score, m.StartedAt, m.CompletedAt, m.IsCompleted, m.EndReason,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrAttemptExists
		}
		return fmt.Errorf("failed to insert attempt: %w", err)
	}
	return nil
}

// GetByQuizAndStudent implements domain.AttemptRepository
func (r *sqlxAttemptRepository) GetByQuizAndStudent(ctx context.Context, quizID, studentID string) (*domain.QuizAttempt, error) {
	return r.getOne(ctx,
		`SELECT `+attemptColumns+` FROM quiz_attempts WHERE quiz_id = :1 AND student_id = :2`,
		quizID, studentID)
}

// GetByID implements domain.AttemptRepository
func (r *sqlxAttemptRepository) GetByID(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	return r.getOne(ctx, `SELECT `+attemptColumns+` FROM quiz_attempts WHERE id = :1`, id)
}

// GetByIDForUpdate implements domain.AttemptRepository. Outside a
// transaction the lock would be released immediately, so that is an error.
func (r *sqlxAttemptRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.QuizAttempt, error) {
	if !InTransaction(ctx) {
		return nil, errors.New("GetByIDForUpdate requires a transaction")
	}
	return r.getOne(ctx, `SELECT `+attemptColumns+` FROM quiz_attempts WHERE id = :1 FOR UPDATE`, id)
}

func (r *sqlxAttemptRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.QuizAttempt, error) {
	var m models.QuizAttempt
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return toDomainAttempt(&m), nil
}

// CompleteAttempt implements domain.AttemptRepository. The is_completed = 0
// guard makes completion happen at most once.
func (r *sqlxAttemptRepository) CompleteAttempt(ctx context.Context, attempt *domain.QuizAttempt) (bool, error) {
	if !attempt.IsCompleted || attempt.CompletedAt == nil {
		return false, fmt.Errorf("attempt %s is not marked completed", attempt.ID)
	}
	m := fromDomainAttempt(attempt)

	res, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`UPDATE quiz_attempts SET is_completed = 1, completed_at = :1, score = :2, end_reason = :3
		WHERE id = :4 AND is_completed = 0`,
		m.CompletedAt, m.Score, m.EndReason, m.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete attempt %s: %w", attempt.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

// UpdateScore implements domain.AttemptRepository. Only completed attempts carry a score.
func (r *sqlxAttemptRepository) UpdateScore(ctx context.Context, attemptID string, score float64) error {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`UPDATE quiz_attempts SET score = :1 WHERE id = :2 AND is_completed = 1`,
		score, attemptID,
	)
	if err != nil {
		return fmt.Errorf("failed to update score of attempt %s: %w", attemptID, err)
	}
	return expectRows(res, "completed attempt "+attemptID)
}

// ListByQuiz implements domain.AttemptRepository
func (r *sqlxAttemptRepository) ListByQuiz(ctx context.Context, quizID string) ([]*domain.QuizAttempt, error) {
	var rows []models.QuizAttempt
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows,
		`SELECT `+attemptColumns+` FROM quiz_attempts WHERE quiz_id = :1 ORDER BY started_at DESC, id`,
		quizID); err != nil {
		return nil, fmt.Errorf("failed to list attempts of quiz %s: %w", quizID, err)
	}
	attempts := make([]*domain.QuizAttempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainAttempt(&rows[i]))
	}
	return attempts, nil
}
