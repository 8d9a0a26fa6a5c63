package repository

import (
	"context"
	"fmt"
	"time"

	"elearning/internal/domain"
	"elearning/internal/repository/models"
	"elearning/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxAnswerRepository implements domain.AnswerRepository using sqlx.
type sqlxAnswerRepository struct {
	db *sqlx.DB
}

// NewSQLXAnswerRepository creates a new instance of sqlxAnswerRepository.
func NewSQLXAnswerRepository(db *sqlx.DB) domain.AnswerRepository {
	return &sqlxAnswerRepository{db: db}
}

// UpsertAnswer implements domain.AnswerRepository with a MERGE keyed on
// (attempt_id, question_id), so a re-selection replaces the earlier choice.
func (r *sqlxAnswerRepository) UpsertAnswer(ctx context.Context, answer *domain.StudentAnswer) error {
	if answer.ID == "" {
		answer.ID = util.NewULID()
	}
	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = time.Now()
	}
	answer.AnsweredAt = answer.AnsweredAt.UTC()

	_, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`MERGE INTO student_answers sa
		USING (SELECT :1 AS attempt_id, :2 AS question_id FROM dual) src
		ON (sa.attempt_id = src.attempt_id AND sa.question_id = src.question_id)
		WHEN MATCHED THEN
			UPDATE SET sa.selected_choice_id = :3, sa.answered_at = :4
		WHEN NOT MATCHED THEN
			INSERT (id, attempt_id, question_id, selected_choice_id, answered_at)
			VALUES (:5, :6, :7, :8, :9)`,
		answer.AttemptID, answer.QuestionID,
		answer.SelectedChoiceID, answer.AnsweredAt,
		answer.ID, answer.AttemptID, answer.QuestionID, answer.SelectedChoiceID, answer.AnsweredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert answer for question %s: %w", answer.QuestionID, err)
	}
	return nil
}

// ListByAttempt implements domain.AnswerRepository
func (r *sqlxAnswerRepository) ListByAttempt(ctx context.Context, attemptID string) ([]domain.StudentAnswer, error) {
	var rows []models.StudentAnswer
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows,
		`SELECT id, attempt_id, question_id, selected_choice_id, answered_at
		FROM student_answers WHERE attempt_id = :1`, attemptID); err != nil {
		return nil, fmt.Errorf("failed to list answers of attempt %s: %w", attemptID, err)
	}

	answers := make([]domain.StudentAnswer, 0, len(rows))
	for _, m := range rows {
		answers = append(answers, domain.StudentAnswer{
			ID:               m.ID,
			AttemptID:        m.AttemptID,
			QuestionID:       m.QuestionID,
			SelectedChoiceID: m.SelectedChoiceID,
			AnsweredAt:       m.AnsweredAt,
		})
	}
	return answers, nil
}
