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

const submissionColumns = `id, assignment_id, student_id, submission_text, submitted_at, status, score, feedback, graded_at`

// sqlxSubmissionRepository implements domain.SubmissionRepository using sqlx.
type sqlxSubmissionRepository struct {
	db *sqlx.DB
}

// NewSQLXSubmissionRepository creates a new instance of sqlxSubmissionRepository.
func NewSQLXSubmissionRepository(db *sqlx.DB) domain.SubmissionRepository {
	return &sqlxSubmissionRepository{db: db}
}

func toDomainSubmission(m *models.Submission) *domain.Submission {
	if m == nil {
		return nil
	}
	s := &domain.Submission{
		ID:           m.ID,
		AssignmentID: m.AssignmentID,
		StudentID:    m.StudentID,
		Text:         m.SubmissionText.String,
		SubmittedAt:  m.SubmittedAt,
		Status:       domain.SubmissionStatus(m.Status),
		Feedback:     m.Feedback.String,
		GradedAt:     util.NullTimeToPtr(m.GradedAt),
	}
	if m.Score.Valid {
		score := int(m.Score.Int64)
		s.Score = &score
	}
	return s
}

func fromDomainSubmission(s *domain.Submission) *models.Submission {
	if s == nil {
		return nil
	}
	m := &models.Submission{
		ID:             s.ID,
		AssignmentID:   s.AssignmentID,
		StudentID:      s.StudentID,
		SubmissionText: util.StringToNullString(s.Text),
		SubmittedAt:    s.SubmittedAt.UTC(),
		Status:         string(s.Status),
		Feedback:       util.StringToNullString(s.Feedback),
		GradedAt:       util.TimePtrToNullTime(s.GradedAt),
	}
	if s.Score != nil {
		m.Score = sql.NullInt64{Int64: int64(*s.Score), Valid: true}
	}
	return m
}

// CreateSubmission implements domain.SubmissionRepository. The
// UNIQUE (assignment_id, student_id) constraint turns a second submission
// into domain.ErrSubmissionExists.
func (r *sqlxSubmissionRepository) CreateSubmission(ctx context.Context, submission *domain.Submission) error {
	if submission.ID == "" {
		submission.ID = util.NewULID()
	}
	if submission.Status == "" {
		submission.Status = domain.SubmissionStatusSubmitted
	}
	m := fromDomainSubmission(submission)

	_, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`INSERT INTO submissions (`+submissionColumns+`)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9)`,
		m.ID, m.AssignmentID, m.StudentID, m.SubmissionText, m.SubmittedAt, m.Status, m.Score, m.Feedback, m.GradedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrSubmissionExists
		}
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// GetSubmission implements domain.SubmissionRepository
func (r *sqlxSubmissionRepository) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	return r.getOne(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = :1`, id)
}

// GetSubmissionForUpdate implements domain.SubmissionRepository
func (r *sqlxSubmissionRepository) GetSubmissionForUpdate(ctx context.Context, id string) (*domain.Submission, error) {
	if !InTransaction(ctx) {
		return nil, errors.New("GetSubmissionForUpdate requires a transaction")
	}
	return r.getOne(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = :1 FOR UPDATE`, id)
}

// GetByAssignmentAndStudent implements domain.SubmissionRepository
func (r *sqlxSubmissionRepository) GetByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*domain.Submission, error) {
	return r.getOne(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE assignment_id = :1 AND student_id = :2`,
		assignmentID, studentID)
}

func (r *sqlxSubmissionRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.Submission, error) {
	var m models.Submission
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return toDomainSubmission(&m), nil
}

// UpdateSubmission implements domain.SubmissionRepository
func (r *sqlxSubmissionRepository) UpdateSubmission(ctx context.Context, submission *domain.Submission) error {
	m := fromDomainSubmission(submission)

	res, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`UPDATE submissions SET submission_text = :1, submitted_at = :2, status = :3, score = :4,
		feedback = :5, graded_at = :6 WHERE id = :7`,
		m.SubmissionText, m.SubmittedAt, m.Status, m.Score, m.Feedback, m.GradedAt, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update submission %s: %w", submission.ID, err)
	}
	return expectRows(res, "submission "+submission.ID)
}

// ListByAssignment implements domain.SubmissionRepository
func (r *sqlxSubmissionRepository) ListByAssignment(ctx context.Context, assignmentID string) ([]*domain.Submission, error) {
	var rows []models.Submission
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows,
		`SELECT `+submissionColumns+` FROM submissions WHERE assignment_id = :1 ORDER BY submitted_at, id`,
		assignmentID); err != nil {
		return nil, fmt.Errorf("failed to list submissions of assignment %s: %w", assignmentID, err)
	}
	submissions := make([]*domain.Submission, 0, len(rows))
	for i := range rows {
		submissions = append(submissions, toDomainSubmission(&rows[i]))
	}
	return submissions, nil
}
