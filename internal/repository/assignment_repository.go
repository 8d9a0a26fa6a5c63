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

const assignmentColumns = `id, course_id, title, description, due_date, total_points, is_published, created_at, updated_at`

// sqlxAssignmentRepository implements domain.AssignmentRepository using sqlx.
type sqlxAssignmentRepository struct {
	db *sqlx.DB
	tx domain.TransactionManager
}

// NewSQLXAssignmentRepository creates a new instance of sqlxAssignmentRepository.
func NewSQLXAssignmentRepository(db *sqlx.DB) domain.AssignmentRepository {
	return &sqlxAssignmentRepository{db: db, tx: NewTransactionManagerAdapter(db)}
}

func toDomainAssignment(m *models.Assignment) *domain.Assignment {
	if m == nil {
		return nil
	}
	return &domain.Assignment{
		ID:          m.ID,
		CourseID:    m.CourseID,
		Title:       m.Title,
		Description: m.Description.String,
		DueDate:     m.DueDate,
		TotalPoints: m.TotalPoints,
		IsPublished: bool(m.IsPublished),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDomainAssignment(a *domain.Assignment) *models.Assignment {
	if a == nil {
		return nil
	}
	return &models.Assignment{
		ID:          a.ID,
		CourseID:    a.CourseID,
		Title:       a.Title,
		Description: util.StringToNullString(a.Description),
		DueDate:     a.DueDate.UTC(),
		TotalPoints: a.TotalPoints,
		IsPublished: models.OracleBool(a.IsPublished),
		CreatedAt:   a.CreatedAt.UTC(),
		UpdatedAt:   a.UpdatedAt.UTC(),
	}
}

// GetAssignment implements domain.AssignmentRepository
func (r *sqlxAssignmentRepository) GetAssignment(ctx context.Context, id string) (*domain.Assignment, error) {
	var m models.Assignment
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m,
		`SELECT `+assignmentColumns+` FROM assignments WHERE id = :1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment %s: %w", id, err)
	}
	return toDomainAssignment(&m), nil
}

// ListAssignmentsByCourse implements domain.AssignmentRepository
func (r *sqlxAssignmentRepository) ListAssignmentsByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE course_id = :1`
	if onlyPublished {
		query += ` AND is_published = 1`
	}
	query += ` ORDER BY due_date DESC, id`

	var rows []models.Assignment
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, courseID); err != nil {
		return nil, fmt.Errorf("failed to list assignments of course %s: %w", courseID, err)
	}
	assignments := make([]*domain.Assignment, 0, len(rows))
	for i := range rows {
		assignments = append(assignments, toDomainAssignment(&rows[i]))
	}
	return assignments, nil
}

// CreateAssignment implements domain.AssignmentRepository
func (r *sqlxAssignmentRepository) CreateAssignment(ctx context.Context, assignment *domain.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = util.NewULID()
	}
	m := fromDomainAssignment(assignment)

	_, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`INSERT INTO assignments (`+assignmentColumns+`)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9)`,
		m.ID, m.CourseID, m.Title, m.Description, m.DueDate, m.TotalPoints, m.IsPublished, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

// UpdateAssignment implements domain.AssignmentRepository
func (r *sqlxAssignmentRepository) UpdateAssignment(ctx context.Context, assignment *domain.Assignment) error {
	m := fromDomainAssignment(assignment)

	res, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`UPDATE assignments SET title = :1, description = :2, due_date = :3, total_points = :4,
		is_published = :5, updated_at = :6 WHERE id = :7`,
		m.Title, m.Description, m.DueDate, m.TotalPoints, m.IsPublished, m.UpdatedAt, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment %s: %w", assignment.ID, err)
	}
	return expectRows(res, "assignment "+assignment.ID)
}

// DeleteAssignment implements domain.AssignmentRepository. Submissions go
// first so the foreign key holds.
func (r *sqlxAssignmentRepository) DeleteAssignment(ctx context.Context, id string) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, r.db)
		if _, err := exec.ExecContext(ctx, `DELETE FROM submissions WHERE assignment_id = :1`, id); err != nil {
			return fmt.Errorf("failed to delete submissions of assignment %s: %w", id, err)
		}
		if _, err := exec.ExecContext(ctx, `DELETE FROM assignments WHERE id = :1`, id); err != nil {
			return fmt.Errorf("failed to delete assignment %s: %w", id, err)
		}
		return nil
	})
}
