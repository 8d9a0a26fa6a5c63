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

// sqlxCourseRepository implements domain.CourseRepository using sqlx.
type sqlxCourseRepository struct {
	db *sqlx.DB
}

// NewSQLXCourseRepository creates a new instance of sqlxCourseRepository.
func NewSQLXCourseRepository(db *sqlx.DB) domain.CourseRepository {
	return &sqlxCourseRepository{db: db}
}

func toDomainCourse(m *models.Course) *domain.Course {
	return &domain.Course{ID: m.ID, Title: m.Title, InstructorID: m.InstructorID}
}

// GetCourseByID implements domain.CourseRepository
func (r *sqlxCourseRepository) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	var m models.Course
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m,
		`SELECT id, title, instructor_id, created_at FROM courses WHERE id = :1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course %s: %w", id, err)
	}
	return toDomainCourse(&m), nil
}

// ListByInstructor implements domain.CourseRepository
func (r *sqlxCourseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]*domain.Course, error) {
	var rows []models.Course
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows,
		`SELECT id, title, instructor_id, created_at FROM courses WHERE instructor_id = :1 ORDER BY title`,
		instructorID); err != nil {
		return nil, fmt.Errorf("failed to list courses of instructor %s: %w", instructorID, err)
	}
	courses := make([]*domain.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, toDomainCourse(&rows[i]))
	}
	return courses, nil
}

// SaveCourse inserts the course, or renames it and reassigns its instructor when it exists.
func (r *sqlxCourseRepository) SaveCourse(ctx context.Context, course *domain.Course) error {
	if course.ID == "" {
		course.ID = util.NewULID()
	}
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx,
		`MERGE INTO courses c
		USING (SELECT :1 AS id FROM dual) src
		ON (c.id = src.id)
		WHEN MATCHED THEN
			UPDATE SET c.title = :2, c.instructor_id = :3
		WHEN NOT MATCHED THEN
			INSERT (id, title, instructor_id, created_at) VALUES (:4, :5, :6, :7)`,
		course.ID, course.Title, course.InstructorID,
		course.ID, course.Title, course.InstructorID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save course %s: %w", course.ID, err)
	}
	return nil
}
