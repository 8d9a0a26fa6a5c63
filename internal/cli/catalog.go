package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"elearning/internal/domain"
	"elearning/internal/dto"
	"elearning/internal/logger"
	"elearning/internal/service"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the YAML layout accepted by `quizctl seed`.
type CatalogFile struct {
	Courses []CourseEntry `yaml:"courses"`
}

// CourseEntry is one course with the quizzes to create in it.
type CourseEntry struct {
	ID           string      `yaml:"id"`
	Title        string      `yaml:"title"`
	InstructorID string      `yaml:"instructor_id"`
	Quizzes      []QuizEntry `yaml:"quizzes"`
}

type QuizEntry struct {
	Title            string          `yaml:"title"`
	Description      string          `yaml:"description"`
	LessonID         string          `yaml:"lesson_id"`
	TimeLimitMinutes int             `yaml:"time_limit_minutes"`
	StartTime        *time.Time      `yaml:"start_time"`
	EndTime          *time.Time      `yaml:"end_time"`
	Published        bool            `yaml:"published"`
	Questions        []QuestionEntry `yaml:"questions"`
}

type QuestionEntry struct {
	Text    string        `yaml:"text"`
	Choices []ChoiceEntry `yaml:"choices"`
}

type ChoiceEntry struct {
	Text    string `yaml:"text"`
	Correct bool   `yaml:"correct"`
}

// SeedSummary counts what a seed run created.
type SeedSummary struct {
	Courses   int
	Quizzes   int
	Published int
}

// LoadCatalog decodes a catalog file. Unknown keys are rejected.
func LoadCatalog(r io.Reader) (*CatalogFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file CatalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog file is empty")
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(file.Courses) == 0 {
		return nil, errors.New("catalog file defines no courses")
	}
	return &file, nil
}

// toQuizRequest converts a catalog entry into the request the catalog service validates.
func (q QuizEntry) toQuizRequest(courseID string) *dto.QuizRequest {
	req := &dto.QuizRequest{
		CourseID:         courseID,
		LessonID:         q.LessonID,
		Title:            q.Title,
		Description:      q.Description,
		TimeLimitMinutes: q.TimeLimitMinutes,
		StartTime:        q.StartTime,
		EndTime:          q.EndTime,
		Questions:        make([]dto.QuestionRequest, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		qr := dto.QuestionRequest{Text: question.Text, Choices: make([]dto.ChoiceRequest, 0, len(question.Choices))}
		for _, choice := range question.Choices {
			qr.Choices = append(qr.Choices, dto.ChoiceRequest{Text: choice.Text, IsCorrect: choice.Correct})
		}
		req.Questions = append(req.Questions, qr)
	}
	return req
}

// SeedCatalog creates every course and quiz of file through the catalog
// service, so the same shape rules apply as for the HTTP API.
func SeedCatalog(ctx context.Context, catalog service.CatalogService, file *CatalogFile) (SeedSummary, error) {
	var summary SeedSummary
	log := logger.Get()

	for i := range file.Courses {
		entry := file.Courses[i]
		course := &domain.Course{ID: entry.ID, Title: entry.Title, InstructorID: entry.InstructorID}
		if err := catalog.SaveCourse(ctx, course); err != nil {
			return summary, fmt.Errorf("course %q: %w", entry.Title, err)
		}
		summary.Courses++

		instructor := domain.Principal{UserID: course.InstructorID, Role: domain.RoleTeacher}
		for _, q := range entry.Quizzes {
			created, err := catalog.CreateQuiz(ctx, instructor, q.toQuizRequest(course.ID))
			if err != nil {
				return summary, fmt.Errorf("quiz %q in course %q: %w", q.Title, entry.Title, err)
			}
			summary.Quizzes++

			if q.Published {
				if _, err := catalog.SetPublished(ctx, instructor, created.ID, true); err != nil {
					return summary, fmt.Errorf("publish quiz %q: %w", q.Title, err)
				}
				summary.Published++
			}
			log.Info("Seeded quiz",
				zap.String("course_id", course.ID),
				zap.String("quiz_id", created.ID),
				zap.Bool("published", q.Published))
		}
	}
	return summary, nil
}
