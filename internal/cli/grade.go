package cli

import (
	"elearning/internal/database"
	"elearning/internal/logger"
	"elearning/internal/repository"
	"elearning/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type gradeReport struct {
	AttemptID      string  `yaml:"attempt_id"`
	QuizID         string  `yaml:"quiz_id"`
	StudentID      string  `yaml:"student_id"`
	Score          float64 `yaml:"score"`
	CorrectCount   int     `yaml:"correct_count"`
	TotalQuestions int     `yaml:"total_questions"`
}

// NewGradeCmd recomputes the score of a completed attempt from its stored answers.
func NewGradeCmd(load ConfigLoader) *cobra.Command {
	var attemptID string
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Recompute the score of a completed attempt",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAndInitLogger(load)
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, err := database.NewSQLXOracleDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			quizRepository := repository.NewQuizDatabaseAdapter(db)
			attempts := service.NewAttemptService(
				service.NewQuizCacheService(quizRepository, nil, cfg),
				repository.NewSQLXCourseRepository(db),
				repository.NewSQLXAttemptRepository(db),
				repository.NewSQLXAnswerRepository(db),
				repository.NewTransactionManagerAdapter(db),
				nil,
			)

			result, err := attempts.RegradeAttempt(cmd.Context(), attemptID)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(gradeReport{
				AttemptID:      result.AttemptID,
				QuizID:         result.QuizID,
				StudentID:      result.StudentID,
				Score:          result.Score,
				CorrectCount:   result.CorrectCount,
				TotalQuestions: result.TotalQuestions,
			})
		},
	}
	cmd.Flags().StringVar(&attemptID, "attempt", "", "attempt ID")
	_ = cmd.MarkFlagRequired("attempt")
	return cmd
}
