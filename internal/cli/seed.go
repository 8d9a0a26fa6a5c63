package cli

import (
	"fmt"
	"os"

	"elearning/internal/adapter"
	"elearning/internal/cache"
	"elearning/internal/config"
	"elearning/internal/database"
	"elearning/internal/domain"
	"elearning/internal/logger"
	"elearning/internal/repository"
	"elearning/internal/service"
	"elearning/internal/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewSeedCmd loads courses and quizzes from a YAML catalog file.
func NewSeedCmd(load ConfigLoader) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create courses and quizzes from a YAML catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open catalog file: %w", err)
			}
			defer f.Close()

			catalogFile, err := LoadCatalog(f)
			if err != nil {
				return err
			}

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

			quizCache, closeCache := openCatalogCache(cfg)
			defer closeCache()

			quizRepository := repository.NewQuizDatabaseAdapter(db)
			catalog := service.NewCatalogService(
				quizRepository,
				repository.NewSQLXCourseRepository(db),
				repository.NewSQLXAttemptRepository(db),
				service.NewQuizCacheService(quizRepository, quizCache, cfg),
				validation.NewValidator(),
				nil,
			)

			summary, err := SeedCatalog(cmd.Context(), catalog, catalogFile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d courses, %d quizzes (%d published)\n",
				summary.Courses, summary.Quizzes, summary.Published)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to the YAML catalog")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// openCatalogCache connects to the API's Redis so seeded quizzes invalidate
// cached catalog entries. Seeding does not need Redis; when it is unreachable
// the returned cache is nil and a warning names the TTLs after which the
// API's cached entries expire on their own.
func openCatalogCache(cfg *config.Config) (domain.Cache, func()) {
	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Get().Warn("Redis unavailable, seeding without cache invalidation; cached catalog entries may be stale until they expire",
			zap.Error(err),
			zap.Duration("quizTTL", cfg.CacheTTLs.Quiz),
			zap.Duration("courseQuizzesTTL", cfg.CacheTTLs.CourseQuiz))
		return nil, func() {}
	}
	return adapter.NewRedisCacheAdapter(client), func() { _ = client.Close() }
}
