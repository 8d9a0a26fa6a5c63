// @title E-Learning Quiz API
// @version 1.0
// @description Quiz attempts and automatic grading for course quizzes.
// @contact.name API Support
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "elearning/cmd/api/docs"
	"elearning/internal/adapter"
	"elearning/internal/cache"
	"elearning/internal/config"
	"elearning/internal/database"
	"elearning/internal/handler"
	"elearning/internal/logger"
	"elearning/internal/middleware"
	"elearning/internal/repository"
	"elearning/internal/service"
	"elearning/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Repositories
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	courseRepository := repository.NewSQLXCourseRepository(db)
	attemptRepository := repository.NewSQLXAttemptRepository(db)
	answerRepository := repository.NewSQLXAnswerRepository(db)
	assignmentRepository := repository.NewSQLXAssignmentRepository(db)
	submissionRepository := repository.NewSQLXSubmissionRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Services
	validator := validation.NewValidator()
	quizCache := service.NewQuizCacheService(quizRepository, cacheAdapter, cfg)
	attemptService := service.NewAttemptService(quizCache, courseRepository, attemptRepository, answerRepository, txManager, time.Now)
	catalogService := service.NewCatalogService(quizRepository, courseRepository, attemptRepository, quizCache, validator, time.Now)
	assignmentService := service.NewAssignmentService(assignmentRepository, submissionRepository, courseRepository, txManager, validator, time.Now)
	tokenService, err := service.NewTokenService(cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create TokenService", zap.Error(err))
	}
	appLogger.Info("Services initialized")

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.SetupRoutes(app.Group("/api"), handler.Routes{
		Attempts:    handler.NewAttemptHandler(attemptService, validator),
		Catalog:     handler.NewCatalogHandler(catalogService),
		Assignments: handler.NewAssignmentHandler(assignmentService),
		Health: handler.NewHealthHandler(map[string]handler.HealthCheck{
			"database": db.PingContext,
			"redis":    cacheAdapter.Ping,
		}),
		TokenService: tokenService,
		Validation:   middleware.NewValidationMiddleware(validator),
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
