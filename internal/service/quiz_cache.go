package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"elearning/internal/cache"
	"elearning/internal/config"
	"elearning/internal/domain"
	"elearning/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultQuizTTL          = 10 * time.Minute
	defaultCourseQuizzesTTL = time.Minute
)

// QuizCacheService is a read-through cache in front of the quiz catalog.
type QuizCacheService interface {
	// GetQuiz returns the quiz with questions and choices, or nil when it does not exist.
	GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error)
	// GetQuizUncached reads the quiz from the database, bypassing the cache.
	// Grading and availability decisions use it.
	GetQuizUncached(ctx context.Context, quizID string) (*domain.Quiz, error)
	// ListByCourse returns the quizzes of a course without their questions.
	ListByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*domain.Quiz, error)
	// Invalidate drops the cached quiz and the listings of its course.
	Invalidate(ctx context.Context, quizID, courseID string)
}

type quizCacheService struct {
	repo             domain.QuizRepository
	cache            domain.Cache
	quizTTL          time.Duration
	courseQuizzesTTL time.Duration
	sfGroup          singleflight.Group

	// generations counts invalidations per key. A load only writes back when
	// no invalidation happened while it ran.
	mu          sync.Mutex
	generations map[string]uint64
}

// NewQuizCacheService creates a QuizCacheService. A nil cache disables caching.
func NewQuizCacheService(repo domain.QuizRepository, c domain.Cache, cfg *config.Config) QuizCacheService {
	s := &quizCacheService{
		repo:             repo,
		cache:            c,
		quizTTL:          defaultQuizTTL,
		courseQuizzesTTL: defaultCourseQuizzesTTL,
		generations:      make(map[string]uint64),
	}
	if cfg != nil && cfg.CacheTTLs.Quiz > 0 {
		s.quizTTL = cfg.CacheTTLs.Quiz
	}
	if cfg != nil && cfg.CacheTTLs.CourseQuiz > 0 {
		s.courseQuizzesTTL = cfg.CacheTTLs.CourseQuiz
	}
	return s
}

// GetQuiz implements QuizCacheService
func (s *quizCacheService) GetQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	key := cache.QuizKey(quizID)

	var quiz domain.Quiz
	if s.readCache(ctx, key, &quiz) {
		return &quiz, nil
	}

	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		gen := s.generation(key)
		loaded, err := s.repo.GetQuizWithQuestions(ctx, quizID)
		if err != nil {
			return nil, err
		}
		if loaded != nil {
			s.writeCache(ctx, key, gen, loaded, s.quizTTL)
		}
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	loaded, ok := res.(*domain.Quiz)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for quiz: %T", res)
	}
	if loaded == nil {
		return nil, nil
	}
	// singleflight hands the same value to every waiter
	return loaded.Clone(), nil
}

// GetQuizUncached implements QuizCacheService
func (s *quizCacheService) GetQuizUncached(ctx context.Context, quizID string) (*domain.Quiz, error) {
	return s.repo.GetQuizWithQuestions(ctx, quizID)
}

// ListByCourse implements QuizCacheService
func (s *quizCacheService) ListByCourse(ctx context.Context, courseID string, onlyPublished bool) ([]*domain.Quiz, error) {
	key := cache.CourseQuizzesKey(courseID, onlyPublished)

	var quizzes []*domain.Quiz
	if s.readCache(ctx, key, &quizzes) {
		return quizzes, nil
	}

	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		gen := s.generation(key)
		loaded, err := s.repo.ListByCourse(ctx, courseID, onlyPublished)
		if err != nil {
			return nil, err
		}
		s.writeCache(ctx, key, gen, loaded, s.courseQuizzesTTL)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	loaded, ok := res.([]*domain.Quiz)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for course quizzes: %T", res)
	}
	return loaded, nil
}

// Invalidate implements QuizCacheService. Loads still in flight for the keys
// are forgotten and will not write back. Delete failures are logged only;
// the entries still expire with their TTL.
func (s *quizCacheService) Invalidate(ctx context.Context, quizID, courseID string) {
	keys := cache.CatalogKeys(quizID, courseID)
	s.mu.Lock()
	for _, key := range keys {
		s.generations[key]++
		s.sfGroup.Forget(key)
	}
	s.mu.Unlock()

	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Get().Warn("Failed to invalidate catalog cache",
			zap.Error(err), zap.Strings("keys", keys))
	}
}

func (s *quizCacheService) generation(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[key]
}

func (s *quizCacheService) readCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Catalog cache read failed", zap.Error(err), zap.String("key", key))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Get().Warn("Discarding undecodable catalog cache entry", zap.Error(err), zap.String("key", key))
		return false
	}
	return true
}

// writeCache stores value under key unless key was invalidated after gen was read.
func (s *quizCacheService) writeCache(ctx context.Context, key string, gen uint64, value interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		logger.Get().Error("Failed to encode catalog cache entry", zap.Error(err), zap.String("key", key))
		return
	}

	// Holding mu orders the write against Invalidate: either Invalidate saw
	// the write and deletes it, or the write sees the new generation and skips.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[key] != gen {
		logger.Get().Debug("Skipping cache write for invalidated key", zap.String("key", key))
		return
	}
	if err := s.cache.Set(ctx, key, string(data), ttl); err != nil {
		logger.Get().Warn("Catalog cache write failed", zap.Error(err), zap.String("key", key))
	}
}
