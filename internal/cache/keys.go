package cache

import "strings"

const (
	GlobalKeyPrefix = "elearning"

	// ServiceCatalog owns the keys of cached quizzes and course listings.
	ServiceCatalog = "catalog"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuizKey is the key of a quiz with its questions and choices.
func QuizKey(quizID string) string {
	return GenerateCacheKey(ServiceCatalog, "quiz", quizID)
}

// CourseQuizzesKey is the key of the quiz listing of a course.
func CourseQuizzesKey(courseID string, onlyPublished bool) string {
	scope := "all"
	if onlyPublished {
		scope = "published"
	}
	return GenerateCacheKey(ServiceCatalog, "course_quizzes", courseID, scope)
}

// CatalogKeys lists every key that caches quizID or the listings of its course.
func CatalogKeys(quizID, courseID string) []string {
	keys := []string{QuizKey(quizID)}
	if courseID != "" {
		keys = append(keys, CourseQuizzesKey(courseID, true), CourseQuizzesKey(courseID, false))
	}
	return keys
}
