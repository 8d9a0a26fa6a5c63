package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "catalog",
			objectType:  "quiz",
			identifier:  "123",
			paramsKey:   nil,
			expectedKey: "elearning:catalog:quiz:123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "catalog",
			objectType:  "quiz",
			identifier:  "123",
			paramsKey:   []string{},
			expectedKey: "elearning:catalog:quiz:123",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "catalog",
			objectType:  "course_quizzes",
			identifier:  "xyz",
			paramsKey:   []string{"published", "v2"},
			expectedKey: "elearning:catalog:course_quizzes:xyz:published_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestCatalogKeys(t *testing.T) {
	assert.Equal(t, "elearning:catalog:quiz:q1", QuizKey("q1"))
	assert.Equal(t, "elearning:catalog:course_quizzes:c1:published", CourseQuizzesKey("c1", true))
	assert.Equal(t, "elearning:catalog:course_quizzes:c1:all", CourseQuizzesKey("c1", false))

	assert.Equal(t, []string{QuizKey("q1")}, CatalogKeys("q1", ""))
	assert.ElementsMatch(t, []string{
		"elearning:catalog:quiz:q1",
		"elearning:catalog:course_quizzes:c1:published",
		"elearning:catalog:course_quizzes:c1:all",
	}, CatalogKeys("q1", "c1"))
}
