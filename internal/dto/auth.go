package dto

import "github.com/golang-jwt/jwt/v5"

// AuthClaims defines the custom claims of the bearer tokens issued by the identity service.
type AuthClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "student" or "teacher"
	jwt.RegisteredClaims
}

// HealthResponse reports dependency status
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
