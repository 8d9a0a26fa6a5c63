package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"elearning/internal/config"
	"elearning/internal/domain"
	"elearning/internal/dto"
	"elearning/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrInvalidRole     = errors.New("token carries an unknown role")
)

// TokenService validates the bearer tokens issued by the identity service.
// IssueToken exists for development tooling; production tokens come from outside.
type TokenService interface {
	ValidateToken(ctx context.Context, tokenString string) (domain.Principal, error)
	IssueToken(ctx context.Context, principal domain.Principal, ttl time.Duration) (string, error)
}

type tokenService struct {
	secret []byte
	issuer string
	now    domain.Clock
}

// NewTokenService creates a TokenService signing and verifying with the configured HS256 secret.
func NewTokenService(cfg config.JWTConfig) (TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}
	return &tokenService{secret: []byte(cfg.SecretKey), issuer: cfg.Issuer, now: time.Now}, nil
}

// ValidateToken implements TokenService
func (s *tokenService) ValidateToken(ctx context.Context, tokenString string) (domain.Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return domain.Principal{}, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return domain.Principal{}, ErrInvalidJWTToken
	}
	role := domain.Role(claims.Role)
	if !role.Valid() {
		return domain.Principal{}, fmt.Errorf("%w: %q", ErrInvalidRole, claims.Role)
	}
	return domain.Principal{UserID: claims.UserID, Role: role}, nil
}

// IssueToken implements TokenService
func (s *tokenService) IssueToken(ctx context.Context, principal domain.Principal, ttl time.Duration) (string, error) {
	if !principal.Role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, principal.Role)
	}
	now := s.now()
	claims := dto.AuthClaims{
		UserID: principal.UserID,
		Role:   string(principal.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   principal.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
