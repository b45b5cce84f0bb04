package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenService issues and verifies signed bearer tokens
type TokenService interface {
	// Issue creates a signed token carrying the subject, valid for ttl.
	Issue(subject string, ttl time.Duration) (string, error)
	// Verify checks the token's signature and expiry and returns the subject.
	Verify(token string) (string, error)
}

// JWTTokenService implements TokenService using HS256 JWTs
type JWTTokenService struct {
	secret []byte
	issuer string
	logger *zap.Logger
}

// NewJWTTokenService creates a new JWT token service
func NewJWTTokenService(secret, issuer string, logger *zap.Logger) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		issuer: issuer,
		logger: logger,
	}
}

// Issue creates a signed HS256 token for the subject
func (s *JWTTokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("token subject cannot be empty")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates the token, returning its subject
func (s *JWTTokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
	)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrInvalidSignature
		default:
			s.logger.Debug("token verification failed", zap.Error(err))
			return "", ErrInvalidToken
		}
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrMalformedClaims
	}

	return claims.Subject, nil
}
