package middleware

import (
	"context"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sulta24/backend-hw1/models"
	"github.com/sulta24/backend-hw1/utils"
	"go.uber.org/zap"
)

// PrincipalResolver maps a bearer token to the user it identifies
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware provides authentication middleware functionality
type AuthMiddleware struct {
	resolver PrincipalResolver
	logger   *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(resolver PrincipalResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// RequireAuth is a middleware that requires a valid bearer token.
// All failures answer 401 with the same body so callers cannot probe
// which step rejected them.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := chimiddleware.GetReqID(ctx)

		token := extractBearerToken(r)
		if token == "" {
			m.logger.Warn("missing bearer token",
				zap.String("request_id", requestID))
			_ = utils.WriteUnauthorized(w, "")
			return
		}

		user, err := m.resolver.Resolve(ctx, token)
		if err != nil {
			m.logger.Warn("token resolution failed",
				zap.String("request_id", requestID),
				zap.Error(err))
			_ = utils.WriteUnauthorized(w, "")
			return
		}

		ctx = WithPrincipal(ctx, user)

		m.logger.Debug("authentication successful",
			zap.String("request_id", requestID),
			zap.String("username", user.Username))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken extracts the Bearer token from the Authorization header
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
