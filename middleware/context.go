package middleware

import (
	"context"

	"github.com/sulta24/backend-hw1/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"

	// PrincipalKey is the context key for the authenticated user
	PrincipalKey contextKey = "principal"
)

// GetRequestIDFromContext retrieves the request ID from context
func GetRequestIDFromContext(ctx context.Context) string {
	if val := ctx.Value(RequestIDKey); val != nil {
		if requestID, ok := val.(string); ok {
			return requestID
		}
	}
	return ""
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetPrincipalFromContext retrieves the authenticated user from context
func GetPrincipalFromContext(ctx context.Context) *models.User {
	if val := ctx.Value(PrincipalKey); val != nil {
		if user, ok := val.(*models.User); ok {
			return user
		}
	}
	return nil
}

// WithPrincipal adds the authenticated user to the context
func WithPrincipal(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, PrincipalKey, user)
}
