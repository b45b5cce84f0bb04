package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDomainError(t *testing.T) {
	baseErr := errors.New("base error")
	domainErr := NewDomainError(ErrorTypeNotFound, "resource not found", baseErr)

	assert.Equal(t, ErrorTypeNotFound, domainErr.Type)
	assert.Equal(t, "resource not found", domainErr.Message)
	assert.Equal(t, baseErr, domainErr.Err)
	assert.NotNil(t, domainErr.Details)
}

func TestDomainError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *DomainError
		wantMsg string
	}{
		{
			name: "error with wrapped error",
			err: &DomainError{
				Type:    ErrorTypeNotFound,
				Message: "task not found",
				Err:     errors.New("db error"),
			},
			wantMsg: "not_found: task not found (db error)",
		},
		{
			name: "error without wrapped error",
			err: &DomainError{
				Type:    ErrorTypeValidation,
				Message: "invalid input",
				Err:     nil,
			},
			wantMsg: "validation: invalid input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	baseErr := errors.New("base error")
	domainErr := NewDomainError(ErrorTypeInternal, "internal error", baseErr)

	unwrapped := errors.Unwrap(domainErr)
	assert.Equal(t, baseErr, unwrapped)
}

func TestDomainError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "same error type",
			err:    NewDomainError(ErrorTypeNotFound, "not found", nil),
			target: ErrTaskNotFound,
			want:   true,
		},
		{
			name:   "different error type",
			err:    NewDomainError(ErrorTypeValidation, "validation", nil),
			target: ErrTaskNotFound,
			want:   false,
		},
		{
			name:   "not a domain error",
			err:    NewDomainError(ErrorTypeNotFound, "not found", nil),
			target: errors.New("regular error"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestDomainError_WithDetail(t *testing.T) {
	err := NewDomainError(ErrorTypeValidation, "validation error", nil)

	err.WithDetail("field", "username").WithDetail("value", "")

	require.NotNil(t, err.Details)
	assert.Equal(t, "username", err.Details["field"])
	assert.Equal(t, "", err.Details["value"])
}

func TestErrorTypeHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", ErrTaskNotFound, IsNotFoundError, true},
		{"validation", ErrUsernameTaken, IsValidationError, true},
		{"unauthorized", ErrInvalidCredentials, IsUnauthorizedError, true},
		{"internal", ErrInternal, IsInternalError, true},
		{"conflict", ErrConcurrentUpdate, IsConflictError, true},
		{"wrapped internal", WrapInternal("db write failed", errors.New("boom")), IsInternalError, true},
		{"mismatched type", ErrTaskNotFound, IsValidationError, false},
		{"plain error", errors.New("plain"), IsNotFoundError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestGetErrorType(t *testing.T) {
	assert.Equal(t, ErrorTypeUnauthorized, GetErrorType(ErrTokenExpired))
	assert.Equal(t, ErrorType(""), GetErrorType(errors.New("plain")))
}

func TestWrapError_PreservesChain(t *testing.T) {
	base := fmt.Errorf("row scan: %w", errors.New("bad column"))
	wrapped := WrapError(ErrorTypeInternal, "query failed", base)

	assert.True(t, IsInternalError(wrapped))
	assert.ErrorIs(t, wrapped, base)
}
