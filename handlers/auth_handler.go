package handlers

import (
	"net/http"

	"github.com/sulta24/backend-hw1/app"
	"github.com/sulta24/backend-hw1/middleware"
	"github.com/sulta24/backend-hw1/utils"
)

// RegisterRequest is the request body for POST /register/
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// TokenResponse is the response body for POST /token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterHandler creates a new user account
func RegisterHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			HandleValidationError(w, err, deps.Logger)
			return
		}

		if err := utils.ValidateStruct(req); err != nil {
			HandleValidationError(w, err, deps.Logger)
			return
		}

		user, err := deps.AuthService.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		respondJSON(w, http.StatusCreated, user.Public())
	}
}

// TokenHandler exchanges form credentials for a bearer token.
// The body is form-encoded, matching the OAuth2 password flow shape.
func TokenHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			_ = utils.WriteBadRequest(w, "invalid form body", nil)
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")
		if username == "" || password == "" {
			_ = utils.WriteBadRequest(w, "username and password are required", nil)
			return
		}

		token, err := deps.AuthService.Authenticate(r.Context(), username, password)
		if err != nil {
			HandleServiceError(w, err, deps.Logger)
			return
		}

		respondJSON(w, http.StatusOK, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

// MeHandler returns the authenticated user
func MeHandler(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.GetPrincipalFromContext(r.Context())
		if user == nil {
			_ = utils.WriteUnauthorized(w, "")
			return
		}

		respondJSON(w, http.StatusOK, user.Public())
	}
}
