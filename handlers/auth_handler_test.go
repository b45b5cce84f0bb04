package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/sulta24/backend-hw1/middleware"
	"github.com/sulta24/backend-hw1/models"
	"github.com/sulta24/backend-hw1/services"
)

func TestRegisterHandler(t *testing.T) {
	t.Run("creates user", func(t *testing.T) {
		auth := new(MockAuthService)
		auth.On("Register", mock.Anything, "alice", "pw1").
			Return(&models.User{ID: 1, Username: "alice", PasswordHash: "hash"}, nil)

		handler := RegisterHandler(testDeps(auth, nil))

		req := httptest.NewRequest(http.MethodPost, "/register/",
			strings.NewReader(`{"username":"alice","password":"pw1"}`))
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "alice", body["username"])
		assert.NotContains(t, w.Body.String(), "hash")
		auth.AssertExpectations(t)
	})

	t.Run("duplicate username answers 400", func(t *testing.T) {
		auth := new(MockAuthService)
		auth.On("Register", mock.Anything, "alice", "pw1").
			Return(nil, services.ErrUsernameTaken)

		handler := RegisterHandler(testDeps(auth, nil))

		req := httptest.NewRequest(http.MethodPost, "/register/",
			strings.NewReader(`{"username":"alice","password":"pw1"}`))
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "username already registered")
	})

	t.Run("missing fields answer 400", func(t *testing.T) {
		auth := new(MockAuthService)
		handler := RegisterHandler(testDeps(auth, nil))

		req := httptest.NewRequest(http.MethodPost, "/register/",
			strings.NewReader(`{"username":"alice"}`))
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		auth.AssertNotCalled(t, "Register")
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		auth := new(MockAuthService)
		handler := RegisterHandler(testDeps(auth, nil))

		req := httptest.NewRequest(http.MethodPost, "/register/", strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty body answers 400", func(t *testing.T) {
		auth := new(MockAuthService)
		handler := RegisterHandler(testDeps(auth, nil))

		req := httptest.NewRequest(http.MethodPost, "/register/", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTokenHandler(t *testing.T) {
	postForm := func(handler http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		handler(w, req)
		return w
	}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		auth := new(MockAuthService)
		auth.On("Authenticate", mock.Anything, "alice", "pw1").Return("signed-token", nil)

		handler := TokenHandler(testDeps(auth, nil))
		w := postForm(handler, url.Values{"username": {"alice"}, "password": {"pw1"}})

		assert.Equal(t, http.StatusOK, w.Code)

		var body TokenResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "signed-token", body.AccessToken)
		assert.Equal(t, "bearer", body.TokenType)
	})

	t.Run("bad credentials answer 401", func(t *testing.T) {
		auth := new(MockAuthService)
		auth.On("Authenticate", mock.Anything, "alice", "wrong").
			Return("", services.ErrInvalidCredentials)

		handler := TokenHandler(testDeps(auth, nil))
		w := postForm(handler, url.Values{"username": {"alice"}, "password": {"wrong"}})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})

	t.Run("missing fields answer 400", func(t *testing.T) {
		auth := new(MockAuthService)
		handler := TokenHandler(testDeps(auth, nil))
		w := postForm(handler, url.Values{"username": {"alice"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		auth.AssertNotCalled(t, "Authenticate")
	})

	t.Run("json body answers 400", func(t *testing.T) {
		auth := new(MockAuthService)
		handler := TokenHandler(testDeps(auth, nil))

		req := httptest.NewRequest(http.MethodPost, "/token",
			strings.NewReader(`{"username":"alice","password":"pw1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMeHandler(t *testing.T) {
	t.Run("returns principal", func(t *testing.T) {
		handler := MeHandler(testDeps(nil, nil))

		req := httptest.NewRequest(http.MethodGet, "/me/", nil)
		ctx := middleware.WithPrincipal(req.Context(), &models.User{ID: 1, Username: "alice", PasswordHash: "hash"})
		w := httptest.NewRecorder()
		handler(w, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.NotContains(t, w.Body.String(), "hash")
	})

	t.Run("no principal answers 401", func(t *testing.T) {
		handler := MeHandler(testDeps(nil, nil))

		req := httptest.NewRequest(http.MethodGet, "/me/", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
