package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTAccessTokenMiddleware_ValidToken(t *testing.T) {
	manager := newTestJWTManager()
	repo := &mockUserRepository{users: []User{{ID: "user-1", Email: "user@example.com"}}}
	service := NewAuthService(repo, manager)

	token, err := manager.GenerateAccessJWT("user-1", "user@example.com", time.Hour)
	assert.NoError(t, err)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	service.JWTAccessTokenMiddleware()(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "user-1", gotUserID)
}

func TestJWTAccessTokenMiddleware_MissingHeader(t *testing.T) {
	service := NewAuthService(&mockUserRepository{}, newTestJWTManager())

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})
	service.JWTAccessTokenMiddleware()(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestJWTAccessTokenMiddleware_UnknownUser(t *testing.T) {
	manager := newTestJWTManager()
	service := NewAuthService(&mockUserRepository{}, manager)

	token, err := manager.GenerateAccessJWT("ghost", "ghost@example.com", time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})
	service.JWTAccessTokenMiddleware()(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}
