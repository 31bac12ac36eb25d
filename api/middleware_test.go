package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/idealwardrobe/backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func withSecret(t *testing.T, secret string) {
	t.Helper()
	old := config.JWTSecret
	config.JWTSecret = secret
	t.Cleanup(func() { config.JWTSecret = old })
}

func TestAuthMiddlewarePassesSubject(t *testing.T) {
	withSecret(t, "test-secret")

	var got string
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetUserIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "user-42"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", got)
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	withSecret(t, "test-secret")

	called := false
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, err := GetUserIDFromContext(r.Context())
		assert.Error(t, err)
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	withSecret(t, "test-secret")

	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "user-42"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUserScope(t *testing.T) {
	withSecret(t, "test-secret")

	plain := httptest.NewRequest(http.MethodGet, "/", nil)

	// Missing user id is always a 400.
	_, status, err := RequireUserScope(plain, "")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, status)

	// Unauthenticated requests may act for any user id.
	userID, status, err := RequireUserScope(plain, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "user-1", userID)

	// Authenticated requests are pinned to the token subject.
	var matched, mismatched int
	handler := AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		if _, status, err := RequireUserScope(r, "user-42"); err == nil {
			matched = status
		}
		_, status, err := RequireUserScope(r, "someone-else")
		require.Error(t, err)
		mismatched = status
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "user-42"))
	handler(httptest.NewRecorder(), req)

	assert.Equal(t, 0, matched)
	assert.Equal(t, http.StatusForbidden, mismatched)
}

func TestValidSlot(t *testing.T) {
	assert.True(t, validSlot("tops"))
	assert.True(t, validSlot("one_piece"))
	assert.False(t, validSlot("hats"))
}
