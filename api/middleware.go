package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/idealwardrobe/backend/config"
)

type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware validates a bearer token when one is present and stores its
// subject in the request context. Identity is issued by the external auth
// provider; this backend only verifies the signature and reads the subject.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next(w, r)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		subject, err := subjectFromToken(tokenString)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, subject)
		next(w, r.WithContext(ctx))
	}
}

func subjectFromToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		// Some providers put the id under user_id instead of sub.
		if v, ok := claims["user_id"].(string); ok && v != "" {
			return v, nil
		}
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}

// GetUserIDFromContext returns the authenticated subject, if any.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	v, ok := ctx.Value(userIDKey).(string)
	if !ok || v == "" {
		return "", fmt.Errorf("no user id in context")
	}
	return v, nil
}

// RequireUserScope enforces the owning-user invariant: user id is mandatory
// on every scoped request, and when the request is authenticated the token
// subject must match it. Returns the validated user id or a non-zero HTTP
// status describing the violation.
func RequireUserScope(r *http.Request, requested string) (string, int, error) {
	if requested == "" {
		return "", http.StatusBadRequest, fmt.Errorf("User ID required")
	}
	if subject, err := GetUserIDFromContext(r.Context()); err == nil && subject != requested {
		return "", http.StatusForbidden, fmt.Errorf("user id does not match authenticated user")
	}
	return requested, 0, nil
}
