package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"socialnet/internal/authz"
	"socialnet/internal/httputil"
	"socialnet/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// viewerKey is the context key for the resolved caller identity
	viewerKey contextKey = "viewer"
)

// AuthMiddleware validates the bearer token and fails closed: no valid
// credential means 401 before the handler runs.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer, ok := resolveViewer(r, jwtSecret)
			if !ok {
				httputil.WriteUnauthorized(w, "Missing or invalid authentication token")
				return
			}

			ctx := context.WithValue(r.Context(), viewerKey, viewer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthMiddleware resolves a viewer when a valid token is present and
// otherwise lets the request through as anonymous. Used by endpoints whose
// visibility rules know how to answer for guests.
func OptionalAuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if viewer, ok := resolveViewer(r, jwtSecret); ok {
				ctx := context.WithValue(r.Context(), viewerKey, viewer)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// resolveViewer parses the Authorization header into a Viewer.
func resolveViewer(r *http.Request, jwtSecret string) (*authz.Viewer, bool) {
	var tokenString string

	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		return nil, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, false
	}
	role := model.Role(roleStr)
	if !role.Valid() {
		return nil, false
	}

	return &authz.Viewer{ID: int64(userIDFloat), Role: role}, true
}

// GetViewerFromContext extracts the authenticated viewer from the request
// context. ok is false for anonymous callers.
func GetViewerFromContext(ctx context.Context) (*authz.Viewer, bool) {
	viewer, ok := ctx.Value(viewerKey).(*authz.Viewer)
	return viewer, ok
}
