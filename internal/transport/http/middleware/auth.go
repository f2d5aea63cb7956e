package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const bearerKey contextKey = "bearer"

// Bearer requires an Authorization: Bearer header on authenticated proxy
// paths and injects the raw credential into the request context for the
// handler to forward. When the credential happens to be a JWT with an exp
// claim that already passed, the request is rejected locally; the gateway
// holds no key, so everything else stays the backend's call.
func Bearer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeDetail(w, http.StatusUnauthorized, "No autenticado")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				writeDetail(w, http.StatusUnauthorized, "No autenticado")
				return
			}
			if expired(token) {
				writeDetail(w, http.StatusUnauthorized, "Sesión expirada")
				return
			}
			ctx := context.WithValue(r.Context(), bearerKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerFromContext extracts the raw credential injected by Bearer.
func BearerFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(bearerKey).(string)
	return t, ok
}

// expired reports whether the token is a parseable JWT whose exp claim lies
// in the past. Opaque or malformed tokens are not rejected here; the backend
// is authoritative for them.
func expired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}
