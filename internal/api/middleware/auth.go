package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/telewatch/telewatch/internal/auth"
	"github.com/telewatch/telewatch/internal/pkg/errors"
	"github.com/telewatch/telewatch/internal/pkg/utils"
)

// ContextKey is a custom type for context keys
type ContextKey string

const (
	// TenantIDKey is the context key for the caller's tenant ID
	TenantIDKey ContextKey = "tenantID"
	// RoleKey is the context key for the caller's role
	RoleKey ContextKey = "role"
)

// AuthMiddleware returns a middleware that validates JWT tokens and places
// the caller's tenant and role into the request context.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			var tokenStr string

			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					tokenStr = parts[1]
				}
			} else {
				cookie, err := r.Cookie("accessToken")
				if err == nil {
					tokenStr = cookie.Value
				}
			}

			if tokenStr == "" {
				utils.WriteError(w, errors.Unauthorized("Missing authentication token"))
				return
			}

			claims, err := auth.ParseClaims(tokenStr, jwtSecret)
			if err != nil {
				utils.WriteError(w, errors.Unauthorized("Invalid or expired token"))
				return
			}

			if claims.TenantID == "" || !claims.Role.Valid() {
				utils.WriteError(w, errors.Forbidden("Token carries no tenant profile"))
				return
			}

			ctx := context.WithValue(r.Context(), TenantIDKey, claims.TenantID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)

			AddLogField(w, "tenant_id", claims.TenantID)
			AddLogField(w, "role", claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns a middleware that rejects callers below the minimum
// role. It must run after AuthMiddleware.
func RequireRole(min auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRole(r)
			if !ok || !role.Meets(min) {
				utils.WriteError(w, errors.Forbidden("Insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetTenantID extracts the tenant ID from the request context
func GetTenantID(r *http.Request) (string, bool) {
	tenantID, ok := r.Context().Value(TenantIDKey).(string)
	return tenantID, ok
}

// GetRole extracts the caller's role from the request context
func GetRole(r *http.Request) (auth.Role, bool) {
	role, ok := r.Context().Value(RoleKey).(auth.Role)
	return role, ok
}
