package middleware

import (
	"flying_horse_backend/internal/model"
	"flying_horse_backend/pkg/resp"
	"flying_horse_backend/pkg/token"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const bearerPrefix = "Bearer "

// Auth проверяет access токен из заголовка Authorization
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				resp.WriteError(w, http.StatusUnauthorized, "No token provided")
				return
			}

			claims, err := token.VerifyToken(strings.TrimPrefix(header, bearerPrefix), secretKey)
			if err != nil {
				logrus.WithError(err).Debug("rejected access token")
				resp.WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := WithIdentity(r.Context(), Identity{
				UserID:    claims.UserID,
				Role:      claims.Role,
				SessionID: claims.SessionID,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает только пользователей с ролью role. Ставится после Auth
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := IdentityFromContext(r.Context())
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "No token provided")
				return
			}
			if id.Role != role {
				resp.WriteError(w, http.StatusForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin сокращение для RequireRole(model.RoleAdmin)
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(model.RoleAdmin)(next)
}
