package middleware

import (
	"context"
	"flying_horse_backend/internal/model"
)

type ctxKey struct{}

// Identity данные из access токена
type Identity struct {
	UserID    int
	Role      string
	SessionID string
}

// WithIdentity кладёт пользователя в контекст
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext пользователь текущего запроса
func IdentityFromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id.UserID == 0 {
		return Identity{}, model.ErrUnauthorized
	}
	return id, nil
}
